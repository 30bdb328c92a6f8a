package services

import (
	"testing"

	"saferoute-service/internal/domain"
)

func TestSafetyScoreBands(t *testing.T) {
	tests := []struct {
		name string
		sig  domain.EnvironmentalSignal
		want int
	}{
		{
			name: "best case",
			sig:  domain.EnvironmentalSignal{CrowdDensity: 100, Lighting: 100, Incidents: 0, WeatherRisk: 0},
			want: 3,
		},
		{
			name: "worst case",
			sig:  domain.EnvironmentalSignal{CrowdDensity: 0, Lighting: 0, Incidents: 10, WeatherRisk: 100},
			want: 0,
		},
		{
			name: "kl daytime profile",
			sig:  domain.EnvironmentalSignal{CrowdDensity: 63, Lighting: 64, Incidents: 2, WeatherRisk: 34},
			want: 2,
		},
		{
			name: "dim and incident heavy",
			sig:  domain.EnvironmentalSignal{CrowdDensity: 20, Lighting: 20, Incidents: 8, WeatherRisk: 80},
			want: 0,
		},
	}

	for _, tt := range tests {
		if got := SafetyScore(tt.sig); got != tt.want {
			t.Fatalf("%s: score = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestScoreClampsInputs(t *testing.T) {
	over := domain.EnvironmentalSignal{CrowdDensity: 500, Lighting: 500, Incidents: -3, WeatherRisk: -40}
	max := domain.EnvironmentalSignal{CrowdDensity: 100, Lighting: 100, Incidents: 0, WeatherRisk: 0}

	if SafetyScore(over) != SafetyScore(max) {
		t.Fatalf("out-of-range inputs should clamp to the valid extremes")
	}
}

func TestScoreMonotonicInLighting(t *testing.T) {
	base := domain.EnvironmentalSignal{CrowdDensity: 50, Incidents: 5, WeatherRisk: 50}

	prev := -1
	for lighting := 0; lighting <= 100; lighting += 10 {
		sig := base
		sig.Lighting = lighting
		score := SafetyScore(sig)
		if score < prev {
			t.Fatalf("score decreased as lighting improved: lighting=%d score=%d prev=%d", lighting, score, prev)
		}
		prev = score
	}
}

func TestScoreRange(t *testing.T) {
	signals := []domain.EnvironmentalSignal{
		{},
		{CrowdDensity: 100, Lighting: 100, Incidents: 10, WeatherRisk: 100},
		{CrowdDensity: 50, Lighting: 50, Incidents: 5, WeatherRisk: 50},
	}

	for _, sig := range signals {
		score := SafetyScore(sig)
		if score < 0 || score > 3 {
			t.Fatalf("score out of range for %+v: %d", sig, score)
		}
	}
}

func TestSafetyLabelAndColor(t *testing.T) {
	tests := []struct {
		score int
		label string
		color string
	}{
		{0, "Very Unsafe", "#ef4444"},
		{1, "Unsafe", "#f97316"},
		{2, "Safe", "#eab308"},
		{3, "Very Safe", "#22c55e"},
		{-1, "Very Unsafe", "#ef4444"},
		{7, "Very Unsafe", "#ef4444"},
	}

	for _, tt := range tests {
		if got := SafetyLabel(tt.score); got != tt.label {
			t.Fatalf("SafetyLabel(%d) = %q, want %q", tt.score, got, tt.label)
		}
		if got := SafetyColor(tt.score); got != tt.color {
			t.Fatalf("SafetyColor(%d) = %q, want %q", tt.score, got, tt.color)
		}
	}
}
