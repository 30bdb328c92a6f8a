package services

import "saferoute-service/internal/domain"

// ScoreWeights defines the contribution of each signal field to the weighted
// sum. Weights must total 1.0.
type ScoreWeights struct {
	Crowd     float64
	Lighting  float64
	Incidents float64
	Weather   float64
}

// ScoreConfig parameterizes a discrete safety classifier: the field weights,
// the valid input ranges, and the thresholds mapping the weighted sum in
// [0,1] onto discrete scores. Every call site shares this one engine instead
// of carrying its own copy of the arithmetic.
type ScoreConfig struct {
	Weights      ScoreWeights
	MaxCrowd     int
	MaxLighting  int
	MaxIncidents int
	MaxWeather   int
	Thresholds   []float64
}

// DefaultScoreConfig is the production safety classifier: lighting and
// incident history matter most, weather least. Thresholds split [0,1] into
// four bands (0 = Very Unsafe .. 3 = Very Safe).
var DefaultScoreConfig = ScoreConfig{
	Weights: ScoreWeights{
		Crowd:     0.25,
		Lighting:  0.30,
		Incidents: 0.30,
		Weather:   0.15,
	},
	MaxCrowd:     100,
	MaxLighting:  100,
	MaxIncidents: 10,
	MaxWeather:   100,
	Thresholds:   []float64{0.25, 0.50, 0.75},
}

// Score reduces a signal to a discrete safety score. Inputs are clamped into
// their valid ranges first since callers may pass unclamped synthesized
// values. Crowd and lighting contribute directly; incidents and weather risk
// are inverted because higher values mean less safe.
func (cfg ScoreConfig) Score(sig domain.EnvironmentalSignal) int {
	crowd := clampInt(sig.CrowdDensity, 0, cfg.MaxCrowd)
	lighting := clampInt(sig.Lighting, 0, cfg.MaxLighting)
	incidents := clampInt(sig.Incidents, 0, cfg.MaxIncidents)
	weather := clampInt(sig.WeatherRisk, 0, cfg.MaxWeather)

	weighted := float64(crowd)/float64(cfg.MaxCrowd)*cfg.Weights.Crowd +
		float64(lighting)/float64(cfg.MaxLighting)*cfg.Weights.Lighting +
		(1-float64(incidents)/float64(cfg.MaxIncidents))*cfg.Weights.Incidents +
		(1-float64(weather)/float64(cfg.MaxWeather))*cfg.Weights.Weather

	for i, threshold := range cfg.Thresholds {
		if weighted < threshold {
			return i
		}
	}
	return len(cfg.Thresholds)
}

// SafetyScore classifies a signal with the default configuration.
func SafetyScore(sig domain.EnvironmentalSignal) int {
	return DefaultScoreConfig.Score(sig)
}

var safetyLabels = map[int]string{
	0: "Very Unsafe",
	1: "Unsafe",
	2: "Safe",
	3: "Very Safe",
}

var safetyColors = map[int]string{
	0: "#ef4444",
	1: "#f97316",
	2: "#eab308",
	3: "#22c55e",
}

// SafetyLabel returns the display label for a discrete safety score.
func SafetyLabel(score int) string {
	if label, ok := safetyLabels[score]; ok {
		return label
	}
	return safetyLabels[0]
}

// SafetyColor returns the display color for a discrete safety score.
func SafetyColor(score int) string {
	if color, ok := safetyColors[score]; ok {
		return color
	}
	return safetyColors[0]
}
