package services

import (
	"testing"

	"saferoute-service/internal/domain"
)

func TestWeatherDeterministic(t *testing.T) {
	s := NewSynthesizer(fixedClock(14, 0))
	kl := domain.Coordinate{Lat: 3.1390, Lng: 101.6869}

	first := s.Weather(kl)
	second := s.Weather(kl)

	if first != second {
		t.Fatalf("weather not deterministic: %+v vs %+v", first, second)
	}
}

func TestWeatherKnownValue(t *testing.T) {
	s := NewSynthesizer(fixedClock(14, 0))
	kl := domain.Coordinate{Lat: 3.1390, Lng: 101.6869}

	// CoordHash(KL) = 911, so h = 1: template 1, wind direction NE.
	report := s.Weather(kl)

	if report.Condition != "Partly Cloudy" {
		t.Fatalf("condition = %q, want Partly Cloudy", report.Condition)
	}
	if report.Temperature != 31 {
		t.Fatalf("temperature = %d, want 31", report.Temperature)
	}
	if report.WindDirection != "NE" {
		t.Fatalf("wind direction = %q, want NE", report.WindDirection)
	}
}

func TestWeatherNightCooler(t *testing.T) {
	kl := domain.Coordinate{Lat: 3.1390, Lng: 101.6869}

	day := NewSynthesizer(fixedClock(14, 0)).Weather(kl)
	night := NewSynthesizer(fixedClock(23, 0)).Weather(kl)

	if night.Temperature != day.Temperature-5 {
		t.Fatalf("night temperature = %d, want %d", night.Temperature, day.Temperature-5)
	}
	if night.FeelsLike != day.FeelsLike-5 {
		t.Fatalf("night feels-like = %d, want %d", night.FeelsLike, day.FeelsLike-5)
	}
}

func TestWeatherRanges(t *testing.T) {
	s := NewSynthesizer(fixedClock(9, 0))

	coords := []domain.Coordinate{
		{Lat: 3.1390, Lng: 101.6869},
		{Lat: 5.4164, Lng: 100.3327},
		{Lat: 1.4927, Lng: 103.7414},
		{Lat: 2.1896, Lng: 102.2501},
		{Lat: 4.5975, Lng: 101.0901},
	}

	for _, c := range coords {
		report := s.Weather(c)
		if report.Humidity < 0 || report.Humidity > 100 {
			t.Fatalf("humidity out of range for %+v: %d", c, report.Humidity)
		}
		if report.CloudCover < 0 || report.CloudCover > 100 {
			t.Fatalf("cloud cover out of range for %+v: %d", c, report.CloudCover)
		}
		if report.Condition == "" || report.Icon == "" {
			t.Fatalf("missing condition/icon for %+v", c)
		}
	}
}
