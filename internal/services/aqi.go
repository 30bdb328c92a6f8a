package services

import (
	"math"

	"saferoute-service/internal/domain"
)

// AQIReading is a synthesized air-quality sample for a point: the index
// value, its category bucket with display color, and derived particulate
// estimates.
type AQIReading struct {
	AQI      int
	Category string
	Color    string
	PM25     int
	PM10     int
}

type aqiBucket struct {
	max      int
	category string
	color    string
}

// Standard AQI buckets. The final bucket catches everything above 300,
// though clamping keeps synthesized values inside [0,300].
var aqiBuckets = []aqiBucket{
	{max: 50, category: "Good", color: "#00e400"},
	{max: 100, category: "Moderate", color: "#ffff00"},
	{max: 150, category: "Unhealthy for Sensitive Groups", color: "#ff7e00"},
	{max: 200, category: "Unhealthy", color: "#ff0000"},
	{max: 300, category: "Very Unhealthy", color: "#8f3f97"},
}

// AQICategory maps an AQI value onto its category label and display color.
func AQICategory(aqi int) (string, string) {
	for _, b := range aqiBuckets {
		if aqi <= b.max {
			return b.category, b.color
		}
	}
	return "Hazardous", "#7e0023"
}

// PointAQI synthesizes an AQI reading for a coordinate from a regional
// baseline, perturbed by a bounded coordinate-hash delta (±10).
func (s *Synthesizer) PointAQI(c domain.Coordinate, baseline int) AQIReading {
	h := CoordHash(c) % 100
	aqi := clampInt(baseline+h%20-10, 0, 300)

	category, color := AQICategory(aqi)
	return AQIReading{
		AQI:      aqi,
		Category: category,
		Color:    color,
		PM25:     int(math.Round(float64(aqi)/2)) + h%10,
		PM10:     int(math.Round(float64(aqi)/1.5)) + h%15,
	}
}

// TimedAQI synthesizes an AQI reading blended with the current time bucket,
// giving repeated queries a diurnal drift. The perturbation range is wider
// than PointAQI's (-15 to +24).
func (s *Synthesizer) TimedAQI(c domain.Coordinate, baseline int) AQIReading {
	combined := (CoordHash(c)%100 + s.timeHash()) % 100
	aqi := clampInt(baseline+combined%40-15, 0, 300)

	category, color := AQICategory(aqi)
	return AQIReading{
		AQI:      aqi,
		Category: category,
		Color:    color,
		PM25:     int(math.Round(float64(aqi)/2.5)) + combined%10,
		PM10:     int(math.Round(float64(aqi)/1.5)) + combined%15,
	}
}

// NearestPlace returns the clean-air place closest to c, supplying the AQI
// baseline for synthesis. ok is false when places is empty.
func NearestPlace(c domain.Coordinate, places []domain.CleanAirPlace) (domain.CleanAirPlace, bool) {
	if len(places) == 0 {
		return domain.CleanAirPlace{}, false
	}

	nearest := places[0]
	minDist := DistanceKm(c, nearest.Location)
	for _, p := range places[1:] {
		if d := DistanceKm(c, p.Location); d < minDist {
			minDist = d
			nearest = p
		}
	}
	return nearest, true
}
