package services

import (
	"math"
	"math/rand"

	"saferoute-service/internal/domain"
)

// One degree of latitude (and of longitude near the equator) is roughly
// 111 km; offsets below are calibrated against that.
const kmPerDegree = 111.0

// Jitter applied to each generated coordinate, in degrees (~±55 m).
const jitterDegrees = 0.0005

// spotTemplate places one synthetic spot at a bearing and distance band
// from the center. Stores sit in a close band (walkable in a few minutes);
// police, medical, and well-lit areas sit further out.
type spotTemplate struct {
	name       string
	typ        string
	category   domain.Category
	bearingDeg float64
	minKm      float64
	maxKm      float64
	is24Hours  bool
}

var spotTemplates = []spotTemplate{
	{name: "24-Hour Convenience Store (North)", typ: "store", category: domain.CategoryStore, bearingDeg: 0, minKm: 0.3, maxKm: 0.6, is24Hours: true},
	{name: "24-Hour Convenience Store (East)", typ: "store", category: domain.CategoryStore, bearingDeg: 90, minKm: 0.3, maxKm: 0.6, is24Hours: true},
	{name: "24-Hour Convenience Store (South)", typ: "store", category: domain.CategoryStore, bearingDeg: 180, minKm: 0.3, maxKm: 0.6, is24Hours: true},
	{name: "24-Hour Convenience Store (West)", typ: "store", category: domain.CategoryStore, bearingDeg: 270, minKm: 0.3, maxKm: 0.6, is24Hours: true},
	{name: "Police Station (Northeast)", typ: "police_station", category: domain.CategoryPolice, bearingDeg: 45, minKm: 0.7, maxKm: 1.3, is24Hours: true},
	{name: "Police Station (Southwest)", typ: "police_station", category: domain.CategoryPolice, bearingDeg: 225, minKm: 0.7, maxKm: 1.3, is24Hours: true},
	{name: "24-Hour Clinic (Northwest)", typ: "clinic", category: domain.CategoryMedical, bearingDeg: 315, minKm: 0.7, maxKm: 1.3, is24Hours: true},
	{name: "24-Hour Clinic (Southeast)", typ: "clinic", category: domain.CategoryMedical, bearingDeg: 135, minKm: 0.7, maxKm: 1.3, is24Hours: true},
	{name: "Well-Lit Plaza (North)", typ: "public_area", category: domain.CategoryWellLitArea, bearingDeg: 20, minKm: 0.7, maxKm: 1.3, is24Hours: true},
	{name: "Well-Lit Plaza (South)", typ: "public_area", category: domain.CategoryWellLitArea, bearingDeg: 200, minKm: 0.7, maxKm: 1.3, is24Hours: true},
	{name: "Petrol Station Mart (East)", typ: "store", category: domain.CategoryStore, bearingDeg: 110, minKm: 0.3, maxKm: 0.6, is24Hours: true},
	{name: "Transit Station Concourse (West)", typ: "public_area", category: domain.CategoryWellLitArea, bearingDeg: 250, minKm: 0.7, maxKm: 1.3, is24Hours: true},
}

// SpotGenerator synthesizes safe spots around a center point for locations
// the static table does not cover. Generation is intentionally randomized
// (not reproducible across calls); tests inject a fixed-seed source and
// assert structural properties instead of exact coordinates.
type SpotGenerator struct {
	rng *rand.Rand
}

// NewSpotGenerator returns a generator. A nil rng falls back to the shared
// math/rand source, which is safe for concurrent use.
func NewSpotGenerator(rng *rand.Rand) *SpotGenerator {
	return &SpotGenerator{rng: rng}
}

func (g *SpotGenerator) randFloat64() float64 {
	if g.rng != nil {
		return g.rng.Float64()
	}
	return rand.Float64()
}

// Around generates one synthetic spot per template. IDs start at 1000 to
// stay clear of the seeded static data.
func (g *SpotGenerator) Around(center domain.Coordinate) []domain.SafeSpot {
	spots := make([]domain.SafeSpot, 0, len(spotTemplates))

	for i, tpl := range spotTemplates {
		distKm := tpl.minKm + g.randFloat64()*(tpl.maxKm-tpl.minKm)
		bearing := degreesToRadians(tpl.bearingDeg)

		dLat := distKm / kmPerDegree * math.Cos(bearing)
		dLng := distKm / (kmPerDegree * math.Cos(degreesToRadians(center.Lat))) * math.Sin(bearing)

		lat := center.Lat + dLat + (g.randFloat64()*2-1)*jitterDegrees
		lng := center.Lng + dLng + (g.randFloat64()*2-1)*jitterDegrees

		spots = append(spots, domain.SafeSpot{
			ID:          1000 + i,
			Name:        tpl.name,
			Type:        tpl.typ,
			Category:    tpl.category,
			Location:    domain.Coordinate{Lat: lat, Lng: lng},
			Address:     "Near your location",
			Is24Hours:   tpl.is24Hours,
			Description: "Suggested nearby location",
		})
	}

	return spots
}
