package services

import (
	"math"
	"time"

	"saferoute-service/internal/domain"
)

// Clock supplies the current time. Production wiring uses time.Now; tests
// pin a fixed instant so time-blended outputs are exactly reproducible.
type Clock func() time.Time

// Prime multipliers for the coordinate hash. The hash is not cryptographic;
// it only has to be stable per coordinate and spread values across nearby
// points so synthesized signals look plausibly varied.
const (
	latHashPrime = 7919
	lngHashPrime = 104729
	hashModulus  = 1000
)

// Synthesizer fabricates environmental signals and air-quality readings for
// a coordinate. The service has no real sensor feed, so signals are derived
// from a coordinate hash, biased toward a matching city profile when one
// exists. Output is reproducible for the same coordinate within the same
// minute bucket.
type Synthesizer struct {
	now Clock
}

// NewSynthesizer returns a Synthesizer. A nil clock defaults to time.Now.
func NewSynthesizer(now Clock) *Synthesizer {
	if now == nil {
		now = time.Now
	}
	return &Synthesizer{now: now}
}

// CoordHash reduces a coordinate to a stable value in [0, hashModulus).
func CoordHash(c domain.Coordinate) int {
	latScaled := int(math.Round(math.Abs(c.Lat * 10000)))
	lngScaled := int(math.Round(math.Abs(c.Lng * 10000)))
	return (latScaled*latHashPrime + lngScaled*lngHashPrime) % hashModulus
}

// timeHash buckets the wall clock into [0,100) by minute of day, giving the
// time-blended variants a diurnal drift.
func (s *Synthesizer) timeHash() int {
	now := s.now()
	return (now.Hour()*60 + now.Minute()) % 100
}

// cityProfile holds baseline environmental values for a named urban region,
// matched by bounding box. The hash-derived term perturbs these baselines so
// signals cluster sensibly by region instead of being pure noise.
type cityProfile struct {
	name                   string
	minLat, maxLat         float64
	minLng, maxLng         float64
	crowd, lighting        int
	incidents, weatherRisk int
}

var cityProfiles = []cityProfile{
	{name: "Kuala Lumpur", minLat: 3.03, maxLat: 3.25, minLng: 101.58, maxLng: 101.78, crowd: 65, lighting: 70, incidents: 3, weatherRisk: 35},
	{name: "Penang", minLat: 5.25, maxLat: 5.50, minLng: 100.18, maxLng: 100.40, crowd: 55, lighting: 65, incidents: 2, weatherRisk: 30},
	{name: "Johor Bahru", minLat: 1.42, maxLat: 1.58, minLng: 103.60, maxLng: 103.85, crowd: 50, lighting: 60, incidents: 3, weatherRisk: 40},
	{name: "Ipoh", minLat: 4.52, maxLat: 4.68, minLng: 101.02, maxLng: 101.16, crowd: 40, lighting: 55, incidents: 2, weatherRisk: 30},
	{name: "Kuching", minLat: 1.48, maxLat: 1.62, minLng: 110.28, maxLng: 110.42, crowd: 40, lighting: 55, incidents: 2, weatherRisk: 45},
	{name: "Kota Kinabalu", minLat: 5.90, maxLat: 6.05, minLng: 116.02, maxLng: 116.15, crowd: 45, lighting: 55, incidents: 2, weatherRisk: 40},
}

func profileFor(c domain.Coordinate) (cityProfile, bool) {
	for _, p := range cityProfiles {
		if c.Lat >= p.minLat && c.Lat <= p.maxLat && c.Lng >= p.minLng && c.Lng <= p.maxLng {
			return p, true
		}
	}
	return cityProfile{}, false
}

// Signal synthesizes the environmental signal for a coordinate. Inside a
// known city the profile baseline is perturbed by a bounded hash delta;
// elsewhere the values are derived from the hash alone. Clamping happens
// last, after all additive terms.
func (s *Synthesizer) Signal(c domain.Coordinate) domain.EnvironmentalSignal {
	h := CoordHash(c)

	var sig domain.EnvironmentalSignal
	if p, ok := profileFor(c); ok {
		sig = domain.EnvironmentalSignal{
			CrowdDensity: p.crowd + h%21 - 10,
			Lighting:     p.lighting + (h/7)%21 - 10,
			Incidents:    p.incidents + h%5 - 2,
			WeatherRisk:  p.weatherRisk + (h/3)%21 - 10,
		}
	} else {
		sig = domain.EnvironmentalSignal{
			CrowdDensity: 30 + h%70,
			Lighting:     40 + (h/7)%60,
			Incidents:    (h % 100) / 12,
			WeatherRisk:  20 + (h/3)%50,
		}
	}

	return clampSignal(sig)
}

func clampSignal(sig domain.EnvironmentalSignal) domain.EnvironmentalSignal {
	sig.CrowdDensity = clampInt(sig.CrowdDensity, 0, 100)
	sig.Lighting = clampInt(sig.Lighting, 0, 100)
	sig.Incidents = clampInt(sig.Incidents, 0, 10)
	sig.WeatherRisk = clampInt(sig.WeatherRisk, 0, 100)
	return sig
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
