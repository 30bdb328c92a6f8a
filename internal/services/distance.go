package services

import (
	"math"

	"saferoute-service/internal/domain"
)

const earthRadiusKm = 6371.0

// Assumed walking speed for travel-time estimates.
const walkingSpeedKmh = 5.0

// DistanceKm returns the great-circle distance between two coordinates in
// kilometers, using the Haversine formula.
func DistanceKm(a, b domain.Coordinate) float64 {
	lat1 := degreesToRadians(a.Lat)
	lat2 := degreesToRadians(b.Lat)
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// WalkingMinutes estimates walking time for a distance, rounded to the
// nearest whole minute.
func WalkingMinutes(km float64) int {
	return int(math.Round(km / walkingSpeedKmh * 60))
}

// RoundKm rounds a distance to one decimal place for display.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
