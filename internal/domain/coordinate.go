package domain

import "fmt"

// Immutable geographic point in decimal degrees.
type Coordinate struct {
	Lat float64
	Lng float64
}

// NewCoordinate validates latitude and longitude ranges before constructing
// a Coordinate. Out-of-range values are rejected, never clamped.
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	if lat < -90 || lat > 90 {
		return Coordinate{}, fmt.Errorf("latitude must be between -90 and 90, got %v", lat)
	}
	if lng < -180 || lng > 180 {
		return Coordinate{}, fmt.Errorf("longitude must be between -180 and 180, got %v", lng)
	}
	return Coordinate{Lat: lat, Lng: lng}, nil
}
