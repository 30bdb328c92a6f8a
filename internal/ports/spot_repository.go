package ports

import (
	"context"

	"saferoute-service/internal/domain"
)

// Port: a boundary for retrieving the static safe-spot reference data.
type SpotRepository interface {
	// Retrieve all safe spots available for ranking.
	ListSpots(ctx context.Context) ([]domain.SafeSpot, error)
}

// Port: a boundary for retrieving the clean-air place reference data.
type PlaceRepository interface {
	// Retrieve all clean-air places, used as AQI baselines and as the
	// candidate set for proximity queries.
	ListPlaces(ctx context.Context) ([]domain.CleanAirPlace, error)
}
