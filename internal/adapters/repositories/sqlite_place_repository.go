package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"saferoute-service/internal/domain"
)

// SQLite-backed implementation of the PlaceRepository port.
type SqlitePlaceRepository struct{ DB *sql.DB }

func NewSqlitePlaceRepository(db *sql.DB) *SqlitePlaceRepository {
	return &SqlitePlaceRepository{DB: db}
}

// Return all clean-air places stored in the database, in seed order.
func (s *SqlitePlaceRepository) ListPlaces(ctx context.Context) ([]domain.CleanAirPlace, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite place repository: DB is nil")
	}

	query := `
	SELECT
		place_id,
		name,
		type,
		address,
		lat,
		lng,
		base_aqi,
		pm25,
		pm10,
		COALESCE(description, ''),
		COALESCE(amenities, '[]')
	FROM aqi_places
	ORDER BY place_id;
	`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list places: query aqi_places table: %w", err)
	}
	defer rows.Close()

	var places []domain.CleanAirPlace
	for rows.Next() {
		var place domain.CleanAirPlace
		var amenities string
		if err := rows.Scan(
			&place.ID,
			&place.Name,
			&place.Type,
			&place.Address,
			&place.Location.Lat,
			&place.Location.Lng,
			&place.BaseAQI,
			&place.PM25,
			&place.PM10,
			&place.Description,
			&amenities,
		); err != nil {
			return nil, fmt.Errorf("list places: scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(amenities), &place.Amenities); err != nil {
			return nil, fmt.Errorf("list places: parse amenities place_id=%d: %w", place.ID, err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: row iteration: %w", err)
	}

	return places, nil
}
