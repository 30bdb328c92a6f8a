package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"saferoute-service/internal/domain"
)

// SQLite-backed implementation of the SpotRepository port.
type SqliteSpotRepository struct{ DB *sql.DB }

func NewSqliteSpotRepository(db *sql.DB) *SqliteSpotRepository {
	return &SqliteSpotRepository{DB: db}
}

// Return all safe spots stored in the database, in seed order.
func (s *SqliteSpotRepository) ListSpots(ctx context.Context) ([]domain.SafeSpot, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite spot repository: DB is nil")
	}

	query := `
	SELECT
		spot_id,
		name,
		type,
		category,
		lat,
		lng,
		address,
		COALESCE(phone, ''),
		is_24_hours,
		COALESCE(description, '')
	FROM safe_spots
	ORDER BY spot_id;
	`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list spots: query safe_spots table: %w", err)
	}
	defer rows.Close()

	var spots []domain.SafeSpot
	for rows.Next() {
		var spot domain.SafeSpot
		var category string
		if err := rows.Scan(
			&spot.ID,
			&spot.Name,
			&spot.Type,
			&category,
			&spot.Location.Lat,
			&spot.Location.Lng,
			&spot.Address,
			&spot.Phone,
			&spot.Is24Hours,
			&spot.Description,
		); err != nil {
			return nil, fmt.Errorf("list spots: scan row: %w", err)
		}
		spot.Category = domain.Category(category)
		spots = append(spots, spot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list spots: row iteration: %w", err)
	}

	return spots, nil
}
