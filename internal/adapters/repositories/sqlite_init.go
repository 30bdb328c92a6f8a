package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSafeSpotsQuery := `
	CREATE TABLE IF NOT EXISTS safe_spots (
		spot_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		category TEXT NOT NULL,
		lat REAL NOT NULL,
		lng REAL NOT NULL,
		address TEXT NOT NULL,
		phone TEXT,
		is_24_hours INTEGER NOT NULL DEFAULT 0,
		description TEXT
	);
	`

	createAQIPlacesQuery := `
	CREATE TABLE IF NOT EXISTS aqi_places (
		place_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		address TEXT NOT NULL,
		lat REAL NOT NULL,
		lng REAL NOT NULL,
		base_aqi INTEGER NOT NULL,
		pm25 INTEGER NOT NULL,
		pm10 INTEGER NOT NULL,
		description TEXT,
		amenities TEXT
	);
	`

	createCategoryIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_safe_spots_category
	ON safe_spots(category);
	`

	statements := []string{
		createSafeSpotsQuery,
		createAQIPlacesQuery,
		createCategoryIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type SpotSeed struct {
	SpotID      int     `json:"spot_id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Is24Hours   bool    `json:"is_24_hours"`
	Description string  `json:"description"`
}

// Populate the safe_spots table from a JSON seed file.
func SeedSpotsFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed spots: read %q: %w", jsonPath, err)
	}

	var data []SpotSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed spots: parse json: %w", err)
	}

	for i, item := range data {
		if item.SpotID <= 0 {
			return fmt.Errorf("seed spots: invalid spot_id at index %d: %d", i+1, item.SpotID)
		}
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("seed spots: item at index %d: name cannot be empty", i+1)
		}
		if item.Lat < -90 || item.Lat > 90 || item.Lng < -180 || item.Lng > 180 {
			return fmt.Errorf("seed spots: spot_id=%d: coordinate out of range", item.SpotID)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed spots: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO safe_spots (
		spot_id,
		name,
		type,
		category,
		lat,
		lng,
		address,
		phone,
		is_24_hours,
		description
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed spots: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range data {
		if _, err := stmt.Exec(
			s.SpotID, s.Name, s.Type, s.Category,
			s.Lat, s.Lng, s.Address, s.Phone, s.Is24Hours, s.Description,
		); err != nil {
			return fmt.Errorf("seed spots: insert spot_id=%d: %w", s.SpotID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed spots: commit tx: %w", err)
	}

	return nil
}

type PlaceSeed struct {
	PlaceID     int      `json:"place_id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Address     string   `json:"address"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	BaseAQI     int      `json:"base_aqi"`
	PM25        int      `json:"pm25"`
	PM10        int      `json:"pm10"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
}

// Populate the aqi_places table from a JSON seed file. Amenities are stored
// as a JSON array in a text column.
func SeedPlacesFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed places: read %q: %w", jsonPath, err)
	}

	var data []PlaceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed places: parse json: %w", err)
	}

	for i, item := range data {
		if item.PlaceID <= 0 {
			return fmt.Errorf("seed places: invalid place_id at index %d: %d", i+1, item.PlaceID)
		}
		if item.BaseAQI < 0 || item.BaseAQI > 300 {
			return fmt.Errorf("seed places: place_id=%d: base_aqi out of range: %d", item.PlaceID, item.BaseAQI)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed places: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO aqi_places (
		place_id,
		name,
		type,
		address,
		lat,
		lng,
		base_aqi,
		pm25,
		pm10,
		description,
		amenities
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed places: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range data {
		amenities, err := json.Marshal(p.Amenities)
		if err != nil {
			return fmt.Errorf("seed places: marshal amenities place_id=%d: %w", p.PlaceID, err)
		}

		if _, err := stmt.Exec(
			p.PlaceID, p.Name, p.Type, p.Address,
			p.Lat, p.Lng, p.BaseAQI, p.PM25, p.PM10, p.Description, string(amenities),
		); err != nil {
			return fmt.Errorf("seed places: insert place_id=%d: %w", p.PlaceID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed places: commit tx: %w", err)
	}

	return nil
}
