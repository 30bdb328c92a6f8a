package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"saferoute-service/internal/adapters/repositories"
	"saferoute-service/internal/config"
	"saferoute-service/internal/platform/db"
)

// dbtool provisions a Postgres instance with the reference data set.
// The API server itself runs on SQLite; this tool exists for deployments
// that want the seed data in a shared database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	spotSeedPath := config.Get("SPOT_SEED_PATH", "data/seeds/safe_spots.json")
	placeSeedPath := config.Get("PLACE_SEED_PATH", "data/seeds/aqi_places.json")

	log.Println("Initializing database schema...")
	if err := initSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := seedSpots(conn, spotSeedPath); err != nil {
		log.Fatalf("seeding safe spots failed: %v", err)
	}
	if err := seedPlaces(conn, placeSeedPath); err != nil {
		log.Fatalf("seeding clean-air places failed: %v", err)
	}
	log.Println("Seeding complete.")
}

const pgSchema = `
CREATE TABLE IF NOT EXISTS safe_spots (
	spot_id     INTEGER PRIMARY KEY,
	name        TEXT NOT NULL,
	type        TEXT NOT NULL,
	category    TEXT NOT NULL,
	lat         DOUBLE PRECISION NOT NULL,
	lng         DOUBLE PRECISION NOT NULL,
	address     TEXT NOT NULL,
	phone       TEXT,
	is_24_hours BOOLEAN NOT NULL DEFAULT FALSE,
	description TEXT
);

CREATE INDEX IF NOT EXISTS idx_safe_spots_category ON safe_spots (category);

CREATE TABLE IF NOT EXISTS aqi_places (
	place_id    INTEGER PRIMARY KEY,
	name        TEXT NOT NULL,
	type        TEXT NOT NULL,
	address     TEXT NOT NULL,
	lat         DOUBLE PRECISION NOT NULL,
	lng         DOUBLE PRECISION NOT NULL,
	base_aqi    INTEGER NOT NULL,
	pm25        INTEGER NOT NULL,
	pm10        INTEGER NOT NULL,
	description TEXT,
	amenities   TEXT
);
`

func initSchema(conn *sql.DB) error {
	if _, err := conn.Exec(pgSchema); err != nil {
		return fmt.Errorf("initSchema: %w", err)
	}
	return nil
}

const upsertSpotSQL = `
INSERT INTO safe_spots (
	spot_id, name, type, category, lat, lng, address, phone, is_24_hours, description
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (spot_id) DO UPDATE SET
	name = EXCLUDED.name,
	type = EXCLUDED.type,
	category = EXCLUDED.category,
	lat = EXCLUDED.lat,
	lng = EXCLUDED.lng,
	address = EXCLUDED.address,
	phone = EXCLUDED.phone,
	is_24_hours = EXCLUDED.is_24_hours,
	description = EXCLUDED.description;
`

func seedSpots(conn *sql.DB, seedPath string) error {
	raw, err := os.ReadFile(seedPath)
	if err != nil {
		return fmt.Errorf("seedSpots: read seed file %q: %w", seedPath, err)
	}

	var seeds []repositories.SpotSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("seedSpots: parse seed file %q: %w", seedPath, err)
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("seedSpots: begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, s := range seeds {
		if _, err := tx.Exec(upsertSpotSQL,
			s.SpotID, s.Name, s.Type, s.Category, s.Lat, s.Lng,
			s.Address, s.Phone, s.Is24Hours, s.Description,
		); err != nil {
			return fmt.Errorf("seedSpots: insert spot %d: %w", s.SpotID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seedSpots: commit: %w", err)
	}

	log.Printf("Seeded safe spots count=%d", len(seeds))
	return nil
}

const upsertPlaceSQL = `
INSERT INTO aqi_places (
	place_id, name, type, address, lat, lng, base_aqi, pm25, pm10, description, amenities
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (place_id) DO UPDATE SET
	name = EXCLUDED.name,
	type = EXCLUDED.type,
	address = EXCLUDED.address,
	lat = EXCLUDED.lat,
	lng = EXCLUDED.lng,
	base_aqi = EXCLUDED.base_aqi,
	pm25 = EXCLUDED.pm25,
	pm10 = EXCLUDED.pm10,
	description = EXCLUDED.description,
	amenities = EXCLUDED.amenities;
`

func seedPlaces(conn *sql.DB, seedPath string) error {
	raw, err := os.ReadFile(seedPath)
	if err != nil {
		return fmt.Errorf("seedPlaces: read seed file %q: %w", seedPath, err)
	}

	var seeds []repositories.PlaceSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("seedPlaces: parse seed file %q: %w", seedPath, err)
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("seedPlaces: begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range seeds {
		amenities, err := json.Marshal(p.Amenities)
		if err != nil {
			return fmt.Errorf("seedPlaces: encode amenities for place %d: %w", p.PlaceID, err)
		}
		if _, err := tx.Exec(upsertPlaceSQL,
			p.PlaceID, p.Name, p.Type, p.Address, p.Lat, p.Lng,
			p.BaseAQI, p.PM25, p.PM10, p.Description, string(amenities),
		); err != nil {
			return fmt.Errorf("seedPlaces: insert place %d: %w", p.PlaceID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seedPlaces: commit: %w", err)
	}

	log.Printf("Seeded clean-air places count=%d", len(seeds))
	return nil
}
