package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"saferoute-service/internal/adapters/cache"
	"saferoute-service/internal/adapters/repositories"
	"saferoute-service/internal/api"
	"saferoute-service/internal/config"
	"saferoute-service/internal/ports"
	"saferoute-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	spotSeedPath := config.Get("SPOT_SEED_PATH", "data/seeds/safe_spots.json")
	placeSeedPath := config.Get("PLACE_SEED_PATH", "data/seeds/aqi_places.json")
	port := config.Get("PORT", "8080")
	corsOrigin := config.Get("CORS_ORIGIN", "*")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed reference data on startup for local runs.
	if err := initAndSeed(db, spotSeedPath, placeSeedPath); err != nil {
		log.Fatal(err)
	}

	// Redis is optional; without it every AQI snapshot is recomputed, which
	// is cheap enough for a single instance.
	var snapshotCache ports.SnapshotCache
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		snapshotCache = cache.NewRedisSnapshotCache(client)
		log.Printf("Snapshot cache enabled addr=%s", addr)
	}

	router := api.NewRouter(api.Deps{
		Spots:         repositories.NewSqliteSpotRepository(db),
		Places:        repositories.NewSqlitePlaceRepository(db),
		Cache:         snapshotCache,
		Synth:         services.NewSynthesizer(nil),
		Generator:     services.NewSpotGenerator(nil),
		Traffic:       services.NewTrafficReporter(nil, nil),
		AllowedOrigin: corsOrigin,
	})

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, spotSeedPath, placeSeedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedSpotsFromJSON(db, spotSeedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedPlacesFromJSON(db, placeSeedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
