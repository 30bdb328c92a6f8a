package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"saferoute-service/internal/api/handlers"
	"saferoute-service/internal/ports"
	"saferoute-service/internal/services"
)

// Deps bundles everything the HTTP layer needs. Handlers stay unaware of
// concrete adapters; only the composition root knows what sits behind the
// ports.
type Deps struct {
	Spots         ports.SpotRepository
	Places        ports.PlaceRepository
	Cache         ports.SnapshotCache
	Synth         *services.Synthesizer
	Generator     *services.SpotGenerator
	Traffic       *services.TrafficReporter
	AllowedOrigin string
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root.
func NewRouter(deps Deps) http.Handler {
	spotHandler := &handlers.SafeSpotHandler{Repo: deps.Spots, Generator: deps.Generator}
	aqiHandler := &handlers.AQIHandler{Places: deps.Places, Synth: deps.Synth, Cache: deps.Cache}
	surroundingsHandler := &handlers.SurroundingsHandler{Synth: deps.Synth}
	trafficHandler := &handlers.TrafficHandler{Reporter: deps.Traffic}
	weatherHandler := &handlers.WeatherHandler{Synth: deps.Synth}

	allowedOrigin := deps.AllowedOrigin
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{allowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/safe-spots", func(r chi.Router) {
			r.Get("/", spotHandler.List)
			r.Get("/nearby", spotHandler.Nearby)
		})

		r.Route("/aqi", func(r chi.Router) {
			r.Get("/", aqiHandler.Point)
			r.Get("/cities", aqiHandler.Cities)
			r.Get("/places", aqiHandler.ListPlaces)
			r.Get("/search", aqiHandler.Search)
		})

		r.Get("/surroundings", surroundingsHandler.Analyze)
		r.Get("/traffic/patterns", trafficHandler.Patterns)
		r.Get("/weather", weatherHandler.Current)
	})

	return r
}
