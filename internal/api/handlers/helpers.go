package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"saferoute-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]any{"success": false, "message": msg})
}

// parseCoordinate reads and validates the lat/lng query parameters.
// Validation happens before any computation: missing, non-numeric, and
// out-of-range values are all caller errors.
func parseCoordinate(r *http.Request) (domain.Coordinate, error) {
	latStr := r.URL.Query().Get("lat")
	lngStr := r.URL.Query().Get("lng")

	if latStr == "" || lngStr == "" {
		return domain.Coordinate{}, errors.New("latitude and longitude are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return domain.Coordinate{}, errors.New("invalid latitude or longitude values")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return domain.Coordinate{}, errors.New("invalid latitude or longitude values")
	}

	return domain.NewCoordinate(lat, lng)
}

// parseRadius reads the optional radius query parameter in kilometers.
// Missing or unparseable values fall back to the endpoint default.
func parseRadius(r *http.Request, fallback float64) float64 {
	raw := r.URL.Query().Get("radius")
	if raw == "" {
		return fallback
	}
	radius, err := strconv.ParseFloat(raw, 64)
	if err != nil || radius <= 0 {
		return fallback
	}
	return radius
}
