package handlers

import (
	"log"
	"net/http"
	"time"

	"saferoute-service/internal/api/dto"
	"saferoute-service/internal/domain"
	"saferoute-service/internal/platform/obs"
	"saferoute-service/internal/ports"
	"saferoute-service/internal/services"
)

// Default search radius for the main safe-spots listing.
const defaultSpotRadiusKm = 10

// Default radius and result cap for the walking-distance variant.
const (
	nearbyRadiusKm = 2
	nearbyLimit    = 10
)

// SafeSpotHandler exposes ranked safe-spot retrieval endpoints.
type SafeSpotHandler struct {
	Repo      ports.SpotRepository
	Generator *services.SpotGenerator
}

// List ranks the static safe-spot table around the caller's location,
// grouped by category. An empty radius match falls back per the ranking
// policy rather than returning nothing.
func (h *SafeSpotHandler) List(w http.ResponseWriter, r *http.Request) {
	origin, err := parseCoordinate(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	defer obs.Time(r.Context(), "rank_safe_spots")(&err)

	radius := parseRadius(r, defaultSpotRadiusKm)

	spots, err := h.Repo.ListSpots(r.Context())
	if err != nil {
		log.Printf("list safe spots failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	result := services.RankSpots(origin, spots, services.RankOptions{
		RadiusKm: radius,
		Category: r.URL.Query().Get("category"),
	})

	writeJSON(w, r, http.StatusOK, buildSafeSpotsResponse(result, origin, radius))
}

// Nearby serves the "walking distance" variant: the static table is
// concatenated with spots synthesized around the caller, so even locations
// far from any seeded landmark get a usable answer.
func (h *SafeSpotHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	origin, err := parseCoordinate(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	defer obs.Time(r.Context(), "rank_nearby_spots")(&err)

	radius := parseRadius(r, nearbyRadiusKm)

	spots, err := h.Repo.ListSpots(r.Context())
	if err != nil {
		log.Printf("list safe spots failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	candidates := append(spots, h.Generator.Around(origin)...)

	result := services.RankSpots(origin, candidates, services.RankOptions{
		RadiusKm:      radius,
		Category:      r.URL.Query().Get("category"),
		Limit:         nearbyLimit,
		FallbackLimit: nearbyLimit,
	})

	writeJSON(w, r, http.StatusOK, buildSafeSpotsResponse(result, origin, radius))
}

func buildSafeSpotsResponse(result services.RankResult, origin domain.Coordinate, radius float64) dto.SafeSpotsResponse {
	grouped := make(map[string][]dto.SpotResponse, len(result.Grouped))
	for category, spots := range result.Grouped {
		grouped[string(category)] = toSpotResponses(spots)
	}

	return dto.SafeSpotsResponse{
		Success:   true,
		Data:      toSpotResponses(result.Spots),
		Grouped:   grouped,
		Count:     len(result.Spots),
		Location:  dto.LocationResponse{Lat: origin.Lat, Lng: origin.Lng},
		Radius:    radius,
		Timestamp: time.Now().UTC(),
	}
}

func toSpotResponses(spots []domain.RankedSpot) []dto.SpotResponse {
	out := make([]dto.SpotResponse, 0, len(spots))
	for _, s := range spots {
		out = append(out, dto.SpotResponse{
			ID:          s.ID,
			Name:        s.Name,
			Type:        s.Type,
			Category:    string(s.Category),
			Lat:         s.Location.Lat,
			Lng:         s.Location.Lng,
			Address:     s.Address,
			Phone:       s.Phone,
			Is24Hours:   s.Is24Hours,
			Description: s.Description,
			Distance:    s.DistanceKm,
			WalkingTime: s.WalkingMinutes,
		})
	}
	return out
}
