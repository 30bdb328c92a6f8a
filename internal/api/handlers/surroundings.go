package handlers

import (
	"net/http"
	"time"

	"saferoute-service/internal/api/dto"
	"saferoute-service/internal/services"
)

// SurroundingsHandler exposes the point safety analysis endpoint.
type SurroundingsHandler struct {
	Synth *services.Synthesizer
}

// Analyze synthesizes the environmental signal for the caller's location
// and reduces it to a discrete safety score.
func (h *SurroundingsHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	origin, err := parseCoordinate(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	signal := h.Synth.Signal(origin)
	score := services.SafetyScore(signal)

	writeJSON(w, r, http.StatusOK, dto.SurroundingsResponse{
		Success: true,
		Data: dto.SurroundingsData{
			SafetyScore:     score,
			SafetyLabel:     services.SafetyLabel(score),
			SafetyColor:     services.SafetyColor(score),
			CrowdDensity:    signal.CrowdDensity,
			Lighting:        signal.Lighting,
			IncidentsNearby: signal.Incidents,
			WeatherRisk:     signal.WeatherRisk,
			Location:        dto.LocationResponse{Lat: origin.Lat, Lng: origin.Lng},
			Timestamp:       time.Now().UTC(),
		},
	})
}
