package handlers

import (
	"net/http"
	"time"

	"saferoute-service/internal/api/dto"
	"saferoute-service/internal/services"
)

// WeatherHandler exposes the synthesized weather endpoint.
type WeatherHandler struct {
	Synth *services.Synthesizer
}

// Current returns the synthesized weather report for a coordinate.
func (h *WeatherHandler) Current(w http.ResponseWriter, r *http.Request) {
	origin, err := parseCoordinate(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	report := h.Synth.Weather(origin)

	writeJSON(w, r, http.StatusOK, dto.WeatherResponse{
		Success: true,
		Data: dto.WeatherData{
			Condition:     report.Condition,
			Description:   report.Description,
			Icon:          report.Icon,
			Temperature:   report.Temperature,
			FeelsLike:     report.FeelsLike,
			Humidity:      report.Humidity,
			WindSpeed:     report.WindSpeed,
			WindDirection: report.WindDirection,
			Visibility:    report.Visibility,
			UVIndex:       report.UVIndex,
			CloudCover:    report.CloudCover,
			Precipitation: report.Precipitation,
			Location:      dto.LocationResponse{Lat: origin.Lat, Lng: origin.Lng},
			Timestamp:     time.Now().UTC(),
		},
	})
}
