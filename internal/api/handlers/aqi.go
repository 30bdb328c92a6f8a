package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"saferoute-service/internal/api/dto"
	"saferoute-service/internal/domain"
	"saferoute-service/internal/ports"
	"saferoute-service/internal/services"
)

const defaultPlaceRadiusKm = 10

// How long a cached AQI snapshot stays valid. Signals only move between
// minute buckets, so anything under a minute is fresh enough.
const snapshotTTL = 60 * time.Second

// AQIHandler exposes synthesized air-quality endpoints.
type AQIHandler struct {
	Places ports.PlaceRepository
	Synth  *services.Synthesizer
	Cache  ports.SnapshotCache
}

// Point returns the AQI reading for a coordinate, anchored to the nearest
// clean-air place. Readings for the current minute bucket may be served from
// the snapshot cache.
func (h *AQIHandler) Point(w http.ResponseWriter, r *http.Request) {
	origin, err := parseCoordinate(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	key := fmt.Sprintf("aqi:%.4f:%.4f", origin.Lat, origin.Lng)
	if data, ok := h.cachedData(r, key); ok {
		writeJSON(w, r, http.StatusOK, dto.AQIResponse{Success: true, Data: data})
		return
	}

	places, err := h.Places.ListPlaces(r.Context())
	if err != nil {
		log.Printf("list places failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	nearest, ok := services.NearestPlace(origin, places)
	if !ok {
		log.Printf("aqi point: no places seeded")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	reading := h.Synth.PointAQI(origin, nearest.BaseAQI)
	data := toAQIData("", origin, reading)

	h.storeData(r, key, data)
	writeJSON(w, r, http.StatusOK, dto.AQIResponse{Success: true, Data: data})
}

// Cities returns the fixed four-city AQI board with time-blended readings.
func (h *AQIHandler) Cities(w http.ResponseWriter, r *http.Request) {
	places, err := h.Places.ListPlaces(r.Context())
	if err != nil {
		log.Printf("list places failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	board := make([]dto.CityAQI, 0, len(services.CityBoard))
	for _, entry := range services.CityBoard {
		baseline := 0
		if nearest, ok := services.NearestPlace(entry.City.Location, places); ok {
			baseline = nearest.BaseAQI
		}
		reading := h.Synth.TimedAQI(entry.City.Location, baseline)
		board = append(board, dto.CityAQI{
			Name:  entry.Name,
			Label: entry.Label,
			AQI:   reading.AQI,
		})
	}

	writeJSON(w, r, http.StatusOK, dto.CitiesAQIResponse{
		Success:   true,
		Data:      board,
		Timestamp: time.Now().UTC(),
	})
}

// ListPlaces returns clean-air places ranked by distance from the caller,
// falling back to the nearest five when the radius matches nothing.
func (h *AQIHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	origin, err := parseCoordinate(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	radius := parseRadius(r, defaultPlaceRadiusKm)

	places, err := h.Places.ListPlaces(r.Context())
	if err != nil {
		log.Printf("list places failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	ranked := services.RankPlaces(origin, places, radius)

	out := make([]dto.PlaceResponse, 0, len(ranked))
	for _, p := range ranked {
		category, color := services.AQICategory(p.BaseAQI)
		out = append(out, dto.PlaceResponse{
			ID:          p.ID,
			Name:        p.Name,
			Type:        p.Type,
			Address:     p.Address,
			Lat:         p.Location.Lat,
			Lng:         p.Location.Lng,
			AQI:         p.BaseAQI,
			Category:    category,
			Color:       color,
			PM25:        p.PM25,
			PM10:        p.PM10,
			Description: p.Description,
			Amenities:   p.Amenities,
			Distance:    p.DistanceKm,
		})
	}

	writeJSON(w, r, http.StatusOK, dto.PlacesResponse{
		Success:      true,
		Data:         out,
		Count:        len(out),
		UserLocation: dto.LocationResponse{Lat: origin.Lat, Lng: origin.Lng},
		Radius:       radius,
	})
}

// Search resolves a city name to its fixed coordinates and returns a
// time-blended AQI reading for it. Unknown cities get a 404 listing the
// supported names.
func (h *AQIHandler) Search(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("city")
	if name == "" {
		writeError(w, r, http.StatusBadRequest, "city name is required")
		return
	}

	city, found := services.LookupCity(name)
	if !found {
		supported := services.SupportedCities()
		writeJSON(w, r, http.StatusNotFound, dto.CityNotFoundResponse{
			Success:         false,
			Message:         fmt.Sprintf("city %q not found", name),
			SupportedCities: supported,
		})
		return
	}

	places, err := h.Places.ListPlaces(r.Context())
	if err != nil {
		log.Printf("list places failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	nearest, ok := services.NearestPlace(city.Location, places)
	if !ok {
		log.Printf("aqi search: no places seeded")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	reading := h.Synth.TimedAQI(city.Location, nearest.BaseAQI)
	data := toAQIData(city.Name, city.Location, reading)

	writeJSON(w, r, http.StatusOK, dto.AQIResponse{Success: true, Data: data})
}

func (h *AQIHandler) cachedData(r *http.Request, key string) (dto.AQIData, bool) {
	if h.Cache == nil {
		return dto.AQIData{}, false
	}

	payload, ok, err := h.Cache.Get(r.Context(), key)
	if err != nil {
		log.Printf("snapshot cache get failed key=%s err=%v", key, err)
		return dto.AQIData{}, false
	}
	if !ok {
		return dto.AQIData{}, false
	}

	var data dto.AQIData
	if err := json.Unmarshal(payload, &data); err != nil {
		log.Printf("snapshot cache decode failed key=%s err=%v", key, err)
		return dto.AQIData{}, false
	}
	return data, true
}

func (h *AQIHandler) storeData(r *http.Request, key string, data dto.AQIData) {
	if h.Cache == nil {
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		log.Printf("snapshot cache encode failed key=%s err=%v", key, err)
		return
	}
	if err := h.Cache.Set(r.Context(), key, payload, snapshotTTL); err != nil {
		log.Printf("snapshot cache set failed key=%s err=%v", key, err)
	}
}

func toAQIData(city string, location domain.Coordinate, reading services.AQIReading) dto.AQIData {
	return dto.AQIData{
		City:      city,
		AQI:       reading.AQI,
		Category:  reading.Category,
		Color:     reading.Color,
		PM25:      reading.PM25,
		PM10:      reading.PM10,
		Location:  dto.LocationResponse{Lat: location.Lat, Lng: location.Lng},
		Timestamp: time.Now().UTC(),
	}
}
