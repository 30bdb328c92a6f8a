package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"saferoute-service/internal/api/dto"
	"saferoute-service/internal/services"
)

func TestAQIPointKnownReading(t *testing.T) {
	h := &AQIHandler{
		Places: &stubPlaceRepo{places: testPlaces()},
		Synth:  services.NewSynthesizer(testClock(10, 30)),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/aqi?lat=3.1390&lng=101.6869", nil)
	rec := httptest.NewRecorder()
	h.Point(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp dto.AQIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// Nearest place is Perdana Botanical Gardens (baseline 22); the KL city
	// center hash perturbs it to 23.
	if resp.Data.AQI != 23 {
		t.Fatalf("AQI = %d, want 23", resp.Data.AQI)
	}
	if resp.Data.Category != "Good" {
		t.Fatalf("category = %q, want Good", resp.Data.Category)
	}
	if resp.Data.PM25 != 13 || resp.Data.PM10 != 26 {
		t.Fatalf("pm25/pm10 = %d/%d, want 13/26", resp.Data.PM25, resp.Data.PM10)
	}
}

func TestAQIPointUsesSnapshotCache(t *testing.T) {
	cache := newMemoryCache()
	h := &AQIHandler{
		Places: &stubPlaceRepo{places: testPlaces()},
		Synth:  services.NewSynthesizer(testClock(10, 30)),
		Cache:  cache,
	}

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/aqi?lat=3.1390&lng=101.6869", nil)
		rec := httptest.NewRecorder()
		h.Point(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}

	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}
	if cache.hits != 1 {
		t.Fatalf("cache hits = %d, want 1", cache.hits)
	}
}

func TestAQIPointValidation(t *testing.T) {
	h := &AQIHandler{
		Places: &stubPlaceRepo{places: testPlaces()},
		Synth:  services.NewSynthesizer(testClock(10, 30)),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/aqi?lat=999&lng=101.6869", nil)
	rec := httptest.NewRecorder()
	h.Point(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAQISearchKnownCity(t *testing.T) {
	h := &AQIHandler{
		Places: &stubPlaceRepo{places: testPlaces()},
		Synth:  services.NewSynthesizer(testClock(10, 30)),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/aqi/search?city=kl", nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp dto.AQIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Data.City != "Kuala Lumpur" {
		t.Fatalf("city = %q, want Kuala Lumpur", resp.Data.City)
	}
	// Time-blended reading for the KL center at 10:30: baseline 22 drifts
	// down to 8, staying in the Good bucket.
	if resp.Data.AQI != 8 {
		t.Fatalf("AQI = %d, want 8", resp.Data.AQI)
	}
	if resp.Data.Category != "Good" {
		t.Fatalf("category = %q, want Good", resp.Data.Category)
	}
	if resp.Data.PM25 != 4 || resp.Data.PM10 != 16 {
		t.Fatalf("pm25/pm10 = %d/%d, want 4/16", resp.Data.PM25, resp.Data.PM10)
	}
}

func TestAQISearchAliasesMatch(t *testing.T) {
	h := &AQIHandler{
		Places: &stubPlaceRepo{places: testPlaces()},
		Synth:  services.NewSynthesizer(testClock(10, 30)),
	}

	readings := make([]dto.AQIResponse, 0, 2)
	for _, city := range []string{"kl", "kuala lumpur"} {
		req := httptest.NewRequest(http.MethodGet, "/api/aqi/search?city="+url.QueryEscape(city), nil)
		rec := httptest.NewRecorder()
		h.Search(rec, req)

		var resp dto.AQIResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response for %q: %v", city, err)
		}
		readings = append(readings, resp)
	}

	if readings[0].Data.AQI != readings[1].Data.AQI {
		t.Fatalf("aliases diverge: %d vs %d", readings[0].Data.AQI, readings[1].Data.AQI)
	}
}

func TestAQISearchUnknownCity(t *testing.T) {
	h := &AQIHandler{
		Places: &stubPlaceRepo{places: testPlaces()},
		Synth:  services.NewSynthesizer(testClock(10, 30)),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/aqi/search?city=atlantis", nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var resp dto.CityNotFoundResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Success {
		t.Fatalf("expected success=false")
	}
	if len(resp.SupportedCities) == 0 {
		t.Fatalf("expected supported city list in 404 response")
	}
}

func TestAQISearchMissingCity(t *testing.T) {
	h := &AQIHandler{
		Places: &stubPlaceRepo{places: testPlaces()},
		Synth:  services.NewSynthesizer(testClock(10, 30)),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/aqi/search", nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAQICitiesBoard(t *testing.T) {
	h := &AQIHandler{
		Places: &stubPlaceRepo{places: testPlaces()},
		Synth:  services.NewSynthesizer(testClock(10, 30)),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/aqi/cities", nil)
	rec := httptest.NewRecorder()
	h.Cities(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp dto.CitiesAQIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(resp.Data) != 4 {
		t.Fatalf("board = %d entries, want 4", len(resp.Data))
	}
	if resp.Data[0].Name != "KL" {
		t.Fatalf("first board entry = %q, want KL", resp.Data[0].Name)
	}
	for _, entry := range resp.Data {
		if entry.AQI < 0 || entry.AQI > 300 {
			t.Fatalf("board entry %q AQI out of range: %d", entry.Name, entry.AQI)
		}
	}
}

func TestAQIListPlacesRanked(t *testing.T) {
	h := &AQIHandler{
		Places: &stubPlaceRepo{places: testPlaces()},
		Synth:  services.NewSynthesizer(testClock(10, 30)),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/aqi/places?lat=3.1390&lng=101.6869", nil)
	rec := httptest.NewRecorder()
	h.ListPlaces(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp dto.PlacesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// Two KL parks sit inside the default 10km; Cameron Highlands does not.
	if resp.Count != 2 {
		t.Fatalf("count = %d, want 2", resp.Count)
	}
	if resp.Data[0].ID != 3 {
		t.Fatalf("closest place = %d, want 3 (Perdana Botanical Gardens)", resp.Data[0].ID)
	}
	for _, place := range resp.Data {
		if place.Category == "" || place.Color == "" {
			t.Fatalf("place %d missing AQI category annotation", place.ID)
		}
	}
}
