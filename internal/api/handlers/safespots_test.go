package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"saferoute-service/internal/api/dto"
	"saferoute-service/internal/services"
)

func TestSafeSpotListRanked(t *testing.T) {
	h := &SafeSpotHandler{Repo: &stubSpotRepo{spots: testSpots()}}

	req := httptest.NewRequest(http.MethodGet, "/api/safe-spots?lat=3.1390&lng=101.6869", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp dto.SafeSpotsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !resp.Success {
		t.Fatalf("expected success=true")
	}
	if resp.Count != len(resp.Data) {
		t.Fatalf("count = %d, data length = %d", resp.Count, len(resp.Data))
	}
	if resp.Radius != 10 {
		t.Fatalf("default radius = %f, want 10", resp.Radius)
	}
	if len(resp.Data) != 5 {
		t.Fatalf("expected all 5 spots within 10km, got %d", len(resp.Data))
	}

	for i := 1; i < len(resp.Data); i++ {
		if resp.Data[i].Distance < resp.Data[i-1].Distance {
			t.Fatalf("results not sorted by distance at index %d", i)
		}
	}

	if len(resp.Grouped["police"]) != 2 {
		t.Fatalf("police group = %d, want 2", len(resp.Grouped["police"]))
	}
}

func TestSafeSpotListCategoryFilter(t *testing.T) {
	h := &SafeSpotHandler{Repo: &stubSpotRepo{spots: testSpots()}}

	req := httptest.NewRequest(http.MethodGet, "/api/safe-spots?lat=3.1390&lng=101.6869&category=police", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	var resp dto.SafeSpotsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 police spots, got %d", len(resp.Data))
	}
	for _, spot := range resp.Data {
		if spot.Category != "police" {
			t.Fatalf("spot %d category = %q, want police", spot.ID, spot.Category)
		}
	}
}

func TestSafeSpotListValidation(t *testing.T) {
	h := &SafeSpotHandler{Repo: &stubSpotRepo{spots: testSpots()}}

	tests := []struct {
		name  string
		query string
		msg   string
	}{
		{"missing params", "", "latitude and longitude are required"},
		{"missing lng", "?lat=3.14", "latitude and longitude are required"},
		{"non numeric", "?lat=abc&lng=101.6", "invalid latitude or longitude values"},
		{"lat out of range", "?lat=999&lng=101.6", "latitude must be between -90 and 90"},
		{"lng out of range", "?lat=3.14&lng=999", "longitude must be between -180 and 180"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/safe-spots"+tt.query, nil)
		rec := httptest.NewRecorder()
		h.List(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", tt.name, rec.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: decode response: %v", tt.name, err)
		}
		if resp["success"] != false {
			t.Fatalf("%s: expected success=false", tt.name)
		}
		msg, _ := resp["message"].(string)
		if !strings.HasPrefix(msg, tt.msg) {
			t.Fatalf("%s: message = %q, want prefix %q", tt.name, msg, tt.msg)
		}
	}
}

func TestSafeSpotListRepoError(t *testing.T) {
	h := &SafeSpotHandler{Repo: &stubSpotRepo{err: errBoom}}

	req := httptest.NewRequest(http.MethodGet, "/api/safe-spots?lat=3.1390&lng=101.6869", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestSafeSpotNearbyIncludesGenerated(t *testing.T) {
	h := &SafeSpotHandler{
		Repo:      &stubSpotRepo{spots: nil},
		Generator: services.NewSpotGenerator(rand.New(rand.NewSource(1))),
	}

	// No static spots: everything returned must come from the generator.
	req := httptest.NewRequest(http.MethodGet, "/api/safe-spots/nearby?lat=3.1390&lng=101.6869", nil)
	rec := httptest.NewRecorder()
	h.Nearby(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp dto.SafeSpotsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Radius != 2 {
		t.Fatalf("default nearby radius = %f, want 2", resp.Radius)
	}
	if len(resp.Data) == 0 {
		t.Fatalf("expected generated spots in nearby response")
	}
	if len(resp.Data) > 10 {
		t.Fatalf("nearby results = %d, want at most 10", len(resp.Data))
	}
	for _, spot := range resp.Data {
		if spot.ID < 1000 {
			t.Fatalf("unexpected static spot %d in generator-only response", spot.ID)
		}
	}
}
