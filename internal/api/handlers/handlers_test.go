package handlers

import (
	"context"
	"errors"
	"sync"
	"time"

	"saferoute-service/internal/domain"
	"saferoute-service/internal/services"
)

// Shared test fixtures for the handler suite.

var errBoom = errors.New("boom")

func testClock(hour, minute int) services.Clock {
	return func() time.Time {
		return time.Date(2026, 3, 14, hour, minute, 0, 0, time.UTC)
	}
}

type stubSpotRepo struct {
	spots []domain.SafeSpot
	err   error
}

func (s *stubSpotRepo) ListSpots(ctx context.Context) ([]domain.SafeSpot, error) {
	return s.spots, s.err
}

type stubPlaceRepo struct {
	places []domain.CleanAirPlace
	err    error
}

func (s *stubPlaceRepo) ListPlaces(ctx context.Context) ([]domain.CleanAirPlace, error) {
	return s.places, s.err
}

// memoryCache is an in-process SnapshotCache used to observe handler cache
// interactions without a Redis instance.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	sets    int
	hits    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payload, ok := m.entries[key]
	if ok {
		m.hits++
	}
	return payload, ok, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = payload
	m.sets++
	return nil
}

func testSpots() []domain.SafeSpot {
	return []domain.SafeSpot{
		{ID: 1, Name: "Dang Wangi Police Station", Type: "police_station", Category: domain.CategoryPolice, Location: domain.Coordinate{Lat: 3.1525, Lng: 101.6975}, Is24Hours: true},
		{ID: 2, Name: "Brickfields Police Station", Type: "police_station", Category: domain.CategoryPolice, Location: domain.Coordinate{Lat: 3.1289, Lng: 101.6869}, Is24Hours: true},
		{ID: 4, Name: "Kuala Lumpur General Hospital", Type: "hospital", Category: domain.CategoryMedical, Location: domain.Coordinate{Lat: 3.1478, Lng: 101.6886}, Is24Hours: true},
		{ID: 8, Name: "7-Eleven KLCC", Type: "store", Category: domain.CategoryStore, Location: domain.Coordinate{Lat: 3.1578, Lng: 101.7120}, Is24Hours: true},
		{ID: 13, Name: "Merdeka Square", Type: "public_area", Category: domain.CategoryWellLitArea, Location: domain.Coordinate{Lat: 3.1478, Lng: 101.6944}, Is24Hours: true},
	}
}

func testPlaces() []domain.CleanAirPlace {
	return []domain.CleanAirPlace{
		{ID: 1, Name: "Taman Tasik Titiwangsa", Type: "park", Location: domain.Coordinate{Lat: 3.1725, Lng: 101.7008}, BaseAQI: 25, PM25: 12, PM10: 18},
		{ID: 3, Name: "Perdana Botanical Gardens", Type: "park", Location: domain.Coordinate{Lat: 3.1478, Lng: 101.6886}, BaseAQI: 22, PM25: 10, PM10: 16},
		{ID: 8, Name: "Cameron Highlands", Type: "mountain", Location: domain.Coordinate{Lat: 4.4833, Lng: 101.3833}, BaseAQI: 15, PM25: 6, PM10: 12},
	}
}
