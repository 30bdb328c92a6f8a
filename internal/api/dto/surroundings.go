package dto

import "time"

type SurroundingsData struct {
	SafetyScore     int              `json:"safetyScore"`
	SafetyLabel     string           `json:"safetyLabel"`
	SafetyColor     string           `json:"safetyColor"`
	CrowdDensity    int              `json:"crowdDensity"`
	Lighting        int              `json:"lighting"`
	IncidentsNearby int              `json:"incidentsNearby"`
	WeatherRisk     int              `json:"weatherRisk"`
	Location        LocationResponse `json:"location"`
	Timestamp       time.Time        `json:"timestamp"`
}

type SurroundingsResponse struct {
	Success bool             `json:"success"`
	Data    SurroundingsData `json:"data"`
}
