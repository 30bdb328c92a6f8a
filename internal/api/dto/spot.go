package dto

import "time"

type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type SpotResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone,omitempty"`
	Is24Hours   bool    `json:"is24Hours"`
	Description string  `json:"description,omitempty"`
	Distance    float64 `json:"distance"`
	WalkingTime int     `json:"walkingTime"`
}

type SafeSpotsResponse struct {
	Success   bool                      `json:"success"`
	Data      []SpotResponse            `json:"data"`
	Grouped   map[string][]SpotResponse `json:"grouped"`
	Count     int                       `json:"count"`
	Location  LocationResponse          `json:"location"`
	Radius    float64                   `json:"radius"`
	Timestamp time.Time                 `json:"timestamp"`
}
