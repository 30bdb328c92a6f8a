package dto

import "time"

type AQIData struct {
	City      string           `json:"city,omitempty"`
	AQI       int              `json:"aqi"`
	Category  string           `json:"aqiCategory"`
	Color     string           `json:"aqiColor"`
	PM25      int              `json:"pm25"`
	PM10      int              `json:"pm10"`
	Location  LocationResponse `json:"location"`
	Timestamp time.Time        `json:"timestamp"`
}

type AQIResponse struct {
	Success bool    `json:"success"`
	Data    AQIData `json:"data"`
}

type CityAQI struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	AQI   int    `json:"aqi"`
}

type CitiesAQIResponse struct {
	Success   bool      `json:"success"`
	Data      []CityAQI `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

type PlaceResponse struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Address     string   `json:"address"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	AQI         int      `json:"aqi"`
	Category    string   `json:"aqiCategory"`
	Color       string   `json:"aqiColor"`
	PM25        int      `json:"pm25"`
	PM10        int      `json:"pm10"`
	Description string   `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	Distance    float64  `json:"distance"`
}

type PlacesResponse struct {
	Success      bool             `json:"success"`
	Data         []PlaceResponse  `json:"data"`
	Count        int              `json:"count"`
	UserLocation LocationResponse `json:"userLocation"`
	Radius       float64          `json:"radius"`
}

type CityNotFoundResponse struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message"`
	SupportedCities []string `json:"supportedCities"`
}
