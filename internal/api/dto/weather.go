package dto

import "time"

type WeatherData struct {
	Condition     string           `json:"condition"`
	Description   string           `json:"description"`
	Icon          string           `json:"icon"`
	Temperature   int              `json:"temperature"`
	FeelsLike     int              `json:"feelsLike"`
	Humidity      int              `json:"humidity"`
	WindSpeed     int              `json:"windSpeed"`
	WindDirection string           `json:"windDirection"`
	Visibility    int              `json:"visibility"`
	UVIndex       int              `json:"uvIndex"`
	CloudCover    int              `json:"cloudCover"`
	Precipitation float64          `json:"precipitation,omitempty"`
	Location      LocationResponse `json:"location"`
	Timestamp     time.Time        `json:"timestamp"`
}

type WeatherResponse struct {
	Success bool        `json:"success"`
	Data    WeatherData `json:"data"`
}
