package services

import "saferoute-service/internal/domain"

// WeatherReport is a synthesized weather sample for a point. There is no
// real meteorological feed; conditions are chosen deterministically from the
// coordinate hash so the same location reports consistent weather.
type WeatherReport struct {
	Condition     string
	Description   string
	Icon          string
	Temperature   int
	FeelsLike     int
	Humidity      int
	WindSpeed     int
	WindDirection string
	Visibility    int
	UVIndex       int
	CloudCover    int
	Precipitation float64
}

var windDirections = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

type weatherTemplate struct {
	condition     string
	description   string
	icon          string
	baseTemp      int
	baseHumidity  int
	baseWind      int
	visibility    int
	baseUV        int
	baseClouds    int
	precipitation float64
}

var weatherTemplates = []weatherTemplate{
	{condition: "Sunny", description: "Clear sky", icon: "sunny", baseTemp: 32, baseHumidity: 65, baseWind: 8, visibility: 10, baseUV: 7, baseClouds: 10},
	{condition: "Partly Cloudy", description: "Partly cloudy", icon: "partly-cloudy", baseTemp: 30, baseHumidity: 70, baseWind: 10, visibility: 9, baseUV: 6, baseClouds: 40},
	{condition: "Cloudy", description: "Overcast", icon: "cloudy", baseTemp: 28, baseHumidity: 75, baseWind: 12, visibility: 8, baseUV: 4, baseClouds: 70},
	{condition: "Rainy", description: "Light rain", icon: "rain", baseTemp: 26, baseHumidity: 85, baseWind: 15, visibility: 6, baseUV: 2, baseClouds: 90, precipitation: 2.5},
	{condition: "Thunderstorm", description: "Thunderstorms", icon: "storm", baseTemp: 25, baseHumidity: 90, baseWind: 20, visibility: 4, baseUV: 1, baseClouds: 95, precipitation: 5},
}

// Weather synthesizes a weather report for a coordinate. Nighttime readings
// (outside 06:00-20:00) run 5 degrees cooler.
func (s *Synthesizer) Weather(c domain.Coordinate) WeatherReport {
	h := CoordHash(c) % 10
	tpl := weatherTemplates[h%len(weatherTemplates)]

	report := WeatherReport{
		Condition:     tpl.condition,
		Description:   tpl.description,
		Icon:          tpl.icon,
		Temperature:   tpl.baseTemp + h%5,
		FeelsLike:     tpl.baseTemp + 3 + h%5,
		Humidity:      clampInt(tpl.baseHumidity+h%10, 0, 100),
		WindSpeed:     tpl.baseWind + h%5,
		WindDirection: windDirections[h%len(windDirections)],
		Visibility:    tpl.visibility,
		UVIndex:       tpl.baseUV + h%3,
		CloudCover:    clampInt(tpl.baseClouds+h%10, 0, 100),
		Precipitation: tpl.precipitation,
	}

	hour := s.now().Hour()
	if hour < 6 || hour >= 20 {
		report.Temperature -= 5
		report.FeelsLike -= 5
	}

	return report
}
