package services

import (
	"sort"
	"strings"

	"saferoute-service/internal/domain"
)

// City is a named location with fixed coordinates, used by the AQI search
// and city board endpoints.
type City struct {
	Name     string
	Location domain.Coordinate
}

type cityEntry struct {
	key  string
	city City
}

// Lookup table of Malaysian cities and common aliases. Keys are normalized
// to lowercase. Order matters: the substring fallback in LookupCity returns
// the first entry that matches, so an ambiguous query always resolves the
// same way.
var malaysianCities = []cityEntry{
	{key: "kuala lumpur", city: City{Name: "Kuala Lumpur", Location: domain.Coordinate{Lat: 3.1390, Lng: 101.6869}}},
	{key: "kl", city: City{Name: "Kuala Lumpur", Location: domain.Coordinate{Lat: 3.1390, Lng: 101.6869}}},
	{key: "selangor", city: City{Name: "Selangor", Location: domain.Coordinate{Lat: 3.0738, Lng: 101.5183}}},
	{key: "shah alam", city: City{Name: "Shah Alam", Location: domain.Coordinate{Lat: 3.0738, Lng: 101.5183}}},
	{key: "penang", city: City{Name: "Penang", Location: domain.Coordinate{Lat: 5.4164, Lng: 100.3327}}},
	{key: "george town", city: City{Name: "George Town", Location: domain.Coordinate{Lat: 5.4164, Lng: 100.3327}}},
	{key: "johor", city: City{Name: "Johor", Location: domain.Coordinate{Lat: 1.4927, Lng: 103.7414}}},
	{key: "johor bahru", city: City{Name: "Johor Bahru", Location: domain.Coordinate{Lat: 1.4927, Lng: 103.7414}}},
	{key: "jb", city: City{Name: "Johor Bahru", Location: domain.Coordinate{Lat: 1.4927, Lng: 103.7414}}},
	{key: "melaka", city: City{Name: "Melaka", Location: domain.Coordinate{Lat: 2.1896, Lng: 102.2501}}},
	{key: "malacca", city: City{Name: "Melaka", Location: domain.Coordinate{Lat: 2.1896, Lng: 102.2501}}},
	{key: "ipoh", city: City{Name: "Ipoh", Location: domain.Coordinate{Lat: 4.5975, Lng: 101.0901}}},
	{key: "kuching", city: City{Name: "Kuching", Location: domain.Coordinate{Lat: 1.5589, Lng: 110.3449}}},
	{key: "kota kinabalu", city: City{Name: "Kota Kinabalu", Location: domain.Coordinate{Lat: 5.9804, Lng: 116.0735}}},
	{key: "putrajaya", city: City{Name: "Putrajaya", Location: domain.Coordinate{Lat: 2.9264, Lng: 101.6964}}},
	{key: "seremban", city: City{Name: "Seremban", Location: domain.Coordinate{Lat: 2.7259, Lng: 101.9378}}},
	{key: "alor setar", city: City{Name: "Alor Setar", Location: domain.Coordinate{Lat: 6.1210, Lng: 100.3673}}},
	{key: "kangar", city: City{Name: "Kangar", Location: domain.Coordinate{Lat: 6.4414, Lng: 100.1986}}},
	{key: "kota bharu", city: City{Name: "Kota Bharu", Location: domain.Coordinate{Lat: 6.1254, Lng: 102.2386}}},
	{key: "kuantan", city: City{Name: "Kuantan", Location: domain.Coordinate{Lat: 3.8167, Lng: 103.3333}}},
	{key: "terengganu", city: City{Name: "Kuala Terengganu", Location: domain.Coordinate{Lat: 5.3296, Lng: 103.1370}}},
	{key: "kuala terengganu", city: City{Name: "Kuala Terengganu", Location: domain.Coordinate{Lat: 5.3296, Lng: 103.1370}}},
	{key: "miri", city: City{Name: "Miri", Location: domain.Coordinate{Lat: 4.3995, Lng: 113.9914}}},
	{key: "sibu", city: City{Name: "Sibu", Location: domain.Coordinate{Lat: 2.2870, Lng: 111.8300}}},
	{key: "bintulu", city: City{Name: "Bintulu", Location: domain.Coordinate{Lat: 3.1713, Lng: 113.0419}}},
	{key: "sandakan", city: City{Name: "Sandakan", Location: domain.Coordinate{Lat: 5.8394, Lng: 118.1172}}},
	{key: "taiping", city: City{Name: "Taiping", Location: domain.Coordinate{Lat: 4.8519, Lng: 100.7400}}},
	{key: "banting", city: City{Name: "Banting", Location: domain.Coordinate{Lat: 2.8167, Lng: 101.5000}}},
	{key: "kapit", city: City{Name: "Kapit", Location: domain.Coordinate{Lat: 2.0167, Lng: 112.9333}}},
}

// CityBoardEntry is one row of the fixed four-city AQI board.
type CityBoardEntry struct {
	Name  string
	Label string
	City  City
}

// CityBoard lists the cities shown on the AQI overview board.
var CityBoard = []CityBoardEntry{
	{Name: "KL", Label: "Kuala Lumpur", City: City{Name: "Kuala Lumpur", Location: domain.Coordinate{Lat: 3.1390, Lng: 101.6869}}},
	{Name: "Selangor", Label: "Selangor", City: City{Name: "Selangor", Location: domain.Coordinate{Lat: 3.0738, Lng: 101.5183}}},
	{Name: "Penang", Label: "Penang", City: City{Name: "Penang", Location: domain.Coordinate{Lat: 5.4164, Lng: 100.3327}}},
	{Name: "Johor", Label: "Johor", City: City{Name: "Johor", Location: domain.Coordinate{Lat: 1.4927, Lng: 103.7414}}},
}

// LookupCity resolves a city name to its fixed coordinates. Matching is
// case-insensitive; when no exact key matches, a substring match in either
// direction is tried so partial queries like "kuala" still resolve, taking
// the first table entry that matches.
func LookupCity(name string) (City, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return City{}, false
	}

	for _, entry := range malaysianCities {
		if entry.key == normalized {
			return entry.city, true
		}
	}

	for _, entry := range malaysianCities {
		if strings.Contains(entry.key, normalized) || strings.Contains(normalized, entry.key) {
			return entry.city, true
		}
	}

	return City{}, false
}

// SupportedCities lists the lookup keys, for "city not found" responses.
func SupportedCities() []string {
	keys := make([]string, 0, len(malaysianCities))
	for _, entry := range malaysianCities {
		keys = append(keys, entry.key)
	}
	sort.Strings(keys)
	return keys
}
