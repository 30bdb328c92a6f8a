package domain

// Category of a safe spot. Categories drive filtering and grouping in the
// proximity ranker; unknown values coming from callers are ignored rather
// than rejected.
type Category string

const (
	CategoryPolice      Category = "police"
	CategoryMedical     Category = "medical"
	CategoryStore       Category = "24hour_store"
	CategoryWellLitArea Category = "well_lit_area"
)

// Categories lists all known categories in presentation order.
var Categories = []Category{
	CategoryPolice,
	CategoryMedical,
	CategoryStore,
	CategoryWellLitArea,
}

// ValidCategory reports whether s names a known safe-spot category.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// SafeSpot is a place a person can head for when they feel unsafe:
// a police station, hospital, 24-hour store, or well-lit public area.
// Spots are immutable reference data (seeded at startup) or ephemeral
// (synthesized around a caller's location); they are never mutated.
type SafeSpot struct {
	ID          int
	Name        string
	Type        string
	Category    Category
	Location    Coordinate
	Address     string
	Phone       string
	Is24Hours   bool
	Description string
}

// RankedSpot is a SafeSpot annotated with distance from a query point.
// Built per request, never persisted.
type RankedSpot struct {
	SafeSpot
	DistanceKm     float64
	WalkingMinutes int
}

// CleanAirPlace is a park, beach, or nature area with a known baseline
// air quality, used as the regional anchor for AQI synthesis.
type CleanAirPlace struct {
	ID          int
	Name        string
	Type        string
	Address     string
	Location    Coordinate
	BaseAQI     int
	PM25        int
	PM10        int
	Description string
	Amenities   []string
}

// RankedPlace is a CleanAirPlace annotated with distance from a query point.
type RankedPlace struct {
	CleanAirPlace
	DistanceKm float64
}
