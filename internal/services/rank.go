package services

import (
	"sort"

	"saferoute-service/internal/domain"
)

// Radius widening step applied before the final nearest-N fallback.
const fallbackRadiusStepKm = 1.0

// RankOptions controls proximity ranking.
type RankOptions struct {
	// RadiusKm limits results to spots within this distance.
	RadiusKm float64
	// Category is the raw caller-supplied filter value. Unknown values are
	// ignored (no filter applied) rather than rejected.
	Category string
	// Limit truncates the final result when > 0.
	Limit int
	// FallbackLimit is the nearest-N count returned when nothing lies inside
	// the radius even after widening. Zero means 5.
	FallbackLimit int
}

// RankResult is the ranked, filtered, grouped outcome of a proximity query.
type RankResult struct {
	Spots []domain.RankedSpot
	// Grouped splits Spots by category, preserving distance order.
	Grouped map[domain.Category][]domain.RankedSpot
	// FellBack reports that the radius (including the widened retry) matched
	// nothing and the nearest-N fallback was used instead.
	FellBack bool
}

// RankSpots ranks spots around origin: every spot is annotated with its
// distance and walking time, filtered to the radius and optional category,
// sorted ascending by distance with input order breaking ties, and truncated
// to the limit. An empty radius match widens once by a fixed step, then
// falls back to the nearest N regardless of distance, so a caller never gets
// an empty answer for a too-small radius.
func RankSpots(origin domain.Coordinate, spots []domain.SafeSpot, opts RankOptions) RankResult {
	fallbackLimit := opts.FallbackLimit
	if fallbackLimit <= 0 {
		fallbackLimit = 5
	}

	ranked := make([]domain.RankedSpot, 0, len(spots))
	for _, spot := range spots {
		d := DistanceKm(origin, spot.Location)
		ranked = append(ranked, domain.RankedSpot{
			SafeSpot:       spot,
			DistanceKm:     RoundKm(d),
			WalkingMinutes: WalkingMinutes(d),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	result := RankResult{}

	within := withinRadius(ranked, opts.RadiusKm)
	if len(within) == 0 {
		within = withinRadius(ranked, opts.RadiusKm+fallbackRadiusStepKm)
	}
	if len(within) == 0 {
		if len(ranked) > fallbackLimit {
			within = ranked[:fallbackLimit]
		} else {
			within = ranked
		}
		result.FellBack = true
	}

	if domain.ValidCategory(opts.Category) {
		filtered := make([]domain.RankedSpot, 0, len(within))
		for _, spot := range within {
			if string(spot.Category) == opts.Category {
				filtered = append(filtered, spot)
			}
		}
		within = filtered
	}

	if opts.Limit > 0 && len(within) > opts.Limit {
		within = within[:opts.Limit]
	}

	result.Spots = within
	result.Grouped = groupByCategory(within)
	return result
}

func withinRadius(ranked []domain.RankedSpot, radiusKm float64) []domain.RankedSpot {
	out := make([]domain.RankedSpot, 0, len(ranked))
	for _, spot := range ranked {
		if spot.DistanceKm <= radiusKm {
			out = append(out, spot)
		}
	}
	return out
}

func groupByCategory(spots []domain.RankedSpot) map[domain.Category][]domain.RankedSpot {
	grouped := make(map[domain.Category][]domain.RankedSpot, len(domain.Categories))
	for _, c := range domain.Categories {
		grouped[c] = []domain.RankedSpot{}
	}
	for _, spot := range spots {
		grouped[spot.Category] = append(grouped[spot.Category], spot)
	}
	return grouped
}

// RankPlaces annotates clean-air places with distance, filters to the
// radius, and sorts ascending. An empty radius match returns the nearest
// five regardless of distance.
func RankPlaces(origin domain.Coordinate, places []domain.CleanAirPlace, radiusKm float64) []domain.RankedPlace {
	ranked := make([]domain.RankedPlace, 0, len(places))
	for _, p := range places {
		ranked = append(ranked, domain.RankedPlace{
			CleanAirPlace: p,
			DistanceKm:    RoundKm(DistanceKm(origin, p.Location)),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	within := make([]domain.RankedPlace, 0, len(ranked))
	for _, p := range ranked {
		if p.DistanceKm <= radiusKm {
			within = append(within, p)
		}
	}
	if len(within) == 0 {
		if len(ranked) > 5 {
			return ranked[:5]
		}
		return ranked
	}
	return within
}
