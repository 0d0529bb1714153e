package service

import (
	"sort"

	"timeweave/modules/meeting/entity"
)

// RankSuggestions filters aggregates by a minimum availability percentage
// (inclusive, evaluated on the rounded value) and orders them by available
// count descending with start time breaking ties, truncated to limit.
// A negative limit is clamped to zero, which yields no suggestions.
func RankSuggestions(slots []entity.SuggestedSlot, limit int, minPct float64) []entity.SuggestedSlot {
	if limit < 0 {
		limit = 0
	}

	filtered := make([]entity.SuggestedSlot, 0, len(slots))
	for _, s := range slots {
		if s.AvailabilityPercentage() >= minPct {
			filtered = append(filtered, s)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].AvailableCount != filtered[j].AvailableCount {
			return filtered[i].AvailableCount > filtered[j].AvailableCount
		}
		return filtered[i].StartTime.Before(filtered[j].StartTime)
	})

	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}
