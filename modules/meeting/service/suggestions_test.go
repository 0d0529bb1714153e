package service

import (
	"testing"
	"time"

	"timeweave/modules/meeting/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aggregate(start time.Time, available, total int) entity.SuggestedSlot {
	return entity.SuggestedSlot{
		ID:                uuid.New(),
		StartTime:         start,
		EndTime:           start.Add(time.Hour),
		AvailableCount:    available,
		TotalParticipants: total,
	}
}

func TestRankSuggestions_OrderAndTieBreak(t *testing.T) {
	slots := []entity.SuggestedSlot{
		aggregate(utc(2024, time.January, 1, 14, 0), 6, 10),
		aggregate(utc(2024, time.January, 1, 10, 0), 8, 10),
		aggregate(utc(2024, time.January, 1, 9, 0), 8, 10),
		aggregate(utc(2024, time.January, 1, 13, 0), 6, 10),
	}

	ranked := RankSuggestions(slots, 10, 0)

	require.Len(t, ranked, 4)
	// Count descending, earlier start breaking the tie.
	assert.Equal(t, utc(2024, time.January, 1, 9, 0), ranked[0].StartTime)
	assert.Equal(t, utc(2024, time.January, 1, 10, 0), ranked[1].StartTime)
	assert.Equal(t, utc(2024, time.January, 1, 13, 0), ranked[2].StartTime)
	assert.Equal(t, utc(2024, time.January, 1, 14, 0), ranked[3].StartTime)
}

func TestRankSuggestions_ThresholdIsInclusive(t *testing.T) {
	slots := []entity.SuggestedSlot{
		aggregate(utc(2024, time.January, 1, 9, 0), 49, 100),
		aggregate(utc(2024, time.January, 1, 10, 0), 50, 100),
		aggregate(utc(2024, time.January, 1, 11, 0), 51, 100),
	}

	ranked := RankSuggestions(slots, 10, 50)

	require.Len(t, ranked, 2)
	assert.Equal(t, 51, ranked[0].AvailableCount)
	assert.Equal(t, 50, ranked[1].AvailableCount)
}

func TestRankSuggestions_DecimalThreshold(t *testing.T) {
	slots := []entity.SuggestedSlot{
		aggregate(utc(2024, time.January, 1, 9, 0), 495, 1000),  // 49.5
		aggregate(utc(2024, time.January, 1, 10, 0), 505, 1000), // 50.5
		aggregate(utc(2024, time.January, 1, 11, 0), 515, 1000), // 51.5
	}

	ranked := RankSuggestions(slots, 10, 50.5)

	require.Len(t, ranked, 2)
	assert.Equal(t, 515, ranked[0].AvailableCount)
	assert.Equal(t, 505, ranked[1].AvailableCount)
}

func TestRankSuggestions_Limit(t *testing.T) {
	slots := make([]entity.SuggestedSlot, 5)
	for i := range slots {
		slots[i] = aggregate(utc(2024, time.January, 1, 9+i, 0), 5, 5)
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"one result", 1, 1},
		{"zero yields nothing", 0, 0},
		{"limit above input", 100, 5},
		{"negative is clamped to zero", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, RankSuggestions(slots, tt.limit, 0), tt.want)
		})
	}
}

func TestRankSuggestions_NoResponders(t *testing.T) {
	slots := []entity.SuggestedSlot{aggregate(utc(2024, time.January, 1, 9, 0), 0, 0)}

	// Percentage of an unanswered meeting is 0, so it clears a zero threshold
	// but nothing above it.
	assert.Len(t, RankSuggestions(slots, 10, 0), 1)
	assert.Empty(t, RankSuggestions(slots, 10, 0.1))
}
