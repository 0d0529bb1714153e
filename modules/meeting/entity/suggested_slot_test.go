package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestedSlot_AvailabilityPercentage(t *testing.T) {
	tests := []struct {
		available int
		total     int
		want      float64
	}{
		{7, 10, 70},
		{5, 5, 100},
		{0, 4, 0},
		{0, 0, 0}, // no responders yet
		{1, 3, 33.3},
		{2, 3, 66.7},
		{1, 7, 14.3},
		{5, 6, 83.3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d of %d", tt.available, tt.total), func(t *testing.T) {
			s := &SuggestedSlot{AvailableCount: tt.available, TotalParticipants: tt.total}
			assert.Equal(t, tt.want, s.AvailabilityPercentage())
		})
	}
}

func TestSuggestedSlot_HeatmapLevel(t *testing.T) {
	tests := []struct {
		available int
		total     int
		want      int
	}{
		{5, 5, 5},   // 100%
		{4, 5, 5},   // exactly 80%
		{79, 100, 4},
		{3, 5, 4},   // exactly 60%
		{59, 100, 3},
		{2, 5, 3},   // exactly 40%
		{39, 100, 2},
		{1, 5, 2},   // exactly 20%
		{19, 100, 1},
		{1, 10, 1},
		{0, 5, 0},
		{0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d of %d", tt.available, tt.total), func(t *testing.T) {
			s := &SuggestedSlot{AvailableCount: tt.available, TotalParticipants: tt.total}
			assert.Equal(t, tt.want, s.HeatmapLevel())
		})
	}
}
