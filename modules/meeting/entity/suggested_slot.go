package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// SuggestedSlot is a persisted per-slot availability aggregate. The set for
// a meeting is fully replaced on every recompute; locking a slot deletes all
// its siblings so exactly one survives.
type SuggestedSlot struct {
	ID                uuid.UUID `db:"id" json:"id"`
	MeetingID         uuid.UUID `db:"meeting_id" json:"meeting_id"`
	StartTime         time.Time `db:"start_time" json:"start_time"`
	EndTime           time.Time `db:"end_time" json:"end_time"`
	AvailableCount    int       `db:"available_count" json:"available_count"`
	TotalParticipants int       `db:"total_participants" json:"total_participants"`
	IsLocked          bool      `db:"is_locked" json:"is_locked"`
	CalculatedAt      time.Time `db:"calculated_at" json:"calculated_at"`
}

// AvailabilityPercentage is the share of responded participants free during
// this slot, rounded to one decimal. Zero responders yield 0.
func (s *SuggestedSlot) AvailabilityPercentage() float64 {
	if s.TotalParticipants == 0 {
		return 0
	}
	pct := float64(s.AvailableCount) / float64(s.TotalParticipants) * 100
	return math.Round(pct*10) / 10
}

// HeatmapLevel buckets the percentage into a 0-5 intensity:
// 5 = 80%+, 4 = 60-79, 3 = 40-59, 2 = 20-39, 1 = above zero, 0 = none.
func (s *SuggestedSlot) HeatmapLevel() int {
	pct := s.AvailabilityPercentage()
	switch {
	case pct >= 80:
		return 5
	case pct >= 60:
		return 4
	case pct >= 40:
		return 3
	case pct >= 20:
		return 2
	case pct > 0:
		return 1
	default:
		return 0
	}
}

// TimeSlot represents a transient candidate window produced by the slot
// engine (used for free/busy calculations before aggregates are persisted).
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
