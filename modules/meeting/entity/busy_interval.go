package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusyInterval is a window when a participant is unavailable.
// Instants are stored in UTC regardless of the display timezone.
type BusyInterval struct {
	ID            uuid.UUID `db:"id" json:"id"`
	ParticipantID uuid.UUID `db:"participant_id" json:"participant_id"`
	StartTime     time.Time `db:"start_time" json:"start_time"`
	EndTime       time.Time `db:"end_time" json:"end_time"`
	Description   string    `db:"description" json:"description,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// ConflictsWith reports whether the busy interval overlaps the candidate
// slot. Strict on both sides: touching boundaries never conflict.
func (b *BusyInterval) ConflictsWith(slot TimeSlot) bool {
	return b.StartTime.Before(slot.End) && b.EndTime.After(slot.Start)
}
