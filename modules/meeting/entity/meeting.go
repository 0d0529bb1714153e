package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MeetingStatus represents the lifecycle state of a meeting request
type MeetingStatus string

const (
	MeetingStatusDraft     MeetingStatus = "draft"
	MeetingStatusActive    MeetingStatus = "active"
	MeetingStatusLocked    MeetingStatus = "locked"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// Meeting represents a meeting request and its slot-generation configuration.
// Date range bounds are calendar dates; work hours are wall-clock times
// interpreted in the meeting timezone.
type Meeting struct {
	ID                   uuid.UUID     `db:"id" json:"id"`
	Token                string        `db:"token" json:"-"`
	Slug                 string        `db:"slug" json:"slug"`
	Title                string        `db:"title" json:"title"`
	Description          string        `db:"description" json:"description,omitempty"`
	Status               MeetingStatus `db:"status" json:"status"`
	DurationMinutes      int           `db:"duration_minutes" json:"duration_minutes"`
	Timezone             string        `db:"timezone" json:"timezone"`
	DateRangeStart       time.Time     `db:"date_range_start" json:"date_range_start"`
	DateRangeEnd         time.Time     `db:"date_range_end" json:"date_range_end"`
	WorkHoursStart       string        `db:"work_hours_start" json:"work_hours_start"`
	WorkHoursEnd         string        `db:"work_hours_end" json:"work_hours_end"`
	StepSizeMinutes      int           `db:"step_size_minutes" json:"step_size_minutes"`
	WorkDaysOnly         bool          `db:"work_days_only" json:"work_days_only"`
	HideParticipantNames bool          `db:"hide_participant_names" json:"hide_participant_names"`
	ResponseDeadline     *time.Time    `db:"response_deadline" json:"response_deadline,omitempty"`
	CreatedByEmail       string        `db:"created_by_email" json:"-"`
	CreatorID            uuid.UUID     `db:"creator_id" json:"-"`
	CreatedAt            time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time     `db:"updated_at" json:"updated_at"`
}

// IsAcceptingResponses reports whether the meeting still takes new joins and
// busy-interval submissions: it must be active and before its deadline.
// Past-deadline meetings stay readable but reject writes.
func (m *Meeting) IsAcceptingResponses(now time.Time) bool {
	if m.Status != MeetingStatusActive {
		return false
	}
	if m.ResponseDeadline != nil && now.After(*m.ResponseDeadline) {
		return false
	}
	return true
}

// CanRecompute reports whether aggregates may be rebuilt. Locked meetings
// keep their single surviving slot; draft and cancelled ones keep nothing.
func (m *Meeting) CanRecompute() bool {
	return m.Status == MeetingStatusActive
}

// IsEditable reports whether configuration changes are still allowed.
func (m *Meeting) IsEditable() bool {
	return m.Status == MeetingStatusDraft || m.Status == MeetingStatusActive
}

// CanTransitionTo enforces the lifecycle:
// draft -> active -> locked, or active -> cancelled. Both ends are terminal.
func (m *Meeting) CanTransitionTo(next MeetingStatus) bool {
	switch next {
	case MeetingStatusActive:
		return m.Status == MeetingStatusDraft
	case MeetingStatusLocked, MeetingStatusCancelled:
		return m.Status == MeetingStatusActive
	default:
		return false
	}
}

// SharePath is the token-guarded respond path handed out to participants.
func (m *Meeting) SharePath() string {
	return fmt.Sprintf("/r/%s?t=%s", m.ID, m.Token)
}
