package dto

import (
	"time"

	"github.com/google/uuid"
)

// SystemStatsResponse aggregates platform-wide counters for the admin panel.
// AvgResponseRate is a percentage over meetings that have participants.
type SystemStatsResponse struct {
	TotalMeetings      int     `json:"total_meetings"`
	DraftMeetings      int     `json:"draft_meetings"`
	ActiveMeetings     int     `json:"active_meetings"`
	LockedMeetings     int     `json:"locked_meetings"`
	CancelledMeetings  int     `json:"cancelled_meetings"`
	TotalParticipants  int     `json:"total_participants"`
	RespondedCount     int     `json:"responded_count"`
	TotalBusyIntervals int     `json:"total_busy_intervals"`
	AvgResponseRate    float64 `json:"avg_response_rate"`
}

// AdminMeetingItem is one dashboard row across all creators.
type AdminMeetingItem struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Status           string     `json:"status"`
	Timezone         string     `json:"timezone"`
	ParticipantCount int        `json:"participant_count"`
	RespondedCount   int        `json:"responded_count"`
	ResponseDeadline *time.Time `json:"response_deadline,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type PaginatedAdminMeetingResponse struct {
	Items      []AdminMeetingItem `json:"items"`
	TotalItems int                `json:"total_items"`
	PageNumber int                `json:"page_number"`
	PageSize   int                `json:"page_size"`
}
