package dto

import (
	"fmt"
	"time"

	"timeweave/modules/meeting/entity"
)

// ===================== Request DTOs =====================

// CreateSessionRequest for issuing a creator session token
type CreateSessionRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
}

// ParticipantInput for inviting a single participant
type ParticipantInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Timezone string `json:"timezone"`
}

// CreateMeetingRequest for creating a new meeting
type CreateMeetingRequest struct {
	Title                string             `json:"title" validate:"required,max=200"`
	Description          string             `json:"description"`
	DurationMinutes      int                `json:"duration_minutes" validate:"omitempty,min=15,max=480"`
	Timezone             string             `json:"timezone"`
	DateRangeStart       string             `json:"date_range_start" validate:"required"` // YYYY-MM-DD
	DateRangeEnd         string             `json:"date_range_end" validate:"required"`   // YYYY-MM-DD
	WorkHoursStart       string             `json:"work_hours_start"`                     // HH:MM
	WorkHoursEnd         string             `json:"work_hours_end"`                       // HH:MM
	StepSizeMinutes      int                `json:"step_size_minutes" validate:"omitempty,oneof=15 30 60"`
	WorkDaysOnly         *bool              `json:"work_days_only"`
	HideParticipantNames bool               `json:"hide_participant_names"`
	ResponseDeadline     *string            `json:"response_deadline"` // RFC3339
	CreatedByEmail       string             `json:"created_by_email" validate:"omitempty,email"`
	Participants         []ParticipantInput `json:"participants" validate:"omitempty,dive"`
	Publish              bool               `json:"publish"`
}

// UpdateMeetingRequest for partially updating meeting details
type UpdateMeetingRequest struct {
	Title                *string `json:"title" validate:"omitempty,max=200"`
	Description          *string `json:"description"`
	DurationMinutes      *int    `json:"duration_minutes" validate:"omitempty,min=15,max=480"`
	Timezone             *string `json:"timezone"`
	DateRangeStart       *string `json:"date_range_start"` // YYYY-MM-DD
	DateRangeEnd         *string `json:"date_range_end"`   // YYYY-MM-DD
	WorkHoursStart       *string `json:"work_hours_start"` // HH:MM
	WorkHoursEnd         *string `json:"work_hours_end"`   // HH:MM
	StepSizeMinutes      *int    `json:"step_size_minutes" validate:"omitempty,oneof=15 30 60"`
	WorkDaysOnly         *bool   `json:"work_days_only"`
	HideParticipantNames *bool   `json:"hide_participant_names"`
	ResponseDeadline     *string `json:"response_deadline"` // RFC3339, empty string clears
	CreatedByEmail       *string `json:"created_by_email" validate:"omitempty,email"`
}

// BulkParticipantsRequest for inviting several participants at once
type BulkParticipantsRequest struct {
	Participants []ParticipantInput `json:"participants" validate:"required,min=1,dive"`
}

// JoinMeetingRequest for joining a meeting through the share link
type JoinMeetingRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Timezone string `json:"timezone"`
}

// BusyIntervalInput for a single busy interval
type BusyIntervalInput struct {
	StartTime   string `json:"start_time" validate:"required"` // RFC3339 or naive local time
	EndTime     string `json:"end_time" validate:"required"`
	Description string `json:"description"`
}

// SubmitAvailabilityRequest replaces a participant's busy intervals
type SubmitAvailabilityRequest struct {
	BusyIntervals []BusyIntervalInput `json:"busy_intervals" validate:"omitempty,dive"`
}

// ===================== Response DTOs =====================

// SessionResponse carries the creator token for private endpoints
type SessionResponse struct {
	CreatorID string `json:"creator_id"`
	Token     string `json:"token"`
}

// MeetingResponse for meeting details
type MeetingResponse struct {
	ID                   string     `json:"id"`
	Slug                 string     `json:"slug"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	Status               string     `json:"status"`
	DurationMinutes      int        `json:"duration_minutes"`
	Timezone             string     `json:"timezone"`
	DateRangeStart       string     `json:"date_range_start"`
	DateRangeEnd         string     `json:"date_range_end"`
	WorkHoursStart       string     `json:"work_hours_start"`
	WorkHoursEnd         string     `json:"work_hours_end"`
	StepSizeMinutes      int        `json:"step_size_minutes"`
	WorkDaysOnly         bool       `json:"work_days_only"`
	HideParticipantNames bool       `json:"hide_participant_names"`
	ResponseDeadline     *time.Time `json:"response_deadline,omitempty"`
	ShareURL             string     `json:"share_url,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// MeetingDetailResponse adds participants and aggregates to the meeting
type MeetingDetailResponse struct {
	MeetingResponse
	Participants []ParticipantResponse   `json:"participants"`
	Suggestions  []SuggestedSlotResponse `json:"suggestions"`
	LockedSlot   *SuggestedSlotResponse  `json:"locked_slot,omitempty"`
	ResponseRate int                     `json:"response_rate"`
}

// MeetingListItem is one dashboard row
type MeetingListItem struct {
	MeetingResponse
	ParticipantCount int `json:"participant_count"`
	RespondedCount   int `json:"responded_count"`
	ResponseRate     int `json:"response_rate"`
}

// PaginatedMeetingResponse for the creator dashboard
type PaginatedMeetingResponse struct {
	Items      []MeetingListItem `json:"items"`
	TotalItems int               `json:"total_items"`
	PageNumber int               `json:"page_number"`
	PageSize   int               `json:"page_size"`
}

// PublicMeetingResponse is the share-link view of a meeting
type PublicMeetingResponse struct {
	ID                   string                      `json:"id"`
	Slug                 string                      `json:"slug"`
	Title                string                      `json:"title"`
	Description          string                      `json:"description,omitempty"`
	Status               string                      `json:"status"`
	DurationMinutes      int                         `json:"duration_minutes"`
	Timezone             string                      `json:"timezone"`
	DateRangeStart       string                      `json:"date_range_start"`
	DateRangeEnd         string                      `json:"date_range_end"`
	WorkHoursStart       string                      `json:"work_hours_start"`
	WorkHoursEnd         string                      `json:"work_hours_end"`
	StepSizeMinutes      int                         `json:"step_size_minutes"`
	WorkDaysOnly         bool                        `json:"work_days_only"`
	ResponseDeadline     *time.Time                  `json:"response_deadline,omitempty"`
	IsAcceptingResponses bool                        `json:"is_accepting_responses"`
	Participants         []PublicParticipantResponse `json:"participants"`
	LockedSlot           *SuggestedSlotResponse      `json:"locked_slot,omitempty"`
}

// ParticipantResponse for participant details
type ParticipantResponse struct {
	ID           string     `json:"id"`
	MeetingID    string     `json:"meeting_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email,omitempty"`
	Timezone     string     `json:"timezone"`
	HasResponded bool       `json:"has_responded"`
	RespondedAt  *time.Time `json:"responded_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// PublicParticipantResponse hides emails and, when the meeting asks for
// it, real names
type PublicParticipantResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	HasResponded bool   `json:"has_responded"`
}

// BusyIntervalResponse for a stored busy interval
type BusyIntervalResponse struct {
	ID          string    `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Description string    `json:"description,omitempty"`
}

// BusyIntervalsResponse wraps a participant's stored intervals
type BusyIntervalsResponse struct {
	ParticipantID string                 `json:"participant_id"`
	BusyIntervals []BusyIntervalResponse `json:"busy_intervals"`
}

// SuggestedSlotResponse for a single ranked slot
type SuggestedSlotResponse struct {
	ID                string    `json:"id"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	AvailableCount    int       `json:"available_count"`
	TotalParticipants int       `json:"total_participants"`
	Percentage        float64   `json:"percentage"`
	HeatmapLevel      int       `json:"heatmap_level"`
	IsLocked          bool      `json:"is_locked,omitempty"`
}

// SuggestionsResponse for the ranked suggestions endpoint
type SuggestionsResponse struct {
	Suggestions []SuggestedSlotResponse `json:"suggestions"`
}

// ===================== Mapper Functions =====================

// ToMeetingResponse maps entity to DTO
func ToMeetingResponse(m *entity.Meeting, baseURL string) *MeetingResponse {
	resp := &MeetingResponse{
		ID:                   m.ID.String(),
		Slug:                 m.Slug,
		Title:                m.Title,
		Description:          m.Description,
		Status:               string(m.Status),
		DurationMinutes:      m.DurationMinutes,
		Timezone:             m.Timezone,
		DateRangeStart:       m.DateRangeStart.Format("2006-01-02"),
		DateRangeEnd:         m.DateRangeEnd.Format("2006-01-02"),
		WorkHoursStart:       formatClock(m.WorkHoursStart),
		WorkHoursEnd:         formatClock(m.WorkHoursEnd),
		StepSizeMinutes:      m.StepSizeMinutes,
		WorkDaysOnly:         m.WorkDaysOnly,
		HideParticipantNames: m.HideParticipantNames,
		ResponseDeadline:     m.ResponseDeadline,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}

	if baseURL != "" {
		resp.ShareURL = baseURL + m.SharePath()
	}

	return resp
}

// ToParticipantResponse maps entity to DTO
func ToParticipantResponse(p *entity.Participant) *ParticipantResponse {
	resp := &ParticipantResponse{
		ID:           p.ID.String(),
		MeetingID:    p.MeetingID.String(),
		Name:         p.DisplayName(),
		Timezone:     p.Timezone,
		HasResponded: p.HasResponded,
		RespondedAt:  p.RespondedAt,
		CreatedAt:    p.CreatedAt,
	}

	if p.Email != nil {
		resp.Email = *p.Email
	}

	return resp
}

// ToPublicParticipants maps participants for the share-link view. When
// hideNames is set every participant becomes "Người tham gia N".
func ToPublicParticipants(participants []entity.Participant, hideNames bool) []PublicParticipantResponse {
	out := make([]PublicParticipantResponse, 0, len(participants))
	for i := range participants {
		name := participants[i].DisplayName()
		if hideNames {
			name = fmt.Sprintf("Người tham gia %d", i+1)
		}
		out = append(out, PublicParticipantResponse{
			ID:           participants[i].ID.String(),
			Name:         name,
			HasResponded: participants[i].HasResponded,
		})
	}
	return out
}

// ToBusyIntervalResponse maps entity to DTO
func ToBusyIntervalResponse(b *entity.BusyInterval) BusyIntervalResponse {
	return BusyIntervalResponse{
		ID:          b.ID.String(),
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Description: b.Description,
	}
}

// ToSlotResponse maps an aggregated slot to DTO
func ToSlotResponse(s *entity.SuggestedSlot) *SuggestedSlotResponse {
	return &SuggestedSlotResponse{
		ID:                s.ID.String(),
		StartTime:         s.StartTime,
		EndTime:           s.EndTime,
		AvailableCount:    s.AvailableCount,
		TotalParticipants: s.TotalParticipants,
		Percentage:        s.AvailabilityPercentage(),
		HeatmapLevel:      s.HeatmapLevel(),
		IsLocked:          s.IsLocked,
	}
}

// ToSlotResponses maps a ranked slice of slots
func ToSlotResponses(slots []entity.SuggestedSlot) []SuggestedSlotResponse {
	out := make([]SuggestedSlotResponse, 0, len(slots))
	for i := range slots {
		out = append(out, *ToSlotResponse(&slots[i]))
	}
	return out
}

// formatClock trims database TIME values ("09:00:00") down to HH:MM.
func formatClock(clock string) string {
	if len(clock) >= 5 {
		return clock[:5]
	}
	return clock
}
