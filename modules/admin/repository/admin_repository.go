package repository

import (
	"context"
	"time"

	"timeweave/core/database"
	"timeweave/core/logger"
	"timeweave/core/params"

	"github.com/google/uuid"
)

// MeetingOverview is one admin dashboard row joined with its response counts.
type MeetingOverview struct {
	ID               uuid.UUID  `db:"id"`
	Title            string     `db:"title"`
	Status           string     `db:"status"`
	Timezone         string     `db:"timezone"`
	ParticipantCount int        `db:"participant_count"`
	RespondedCount   int        `db:"responded_count"`
	ResponseDeadline *time.Time `db:"response_deadline"`
	CreatedAt        time.Time  `db:"created_at"`
}

// SystemStats mirrors the aggregate counter queries.
type SystemStats struct {
	TotalMeetings      int     `db:"total_meetings"`
	DraftMeetings      int     `db:"draft_meetings"`
	ActiveMeetings     int     `db:"active_meetings"`
	LockedMeetings     int     `db:"locked_meetings"`
	CancelledMeetings  int     `db:"cancelled_meetings"`
	TotalParticipants  int     `db:"total_participants"`
	RespondedCount     int     `db:"responded_count"`
	TotalBusyIntervals int     `db:"total_busy_intervals"`
	AvgResponseRate    float64 `db:"avg_response_rate"`
}

type AdminRepository struct {
	DB database.Database
}

type AdminRepositoryInterface interface {
	GetSystemStats(ctx context.Context) (*SystemStats, error)
	ListMeetings(ctx context.Context, queryParams params.QueryParams, status string) ([]MeetingOverview, int, error)
}

func NewAdminRepository(db database.Database) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) GetSystemStats(ctx context.Context) (*SystemStats, error) {
	var stats SystemStats

	meetingQuery := `
		SELECT
			COUNT(*) AS total_meetings,
			COUNT(*) FILTER (WHERE status = 'draft') AS draft_meetings,
			COUNT(*) FILTER (WHERE status = 'active') AS active_meetings,
			COUNT(*) FILTER (WHERE status = 'locked') AS locked_meetings,
			COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled_meetings
		FROM meetings
	`
	if err := r.DB.GetContext(ctx, &stats, meetingQuery); err != nil {
		logger.Error("AdminRepository:GetSystemStats:Meetings", "error", err)
		return nil, err
	}

	participantQuery := `
		SELECT
			COUNT(*) AS total_participants,
			COUNT(*) FILTER (WHERE has_responded) AS responded_count
		FROM participants
	`
	if err := r.DB.GetContext(ctx, &stats, participantQuery); err != nil {
		logger.Error("AdminRepository:GetSystemStats:Participants", "error", err)
		return nil, err
	}

	if err := r.DB.GetContext(ctx, &stats, `SELECT COUNT(*) AS total_busy_intervals FROM busy_intervals`); err != nil {
		logger.Error("AdminRepository:GetSystemStats:BusyIntervals", "error", err)
		return nil, err
	}

	// Mean of per-meeting response fractions, meetings without participants excluded.
	rateQuery := `
		SELECT COALESCE(AVG(sub.rate), 0) AS avg_response_rate
		FROM (
			SELECT COUNT(*) FILTER (WHERE has_responded)::float / COUNT(*) AS rate
			FROM participants
			GROUP BY meeting_id
		) sub
	`
	if err := r.DB.GetContext(ctx, &stats, rateQuery); err != nil {
		logger.Error("AdminRepository:GetSystemStats:ResponseRate", "error", err)
		return nil, err
	}

	return &stats, nil
}

func (r *AdminRepository) ListMeetings(ctx context.Context, queryParams params.QueryParams, status string) ([]MeetingOverview, int, error) {
	countQuery := `
		SELECT COUNT(*) FROM meetings
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR title ILIKE '%' || $2 || '%')
	`
	var total int
	if err := r.DB.GetContext(ctx, &total, countQuery, status, queryParams.Search); err != nil {
		logger.Error("AdminRepository:ListMeetings:Count", "error", err)
		return nil, 0, err
	}

	offset := (queryParams.PageNumber - 1) * queryParams.PageSize
	query := `
		SELECT
			m.id, m.title, m.status, m.timezone, m.response_deadline, m.created_at,
			COUNT(p.id) AS participant_count,
			COUNT(p.id) FILTER (WHERE p.has_responded) AS responded_count
		FROM meetings m
		LEFT JOIN participants p ON p.meeting_id = m.id
		WHERE ($1 = '' OR m.status = $1)
		  AND ($2 = '' OR m.title ILIKE '%' || $2 || '%')
		GROUP BY m.id
		ORDER BY m.created_at DESC
		LIMIT $3 OFFSET $4
	`
	var rows []MeetingOverview
	if err := r.DB.SelectContext(ctx, &rows, query, status, queryParams.Search, queryParams.PageSize, offset); err != nil {
		logger.Error("AdminRepository:ListMeetings:Select", "error", err)
		return nil, 0, err
	}

	return rows, total, nil
}
