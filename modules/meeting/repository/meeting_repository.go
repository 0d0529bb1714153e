package repository

import (
	"context"
	"database/sql"
	"errors"

	"timeweave/core/database"
	"timeweave/core/logger"
	"timeweave/core/params"
	"timeweave/modules/meeting/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Sentinel conditions surfaced by the transactional flows. Services map
// them onto the AppError taxonomy.
var (
	ErrMeetingNotFound   = errors.New("meeting not found")
	ErrMeetingNotActive  = errors.New("meeting is not active")
	ErrSlotNotFound      = errors.New("slot not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ComputeSnapshotFunc builds the full aggregate snapshot from a consistent
// in-transaction read of the meeting's responders and their busy intervals.
type ComputeSnapshotFunc func(participants []entity.Participant, busyByParticipant map[uuid.UUID][]entity.BusyInterval) []entity.SuggestedSlot

// ResponseCount pairs the participant totals used for dashboard rows.
type ResponseCount struct {
	MeetingID uuid.UUID `db:"meeting_id"`
	Total     int       `db:"total"`
	Responded int       `db:"responded"`
}

// MeetingRepository handles meeting database operations
type MeetingRepository struct {
	DB database.Database
}

// NewMeetingRepository creates a new repository instance
func NewMeetingRepository(db database.Database) *MeetingRepository {
	return &MeetingRepository{DB: db}
}

// MeetingRepositoryInterface defines the repository contract
type MeetingRepositoryInterface interface {
	// Meetings
	CreateMeeting(ctx context.Context, meeting *entity.Meeting) (*entity.Meeting, error)
	GetMeetingByID(ctx context.Context, id uuid.UUID) (*entity.Meeting, error)
	GetMeetingsByCreator(ctx context.Context, creatorID uuid.UUID, status string, qp params.QueryParams) ([]entity.Meeting, int, error)
	UpdateMeeting(ctx context.Context, meeting *entity.Meeting) error
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.MeetingStatus) error
	DeleteMeeting(ctx context.Context, id uuid.UUID) error
	ListActiveMeetingIDs(ctx context.Context) ([]uuid.UUID, error)

	// Participants
	UpsertParticipant(ctx context.Context, participant *entity.Participant) (*entity.Participant, error)
	GetParticipantByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error)
	GetParticipantsByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]entity.Participant, error)
	RemoveParticipant(ctx context.Context, meetingID, participantID uuid.UUID) error
	GetResponseCounts(ctx context.Context, meetingIDs []uuid.UUID) (map[uuid.UUID]ResponseCount, error)

	// Busy intervals
	GetBusyIntervalsByParticipant(ctx context.Context, participantID uuid.UUID) ([]entity.BusyInterval, error)
	GetBusyIntervalsForMeeting(ctx context.Context, meetingID uuid.UUID) (map[uuid.UUID][]entity.BusyInterval, error)

	// Aggregated slots
	GetSlotsByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]entity.SuggestedSlot, error)
	GetSlotByID(ctx context.Context, slotID uuid.UUID) (*entity.SuggestedSlot, error)
	GetLockedSlot(ctx context.Context, meetingID uuid.UUID) (*entity.SuggestedSlot, error)

	// Transactional flows
	RecomputeSnapshot(ctx context.Context, meetingID uuid.UUID, compute ComputeSnapshotFunc) ([]entity.SuggestedSlot, error)
	SubmitAvailability(ctx context.Context, meetingID, participantID uuid.UUID, intervals []entity.BusyInterval, compute ComputeSnapshotFunc) ([]entity.SuggestedSlot, error)
	LockSlot(ctx context.Context, meetingID, slotID uuid.UUID) (*entity.SuggestedSlot, error)
}

// ===================== Meetings =====================

func (r *MeetingRepository) CreateMeeting(ctx context.Context, meeting *entity.Meeting) (*entity.Meeting, error) {
	query := `
		INSERT INTO meetings (id, token, slug, title, description, status, duration_minutes, timezone,
		                      date_range_start, date_range_end, work_hours_start, work_hours_end,
		                      step_size_minutes, work_days_only, hide_participant_names,
		                      response_deadline, created_by_email, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, token, slug, title, description, status, duration_minutes, timezone,
		          date_range_start, date_range_end, work_hours_start, work_hours_end,
		          step_size_minutes, work_days_only, hide_participant_names,
		          response_deadline, created_by_email, creator_id, created_at, updated_at
	`

	var created entity.Meeting
	err := r.DB.GetContext(ctx, &created, query,
		meeting.ID, meeting.Token, meeting.Slug, meeting.Title, meeting.Description,
		meeting.Status, meeting.DurationMinutes, meeting.Timezone,
		meeting.DateRangeStart, meeting.DateRangeEnd, meeting.WorkHoursStart, meeting.WorkHoursEnd,
		meeting.StepSizeMinutes, meeting.WorkDaysOnly, meeting.HideParticipantNames,
		meeting.ResponseDeadline, meeting.CreatedByEmail, meeting.CreatorID)

	if err != nil {
		logger.Error("MeetingRepository:CreateMeeting", "error", err)
		return nil, err
	}

	return &created, nil
}

func (r *MeetingRepository) GetMeetingByID(ctx context.Context, id uuid.UUID) (*entity.Meeting, error) {
	query := `
		SELECT id, token, slug, title, description, status, duration_minutes, timezone,
		       date_range_start, date_range_end, work_hours_start, work_hours_end,
		       step_size_minutes, work_days_only, hide_participant_names,
		       response_deadline, created_by_email, creator_id, created_at, updated_at
		FROM meetings WHERE id = $1
	`

	var meeting entity.Meeting
	err := r.DB.GetContext(ctx, &meeting, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("MeetingRepository:GetMeetingByID", "error", err)
		return nil, err
	}

	return &meeting, nil
}

func (r *MeetingRepository) GetMeetingsByCreator(ctx context.Context, creatorID uuid.UUID, status string, qp params.QueryParams) ([]entity.Meeting, int, error) {
	countQuery := `
		SELECT COUNT(*) FROM meetings
		WHERE creator_id = $1
		  AND ($2 = '' OR status = $2)
		  AND ($3 = '' OR title ILIKE '%' || $3 || '%')
	`

	var total int
	if err := r.DB.GetContext(ctx, &total, countQuery, creatorID, status, qp.Search); err != nil {
		logger.Error("MeetingRepository:GetMeetingsByCreator:Count", "error", err)
		return nil, 0, err
	}

	query := `
		SELECT id, token, slug, title, description, status, duration_minutes, timezone,
		       date_range_start, date_range_end, work_hours_start, work_hours_end,
		       step_size_minutes, work_days_only, hide_participant_names,
		       response_deadline, created_by_email, creator_id, created_at, updated_at
		FROM meetings
		WHERE creator_id = $1
		  AND ($2 = '' OR status = $2)
		  AND ($3 = '' OR title ILIKE '%' || $3 || '%')
		ORDER BY created_at DESC
		LIMIT $4 OFFSET $5
	`

	offset := (qp.PageNumber - 1) * qp.PageSize
	var meetings []entity.Meeting
	if err := r.DB.SelectContext(ctx, &meetings, query, creatorID, status, qp.Search, qp.PageSize, offset); err != nil {
		logger.Error("MeetingRepository:GetMeetingsByCreator", "error", err)
		return nil, 0, err
	}

	return meetings, total, nil
}

func (r *MeetingRepository) UpdateMeeting(ctx context.Context, meeting *entity.Meeting) error {
	query := `
		UPDATE meetings
		SET title = $2, description = $3, duration_minutes = $4, timezone = $5,
		    date_range_start = $6, date_range_end = $7, work_hours_start = $8, work_hours_end = $9,
		    step_size_minutes = $10, work_days_only = $11, hide_participant_names = $12,
		    response_deadline = $13, created_by_email = $14, updated_at = now()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		meeting.ID, meeting.Title, meeting.Description, meeting.DurationMinutes, meeting.Timezone,
		meeting.DateRangeStart, meeting.DateRangeEnd, meeting.WorkHoursStart, meeting.WorkHoursEnd,
		meeting.StepSizeMinutes, meeting.WorkDaysOnly, meeting.HideParticipantNames,
		meeting.ResponseDeadline, meeting.CreatedByEmail)

	if err != nil {
		logger.Error("MeetingRepository:UpdateMeeting", "error", err)
		return err
	}

	return nil
}

// TransitionStatus moves a meeting between lifecycle states, guarded by the
// expected current state so concurrent transitions cannot double-apply.
func (r *MeetingRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.MeetingStatus) error {
	query := `UPDATE meetings SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`

	res, err := r.DB.SQLx().ExecContext(ctx, query, id, from, to)
	if err != nil {
		logger.Error("MeetingRepository:TransitionStatus", "error", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInvalidTransition
	}

	return nil
}

func (r *MeetingRepository) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM meetings WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("MeetingRepository:DeleteMeeting", "error", err)
		return err
	}
	return nil
}

func (r *MeetingRepository) ListActiveMeetingIDs(ctx context.Context) ([]uuid.UUID, error) {
	query := `SELECT id FROM meetings WHERE status = 'active' ORDER BY created_at`

	var ids []uuid.UUID
	if err := r.DB.SelectContext(ctx, &ids, query); err != nil {
		logger.Error("MeetingRepository:ListActiveMeetingIDs", "error", err)
		return nil, err
	}

	return ids, nil
}

// ===================== Participants =====================

// UpsertParticipant inserts a participant; when an email collides with an
// existing row of the same meeting the name and timezone are refreshed
// instead. Anonymous participants (NULL email) never collide.
func (r *MeetingRepository) UpsertParticipant(ctx context.Context, participant *entity.Participant) (*entity.Participant, error) {
	query := `
		INSERT INTO participants (id, meeting_id, name, email, timezone)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (meeting_id, email) DO UPDATE
		    SET name = EXCLUDED.name, timezone = EXCLUDED.timezone, updated_at = now()
		RETURNING id, meeting_id, name, email, timezone, has_responded, responded_at, created_at, updated_at
	`

	var saved entity.Participant
	err := r.DB.GetContext(ctx, &saved, query,
		participant.ID, participant.MeetingID, participant.Name, participant.Email, participant.Timezone)

	if err != nil {
		logger.Error("MeetingRepository:UpsertParticipant", "error", err)
		return nil, err
	}

	return &saved, nil
}

func (r *MeetingRepository) GetParticipantByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error) {
	query := `
		SELECT id, meeting_id, name, email, timezone, has_responded, responded_at, created_at, updated_at
		FROM participants WHERE id = $1
	`

	var participant entity.Participant
	err := r.DB.GetContext(ctx, &participant, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("MeetingRepository:GetParticipantByID", "error", err)
		return nil, err
	}

	return &participant, nil
}

func (r *MeetingRepository) GetParticipantsByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]entity.Participant, error) {
	query := `
		SELECT id, meeting_id, name, email, timezone, has_responded, responded_at, created_at, updated_at
		FROM participants
		WHERE meeting_id = $1
		ORDER BY created_at
	`

	var participants []entity.Participant
	if err := r.DB.SelectContext(ctx, &participants, query, meetingID); err != nil {
		logger.Error("MeetingRepository:GetParticipantsByMeetingID", "error", err)
		return nil, err
	}

	return participants, nil
}

func (r *MeetingRepository) RemoveParticipant(ctx context.Context, meetingID, participantID uuid.UUID) error {
	query := `DELETE FROM participants WHERE id = $1 AND meeting_id = $2`
	if err := r.DB.ExecContext(ctx, query, participantID, meetingID); err != nil {
		logger.Error("MeetingRepository:RemoveParticipant", "error", err)
		return err
	}
	return nil
}

func (r *MeetingRepository) GetResponseCounts(ctx context.Context, meetingIDs []uuid.UUID) (map[uuid.UUID]ResponseCount, error) {
	counts := make(map[uuid.UUID]ResponseCount, len(meetingIDs))
	if len(meetingIDs) == 0 {
		return counts, nil
	}

	query, args, err := sqlx.In(`
		SELECT meeting_id,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE has_responded) AS responded
		FROM participants
		WHERE meeting_id IN (?)
		GROUP BY meeting_id
	`, meetingIDs)
	if err != nil {
		logger.Error("MeetingRepository:GetResponseCounts", "error", err)
		return nil, err
	}

	query = r.DB.SQLx().Rebind(query)

	var rows []ResponseCount
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.Error("MeetingRepository:GetResponseCounts", "error", err)
		return nil, err
	}

	for _, row := range rows {
		counts[row.MeetingID] = row
	}

	return counts, nil
}

// ===================== Busy intervals =====================

func (r *MeetingRepository) GetBusyIntervalsByParticipant(ctx context.Context, participantID uuid.UUID) ([]entity.BusyInterval, error) {
	query := `
		SELECT id, participant_id, start_time, end_time, description, created_at
		FROM busy_intervals
		WHERE participant_id = $1
		ORDER BY start_time
	`

	var intervals []entity.BusyInterval
	if err := r.DB.SelectContext(ctx, &intervals, query, participantID); err != nil {
		logger.Error("MeetingRepository:GetBusyIntervalsByParticipant", "error", err)
		return nil, err
	}

	return intervals, nil
}

func (r *MeetingRepository) GetBusyIntervalsForMeeting(ctx context.Context, meetingID uuid.UUID) (map[uuid.UUID][]entity.BusyInterval, error) {
	query := `
		SELECT b.id, b.participant_id, b.start_time, b.end_time, b.description, b.created_at
		FROM busy_intervals b
		JOIN participants p ON p.id = b.participant_id
		WHERE p.meeting_id = $1
		ORDER BY b.start_time
	`

	var intervals []entity.BusyInterval
	if err := r.DB.SelectContext(ctx, &intervals, query, meetingID); err != nil {
		logger.Error("MeetingRepository:GetBusyIntervalsForMeeting", "error", err)
		return nil, err
	}

	grouped := make(map[uuid.UUID][]entity.BusyInterval)
	for _, interval := range intervals {
		grouped[interval.ParticipantID] = append(grouped[interval.ParticipantID], interval)
	}

	return grouped, nil
}

// ===================== Aggregated slots =====================

func (r *MeetingRepository) GetSlotsByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]entity.SuggestedSlot, error) {
	query := `
		SELECT id, meeting_id, start_time, end_time, available_count, total_participants, is_locked, calculated_at
		FROM suggested_slots
		WHERE meeting_id = $1
		ORDER BY available_count DESC, start_time ASC
	`

	var slots []entity.SuggestedSlot
	if err := r.DB.SelectContext(ctx, &slots, query, meetingID); err != nil {
		logger.Error("MeetingRepository:GetSlotsByMeetingID", "error", err)
		return nil, err
	}

	return slots, nil
}

func (r *MeetingRepository) GetSlotByID(ctx context.Context, slotID uuid.UUID) (*entity.SuggestedSlot, error) {
	query := `
		SELECT id, meeting_id, start_time, end_time, available_count, total_participants, is_locked, calculated_at
		FROM suggested_slots WHERE id = $1
	`

	var slot entity.SuggestedSlot
	err := r.DB.GetContext(ctx, &slot, query, slotID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("MeetingRepository:GetSlotByID", "error", err)
		return nil, err
	}

	return &slot, nil
}

func (r *MeetingRepository) GetLockedSlot(ctx context.Context, meetingID uuid.UUID) (*entity.SuggestedSlot, error) {
	query := `
		SELECT id, meeting_id, start_time, end_time, available_count, total_participants, is_locked, calculated_at
		FROM suggested_slots
		WHERE meeting_id = $1 AND is_locked = TRUE
	`

	var slot entity.SuggestedSlot
	err := r.DB.GetContext(ctx, &slot, query, meetingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("MeetingRepository:GetLockedSlot", "error", err)
		return nil, err
	}

	return &slot, nil
}

// ===================== Transactional flows =====================

// RecomputeSnapshot rebuilds the full aggregate snapshot inside one
// transaction. The meeting row is locked first: when it is no longer
// active the stored slots are returned untouched, which makes recompute on
// a locked meeting a no-op that yields the surviving locked slot.
func (r *MeetingRepository) RecomputeSnapshot(ctx context.Context, meetingID uuid.UUID, compute ComputeSnapshotFunc) ([]entity.SuggestedSlot, error) {
	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("MeetingRepository:RecomputeSnapshot:Begin", "error", err)
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	slots, err := r.recomputeTx(ctx, tx, meetingID, compute)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("MeetingRepository:RecomputeSnapshot:Commit", "error", err)
		return nil, err
	}

	return slots, nil
}

// SubmitAvailability wholesale-replaces a participant's busy intervals,
// marks them responded, and recomputes the snapshot, all in one
// transaction so the aggregates always reflect a consistent read.
func (r *MeetingRepository) SubmitAvailability(ctx context.Context, meetingID, participantID uuid.UUID, intervals []entity.BusyInterval, compute ComputeSnapshotFunc) ([]entity.SuggestedSlot, error) {
	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("MeetingRepository:SubmitAvailability:Begin", "error", err)
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	status, err := r.lockMeetingTx(ctx, tx, meetingID)
	if err != nil {
		return nil, err
	}
	if status != entity.MeetingStatusActive {
		return nil, ErrMeetingNotActive
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM busy_intervals WHERE participant_id = $1`, participantID); err != nil {
		logger.Error("MeetingRepository:SubmitAvailability:Clear", "error", err)
		return nil, err
	}

	insertQuery := `
		INSERT INTO busy_intervals (id, participant_id, start_time, end_time, description)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, interval := range intervals {
		if _, err := tx.ExecContext(ctx, insertQuery,
			interval.ID, participantID, interval.StartTime, interval.EndTime, interval.Description); err != nil {
			logger.Error("MeetingRepository:SubmitAvailability:Insert", "error", err)
			return nil, err
		}
	}

	markQuery := `
		UPDATE participants
		SET has_responded = TRUE, responded_at = now(), updated_at = now()
		WHERE id = $1 AND meeting_id = $2
	`
	if _, err := tx.ExecContext(ctx, markQuery, participantID, meetingID); err != nil {
		logger.Error("MeetingRepository:SubmitAvailability:Mark", "error", err)
		return nil, err
	}

	slots, err := r.replaceSnapshotTx(ctx, tx, meetingID, compute)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("MeetingRepository:SubmitAvailability:Commit", "error", err)
		return nil, err
	}

	return slots, nil
}

// LockSlot finalizes a meeting on one slot: every sibling aggregate is
// deleted, the chosen slot is flagged, and the meeting transitions to
// locked. The meeting row lock makes this atomic against a concurrent
// recompute.
func (r *MeetingRepository) LockSlot(ctx context.Context, meetingID, slotID uuid.UUID) (*entity.SuggestedSlot, error) {
	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("MeetingRepository:LockSlot:Begin", "error", err)
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	status, err := r.lockMeetingTx(ctx, tx, meetingID)
	if err != nil {
		return nil, err
	}
	if status != entity.MeetingStatusActive {
		return nil, ErrMeetingNotActive
	}

	var slot entity.SuggestedSlot
	slotQuery := `
		SELECT id, meeting_id, start_time, end_time, available_count, total_participants, is_locked, calculated_at
		FROM suggested_slots
		WHERE id = $1 AND meeting_id = $2
	`
	if err := tx.GetContext(ctx, &slot, slotQuery, slotID, meetingID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSlotNotFound
		}
		logger.Error("MeetingRepository:LockSlot:Get", "error", err)
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM suggested_slots WHERE meeting_id = $1 AND id <> $2`, meetingID, slotID); err != nil {
		logger.Error("MeetingRepository:LockSlot:DeleteSiblings", "error", err)
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE suggested_slots SET is_locked = TRUE WHERE id = $1`, slotID); err != nil {
		logger.Error("MeetingRepository:LockSlot:Flag", "error", err)
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE meetings SET status = 'locked', updated_at = now() WHERE id = $1`, meetingID); err != nil {
		logger.Error("MeetingRepository:LockSlot:Status", "error", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("MeetingRepository:LockSlot:Commit", "error", err)
		return nil, err
	}

	slot.IsLocked = true
	return &slot, nil
}

// lockMeetingTx takes the row lock that serializes recompute, submit and
// lock against each other.
func (r *MeetingRepository) lockMeetingTx(ctx context.Context, tx *sqlx.Tx, meetingID uuid.UUID) (entity.MeetingStatus, error) {
	var status string
	err := tx.GetContext(ctx, &status, `SELECT status FROM meetings WHERE id = $1 FOR UPDATE`, meetingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrMeetingNotFound
		}
		logger.Error("MeetingRepository:lockMeetingTx", "error", err)
		return "", err
	}
	return entity.MeetingStatus(status), nil
}

func (r *MeetingRepository) recomputeTx(ctx context.Context, tx *sqlx.Tx, meetingID uuid.UUID, compute ComputeSnapshotFunc) ([]entity.SuggestedSlot, error) {
	status, err := r.lockMeetingTx(ctx, tx, meetingID)
	if err != nil {
		return nil, err
	}

	if status != entity.MeetingStatusActive {
		// No-op for locked, draft and cancelled meetings: return whatever
		// snapshot survives.
		var slots []entity.SuggestedSlot
		currentQuery := `
			SELECT id, meeting_id, start_time, end_time, available_count, total_participants, is_locked, calculated_at
			FROM suggested_slots
			WHERE meeting_id = $1
			ORDER BY available_count DESC, start_time ASC
		`
		if err := tx.SelectContext(ctx, &slots, currentQuery, meetingID); err != nil {
			logger.Error("MeetingRepository:recomputeTx:Current", "error", err)
			return nil, err
		}
		return slots, nil
	}

	return r.replaceSnapshotTx(ctx, tx, meetingID, compute)
}

// replaceSnapshotTx reads the responders and their intervals inside the
// transaction, lets the caller compute the snapshot, and swaps it in.
func (r *MeetingRepository) replaceSnapshotTx(ctx context.Context, tx *sqlx.Tx, meetingID uuid.UUID, compute ComputeSnapshotFunc) ([]entity.SuggestedSlot, error) {
	var participants []entity.Participant
	participantsQuery := `
		SELECT id, meeting_id, name, email, timezone, has_responded, responded_at, created_at, updated_at
		FROM participants
		WHERE meeting_id = $1
		ORDER BY created_at
	`
	if err := tx.SelectContext(ctx, &participants, participantsQuery, meetingID); err != nil {
		logger.Error("MeetingRepository:replaceSnapshotTx:Participants", "error", err)
		return nil, err
	}

	var intervals []entity.BusyInterval
	busyQuery := `
		SELECT b.id, b.participant_id, b.start_time, b.end_time, b.description, b.created_at
		FROM busy_intervals b
		JOIN participants p ON p.id = b.participant_id
		WHERE p.meeting_id = $1
		ORDER BY b.start_time
	`
	if err := tx.SelectContext(ctx, &intervals, busyQuery, meetingID); err != nil {
		logger.Error("MeetingRepository:replaceSnapshotTx:Busy", "error", err)
		return nil, err
	}

	busyByParticipant := make(map[uuid.UUID][]entity.BusyInterval)
	for _, interval := range intervals {
		busyByParticipant[interval.ParticipantID] = append(busyByParticipant[interval.ParticipantID], interval)
	}

	slots := compute(participants, busyByParticipant)

	if _, err := tx.ExecContext(ctx, `DELETE FROM suggested_slots WHERE meeting_id = $1`, meetingID); err != nil {
		logger.Error("MeetingRepository:replaceSnapshotTx:Clear", "error", err)
		return nil, err
	}

	insertQuery := `
		INSERT INTO suggested_slots (id, meeting_id, start_time, end_time, available_count, total_participants, is_locked, calculated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, slot := range slots {
		if _, err := tx.ExecContext(ctx, insertQuery,
			slot.ID, slot.MeetingID, slot.StartTime, slot.EndTime,
			slot.AvailableCount, slot.TotalParticipants, slot.IsLocked, slot.CalculatedAt); err != nil {
			logger.Error("MeetingRepository:replaceSnapshotTx:Insert", "error", err)
			return nil, err
		}
	}

	return slots, nil
}
