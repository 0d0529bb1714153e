package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"timeweave/core/cache"
	"timeweave/core/constants"
	"timeweave/core/errors"
	"timeweave/core/logger"
	"timeweave/core/params"
	"timeweave/core/queue"
	"timeweave/core/storage"
	"timeweave/core/utils"
	"timeweave/modules/meeting/dto"
	"timeweave/modules/meeting/entity"
	"timeweave/modules/meeting/repository"
	notifdto "timeweave/modules/notification/dto"
	notifservice "timeweave/modules/notification/service"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// MeetingService handles meeting business logic for both the creator
// dashboard and the public respond flow.
type MeetingService struct {
	repo    repository.MeetingRepositoryInterface
	engine  *SlotEngine
	cache   *cache.Cache
	queue   *queue.Queue
	storage *storage.S3Storage
	notif   *notifservice.NotificationService
	baseURL string
}

// MeetingServiceInterface defines the service contract
type MeetingServiceInterface interface {
	// Sessions
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, *errors.AppError)

	// Creator lifecycle
	CreateMeeting(ctx context.Context, creatorID uuid.UUID, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, *errors.AppError)
	GetMeeting(ctx context.Context, meetingID, creatorID uuid.UUID) (*dto.MeetingDetailResponse, *errors.AppError)
	ListMeetings(ctx context.Context, creatorID uuid.UUID, status string, qp params.QueryParams) (*dto.PaginatedMeetingResponse, *errors.AppError)
	UpdateMeeting(ctx context.Context, meetingID, creatorID uuid.UUID, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, *errors.AppError)
	DeleteMeeting(ctx context.Context, meetingID, creatorID uuid.UUID) *errors.AppError
	PublishMeeting(ctx context.Context, meetingID, creatorID uuid.UUID) (*dto.MeetingResponse, *errors.AppError)
	CancelMeeting(ctx context.Context, meetingID, creatorID uuid.UUID) (*dto.MeetingResponse, *errors.AppError)
	LockSlot(ctx context.Context, meetingID, slotID, creatorID uuid.UUID) (*dto.MeetingDetailResponse, *errors.AppError)

	// Participants managed by the creator
	AddParticipant(ctx context.Context, meetingID, creatorID uuid.UUID, req *dto.ParticipantInput) (*dto.ParticipantResponse, *errors.AppError)
	AddParticipantsBulk(ctx context.Context, meetingID, creatorID uuid.UUID, req *dto.BulkParticipantsRequest) ([]dto.ParticipantResponse, *errors.AppError)
	ListParticipants(ctx context.Context, meetingID, creatorID uuid.UUID) ([]dto.ParticipantResponse, *errors.AppError)
	RemoveParticipant(ctx context.Context, meetingID, participantID, creatorID uuid.UUID) *errors.AppError

	// Public respond flow
	GetPublicMeeting(ctx context.Context, meetingID uuid.UUID, token string) (*dto.PublicMeetingResponse, *errors.AppError)
	JoinMeeting(ctx context.Context, meetingID uuid.UUID, token string, req *dto.JoinMeetingRequest) (*dto.ParticipantResponse, *errors.AppError)
	SubmitAvailability(ctx context.Context, participantID uuid.UUID, source string, req *dto.SubmitAvailabilityRequest) (*dto.SuggestionsResponse, *errors.AppError)
	SubmitParsedAvailability(ctx context.Context, participantID uuid.UUID, intervals []entity.BusyInterval) (*dto.SuggestionsResponse, *errors.AppError)
	GetOwnBusyIntervals(ctx context.Context, participantID uuid.UUID) (*dto.BusyIntervalsResponse, *errors.AppError)
	GetHeatmap(ctx context.Context, meetingID uuid.UUID, timezone string) (*HeatmapGrid, *errors.AppError)
	GetSuggestions(ctx context.Context, meetingID uuid.UUID, limit int, minPct float64) (*dto.SuggestionsResponse, *errors.AppError)
	ExportICS(ctx context.Context, meetingID uuid.UUID) ([]byte, string, *errors.AppError)
	RefreshActiveMeetings(ctx context.Context) (int, error)

	// Background task handlers
	HandleInvitationEmail(ctx context.Context, task *asynq.Task) error
	HandleLockedEmail(ctx context.Context, task *asynq.Task) error
	HandleAvailabilityRefresh(ctx context.Context, task *asynq.Task) error
}

// NewMeetingService creates a new meeting service. Cache, queue, storage and
// notifications are optional; a nil value disables that side channel.
func NewMeetingService(
	repo repository.MeetingRepositoryInterface,
	c *cache.Cache,
	q *queue.Queue,
	st *storage.S3Storage,
	notif *notifservice.NotificationService,
	baseURL string,
) MeetingServiceInterface {
	return &MeetingService{
		repo:    repo,
		engine:  NewSlotEngine(),
		cache:   c,
		queue:   q,
		storage: st,
		notif:   notif,
		baseURL: baseURL,
	}
}

// CreateSession mints a creator identity and the token that authorizes the
// private endpoints. There are no accounts: whoever holds the token owns the
// meetings created with it.
func (s *MeetingService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, *errors.AppError) {
	creatorID := uuid.New()

	token, err := utils.GenerateToken(creatorID, constants.ScopeTokenCreator)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create session", err)
	}

	return &dto.SessionResponse{
		CreatorID: creatorID.String(),
		Token:     token,
	}, nil
}

// CreateMeeting creates a meeting in draft state, optionally with an initial
// participant list, and publishes it immediately when requested.
func (s *MeetingService) CreateMeeting(ctx context.Context, creatorID uuid.UUID, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, *errors.AppError) {
	meeting := &entity.Meeting{
		ID:                   uuid.New(),
		Token:                utils.GenerateShareToken(),
		Slug:                 utils.GenerateSlug(req.Title),
		Title:                req.Title,
		Description:          req.Description,
		Status:               entity.MeetingStatusDraft,
		DurationMinutes:      req.DurationMinutes,
		Timezone:             req.Timezone,
		WorkHoursStart:       req.WorkHoursStart,
		WorkHoursEnd:         req.WorkHoursEnd,
		StepSizeMinutes:      req.StepSizeMinutes,
		WorkDaysOnly:         true,
		HideParticipantNames: req.HideParticipantNames,
		CreatedByEmail:       req.CreatedByEmail,
		CreatorID:            creatorID,
	}

	if req.WorkDaysOnly != nil {
		meeting.WorkDaysOnly = *req.WorkDaysOnly
	}
	if req.Publish {
		meeting.Status = entity.MeetingStatusActive
	}
	applyMeetingDefaults(meeting)

	start, err := parseDate(req.DateRangeStart)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "date_range_start must be YYYY-MM-DD", err)
	}
	end, err := parseDate(req.DateRangeEnd)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "date_range_end must be YYYY-MM-DD", err)
	}
	meeting.DateRangeStart = start
	meeting.DateRangeEnd = end

	if req.ResponseDeadline != nil && *req.ResponseDeadline != "" {
		deadline, err := time.Parse(time.RFC3339, *req.ResponseDeadline)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "response_deadline must be RFC3339", err)
		}
		utcDeadline := deadline.UTC()
		if utcDeadline.Before(time.Now()) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "response_deadline must be in the future", nil)
		}
		meeting.ResponseDeadline = &utcDeadline
	}

	if appErr := validateMeetingConfig(meeting); appErr != nil {
		return nil, appErr
	}

	created, err := s.repo.CreateMeeting(ctx, meeting)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create meeting", err)
	}

	invited := make([]entity.Participant, 0, len(req.Participants))
	for _, input := range req.Participants {
		participant, appErr := s.upsertParticipant(ctx, created, &input)
		if appErr != nil {
			logger.Warn("MeetingService:CreateMeeting:participant", "error", appErr)
			continue
		}
		invited = append(invited, *participant)
	}

	if created.Status == entity.MeetingStatusActive {
		s.enqueueInvitations(ctx, created, invited)
	}

	return dto.ToMeetingResponse(created, s.baseURL), nil
}

// GetMeeting returns the creator view: configuration, participants, and a
// freshly recomputed top of the ranking.
func (s *MeetingService) GetMeeting(ctx context.Context, meetingID, creatorID uuid.UUID) (*dto.MeetingDetailResponse, *errors.AppError) {
	meeting, appErr := s.getOwnedMeeting(ctx, meetingID, creatorID)
	if appErr != nil {
		return nil, appErr
	}

	var slots []entity.SuggestedSlot
	var err error
	if meeting.CanRecompute() {
		slots, err = s.repo.RecomputeSnapshot(ctx, meetingID, s.snapshotFunc(meeting))
		if err == nil {
			s.bumpVersion(ctx, meetingID)
		}
	} else {
		slots, err = s.repo.GetSlotsByMeetingID(ctx, meetingID)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load suggestions", err)
	}

	participants, err := s.repo.GetParticipantsByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load participants", err)
	}

	return s.buildDetail(meeting, participants, slots), nil
}

// ListMeetings returns the creator dashboard with per-meeting response rates.
func (s *MeetingService) ListMeetings(ctx context.Context, creatorID uuid.UUID, status string, qp params.QueryParams) (*dto.PaginatedMeetingResponse, *errors.AppError) {
	meetings, total, err := s.repo.GetMeetingsByCreator(ctx, creatorID, status, qp)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list meetings", err)
	}

	ids := make([]uuid.UUID, 0, len(meetings))
	for i := range meetings {
		ids = append(ids, meetings[i].ID)
	}

	counts, err := s.repo.GetResponseCounts(ctx, ids)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load response counts", err)
	}

	items := make([]dto.MeetingListItem, 0, len(meetings))
	for i := range meetings {
		count := counts[meetings[i].ID]
		items = append(items, dto.MeetingListItem{
			MeetingResponse:  *dto.ToMeetingResponse(&meetings[i], s.baseURL),
			ParticipantCount: count.Total,
			RespondedCount:   count.Responded,
			ResponseRate:     responseRate(count.Responded, count.Total),
		})
	}

	return &dto.PaginatedMeetingResponse{
		Items:      items,
		TotalItems: total,
		PageNumber: qp.PageNumber,
		PageSize:   qp.PageSize,
	}, nil
}

// UpdateMeeting applies a partial update. Locked and cancelled meetings can
// no longer be edited; updating an active meeting invalidates its aggregates.
func (s *MeetingService) UpdateMeeting(ctx context.Context, meetingID, creatorID uuid.UUID, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, *errors.AppError) {
	meeting, appErr := s.getOwnedMeeting(ctx, meetingID, creatorID)
	if appErr != nil {
		return nil, appErr
	}

	if !meeting.IsEditable() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Meeting can no longer be edited", nil)
	}

	if req.Title != nil {
		meeting.Title = *req.Title
	}
	if req.Description != nil {
		meeting.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		meeting.DurationMinutes = *req.DurationMinutes
	}
	if req.Timezone != nil {
		meeting.Timezone = *req.Timezone
	}
	if req.WorkHoursStart != nil {
		meeting.WorkHoursStart = *req.WorkHoursStart
	}
	if req.WorkHoursEnd != nil {
		meeting.WorkHoursEnd = *req.WorkHoursEnd
	}
	if req.StepSizeMinutes != nil {
		meeting.StepSizeMinutes = *req.StepSizeMinutes
	}
	if req.WorkDaysOnly != nil {
		meeting.WorkDaysOnly = *req.WorkDaysOnly
	}
	if req.HideParticipantNames != nil {
		meeting.HideParticipantNames = *req.HideParticipantNames
	}
	if req.CreatedByEmail != nil {
		meeting.CreatedByEmail = *req.CreatedByEmail
	}

	if req.DateRangeStart != nil {
		start, err := parseDate(*req.DateRangeStart)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "date_range_start must be YYYY-MM-DD", err)
		}
		meeting.DateRangeStart = start
	}
	if req.DateRangeEnd != nil {
		end, err := parseDate(*req.DateRangeEnd)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "date_range_end must be YYYY-MM-DD", err)
		}
		meeting.DateRangeEnd = end
	}

	if req.ResponseDeadline != nil {
		if *req.ResponseDeadline == "" {
			meeting.ResponseDeadline = nil
		} else {
			deadline, err := time.Parse(time.RFC3339, *req.ResponseDeadline)
			if err != nil {
				return nil, errors.NewAppError(errors.ErrInvalidInput, "response_deadline must be RFC3339", err)
			}
			utcDeadline := deadline.UTC()
			if utcDeadline.Before(time.Now()) {
				return nil, errors.NewAppError(errors.ErrInvalidInput, "response_deadline must be in the future", nil)
			}
			meeting.ResponseDeadline = &utcDeadline
		}
	}

	if appErr := validateMeetingConfig(meeting); appErr != nil {
		return nil, appErr
	}

	if err := s.repo.UpdateMeeting(ctx, meeting); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update meeting", err)
	}

	// Slot configuration may have changed, so the stored aggregates are stale.
	if meeting.CanRecompute() {
		if _, err := s.repo.RecomputeSnapshot(ctx, meetingID, s.snapshotFunc(meeting)); err != nil {
			logger.Warn("MeetingService:UpdateMeeting:recompute", "error", err)
		}
		s.bumpVersion(ctx, meetingID)
	}

	return dto.ToMeetingResponse(meeting, s.baseURL), nil
}

// DeleteMeeting removes a meeting and, through cascades, everything under it.
func (s *MeetingService) DeleteMeeting(ctx context.Context, meetingID, creatorID uuid.UUID) *errors.AppError {
	if _, appErr := s.getOwnedMeeting(ctx, meetingID, creatorID); appErr != nil {
		return appErr
	}

	if err := s.repo.DeleteMeeting(ctx, meetingID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete meeting", err)
	}

	s.bumpVersion(ctx, meetingID)
	return nil
}

// PublishMeeting opens a draft for responses and sends the invitations.
func (s *MeetingService) PublishMeeting(ctx context.Context, meetingID, creatorID uuid.UUID) (*dto.MeetingResponse, *errors.AppError) {
	meeting, appErr := s.getOwnedMeeting(ctx, meetingID, creatorID)
	if appErr != nil {
		return nil, appErr
	}

	if !meeting.CanTransitionTo(entity.MeetingStatusActive) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Only draft meetings can be published", nil)
	}

	if err := s.repo.TransitionStatus(ctx, meetingID, entity.MeetingStatusDraft, entity.MeetingStatusActive); err != nil {
		if err == repository.ErrInvalidTransition {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Only draft meetings can be published", nil)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to publish meeting", err)
	}
	meeting.Status = entity.MeetingStatusActive

	participants, err := s.repo.GetParticipantsByMeetingID(ctx, meetingID)
	if err != nil {
		logger.Warn("MeetingService:PublishMeeting:participants", "error", err)
	} else {
		s.enqueueInvitations(ctx, meeting, participants)
	}

	return dto.ToMeetingResponse(meeting, s.baseURL), nil
}

// CancelMeeting cancels an active meeting. The state is terminal but the
// meeting stays readable.
func (s *MeetingService) CancelMeeting(ctx context.Context, meetingID, creatorID uuid.UUID) (*dto.MeetingResponse, *errors.AppError) {
	meeting, appErr := s.getOwnedMeeting(ctx, meetingID, creatorID)
	if appErr != nil {
		return nil, appErr
	}

	if !meeting.CanTransitionTo(entity.MeetingStatusCancelled) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Only active meetings can be cancelled", nil)
	}

	if err := s.repo.TransitionStatus(ctx, meetingID, entity.MeetingStatusActive, entity.MeetingStatusCancelled); err != nil {
		if err == repository.ErrInvalidTransition {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Only active meetings can be cancelled", nil)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to cancel meeting", err)
	}
	meeting.Status = entity.MeetingStatusCancelled

	s.bumpVersion(ctx, meetingID)
	return dto.ToMeetingResponse(meeting, s.baseURL), nil
}

// LockSlot finalizes the meeting on one suggested slot. Every other slot is
// discarded, participants are notified, and the confirmed event is archived.
func (s *MeetingService) LockSlot(ctx context.Context, meetingID, slotID, creatorID uuid.UUID) (*dto.MeetingDetailResponse, *errors.AppError) {
	meeting, appErr := s.getOwnedMeeting(ctx, meetingID, creatorID)
	if appErr != nil {
		return nil, appErr
	}

	locked, err := s.repo.LockSlot(ctx, meetingID, slotID)
	if err != nil {
		switch err {
		case repository.ErrMeetingNotActive:
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Only active meetings can be locked", nil)
		case repository.ErrSlotNotFound:
			return nil, errors.NewAppError(errors.ErrNotFound, "Slot not found", nil)
		case repository.ErrMeetingNotFound:
			return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
		default:
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to lock slot", err)
		}
	}
	meeting.Status = entity.MeetingStatusLocked

	s.bumpVersion(ctx, meetingID)
	s.notifyCreator(ctx, meeting, "meeting_locked",
		"Đã chốt lịch họp",
		fmt.Sprintf("\"%s\" đã được chốt vào %s", meeting.Title, formatSlotRange(meeting, locked)),
		map[string]any{"slot_id": locked.ID.String()})

	if s.queue != nil {
		if err := s.queue.EnqueueLockedEmail(ctx, queue.LockedEmailPayload{MeetingID: meetingID}); err != nil {
			logger.Warn("MeetingService:LockSlot:enqueue", "error", err)
		}
	}
	s.archiveLockedMeeting(ctx, meeting, locked)

	participants, err := s.repo.GetParticipantsByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load participants", err)
	}

	return s.buildDetail(meeting, participants, []entity.SuggestedSlot{*locked}), nil
}

// ===================== Participants =====================

// AddParticipant invites one participant to a meeting.
func (s *MeetingService) AddParticipant(ctx context.Context, meetingID, creatorID uuid.UUID, req *dto.ParticipantInput) (*dto.ParticipantResponse, *errors.AppError) {
	meeting, appErr := s.getOwnedMeeting(ctx, meetingID, creatorID)
	if appErr != nil {
		return nil, appErr
	}
	if !meeting.IsEditable() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Meeting can no longer be edited", nil)
	}

	participant, appErr := s.upsertParticipant(ctx, meeting, req)
	if appErr != nil {
		return nil, appErr
	}

	if meeting.Status == entity.MeetingStatusActive {
		s.enqueueInvitations(ctx, meeting, []entity.Participant{*participant})
	}

	return dto.ToParticipantResponse(participant), nil
}

// AddParticipantsBulk invites several participants in one call.
func (s *MeetingService) AddParticipantsBulk(ctx context.Context, meetingID, creatorID uuid.UUID, req *dto.BulkParticipantsRequest) ([]dto.ParticipantResponse, *errors.AppError) {
	meeting, appErr := s.getOwnedMeeting(ctx, meetingID, creatorID)
	if appErr != nil {
		return nil, appErr
	}
	if !meeting.IsEditable() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Meeting can no longer be edited", nil)
	}

	added := make([]entity.Participant, 0, len(req.Participants))
	result := make([]dto.ParticipantResponse, 0, len(req.Participants))
	for _, input := range req.Participants {
		participant, appErr := s.upsertParticipant(ctx, meeting, &input)
		if appErr != nil {
			logger.Warn("MeetingService:AddParticipantsBulk", "error", appErr)
			continue
		}
		added = append(added, *participant)
		result = append(result, *dto.ToParticipantResponse(participant))
	}

	if meeting.Status == entity.MeetingStatusActive {
		s.enqueueInvitations(ctx, meeting, added)
	}

	return result, nil
}

// ListParticipants returns all participants of an owned meeting.
func (s *MeetingService) ListParticipants(ctx context.Context, meetingID, creatorID uuid.UUID) ([]dto.ParticipantResponse, *errors.AppError) {
	if _, appErr := s.getOwnedMeeting(ctx, meetingID, creatorID); appErr != nil {
		return nil, appErr
	}

	participants, err := s.repo.GetParticipantsByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load participants", err)
	}

	result := make([]dto.ParticipantResponse, 0, len(participants))
	for i := range participants {
		result = append(result, *dto.ToParticipantResponse(&participants[i]))
	}
	return result, nil
}

// RemoveParticipant removes a participant. When a responder is removed from
// an active meeting the aggregates are rebuilt without them.
func (s *MeetingService) RemoveParticipant(ctx context.Context, meetingID, participantID, creatorID uuid.UUID) *errors.AppError {
	meeting, appErr := s.getOwnedMeeting(ctx, meetingID, creatorID)
	if appErr != nil {
		return appErr
	}

	participant, err := s.repo.GetParticipantByID(ctx, participantID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to load participant", err)
	}
	if participant == nil || participant.MeetingID != meetingID {
		return errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}

	if err := s.repo.RemoveParticipant(ctx, meetingID, participantID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to remove participant", err)
	}

	if participant.HasResponded && meeting.CanRecompute() {
		if _, err := s.repo.RecomputeSnapshot(ctx, meetingID, s.snapshotFunc(meeting)); err != nil {
			logger.Warn("MeetingService:RemoveParticipant:recompute", "error", err)
		}
		s.bumpVersion(ctx, meetingID)
	}

	return nil
}

// ===================== Helpers =====================

func (s *MeetingService) getOwnedMeeting(ctx context.Context, meetingID, creatorID uuid.UUID) (*entity.Meeting, *errors.AppError) {
	meeting, err := s.repo.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}
	if meeting.CreatorID != creatorID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not authorized", nil)
	}
	return meeting, nil
}

func (s *MeetingService) upsertParticipant(ctx context.Context, meeting *entity.Meeting, input *dto.ParticipantInput) (*entity.Participant, *errors.AppError) {
	participant := &entity.Participant{
		ID:        uuid.New(),
		MeetingID: meeting.ID,
		Name:      input.Name,
		Timezone:  input.Timezone,
	}
	if participant.Timezone == "" {
		participant.Timezone = meeting.Timezone
	}
	if _, err := time.LoadLocation(participant.Timezone); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown timezone: "+participant.Timezone, err)
	}
	if input.Email != "" {
		email := input.Email
		participant.Email = &email
	}

	saved, err := s.repo.UpsertParticipant(ctx, participant)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to add participant", err)
	}
	return saved, nil
}

// snapshotFunc adapts the engine to the repository's transactional callback.
func (s *MeetingService) snapshotFunc(meeting *entity.Meeting) repository.ComputeSnapshotFunc {
	return func(participants []entity.Participant, busyByParticipant map[uuid.UUID][]entity.BusyInterval) []entity.SuggestedSlot {
		return s.engine.BuildSnapshot(meeting, participants, busyByParticipant)
	}
}

func (s *MeetingService) bumpVersion(ctx context.Context, meetingID uuid.UUID) {
	if s.cache == nil {
		return
	}
	s.cache.BumpMeetingVersion(ctx, meetingID)
}

func (s *MeetingService) notifyCreator(ctx context.Context, meeting *entity.Meeting, notifType, title, message string, data map[string]any) {
	if s.notif == nil {
		return
	}
	req := &notifdto.CreateNotificationRequest{
		CreatorID: meeting.CreatorID,
		MeetingID: &meeting.ID,
		Title:     title,
		Message:   message,
		Type:      notifType,
		Data:      data,
	}
	if err := s.notif.Create(ctx, req); err != nil {
		logger.Warn("MeetingService:notifyCreator", "error", err)
	}
}

func (s *MeetingService) enqueueInvitations(ctx context.Context, meeting *entity.Meeting, participants []entity.Participant) {
	if s.queue == nil {
		return
	}
	for i := range participants {
		if participants[i].Email == nil {
			continue
		}
		payload := queue.InvitationEmailPayload{
			MeetingID:     meeting.ID,
			ParticipantID: participants[i].ID,
		}
		if err := s.queue.EnqueueInvitationEmail(ctx, payload); err != nil {
			logger.Warn("MeetingService:enqueueInvitations", "error", err)
		}
	}
}

// archiveLockedMeeting uploads the confirmed event as an .ics file. Failures
// only log; archival never blocks the lock.
func (s *MeetingService) archiveLockedMeeting(ctx context.Context, meeting *entity.Meeting, slot *entity.SuggestedSlot) {
	if s.storage == nil {
		return
	}
	payload, err := BuildLockedICS(meeting, slot)
	if err != nil {
		logger.Warn("MeetingService:archiveLockedMeeting", "error", err)
		return
	}
	key := fmt.Sprintf("archives/meetings/%s/%s.ics", meeting.ID, meeting.Slug)
	if err := s.storage.Upload(ctx, key, "text/calendar", payload); err != nil {
		logger.Warn("MeetingService:archiveLockedMeeting", "error", err)
	}
}

func (s *MeetingService) buildDetail(meeting *entity.Meeting, participants []entity.Participant, slots []entity.SuggestedSlot) *dto.MeetingDetailResponse {
	responded := 0
	for i := range participants {
		if participants[i].HasResponded {
			responded++
		}
	}

	detail := &dto.MeetingDetailResponse{
		MeetingResponse: *dto.ToMeetingResponse(meeting, s.baseURL),
		Participants:    make([]dto.ParticipantResponse, 0, len(participants)),
		Suggestions:     dto.ToSlotResponses(RankSuggestions(slots, constants.DefaultSuggestionLimit, 0)),
		ResponseRate:    responseRate(responded, len(participants)),
	}
	for i := range participants {
		detail.Participants = append(detail.Participants, *dto.ToParticipantResponse(&participants[i]))
	}
	for i := range slots {
		if slots[i].IsLocked {
			detail.LockedSlot = dto.ToSlotResponse(&slots[i])
			break
		}
	}
	return detail
}

func applyMeetingDefaults(m *entity.Meeting) {
	if m.DurationMinutes == 0 {
		m.DurationMinutes = constants.DefaultDurationMins
	}
	if m.Timezone == "" {
		m.Timezone = constants.DefaultTimezone
	}
	if m.WorkHoursStart == "" {
		m.WorkHoursStart = constants.DefaultWorkHoursStart
	}
	if m.WorkHoursEnd == "" {
		m.WorkHoursEnd = constants.DefaultWorkHoursEnd
	}
	if m.StepSizeMinutes == 0 {
		m.StepSizeMinutes = constants.DefaultStepMinutes
	}
}

// validateMeetingConfig enforces the bounds that keep slot generation sane.
func validateMeetingConfig(m *entity.Meeting) *errors.AppError {
	if m.Title == "" {
		return errors.NewAppError(errors.ErrInvalidInput, "title is required", nil)
	}
	if len(m.Title) > constants.MaxTitleLength {
		return errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("title must be at most %d characters", constants.MaxTitleLength), nil)
	}
	if m.DurationMinutes < constants.MinDurationMinutes || m.DurationMinutes > constants.MaxDurationMinutes {
		return errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("duration_minutes must be between %d and %d", constants.MinDurationMinutes, constants.MaxDurationMinutes), nil)
	}
	switch m.StepSizeMinutes {
	case 15, 30, 60:
	default:
		return errors.NewAppError(errors.ErrInvalidInput, "step_size_minutes must be 15, 30 or 60", nil)
	}
	if _, err := time.LoadLocation(m.Timezone); err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "unknown timezone: "+m.Timezone, err)
	}
	if m.DateRangeEnd.Before(m.DateRangeStart) {
		return errors.NewAppError(errors.ErrInvalidInput, "date_range_end must not be before date_range_start", nil)
	}
	if int(m.DateRangeEnd.Sub(m.DateRangeStart).Hours()/24) > constants.MaxDateRangeDays {
		return errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("date range must not exceed %d days", constants.MaxDateRangeDays), nil)
	}

	startHour, startMin, ok := parseClock(m.WorkHoursStart)
	if !ok {
		return errors.NewAppError(errors.ErrInvalidInput, "work_hours_start must be HH:MM", nil)
	}
	endHour, endMin, ok := parseClock(m.WorkHoursEnd)
	if !ok {
		return errors.NewAppError(errors.ErrInvalidInput, "work_hours_end must be HH:MM", nil)
	}
	if endHour*60+endMin <= startHour*60+startMin {
		return errors.NewAppError(errors.ErrInvalidInput, "work_hours_end must be after work_hours_start", nil)
	}
	if m.DurationMinutes > (endHour*60+endMin)-(startHour*60+startMin) {
		return errors.NewAppError(errors.ErrInvalidInput, "duration_minutes must fit inside the work hours window", nil)
	}

	return nil
}

func parseDate(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", raw)
}

func responseRate(responded, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(responded) / float64(total) * 100))
}

func formatSlotRange(m *entity.Meeting, slot *entity.SuggestedSlot) string {
	loc, err := time.LoadLocation(m.Timezone)
	if err != nil {
		loc = time.UTC
	}
	start := slot.StartTime.In(loc)
	end := slot.EndTime.In(loc)
	return fmt.Sprintf("%s - %s ngày %s", start.Format("15h04"), end.Format("15h04"), start.Format("02/01/2006"))
}
