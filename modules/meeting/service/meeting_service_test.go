package service

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"timeweave/core/config"
	"timeweave/core/constants"
	"timeweave/core/errors"
	"timeweave/core/params"
	"timeweave/core/utils"
	"timeweave/modules/meeting/dto"
	"timeweave/modules/meeting/entity"
	"timeweave/modules/meeting/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo backs service tests without Postgres. It mirrors the SQL
// semantics the real repository relies on: copies in and out, participant
// order by insertion, slots ordered by count then start, and the
// active-status guards of the transactional flows.
type memoryRepo struct {
	meetings     []*entity.Meeting
	participants []*entity.Participant
	busy         map[uuid.UUID][]entity.BusyInterval
	slots        map[uuid.UUID][]entity.SuggestedSlot
	recomputes   int
}

var _ repository.MeetingRepositoryInterface = (*memoryRepo)(nil)

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		busy:  make(map[uuid.UUID][]entity.BusyInterval),
		slots: make(map[uuid.UUID][]entity.SuggestedSlot),
	}
}

func (r *memoryRepo) findMeeting(id uuid.UUID) *entity.Meeting {
	for _, m := range r.meetings {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (r *memoryRepo) CreateMeeting(_ context.Context, meeting *entity.Meeting) (*entity.Meeting, error) {
	stored := *meeting
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.meetings = append(r.meetings, &stored)
	out := stored
	return &out, nil
}

func (r *memoryRepo) GetMeetingByID(_ context.Context, id uuid.UUID) (*entity.Meeting, error) {
	m := r.findMeeting(id)
	if m == nil {
		return nil, nil
	}
	out := *m
	return &out, nil
}

func (r *memoryRepo) GetMeetingsByCreator(_ context.Context, creatorID uuid.UUID, status string, qp params.QueryParams) ([]entity.Meeting, int, error) {
	var matched []entity.Meeting
	for _, m := range r.meetings {
		if m.CreatorID != creatorID {
			continue
		}
		if status != "" && string(m.Status) != status {
			continue
		}
		if qp.Search != "" && !strings.Contains(strings.ToLower(m.Title), strings.ToLower(qp.Search)) {
			continue
		}
		matched = append(matched, *m)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	offset := (qp.PageNumber - 1) * qp.PageSize
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + qp.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *memoryRepo) UpdateMeeting(_ context.Context, meeting *entity.Meeting) error {
	m := r.findMeeting(meeting.ID)
	if m == nil {
		return nil
	}
	m.Title = meeting.Title
	m.Description = meeting.Description
	m.DurationMinutes = meeting.DurationMinutes
	m.Timezone = meeting.Timezone
	m.DateRangeStart = meeting.DateRangeStart
	m.DateRangeEnd = meeting.DateRangeEnd
	m.WorkHoursStart = meeting.WorkHoursStart
	m.WorkHoursEnd = meeting.WorkHoursEnd
	m.StepSizeMinutes = meeting.StepSizeMinutes
	m.WorkDaysOnly = meeting.WorkDaysOnly
	m.HideParticipantNames = meeting.HideParticipantNames
	m.ResponseDeadline = meeting.ResponseDeadline
	m.CreatedByEmail = meeting.CreatedByEmail
	m.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memoryRepo) TransitionStatus(_ context.Context, id uuid.UUID, from, to entity.MeetingStatus) error {
	m := r.findMeeting(id)
	if m == nil || m.Status != from {
		return repository.ErrInvalidTransition
	}
	m.Status = to
	return nil
}

func (r *memoryRepo) DeleteMeeting(_ context.Context, id uuid.UUID) error {
	meetings := r.meetings[:0]
	for _, m := range r.meetings {
		if m.ID != id {
			meetings = append(meetings, m)
		}
	}
	r.meetings = meetings

	participants := r.participants[:0]
	for _, p := range r.participants {
		if p.MeetingID == id {
			delete(r.busy, p.ID)
			continue
		}
		participants = append(participants, p)
	}
	r.participants = participants
	delete(r.slots, id)
	return nil
}

func (r *memoryRepo) ListActiveMeetingIDs(_ context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, m := range r.meetings {
		if m.Status == entity.MeetingStatusActive {
			ids = append(ids, m.ID)
		}
	}
	return ids, nil
}

func (r *memoryRepo) UpsertParticipant(_ context.Context, participant *entity.Participant) (*entity.Participant, error) {
	now := time.Now().UTC()
	if participant.Email != nil {
		for _, p := range r.participants {
			if p.MeetingID == participant.MeetingID && p.Email != nil && *p.Email == *participant.Email {
				p.Name = participant.Name
				p.Timezone = participant.Timezone
				p.UpdatedAt = now
				out := *p
				return &out, nil
			}
		}
	}

	stored := *participant
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.participants = append(r.participants, &stored)
	out := stored
	return &out, nil
}

func (r *memoryRepo) GetParticipantByID(_ context.Context, id uuid.UUID) (*entity.Participant, error) {
	for _, p := range r.participants {
		if p.ID == id {
			out := *p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memoryRepo) GetParticipantsByMeetingID(_ context.Context, meetingID uuid.UUID) ([]entity.Participant, error) {
	var out []entity.Participant
	for _, p := range r.participants {
		if p.MeetingID == meetingID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memoryRepo) RemoveParticipant(_ context.Context, meetingID, participantID uuid.UUID) error {
	participants := r.participants[:0]
	for _, p := range r.participants {
		if p.ID == participantID && p.MeetingID == meetingID {
			delete(r.busy, p.ID)
			continue
		}
		participants = append(participants, p)
	}
	r.participants = participants
	return nil
}

func (r *memoryRepo) GetResponseCounts(_ context.Context, meetingIDs []uuid.UUID) (map[uuid.UUID]repository.ResponseCount, error) {
	counts := make(map[uuid.UUID]repository.ResponseCount, len(meetingIDs))
	for _, id := range meetingIDs {
		count := repository.ResponseCount{MeetingID: id}
		for _, p := range r.participants {
			if p.MeetingID != id {
				continue
			}
			count.Total++
			if p.HasResponded {
				count.Responded++
			}
		}
		if count.Total > 0 {
			counts[id] = count
		}
	}
	return counts, nil
}

func (r *memoryRepo) GetBusyIntervalsByParticipant(_ context.Context, participantID uuid.UUID) ([]entity.BusyInterval, error) {
	intervals := append([]entity.BusyInterval(nil), r.busy[participantID]...)
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].StartTime.Before(intervals[j].StartTime)
	})
	return intervals, nil
}

func (r *memoryRepo) GetBusyIntervalsForMeeting(_ context.Context, meetingID uuid.UUID) (map[uuid.UUID][]entity.BusyInterval, error) {
	_, busy := r.snapshotInputs(meetingID)
	return busy, nil
}

func (r *memoryRepo) GetSlotsByMeetingID(_ context.Context, meetingID uuid.UUID) ([]entity.SuggestedSlot, error) {
	return r.sortedSlots(meetingID), nil
}

func (r *memoryRepo) GetSlotByID(_ context.Context, slotID uuid.UUID) (*entity.SuggestedSlot, error) {
	for _, slots := range r.slots {
		for _, s := range slots {
			if s.ID == slotID {
				out := s
				return &out, nil
			}
		}
	}
	return nil, nil
}

func (r *memoryRepo) GetLockedSlot(_ context.Context, meetingID uuid.UUID) (*entity.SuggestedSlot, error) {
	for _, s := range r.slots[meetingID] {
		if s.IsLocked {
			out := s
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memoryRepo) RecomputeSnapshot(_ context.Context, meetingID uuid.UUID, compute repository.ComputeSnapshotFunc) ([]entity.SuggestedSlot, error) {
	m := r.findMeeting(meetingID)
	if m == nil {
		return nil, repository.ErrMeetingNotFound
	}
	if m.Status != entity.MeetingStatusActive {
		return r.sortedSlots(meetingID), nil
	}

	participants, busy := r.snapshotInputs(meetingID)
	slots := compute(participants, busy)
	r.slots[meetingID] = append([]entity.SuggestedSlot(nil), slots...)
	r.recomputes++
	return slots, nil
}

func (r *memoryRepo) SubmitAvailability(_ context.Context, meetingID, participantID uuid.UUID, intervals []entity.BusyInterval, compute repository.ComputeSnapshotFunc) ([]entity.SuggestedSlot, error) {
	m := r.findMeeting(meetingID)
	if m == nil {
		return nil, repository.ErrMeetingNotFound
	}
	if m.Status != entity.MeetingStatusActive {
		return nil, repository.ErrMeetingNotActive
	}

	r.busy[participantID] = append([]entity.BusyInterval(nil), intervals...)
	now := time.Now().UTC()
	for _, p := range r.participants {
		if p.ID == participantID && p.MeetingID == meetingID {
			p.HasResponded = true
			p.RespondedAt = &now
			p.UpdatedAt = now
		}
	}

	participants, busy := r.snapshotInputs(meetingID)
	slots := compute(participants, busy)
	r.slots[meetingID] = append([]entity.SuggestedSlot(nil), slots...)
	r.recomputes++
	return slots, nil
}

func (r *memoryRepo) LockSlot(_ context.Context, meetingID, slotID uuid.UUID) (*entity.SuggestedSlot, error) {
	m := r.findMeeting(meetingID)
	if m == nil {
		return nil, repository.ErrMeetingNotFound
	}
	if m.Status != entity.MeetingStatusActive {
		return nil, repository.ErrMeetingNotActive
	}

	for _, s := range r.slots[meetingID] {
		if s.ID == slotID {
			s.IsLocked = true
			r.slots[meetingID] = []entity.SuggestedSlot{s}
			m.Status = entity.MeetingStatusLocked
			out := s
			return &out, nil
		}
	}
	return nil, repository.ErrSlotNotFound
}

func (r *memoryRepo) snapshotInputs(meetingID uuid.UUID) ([]entity.Participant, map[uuid.UUID][]entity.BusyInterval) {
	var participants []entity.Participant
	busy := make(map[uuid.UUID][]entity.BusyInterval)
	for _, p := range r.participants {
		if p.MeetingID != meetingID {
			continue
		}
		participants = append(participants, *p)
		if intervals, ok := r.busy[p.ID]; ok {
			busy[p.ID] = append([]entity.BusyInterval(nil), intervals...)
		}
	}
	return participants, busy
}

func (r *memoryRepo) sortedSlots(meetingID uuid.UUID) []entity.SuggestedSlot {
	slots := append([]entity.SuggestedSlot(nil), r.slots[meetingID]...)
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].AvailableCount != slots[j].AvailableCount {
			return slots[i].AvailableCount > slots[j].AvailableCount
		}
		return slots[i].StartTime.Before(slots[j].StartTime)
	})
	return slots
}

// ===================== Test helpers =====================

func newTestService(t *testing.T) (MeetingServiceInterface, *memoryRepo) {
	t.Helper()
	repo := newMemoryRepo()
	svc := NewMeetingService(repo, nil, nil, nil, nil, "https://timeweave.example")
	return svc, repo
}

func mustID(t *testing.T, raw string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(raw)
	require.NoError(t, err)
	return id
}

// newMeetingRequest is a small valid creation payload: one Monday, a
// two-hour window and hour-long slots every 30 minutes.
func newMeetingRequest() *dto.CreateMeetingRequest {
	return &dto.CreateMeetingRequest{
		Title:           "Họp sprint",
		DurationMinutes: 60,
		Timezone:        "UTC",
		DateRangeStart:  "2024-01-01",
		DateRangeEnd:    "2024-01-01",
		WorkHoursStart:  "09:00",
		WorkHoursEnd:    "11:00",
		StepSizeMinutes: 30,
	}
}

func createActiveMeeting(t *testing.T, svc MeetingServiceInterface, creatorID uuid.UUID) *dto.MeetingResponse {
	t.Helper()
	req := newMeetingRequest()
	req.Publish = true
	resp, appErr := svc.CreateMeeting(context.Background(), creatorID, req)
	require.Nil(t, appErr)
	return resp
}

func joinParticipant(t *testing.T, svc MeetingServiceInterface, repo *memoryRepo, meetingID uuid.UUID, name, email string) uuid.UUID {
	t.Helper()
	token := repo.findMeeting(meetingID).Token
	resp, appErr := svc.JoinMeeting(context.Background(), meetingID, token, &dto.JoinMeetingRequest{
		Name:     name,
		Email:    email,
		Timezone: "UTC",
	})
	require.Nil(t, appErr)
	return mustID(t, resp.ID)
}

// ===================== Creator lifecycle =====================

func TestCreateMeeting_AppliesDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	resp, appErr := svc.CreateMeeting(context.Background(), uuid.New(), &dto.CreateMeetingRequest{
		Title:          "Họp tuần",
		DateRangeStart: "2024-01-01",
		DateRangeEnd:   "2024-01-05",
	})
	require.Nil(t, appErr)

	assert.Equal(t, string(entity.MeetingStatusDraft), resp.Status)
	assert.Equal(t, constants.DefaultDurationMins, resp.DurationMinutes)
	assert.Equal(t, constants.DefaultStepMinutes, resp.StepSizeMinutes)
	assert.Equal(t, constants.DefaultTimezone, resp.Timezone)
	assert.Equal(t, constants.DefaultWorkHoursStart, resp.WorkHoursStart)
	assert.Equal(t, constants.DefaultWorkHoursEnd, resp.WorkHoursEnd)
	assert.True(t, resp.WorkDaysOnly)
	assert.NotEmpty(t, resp.Slug)
	assert.Contains(t, resp.ShareURL, "https://timeweave.example/r/")
	assert.Contains(t, resp.ShareURL, "?t=")
}

func TestCreateMeeting_PublishImmediately(t *testing.T) {
	svc, _ := newTestService(t)

	resp := createActiveMeeting(t, svc, uuid.New())
	assert.Equal(t, string(entity.MeetingStatusActive), resp.Status)
}

func TestCreateMeeting_RejectsBadConfig(t *testing.T) {
	svc, _ := newTestService(t)
	past := "2020-01-01T00:00:00Z"

	tests := []struct {
		name   string
		mutate func(*dto.CreateMeetingRequest)
	}{
		{"bad date format", func(r *dto.CreateMeetingRequest) { r.DateRangeStart = "01/01/2024" }},
		{"range inverted", func(r *dto.CreateMeetingRequest) { r.DateRangeEnd = "2023-12-31" }},
		{"range too long", func(r *dto.CreateMeetingRequest) { r.DateRangeEnd = "2024-06-01" }},
		{"unknown timezone", func(r *dto.CreateMeetingRequest) { r.Timezone = "Mars/Olympus" }},
		{"bad step size", func(r *dto.CreateMeetingRequest) { r.StepSizeMinutes = 45 }},
		{"work hours inverted", func(r *dto.CreateMeetingRequest) { r.WorkHoursStart = "18:00"; r.WorkHoursEnd = "09:00" }},
		{"duration exceeds the work window", func(r *dto.CreateMeetingRequest) { r.DurationMinutes = 180 }},
		{"duration above the cap", func(r *dto.CreateMeetingRequest) { r.DurationMinutes = 481; r.WorkHoursEnd = "23:00" }},
		{"title too long", func(r *dto.CreateMeetingRequest) { r.Title = strings.Repeat("họp ", 60) }},
		{"deadline in the past", func(r *dto.CreateMeetingRequest) { r.ResponseDeadline = &past }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newMeetingRequest()
			tt.mutate(req)
			resp, appErr := svc.CreateMeeting(context.Background(), uuid.New(), req)
			assert.Nil(t, resp)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
		})
	}
}

func TestCreateMeeting_InvitesInitialParticipants(t *testing.T) {
	svc, _ := newTestService(t)
	creatorID := uuid.New()

	req := newMeetingRequest()
	req.Participants = []dto.ParticipantInput{
		{Name: "Lan", Email: "lan@example.com"},
		{Name: "Minh"},
	}
	resp, appErr := svc.CreateMeeting(context.Background(), creatorID, req)
	require.Nil(t, appErr)

	participants, appErr := svc.ListParticipants(context.Background(), mustID(t, resp.ID), creatorID)
	require.Nil(t, appErr)
	require.Len(t, participants, 2)
	assert.Equal(t, "Lan", participants[0].Name)
	assert.Equal(t, "lan@example.com", participants[0].Email)
	assert.Equal(t, "Minh", participants[1].Name)
	assert.Empty(t, participants[1].Email)
	// Participants inherit the meeting timezone unless they pick their own.
	assert.Equal(t, "UTC", participants[0].Timezone)
}

func TestGetMeeting_Authorization(t *testing.T) {
	svc, _ := newTestService(t)
	creatorID := uuid.New()
	resp := createActiveMeeting(t, svc, creatorID)

	_, appErr := svc.GetMeeting(context.Background(), mustID(t, resp.ID), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)

	_, appErr = svc.GetMeeting(context.Background(), uuid.New(), creatorID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestGetMeeting_RecomputesActiveSnapshot(t *testing.T) {
	svc, repo := newTestService(t)
	creatorID := uuid.New()
	resp := createActiveMeeting(t, svc, creatorID)
	meetingID := mustID(t, resp.ID)

	detail, appErr := svc.GetMeeting(context.Background(), meetingID, creatorID)
	require.Nil(t, appErr)

	// 09:00-11:00 with hour slots every 30 minutes.
	assert.Len(t, detail.Suggestions, 3)
	assert.Equal(t, 1, repo.recomputes)
	assert.Zero(t, detail.ResponseRate)
	for _, s := range detail.Suggestions {
		assert.Zero(t, s.AvailableCount)
		assert.Zero(t, s.TotalParticipants)
	}
}

func TestGetMeeting_RecomputeIsIdempotent(t *testing.T) {
	svc, repo := newTestService(t)
	creatorID := uuid.New()
	resp := createActiveMeeting(t, svc, creatorID)
	meetingID := mustID(t, resp.ID)

	p1 := joinParticipant(t, svc, repo, meetingID, "Lan", "lan@example.com")
	joinParticipant(t, svc, repo, meetingID, "Minh", "minh@example.com")

	_, appErr := svc.SubmitAvailability(context.Background(), p1, "", &dto.SubmitAvailabilityRequest{
		BusyIntervals: []dto.BusyIntervalInput{
			{StartTime: "2024-01-01T09:00:00Z", EndTime: "2024-01-01T09:30:00Z"},
		},
	})
	require.Nil(t, appErr)

	first, appErr := svc.GetMeeting(context.Background(), meetingID, creatorID)
	require.Nil(t, appErr)
	second, appErr := svc.GetMeeting(context.Background(), meetingID, creatorID)
	require.Nil(t, appErr)

	// Slot rows are rewritten each time, so row IDs change, but the
	// aggregate values must not.
	stripIDs := func(in []dto.SuggestedSlotResponse) []dto.SuggestedSlotResponse {
		out := append([]dto.SuggestedSlotResponse(nil), in...)
		for i := range out {
			out[i].ID = ""
		}
		return out
	}
	assert.Equal(t, 3, repo.recomputes)
	assert.Equal(t, stripIDs(first.Suggestions), stripIDs(second.Suggestions))

	require.Len(t, second.Suggestions, 3)
	assert.Equal(t, utc(2024, time.January, 1, 9, 30), second.Suggestions[0].StartTime)
	assert.Equal(t, 1, second.Suggestions[0].AvailableCount)
	assert.Equal(t, utc(2024, time.January, 1, 9, 0), second.Suggestions[2].StartTime)
	assert.Zero(t, second.Suggestions[2].AvailableCount)
}

func TestListMeetings_FiltersAndCounts(t *testing.T) {
	svc, repo := newTestService(t)
	creatorID := uuid.New()

	active := createActiveMeeting(t, svc, creatorID)
	draftReq := newMeetingRequest()
	draftReq.Title = "Phỏng vấn ứng viên"
	_, appErr := svc.CreateMeeting(context.Background(), creatorID, draftReq)
	require.Nil(t, appErr)
	createActiveMeeting(t, svc, uuid.New()) // someone else's meeting

	meetingID := mustID(t, active.ID)
	p1 := joinParticipant(t, svc, repo, meetingID, "Lan", "lan@example.com")
	joinParticipant(t, svc, repo, meetingID, "Minh", "")
	_, appErr = svc.SubmitAvailability(context.Background(), p1, "", &dto.SubmitAvailabilityRequest{})
	require.Nil(t, appErr)

	qp := params.QueryParams{PageNumber: 1, PageSize: 20}
	page, appErr := svc.ListMeetings(context.Background(), creatorID, "", qp)
	require.Nil(t, appErr)
	assert.Equal(t, 2, page.TotalItems)

	page, appErr = svc.ListMeetings(context.Background(), creatorID, "active", qp)
	require.Nil(t, appErr)
	require.Len(t, page.Items, 1)
	assert.Equal(t, active.ID, page.Items[0].ID)
	assert.Equal(t, 2, page.Items[0].ParticipantCount)
	assert.Equal(t, 1, page.Items[0].RespondedCount)
	assert.Equal(t, 50, page.Items[0].ResponseRate)
}

func TestUpdateMeeting_RewritesConfigAndRecomputes(t *testing.T) {
	svc, repo := newTestService(t)
	creatorID := uuid.New()
	resp := createActiveMeeting(t, svc, creatorID)
	meetingID := mustID(t, resp.ID)

	newTitle := "Họp tổng kết quý"
	newEnd := "12:00"
	updated, appErr := svc.UpdateMeeting(context.Background(), meetingID, creatorID, &dto.UpdateMeetingRequest{
		Title:        &newTitle,
		WorkHoursEnd: &newEnd,
	})
	require.Nil(t, appErr)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, "12:00", updated.WorkHoursEnd)
	assert.Equal(t, 1, repo.recomputes)
	// 09:00-12:00 now fits five hour-long slots.
	assert.Len(t, repo.slots[meetingID], 5)
}

func TestUpdateMeeting_RejectsInvalidAndLocked(t *testing.T) {
	svc, repo := newTestService(t)
	creatorID := uuid.New()
	resp := createActiveMeeting(t, svc, creatorID)
	meetingID := mustID(t, resp.ID)

	badDuration := 600
	_, appErr := svc.UpdateMeeting(context.Background(), meetingID, creatorID, &dto.UpdateMeetingRequest{
		DurationMinutes: &badDuration,
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	repo.findMeeting(meetingID).Status = entity.MeetingStatusLocked
	title := "Muộn rồi"
	_, appErr = svc.UpdateMeeting(context.Background(), meetingID, creatorID, &dto.UpdateMeetingRequest{Title: &title})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestPublishMeeting_Lifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	creatorID := uuid.New()

	resp, appErr := svc.CreateMeeting(context.Background(), creatorID, newMeetingRequest())
	require.Nil(t, appErr)
	meetingID := mustID(t, resp.ID)

	published, appErr := svc.PublishMeeting(context.Background(), meetingID, creatorID)
	require.Nil(t, appErr)
	assert.Equal(t, string(entity.MeetingStatusActive), published.Status)

	_, appErr = svc.PublishMeeting(context.Background(), meetingID, creatorID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	cancelled, appErr := svc.CancelMeeting(context.Background(), meetingID, creatorID)
	require.Nil(t, appErr)
	assert.Equal(t, string(entity.MeetingStatusCancelled), cancelled.Status)

	_, appErr = svc.CancelMeeting(context.Background(), meetingID, creatorID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestCancelMeeting_RequiresActive(t *testing.T) {
	svc, _ := newTestService(t)
	creatorID := uuid.New()

	resp, appErr := svc.CreateMeeting(context.Background(), creatorID, newMeetingRequest())
	require.Nil(t, appErr)

	_, appErr = svc.CancelMeeting(context.Background(), mustID(t, resp.ID), creatorID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestDeleteMeeting_Cascades(t *testing.T) {
	svc, repo := newTestService(t)
	creatorID := uuid.New()
	resp := createActiveMeeting(t, svc, creatorID)
	meetingID := mustID(t, resp.ID)

	p1 := joinParticipant(t, svc, repo, meetingID, "Lan", "lan@example.com")
	_, appErr := svc.SubmitAvailability(context.Background(), p1, "", &dto.SubmitAvailabilityRequest{})
	require.Nil(t, appErr)

	require.Nil(t, svc.DeleteMeeting(context.Background(), meetingID, creatorID))
	assert.Empty(t, repo.meetings)
	assert.Empty(t, repo.participants)
	assert.Empty(t, repo.slots[meetingID])
}

func TestLockSlot_FinalizesMeeting(t *testing.T) {
	svc, repo := newTestService(t)
	creatorID := uuid.New()
	resp := createActiveMeeting(t, svc, creatorID)
	meetingID := mustID(t, resp.ID)

	p1 := joinParticipant(t, svc, repo, meetingID, "Lan", "lan@example.com")
	submitted, appErr := svc.SubmitAvailability(context.Background(), p1, "", &dto.SubmitAvailabilityRequest{})
	require.Nil(t, appErr)
	require.NotEmpty(t, submitted.Suggestions)

	slotID := mustID(t, submitted.Suggestions[0].ID)
	detail, appErr := svc.LockSlot(context.Background(), meetingID, slotID, creatorID)
	require.Nil(t, appErr)

	assert.Equal(t, string(entity.MeetingStatusLocked), detail.Status)
	require.NotNil(t, detail.LockedSlot)
	assert.Equal(t, slotID.String(), detail.LockedSlot.ID)
	assert.True(t, detail.LockedSlot.IsLocked)
	// Every sibling aggregate is gone.
	require.Len(t, repo.slots[meetingID], 1)
	assert.True(t, repo.slots[meetingID][0].IsLocked)

	// A locked meeting stops taking responses.
	_, appErr = svc.SubmitAvailability(context.Background(), p1, "", &dto.SubmitAvailabilityRequest{})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestLockSlot_Guards(t *testing.T) {
	svc, repo := newTestService(t)
	creatorID := uuid.New()
	resp := createActiveMeeting(t, svc, creatorID)
	meetingID := mustID(t, resp.ID)

	_, appErr := svc.LockSlot(context.Background(), meetingID, uuid.New(), creatorID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)

	repo.findMeeting(meetingID).Status = entity.MeetingStatusCancelled
	_, appErr = svc.LockSlot(context.Background(), meetingID, uuid.New(), creatorID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestGetMeeting_LockedReturnsSurvivingSlot(t *testing.T) {
	svc, repo := newTestService(t)
	creatorID := uuid.New()
	resp := createActiveMeeting(t, svc, creatorID)
	meetingID := mustID(t, resp.ID)

	p1 := joinParticipant(t, svc, repo, meetingID, "Lan", "lan@example.com")
	submitted, appErr := svc.SubmitAvailability(context.Background(), p1, "", &dto.SubmitAvailabilityRequest{})
	require.Nil(t, appErr)
	_, appErr = svc.LockSlot(context.Background(), meetingID, mustID(t, submitted.Suggestions[0].ID), creatorID)
	require.Nil(t, appErr)
	recomputesAfterLock := repo.recomputes

	detail, appErr := svc.GetMeeting(context.Background(), meetingID, creatorID)
	require.Nil(t, appErr)

	// No recompute on a locked meeting; the stored slot survives as-is.
	assert.Equal(t, recomputesAfterLock, repo.recomputes)
	require.NotNil(t, detail.LockedSlot)
	require.Len(t, detail.Suggestions, 1)
	assert.True(t, detail.Suggestions[0].IsLocked)
}

func TestRemoveParticipant_RecomputesWithoutResponder(t *testing.T) {
	svc, repo := newTestService(t)
	creatorID := uuid.New()
	resp := createActiveMeeting(t, svc, creatorID)
	meetingID := mustID(t, resp.ID)

	p1 := joinParticipant(t, svc, repo, meetingID, "Lan", "lan@example.com")
	_, appErr := svc.SubmitAvailability(context.Background(), p1, "", &dto.SubmitAvailabilityRequest{
		BusyIntervals: []dto.BusyIntervalInput{
			{StartTime: "2024-01-01T09:00:00Z", EndTime: "2024-01-01T11:00:00Z"},
		},
	})
	require.Nil(t, appErr)

	appErr = svc.RemoveParticipant(context.Background(), meetingID, p1, creatorID)
	require.Nil(t, appErr)

	for _, s := range repo.slots[meetingID] {
		assert.Zero(t, s.AvailableCount)
		assert.Zero(t, s.TotalParticipants)
	}
}

func TestRemoveParticipant_UnknownOrForeign(t *testing.T) {
	svc, repo := newTestService(t)
	creatorID := uuid.New()
	resp := createActiveMeeting(t, svc, creatorID)
	other := createActiveMeeting(t, svc, creatorID)

	appErr := svc.RemoveParticipant(context.Background(), mustID(t, resp.ID), uuid.New(), creatorID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)

	// A participant of another meeting must not be removable through this one.
	foreign := joinParticipant(t, svc, repo, mustID(t, other.ID), "Lan", "lan@example.com")
	appErr = svc.RemoveParticipant(context.Background(), mustID(t, resp.ID), foreign, creatorID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestAddParticipant_UpsertsByEmail(t *testing.T) {
	svc, _ := newTestService(t)
	creatorID := uuid.New()
	resp := createActiveMeeting(t, svc, creatorID)
	meetingID := mustID(t, resp.ID)

	first, appErr := svc.AddParticipant(context.Background(), meetingID, creatorID, &dto.ParticipantInput{
		Name:  "Lan",
		Email: "lan@example.com",
	})
	require.Nil(t, appErr)

	second, appErr := svc.AddParticipant(context.Background(), meetingID, creatorID, &dto.ParticipantInput{
		Name:  "Lan Phạm",
		Email: "lan@example.com",
	})
	require.Nil(t, appErr)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Lan Phạm", second.Name)

	participants, appErr := svc.ListParticipants(context.Background(), meetingID, creatorID)
	require.Nil(t, appErr)
	assert.Len(t, participants, 1)
}

func TestAddParticipant_RejectsUnknownTimezone(t *testing.T) {
	svc, _ := newTestService(t)
	creatorID := uuid.New()
	resp := createActiveMeeting(t, svc, creatorID)

	_, appErr := svc.AddParticipant(context.Background(), mustID(t, resp.ID), creatorID, &dto.ParticipantInput{
		Name:     "Lan",
		Timezone: "Mars/Olympus",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestAddParticipantsBulk_SkipsBadEntries(t *testing.T) {
	svc, _ := newTestService(t)
	creatorID := uuid.New()
	resp := createActiveMeeting(t, svc, creatorID)
	meetingID := mustID(t, resp.ID)

	added, appErr := svc.AddParticipantsBulk(context.Background(), meetingID, creatorID, &dto.BulkParticipantsRequest{
		Participants: []dto.ParticipantInput{
			{Name: "Lan", Email: "lan@example.com"},
			{Name: "Sao Hoả", Timezone: "Mars/Olympus"},
			{Name: "Minh"},
		},
	})
	require.Nil(t, appErr)
	require.Len(t, added, 2)
	assert.Equal(t, "Lan", added[0].Name)
	assert.Equal(t, "Minh", added[1].Name)
}

func TestCreateSession_IssuesCreatorToken(t *testing.T) {
	config.Set(&config.Config{JWT: config.JWTConfig{Secret: "test-secret", AccessTTLHour: 1}})
	svc, _ := newTestService(t)

	resp, appErr := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{})
	require.Nil(t, appErr)
	require.NotEmpty(t, resp.Token)

	claims, tokenErr := utils.ValidateAndParseToken(resp.Token)
	require.Nil(t, tokenErr)
	assert.Equal(t, constants.ScopeTokenCreator, claims.Scope)
	assert.Equal(t, resp.CreatorID, claims.CreatorID.String())
}

func TestRefreshActiveMeetings_SweepsOnlyActive(t *testing.T) {
	svc, repo := newTestService(t)
	creatorID := uuid.New()

	createActiveMeeting(t, svc, creatorID)
	createActiveMeeting(t, svc, creatorID)
	draft, appErr := svc.CreateMeeting(context.Background(), creatorID, newMeetingRequest())
	require.Nil(t, appErr)

	refreshed, err := svc.RefreshActiveMeetings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, refreshed)
	assert.Equal(t, 2, repo.recomputes)
	assert.Empty(t, repo.slots[mustID(t, draft.ID)])
}
