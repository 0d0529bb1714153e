package service

import (
	"context"
	"errors"
	"testing"
	"time"

	coreentity "timeweave/core/entity"
	apperrors "timeweave/core/errors"
	"timeweave/modules/calendar/dto"
	"timeweave/modules/calendar/entity"
	"timeweave/modules/calendar/repository"
	meetingEntity "timeweave/modules/meeting/entity"
	meetingRepo "timeweave/modules/meeting/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCalendarRepo fakes connection storage; only the calls a test expects
// are configured.
type stubCalendarRepo struct {
	repository.CalendarRepository

	connections []entity.CalendarConnection
	connection  *entity.CalendarConnection
	err         error

	deletedParticipant uuid.UUID
	deletedProvider    string
}

func (s *stubCalendarRepo) GetConnectionsByParticipantID(_ context.Context, _ uuid.UUID) ([]entity.CalendarConnection, error) {
	return s.connections, s.err
}

func (s *stubCalendarRepo) GetConnectionByParticipantAndProvider(_ context.Context, _ uuid.UUID, _ string) (*entity.CalendarConnection, error) {
	return s.connection, s.err
}

func (s *stubCalendarRepo) DeleteConnection(_ context.Context, participantID uuid.UUID, provider string) error {
	s.deletedParticipant = participantID
	s.deletedProvider = provider
	return s.err
}

// stubMeetingRepo overrides the two lookups the import flow needs before it
// touches any provider API.
type stubMeetingRepo struct {
	meetingRepo.MeetingRepositoryInterface

	participant *meetingEntity.Participant
	meeting     *meetingEntity.Meeting
}

func (s *stubMeetingRepo) GetParticipantByID(_ context.Context, _ uuid.UUID) (*meetingEntity.Participant, error) {
	return s.participant, nil
}

func (s *stubMeetingRepo) GetMeetingByID(_ context.Context, _ uuid.UUID) (*meetingEntity.Meeting, error) {
	return s.meeting, nil
}

func TestMeetingWindow_CoversBoundaryDaysInMeetingTimezone(t *testing.T) {
	m := &meetingEntity.Meeting{
		Timezone:       "Asia/Ho_Chi_Minh",
		DateRangeStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DateRangeEnd:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}

	start, end := meetingWindow(m)

	// Midnight in Ho Chi Minh City is 17:00 UTC the previous day; the end
	// bound is exclusive midnight after the last day.
	assert.Equal(t, time.Date(2023, 12, 31, 17, 0, 0, 0, time.UTC), start.UTC())
	assert.Equal(t, time.Date(2024, 1, 3, 17, 0, 0, 0, time.UTC), end.UTC())
}

func TestMeetingWindow_UnknownTimezoneFallsBackToUTC(t *testing.T) {
	m := &meetingEntity.Meeting{
		Timezone:       "Mars/Olympus",
		DateRangeStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DateRangeEnd:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	start, end := meetingWindow(m)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start.UTC())
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), end.UTC())
}

func TestGetConnections_MapsEntities(t *testing.T) {
	conn := entity.CalendarConnection{
		ParticipantID: uuid.New(),
		Provider:      dto.ProviderGoogle,
		CalendarEmail: "lan@gmail.com",
		IsActive:      true,
	}
	conn.StampNew()

	repo := &stubCalendarRepo{connections: []entity.CalendarConnection{conn}}
	svc := NewCalendarService(repo, nil, nil, nil)

	resp, appErr := svc.GetConnections(context.Background(), conn.ParticipantID)
	require.Nil(t, appErr)
	require.Len(t, resp.Connections, 1)

	got := resp.Connections[0]
	assert.Equal(t, conn.ID.String(), got.ID)
	assert.Equal(t, dto.ProviderGoogle, got.Provider)
	assert.Equal(t, "lan@gmail.com", got.CalendarEmail)
	assert.True(t, got.IsActive)
	assert.Equal(t, conn.CreatedAt.Format(time.RFC3339), got.ConnectedAt)
}

func TestGetConnections_Empty(t *testing.T) {
	svc := NewCalendarService(&stubCalendarRepo{}, nil, nil, nil)

	resp, appErr := svc.GetConnections(context.Background(), uuid.New())
	require.Nil(t, appErr)
	assert.Empty(t, resp.Connections)
}

func TestDisconnectCalendar(t *testing.T) {
	repo := &stubCalendarRepo{}
	svc := NewCalendarService(repo, nil, nil, nil)
	participantID := uuid.New()

	appErr := svc.DisconnectCalendar(context.Background(), participantID, "outlook")
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidInput, appErr.Code)

	appErr = svc.DisconnectCalendar(context.Background(), participantID, dto.ProviderGoogle)
	require.Nil(t, appErr)
	assert.Equal(t, participantID, repo.deletedParticipant)
	assert.Equal(t, dto.ProviderGoogle, repo.deletedProvider)
}

func TestDisconnectCalendar_RepositoryFailure(t *testing.T) {
	svc := NewCalendarService(&stubCalendarRepo{err: errors.New("timeout")}, nil, nil, nil)

	appErr := svc.DisconnectCalendar(context.Background(), uuid.New(), dto.ProviderGoogle)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInternalServer, appErr.Code)
}

func TestImportBusy_UnknownParticipant(t *testing.T) {
	svc := NewCalendarService(&stubCalendarRepo{}, &stubMeetingRepo{}, nil, nil)

	_, appErr := svc.ImportBusy(context.Background(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestImportBusy_NoConnection(t *testing.T) {
	participant := &meetingEntity.Participant{
		ID:        uuid.New(),
		MeetingID: uuid.New(),
		Name:      "Lan",
		Timezone:  "UTC",
	}
	meeting := &meetingEntity.Meeting{
		ID:             participant.MeetingID,
		Status:         meetingEntity.MeetingStatusActive,
		Timezone:       "UTC",
		DateRangeStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DateRangeEnd:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}

	svc := NewCalendarService(
		&stubCalendarRepo{},
		&stubMeetingRepo{participant: participant, meeting: meeting},
		nil, nil,
	)

	_, appErr := svc.ImportBusy(context.Background(), participant.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

// The StampNew/Touch helpers back every persisted aggregate; pin their
// contract here since the calendar connection is the main user.
func TestBaseEntityStamping(t *testing.T) {
	var base coreentity.BaseEntity
	base.StampNew()

	require.NotEqual(t, uuid.Nil, base.ID)
	assert.False(t, base.CreatedAt.IsZero())
	assert.Equal(t, base.CreatedAt, base.UpdatedAt)

	keep := base.ID
	before := base.UpdatedAt
	time.Sleep(time.Millisecond)
	base.Touch()
	assert.Equal(t, keep, base.ID)
	assert.True(t, base.UpdatedAt.After(before))

	// An ID set by the caller survives restamping.
	preset := coreentity.BaseEntity{ID: keep}
	preset.StampNew()
	assert.Equal(t, keep, preset.ID)
}