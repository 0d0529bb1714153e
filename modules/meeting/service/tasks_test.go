package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"timeweave/core/queue"
	"timeweave/modules/meeting/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invitationTask(t *testing.T, p queue.InvitationEmailPayload) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(p)
	require.NoError(t, err)
	return asynq.NewTask(queue.TaskTypeInvitationEmail, payload)
}

func lockedTask(t *testing.T, p queue.LockedEmailPayload) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(p)
	require.NoError(t, err)
	return asynq.NewTask(queue.TaskTypeLockedEmail, payload)
}

func TestHandleInvitationEmail_BadPayloadSkipsRetry(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.HandleInvitationEmail(context.Background(), asynq.NewTask(queue.TaskTypeInvitationEmail, []byte("không phải json")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleInvitationEmail_MeetingGoneSkipsRetry(t *testing.T) {
	svc, _ := newTestService(t)

	task := invitationTask(t, queue.InvitationEmailPayload{
		MeetingID:     uuid.New(),
		ParticipantID: uuid.New(),
	})
	err := svc.HandleInvitationEmail(context.Background(), task)
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleInvitationEmail_AnonymousParticipantSkipsRetry(t *testing.T) {
	svc, repo := newTestService(t)
	resp := createActiveMeeting(t, svc, uuid.New())
	meetingID := mustID(t, resp.ID)
	participantID := joinParticipant(t, svc, repo, meetingID, "Khách", "")

	task := invitationTask(t, queue.InvitationEmailPayload{
		MeetingID:     meetingID,
		ParticipantID: participantID,
	})
	err := svc.HandleInvitationEmail(context.Background(), task)
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleLockedEmail_BadPayloadSkipsRetry(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.HandleLockedEmail(context.Background(), asynq.NewTask(queue.TaskTypeLockedEmail, []byte("{")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleLockedEmail_WithoutLockedSlotSkipsRetry(t *testing.T) {
	svc, _ := newTestService(t)
	resp := createActiveMeeting(t, svc, uuid.New())

	task := lockedTask(t, queue.LockedEmailPayload{MeetingID: mustID(t, resp.ID)})
	err := svc.HandleLockedEmail(context.Background(), task)
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleAvailabilityRefresh_SweepsActiveMeetings(t *testing.T) {
	svc, repo := newTestService(t)
	createActiveMeeting(t, svc, uuid.New())
	createActiveMeeting(t, svc, uuid.New())

	err := svc.HandleAvailabilityRefresh(context.Background(), asynq.NewTask(queue.TaskTypeAvailabilityRefresh, nil))
	require.NoError(t, err)
	assert.Equal(t, 2, repo.recomputes)
}

func TestFormatInMeetingZone(t *testing.T) {
	instant := time.Date(2024, 1, 2, 2, 30, 0, 0, time.UTC)

	hcm := &entity.Meeting{Timezone: "Asia/Ho_Chi_Minh"}
	assert.Equal(t, "09:30 02/01/2024", formatInMeetingZone(hcm, instant))

	unknown := &entity.Meeting{Timezone: "Mars/Olympus"}
	assert.Equal(t, "02:30 02/01/2024", formatInMeetingZone(unknown, instant))
}
