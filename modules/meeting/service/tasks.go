package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"timeweave/core/logger"
	"timeweave/core/queue"
	"timeweave/core/utils"
	"timeweave/modules/meeting/entity"

	"github.com/hibiken/asynq"
)

// Task handlers. The meeting module owns these because the emails are built
// from meeting and participant rows; the queue package only moves payloads.

// HandleInvitationEmail sends the share link to one invited participant.
func (s *MeetingService) HandleInvitationEmail(ctx context.Context, task *asynq.Task) error {
	var payload queue.InvitationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("invitation payload: %v: %w", err, asynq.SkipRetry)
	}

	meeting, err := s.repo.GetMeetingByID(ctx, payload.MeetingID)
	if err != nil {
		return err
	}
	if meeting == nil {
		return fmt.Errorf("meeting %s gone: %w", payload.MeetingID, asynq.SkipRetry)
	}

	participant, err := s.repo.GetParticipantByID(ctx, payload.ParticipantID)
	if err != nil {
		return err
	}
	if participant == nil || participant.Email == nil {
		return fmt.Errorf("participant %s has no address: %w", payload.ParticipantID, asynq.SkipRetry)
	}

	data := utils.TemplateData{
		RecipientName: participant.DisplayName(),
		MeetingTitle:  meeting.Title,
		Description:   meeting.Description,
		MeetingURL:    s.baseURL + meeting.SharePath(),
		Timezone:      meeting.Timezone,
	}
	if meeting.ResponseDeadline != nil {
		data.Deadline = formatInMeetingZone(meeting, *meeting.ResponseDeadline)
	}

	subject := fmt.Sprintf("Mời bạn chọn thời gian cho \"%s\"", meeting.Title)
	if err := utils.SendTemplateEmailFromTemplatesDir([]string{*participant.Email}, subject, "meeting_invitation.html", data); err != nil {
		return err
	}

	logger.Info("MeetingService:HandleInvitationEmail sent",
		"meeting_id", meeting.ID,
		"participant_id", participant.ID,
	)
	return nil
}

// HandleLockedEmail tells every participant with an address which slot won.
func (s *MeetingService) HandleLockedEmail(ctx context.Context, task *asynq.Task) error {
	var payload queue.LockedEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("locked payload: %v: %w", err, asynq.SkipRetry)
	}

	meeting, err := s.repo.GetMeetingByID(ctx, payload.MeetingID)
	if err != nil {
		return err
	}
	if meeting == nil {
		return fmt.Errorf("meeting %s gone: %w", payload.MeetingID, asynq.SkipRetry)
	}

	slot, err := s.repo.GetLockedSlot(ctx, payload.MeetingID)
	if err != nil {
		return err
	}
	if slot == nil {
		return fmt.Errorf("meeting %s has no locked slot: %w", payload.MeetingID, asynq.SkipRetry)
	}

	participants, err := s.repo.GetParticipantsByMeetingID(ctx, payload.MeetingID)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Đã chốt lịch họp \"%s\"", meeting.Title)
	sent := 0
	for i := range participants {
		if participants[i].Email == nil {
			continue
		}
		data := utils.TemplateData{
			RecipientName: participants[i].DisplayName(),
			MeetingTitle:  meeting.Title,
			Description:   meeting.Description,
			SlotStart:     formatInMeetingZone(meeting, slot.StartTime),
			SlotEnd:       formatInMeetingZone(meeting, slot.EndTime),
			Timezone:      meeting.Timezone,
		}
		if err := utils.SendTemplateEmailFromTemplatesDir([]string{*participants[i].Email}, subject, "meeting_locked.html", data); err != nil {
			logger.Warn("MeetingService:HandleLockedEmail",
				"participant_id", participants[i].ID,
				"error", err,
			)
			continue
		}
		sent++
	}

	logger.Info("MeetingService:HandleLockedEmail done",
		"meeting_id", meeting.ID,
		"sent", sent,
	)
	return nil
}

// HandleAvailabilityRefresh is the nightly sweep over active meetings.
func (s *MeetingService) HandleAvailabilityRefresh(ctx context.Context, task *asynq.Task) error {
	refreshed, err := s.RefreshActiveMeetings(ctx)
	if err != nil {
		return err
	}
	logger.Info("MeetingService:HandleAvailabilityRefresh done", "refreshed", refreshed)
	return nil
}

func formatInMeetingZone(m *entity.Meeting, t time.Time) string {
	loc, err := time.LoadLocation(m.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc).Format("15:04 02/01/2006")
}
