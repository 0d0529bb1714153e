package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"timeweave/core/constants"
	"timeweave/core/errors"
	"timeweave/core/logger"
	"timeweave/modules/meeting/dto"
	"timeweave/modules/meeting/entity"
	"timeweave/modules/meeting/repository"

	"github.com/google/uuid"
)

// GetPublicMeeting returns the share-link view. The URL token is the only
// credential; a wrong or missing token behaves like a bad link.
func (s *MeetingService) GetPublicMeeting(ctx context.Context, meetingID uuid.UUID, token string) (*dto.PublicMeetingResponse, *errors.AppError) {
	meeting, appErr := s.getSharedMeeting(ctx, meetingID, token)
	if appErr != nil {
		return nil, appErr
	}

	participants, err := s.repo.GetParticipantsByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load participants", err)
	}

	resp := &dto.PublicMeetingResponse{
		ID:                   meeting.ID.String(),
		Slug:                 meeting.Slug,
		Title:                meeting.Title,
		Description:          meeting.Description,
		Status:               string(meeting.Status),
		DurationMinutes:      meeting.DurationMinutes,
		Timezone:             meeting.Timezone,
		DateRangeStart:       meeting.DateRangeStart.Format("2006-01-02"),
		DateRangeEnd:         meeting.DateRangeEnd.Format("2006-01-02"),
		WorkHoursStart:       meeting.WorkHoursStart,
		WorkHoursEnd:         meeting.WorkHoursEnd,
		StepSizeMinutes:      meeting.StepSizeMinutes,
		WorkDaysOnly:         meeting.WorkDaysOnly,
		ResponseDeadline:     meeting.ResponseDeadline,
		IsAcceptingResponses: meeting.IsAcceptingResponses(time.Now()),
		Participants:         dto.ToPublicParticipants(participants, meeting.HideParticipantNames),
	}
	if len(resp.WorkHoursStart) > 5 {
		resp.WorkHoursStart = resp.WorkHoursStart[:5]
	}
	if len(resp.WorkHoursEnd) > 5 {
		resp.WorkHoursEnd = resp.WorkHoursEnd[:5]
	}

	if meeting.Status == entity.MeetingStatusLocked {
		locked, err := s.repo.GetLockedSlot(ctx, meetingID)
		if err == nil && locked != nil {
			resp.LockedSlot = dto.ToSlotResponse(locked)
		}
	}

	return resp, nil
}

// JoinMeeting registers a respondent through the share link. A participant
// with a known email is refreshed in place; without an email a new anonymous
// participant is created every time.
func (s *MeetingService) JoinMeeting(ctx context.Context, meetingID uuid.UUID, token string, req *dto.JoinMeetingRequest) (*dto.ParticipantResponse, *errors.AppError) {
	meeting, appErr := s.getSharedMeeting(ctx, meetingID, token)
	if appErr != nil {
		return nil, appErr
	}
	if !meeting.IsAcceptingResponses(time.Now()) {
		return nil, errors.NewAppError(errors.ErrForbidden, "Meeting is not accepting responses", nil)
	}

	input := &dto.ParticipantInput{
		Name:     req.Name,
		Email:    req.Email,
		Timezone: req.Timezone,
	}
	participant, appErr := s.upsertParticipant(ctx, meeting, input)
	if appErr != nil {
		return nil, appErr
	}

	s.notifyCreator(ctx, meeting, "participant_joined",
		"Người tham gia mới",
		fmt.Sprintf("%s vừa tham gia \"%s\"", participant.DisplayName(), meeting.Title),
		map[string]any{"participant_id": participant.ID.String()})

	return dto.ToParticipantResponse(participant), nil
}

// SubmitAvailability replaces the caller's busy intervals and returns the
// recomputed top suggestions. Submissions are rate limited per source.
func (s *MeetingService) SubmitAvailability(ctx context.Context, participantID uuid.UUID, source string, req *dto.SubmitAvailabilityRequest) (*dto.SuggestionsResponse, *errors.AppError) {
	if s.cache != nil && source != "" {
		if s.cache.IsRespondBlocked(ctx, source) {
			return nil, errors.NewAppError(errors.ErrTooManyRequests, "Too many submissions, try again later", nil)
		}
		s.cache.IncrementRespondAttempts(ctx, source)
	}

	participant, err := s.repo.GetParticipantByID(ctx, participantID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load participant", err)
	}
	if participant == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}

	loc, err := time.LoadLocation(participant.Timezone)
	if err != nil {
		loc = time.UTC
	}

	intervals := make([]entity.BusyInterval, 0, len(req.BusyIntervals))
	for i, input := range req.BusyIntervals {
		start, err := parseBusyTime(input.StartTime, loc)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput,
				fmt.Sprintf("busy_intervals[%d].start_time is not a valid time", i), err)
		}
		end, err := parseBusyTime(input.EndTime, loc)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput,
				fmt.Sprintf("busy_intervals[%d].end_time is not a valid time", i), err)
		}
		if !end.After(start) {
			return nil, errors.NewAppError(errors.ErrInvalidInput,
				fmt.Sprintf("busy_intervals[%d] must end after it starts", i), nil)
		}
		intervals = append(intervals, entity.BusyInterval{
			ID:            uuid.New(),
			ParticipantID: participantID,
			StartTime:     start,
			EndTime:       end,
			Description:   input.Description,
		})
	}

	return s.SubmitParsedAvailability(ctx, participantID, intervals)
}

// SubmitParsedAvailability is the submission flow after parsing; the
// calendar import path feeds it directly with UTC intervals.
func (s *MeetingService) SubmitParsedAvailability(ctx context.Context, participantID uuid.UUID, intervals []entity.BusyInterval) (*dto.SuggestionsResponse, *errors.AppError) {
	participant, err := s.repo.GetParticipantByID(ctx, participantID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load participant", err)
	}
	if participant == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}

	meeting, err := s.repo.GetMeetingByID(ctx, participant.MeetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}
	if !meeting.IsAcceptingResponses(time.Now()) {
		return nil, errors.NewAppError(errors.ErrForbidden, "Meeting is not accepting responses", nil)
	}

	slots, err := s.repo.SubmitAvailability(ctx, meeting.ID, participantID, intervals, s.snapshotFunc(meeting))
	if err != nil {
		switch err {
		case repository.ErrMeetingNotActive:
			return nil, errors.NewAppError(errors.ErrForbidden, "Meeting is not accepting responses", nil)
		case repository.ErrMeetingNotFound:
			return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
		default:
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save availability", err)
		}
	}

	s.bumpVersion(ctx, meeting.ID)
	s.notifyCreator(ctx, meeting, "availability_submitted",
		"Có phản hồi mới",
		fmt.Sprintf("%s đã gửi lịch rảnh cho \"%s\"", participant.DisplayName(), meeting.Title),
		map[string]any{"participant_id": participantID.String()})

	ranked := RankSuggestions(slots, constants.DefaultSuggestionLimit, 0)
	return &dto.SuggestionsResponse{Suggestions: dto.ToSlotResponses(ranked)}, nil
}

// GetOwnBusyIntervals lets a participant review what they submitted.
func (s *MeetingService) GetOwnBusyIntervals(ctx context.Context, participantID uuid.UUID) (*dto.BusyIntervalsResponse, *errors.AppError) {
	participant, err := s.repo.GetParticipantByID(ctx, participantID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load participant", err)
	}
	if participant == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}

	intervals, err := s.repo.GetBusyIntervalsByParticipant(ctx, participantID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load busy intervals", err)
	}

	resp := &dto.BusyIntervalsResponse{
		ParticipantID: participantID.String(),
		BusyIntervals: make([]dto.BusyIntervalResponse, 0, len(intervals)),
	}
	for i := range intervals {
		resp.BusyIntervals = append(resp.BusyIntervals, dto.ToBusyIntervalResponse(&intervals[i]))
	}
	return resp, nil
}

// GetHeatmap projects the stored aggregates onto a display timezone. It is a
// pure read: no recompute happens here, stale cells stay until the next
// submission or creator view.
func (s *MeetingService) GetHeatmap(ctx context.Context, meetingID uuid.UUID, timezone string) (*HeatmapGrid, *errors.AppError) {
	meeting, err := s.repo.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}

	tzName := timezone
	if tzName == "" {
		tzName = meeting.Timezone
	}

	var version int64
	if s.cache != nil {
		version = s.cache.MeetingVersion(ctx, meetingID)
		if payload, ok := s.cache.GetHeatmap(ctx, meetingID, version, tzName); ok {
			var grid HeatmapGrid
			if err := json.Unmarshal(payload, &grid); err == nil {
				return &grid, nil
			}
		}
	}

	slots, err := s.repo.GetSlotsByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load slots", err)
	}

	grid, appErr := s.engine.BuildHeatmap(meeting, slots, tzName)
	if appErr != nil {
		return nil, appErr
	}

	if s.cache != nil {
		if payload, err := json.Marshal(grid); err == nil {
			s.cache.SetHeatmap(ctx, meetingID, version, tzName, payload)
		}
	}

	return grid, nil
}

// GetSuggestions returns the ranked slots above the availability threshold.
func (s *MeetingService) GetSuggestions(ctx context.Context, meetingID uuid.UUID, limit int, minPct float64) (*dto.SuggestionsResponse, *errors.AppError) {
	meeting, err := s.repo.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}

	var version int64
	if s.cache != nil {
		version = s.cache.MeetingVersion(ctx, meetingID)
		if payload, ok := s.cache.GetSuggestions(ctx, meetingID, version, limit, minPct); ok {
			var resp dto.SuggestionsResponse
			if err := json.Unmarshal(payload, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	slots, err := s.repo.GetSlotsByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load slots", err)
	}

	ranked := RankSuggestions(slots, limit, minPct)
	resp := &dto.SuggestionsResponse{Suggestions: dto.ToSlotResponses(ranked)}

	if s.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			s.cache.SetSuggestions(ctx, meetingID, version, limit, minPct, payload)
		}
	}

	return resp, nil
}

// ExportICS renders the locked slot as an iCalendar file.
func (s *MeetingService) ExportICS(ctx context.Context, meetingID uuid.UUID) ([]byte, string, *errors.AppError) {
	meeting, err := s.repo.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, "", errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting", err)
	}
	if meeting == nil {
		return nil, "", errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}
	if meeting.Status != entity.MeetingStatusLocked {
		return nil, "", errors.NewAppError(errors.ErrInvalidInput, "Meeting is not locked yet", nil)
	}

	slot, err := s.repo.GetLockedSlot(ctx, meetingID)
	if err != nil {
		return nil, "", errors.NewAppError(errors.ErrInternalServer, "Failed to load locked slot", err)
	}
	if slot == nil {
		return nil, "", errors.NewAppError(errors.ErrNotFound, "Locked slot not found", nil)
	}

	payload, err := BuildLockedICS(meeting, slot)
	if err != nil {
		return nil, "", errors.NewAppError(errors.ErrInternalServer, "Failed to build calendar file", err)
	}

	return payload, meeting.Slug + ".ics", nil
}

// RefreshActiveMeetings rebuilds the aggregates of every active meeting.
// The nightly run keeps heatmaps honest when work-hour DST shifts or
// removed participants would otherwise leave them stale.
func (s *MeetingService) RefreshActiveMeetings(ctx context.Context) (int, error) {
	ids, err := s.repo.ListActiveMeetingIDs(ctx)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, id := range ids {
		meeting, err := s.repo.GetMeetingByID(ctx, id)
		if err != nil || meeting == nil {
			logger.Warn("MeetingService:RefreshActiveMeetings:load", "meeting_id", id, "error", err)
			continue
		}
		if _, err := s.repo.RecomputeSnapshot(ctx, id, s.snapshotFunc(meeting)); err != nil {
			logger.Warn("MeetingService:RefreshActiveMeetings:recompute", "meeting_id", id, "error", err)
			continue
		}
		s.bumpVersion(ctx, id)
		refreshed++
	}

	return refreshed, nil
}

func (s *MeetingService) getSharedMeeting(ctx context.Context, meetingID uuid.UUID, token string) (*entity.Meeting, *errors.AppError) {
	meeting, err := s.repo.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}
	if token == "" || meeting.Token != token {
		return nil, errors.NewAppError(errors.ErrForbidden, "Invalid share link", nil)
	}
	return meeting, nil
}

// parseBusyTime accepts RFC3339 first; a timestamp without an offset is read
// as wall-clock time in the participant's timezone. Either way the result is
// stored in UTC.
func parseBusyTime(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format %q", raw)
}
