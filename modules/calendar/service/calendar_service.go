package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"timeweave/core/cache"
	"timeweave/core/config"
	"timeweave/core/errors"
	"timeweave/core/logger"
	"timeweave/core/utils"
	"timeweave/modules/calendar/dto"
	"timeweave/modules/calendar/entity"
	"timeweave/modules/calendar/repository"
	meetingEntity "timeweave/modules/meeting/entity"
	meetingRepo "timeweave/modules/meeting/repository"
	meetingService "timeweave/modules/meeting/service"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	googleFreeBusyAPI = "https://www.googleapis.com/calendar/v3/freeBusy"
	googleUserinfoAPI = "https://www.googleapis.com/oauth2/v2/userinfo"
)

type CalendarService interface {
	// Connection management
	BuildGoogleConnectURL(ctx context.Context, participantID uuid.UUID) (*dto.OAuthURLResponse, *errors.AppError)
	HandleGoogleCallback(ctx context.Context, code, state string) (*dto.CalendarConnectionResponse, *errors.AppError)
	GetConnections(ctx context.Context, participantID uuid.UUID) (*dto.CalendarConnectionListResponse, *errors.AppError)
	DisconnectCalendar(ctx context.Context, participantID uuid.UUID, provider string) *errors.AppError

	// Availability import
	ImportBusy(ctx context.Context, participantID uuid.UUID) (*dto.ImportBusyResponse, *errors.AppError)
}

type calendarService struct {
	repo        repository.CalendarRepository
	meetingRepo meetingRepo.MeetingRepositoryInterface
	meetingSvc  meetingService.MeetingServiceInterface
	cache       *cache.Cache
}

func NewCalendarService(
	repo repository.CalendarRepository,
	mRepo meetingRepo.MeetingRepositoryInterface,
	mSvc meetingService.MeetingServiceInterface,
	c *cache.Cache,
) CalendarService {
	return &calendarService{
		repo:        repo,
		meetingRepo: mRepo,
		meetingSvc:  mSvc,
		cache:       c,
	}
}

// BuildGoogleConnectURL starts the OAuth consent flow for a participant. The
// state nonce is kept in Redis so the callback can be tied back to them.
func (s *calendarService) BuildGoogleConnectURL(ctx context.Context, participantID uuid.UUID) (*dto.OAuthURLResponse, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "config not initialized", nil)
	}
	if cfg.GoogleAPI.ClientID == "" || cfg.GoogleAPI.ClientSecret == "" || cfg.GoogleAPI.RedirectURI == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Google OAuth configuration is missing", nil)
	}

	participant, err := s.meetingRepo.GetParticipantByID(ctx, participantID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load participant", err)
	}
	if participant == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}

	state := utils.GenerateRandomString(32)
	if err := s.cache.SetOAuthState(ctx, state, participantID); err != nil {
		logger.Error("CalendarService:BuildGoogleConnectURL:SetOAuthState", "error", err, "state", state)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to store state token", err)
	}

	authURL := s.oauthConfig(cfg).AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	return &dto.OAuthURLResponse{URL: authURL, State: state}, nil
}

// HandleGoogleCallback exchanges the authorization code and stores the
// connection for the participant resolved from the state nonce.
func (s *calendarService) HandleGoogleCallback(ctx context.Context, code, state string) (*dto.CalendarConnectionResponse, *errors.AppError) {
	participantID, ok := s.cache.GetOAuthState(ctx, state)
	if !ok {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid or expired state token", nil)
	}

	cfg, okCfg := config.GetSafe()
	if !okCfg {
		return nil, errors.NewAppError(errors.ErrInternalServer, "config not initialized", nil)
	}

	token, err := s.oauthConfig(cfg).Exchange(ctx, code)
	if err != nil {
		logger.Error("CalendarService:HandleGoogleCallback:Exchange", "error", err)
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Failed to exchange authorization code", err)
	}

	email, err := s.fetchGoogleEmail(ctx, token.AccessToken)
	if err != nil {
		// Connection still works without the display email.
		logger.Warn("CalendarService:HandleGoogleCallback:Userinfo", "error", err)
	}

	conn := &entity.CalendarConnection{
		ParticipantID:  participantID,
		Provider:       dto.ProviderGoogle,
		AccessToken:    token.AccessToken,
		RefreshToken:   token.RefreshToken,
		TokenExpiresAt: token.Expiry,
		CalendarEmail:  email,
		IsActive:       true,
	}
	conn.StampNew()

	saved, err := s.repo.UpsertConnection(ctx, conn)
	if err != nil {
		logger.Error("CalendarService:HandleGoogleCallback:Upsert", "error", err, "participant_id", participantID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save calendar connection", err)
	}

	resp := toConnectionResponse(saved)
	return &resp, nil
}

// GetConnections returns all active calendar connections for a participant.
func (s *calendarService) GetConnections(ctx context.Context, participantID uuid.UUID) (*dto.CalendarConnectionListResponse, *errors.AppError) {
	connections, err := s.repo.GetConnectionsByParticipantID(ctx, participantID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get connections", err)
	}

	result := make([]dto.CalendarConnectionResponse, 0, len(connections))
	for i := range connections {
		result = append(result, toConnectionResponse(&connections[i]))
	}
	return &dto.CalendarConnectionListResponse{Connections: result}, nil
}

// DisconnectCalendar deactivates a provider connection. Stored busy
// intervals imported earlier stay untouched.
func (s *calendarService) DisconnectCalendar(ctx context.Context, participantID uuid.UUID, provider string) *errors.AppError {
	if provider != dto.ProviderGoogle {
		return errors.NewAppError(errors.ErrInvalidInput, "Invalid provider", nil)
	}
	if err := s.repo.DeleteConnection(ctx, participantID, provider); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to disconnect", err)
	}
	return nil
}

// ImportBusy pulls busy periods from the participant's Google Calendar over
// the meeting date range and submits them as their availability response.
func (s *calendarService) ImportBusy(ctx context.Context, participantID uuid.UUID) (*dto.ImportBusyResponse, *errors.AppError) {
	participant, err := s.meetingRepo.GetParticipantByID(ctx, participantID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load participant", err)
	}
	if participant == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}

	meeting, err := s.meetingRepo.GetMeetingByID(ctx, participant.MeetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}

	conn, err := s.repo.GetConnectionByParticipantAndProvider(ctx, participantID, dto.ProviderGoogle)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load connection", err)
	}
	if conn == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "No Google Calendar connected", nil)
	}

	accessToken, appErr := s.ensureValidToken(ctx, conn)
	if appErr != nil {
		return nil, appErr
	}

	timeMin, timeMax := meetingWindow(meeting)
	busy, err := s.fetchFreeBusy(ctx, accessToken, conn.CalendarEmail, timeMin, timeMax)
	if err != nil {
		logger.Error("CalendarService:ImportBusy:FreeBusy", "error", err, "participant_id", participantID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to fetch busy periods from Google", err)
	}

	windows := make([]meetingEntity.TimeSlot, 0, len(busy))
	for _, slot := range busy {
		start, err1 := time.Parse(time.RFC3339, slot.Start)
		end, err2 := time.Parse(time.RFC3339, slot.End)
		if err1 != nil || err2 != nil || !end.After(start) {
			continue
		}
		windows = append(windows, meetingEntity.TimeSlot{Start: start.UTC(), End: end.UTC()})
	}
	merged := meetingService.MergeTimeSlots(windows)

	now := time.Now().UTC()
	intervals := make([]meetingEntity.BusyInterval, 0, len(merged))
	for _, w := range merged {
		intervals = append(intervals, meetingEntity.BusyInterval{
			ID:            uuid.New(),
			ParticipantID: participantID,
			StartTime:     w.Start,
			EndTime:       w.End,
			Description:   "Google Calendar",
			CreatedAt:     now,
		})
	}

	if _, appErr := s.meetingSvc.SubmitParsedAvailability(ctx, participantID, intervals); appErr != nil {
		return nil, appErr
	}

	resp := &dto.ImportBusyResponse{
		Provider:      dto.ProviderGoogle,
		CalendarEmail: conn.CalendarEmail,
		ImportedCount: len(intervals),
		Busy:          make([]dto.TimeSlot, 0, len(intervals)),
	}
	for _, iv := range intervals {
		resp.Busy = append(resp.Busy, dto.TimeSlot{
			Start: iv.StartTime.Format(time.RFC3339),
			End:   iv.EndTime.Format(time.RFC3339),
		})
	}
	return resp, nil
}

func (s *calendarService) oauthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		RedirectURL:  cfg.GoogleAPI.RedirectURI,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/calendar.readonly",
		},
		Endpoint: google.Endpoint,
	}
}

// ensureValidToken hands back a usable access token, refreshing through the
// oauth2 token source and persisting the rotated credentials when it does.
func (s *calendarService) ensureValidToken(ctx context.Context, conn *entity.CalendarConnection) (string, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return "", errors.NewAppError(errors.ErrInternalServer, "config not initialized", nil)
	}

	current := &oauth2.Token{
		AccessToken:  conn.AccessToken,
		RefreshToken: conn.RefreshToken,
		Expiry:       conn.TokenExpiresAt,
	}
	fresh, err := s.oauthConfig(cfg).TokenSource(ctx, current).Token()
	if err != nil {
		logger.Error("CalendarService:ensureValidToken:Refresh", "error", err, "participant_id", conn.ParticipantID)
		return "", errors.NewAppError(errors.ErrUnauthorized, "Google token expired, reconnect the calendar", err)
	}

	if fresh.AccessToken != conn.AccessToken {
		conn.AccessToken = fresh.AccessToken
		if fresh.RefreshToken != "" {
			conn.RefreshToken = fresh.RefreshToken
		}
		conn.TokenExpiresAt = fresh.Expiry
		if err := s.repo.UpdateConnectionTokens(ctx, conn); err != nil {
			logger.Error("CalendarService:ensureValidToken:Persist", "error", err, "participant_id", conn.ParticipantID)
		}
	}

	return fresh.AccessToken, nil
}

// fetchFreeBusy calls the Google Calendar FreeBusy API.
func (s *calendarService) fetchFreeBusy(ctx context.Context, accessToken, email string, timeMin, timeMax time.Time) ([]dto.TimeSlot, error) {
	calendarID := email
	if calendarID == "" {
		calendarID = "primary"
	}

	payload := map[string]interface{}{
		"timeMin": timeMin.Format(time.RFC3339),
		"timeMax": timeMax.Format(time.RFC3339),
		"items": []map[string]string{
			{"id": calendarID},
		},
	}

	payloadJSON, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleFreeBusyAPI, strings.NewReader(string(payloadJSON)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Google FreeBusy API error: %s", string(body))
	}

	var result struct {
		Calendars map[string]struct {
			Busy []struct {
				Start string `json:"start"`
				End   string `json:"end"`
			} `json:"busy"`
		} `json:"calendars"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	var busySlots []dto.TimeSlot
	if cal, ok := result.Calendars[calendarID]; ok {
		for _, busy := range cal.Busy {
			busySlots = append(busySlots, dto.TimeSlot{Start: busy.Start, End: busy.End})
		}
	}
	return busySlots, nil
}

func (s *calendarService) fetchGoogleEmail(ctx context.Context, accessToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserinfoAPI, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to get user info: %s", string(body))
	}

	var info struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return "", err
	}
	return info.Email, nil
}

// meetingWindow bounds the free/busy query to the meeting's date range,
// expressed in the meeting timezone so boundary days are fully covered.
func meetingWindow(m *meetingEntity.Meeting) (time.Time, time.Time) {
	loc, err := time.LoadLocation(m.Timezone)
	if err != nil {
		loc = time.UTC
	}
	start := time.Date(m.DateRangeStart.Year(), m.DateRangeStart.Month(), m.DateRangeStart.Day(), 0, 0, 0, 0, loc)
	end := time.Date(m.DateRangeEnd.Year(), m.DateRangeEnd.Month(), m.DateRangeEnd.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	return start, end
}

func toConnectionResponse(conn *entity.CalendarConnection) dto.CalendarConnectionResponse {
	return dto.CalendarConnectionResponse{
		ID:            conn.ID.String(),
		Provider:      conn.Provider,
		CalendarEmail: conn.CalendarEmail,
		IsActive:      conn.IsActive,
		ConnectedAt:   conn.CreatedAt.Format(time.RFC3339),
	}
}
