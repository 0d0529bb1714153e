package repository

import (
	"context"
	"database/sql"
	"errors"

	"timeweave/core/database"
	"timeweave/modules/calendar/entity"

	"github.com/google/uuid"
)

type CalendarRepository interface {
	UpsertConnection(ctx context.Context, conn *entity.CalendarConnection) (*entity.CalendarConnection, error)
	GetConnectionByParticipantAndProvider(ctx context.Context, participantID uuid.UUID, provider string) (*entity.CalendarConnection, error)
	GetConnectionsByParticipantID(ctx context.Context, participantID uuid.UUID) ([]entity.CalendarConnection, error)
	UpdateConnectionTokens(ctx context.Context, conn *entity.CalendarConnection) error
	DeleteConnection(ctx context.Context, participantID uuid.UUID, provider string) error
}

type calendarRepository struct {
	db database.Database
}

func NewCalendarRepository(db database.Database) CalendarRepository {
	return &calendarRepository{db: db}
}

// UpsertConnection creates a connection or replaces the tokens of an existing
// one for the same participant and provider. Reconnecting always reactivates.
func (r *calendarRepository) UpsertConnection(ctx context.Context, conn *entity.CalendarConnection) (*entity.CalendarConnection, error) {
	query := `
		INSERT INTO calendar_connections (id, participant_id, provider, access_token, refresh_token, token_expires_at, calendar_email, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (participant_id, provider) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_expires_at = EXCLUDED.token_expires_at,
			calendar_email = EXCLUDED.calendar_email,
			is_active = TRUE,
			updated_at = now()
		RETURNING id, participant_id, provider, access_token, refresh_token, token_expires_at, calendar_email, is_active, created_at, updated_at
	`
	var saved entity.CalendarConnection
	err := r.db.GetContext(ctx, &saved, query,
		conn.ID, conn.ParticipantID, conn.Provider, conn.AccessToken, conn.RefreshToken,
		conn.TokenExpiresAt, conn.CalendarEmail, conn.IsActive, conn.CreatedAt, conn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *calendarRepository) GetConnectionByParticipantAndProvider(ctx context.Context, participantID uuid.UUID, provider string) (*entity.CalendarConnection, error) {
	query := `
		SELECT id, participant_id, provider, access_token, refresh_token, token_expires_at, calendar_email, is_active, created_at, updated_at
		FROM calendar_connections
		WHERE participant_id = $1 AND provider = $2 AND is_active = true
	`
	var conn entity.CalendarConnection
	err := r.db.GetContext(ctx, &conn, query, participantID, provider)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &conn, nil
}

func (r *calendarRepository) GetConnectionsByParticipantID(ctx context.Context, participantID uuid.UUID) ([]entity.CalendarConnection, error) {
	query := `
		SELECT id, participant_id, provider, access_token, refresh_token, token_expires_at, calendar_email, is_active, created_at, updated_at
		FROM calendar_connections
		WHERE participant_id = $1 AND is_active = true
		ORDER BY created_at DESC
	`
	var connections []entity.CalendarConnection
	if err := r.db.SelectContext(ctx, &connections, query, participantID); err != nil {
		return nil, err
	}
	return connections, nil
}

// UpdateConnectionTokens persists refreshed provider tokens.
func (r *calendarRepository) UpdateConnectionTokens(ctx context.Context, conn *entity.CalendarConnection) error {
	query := `
		UPDATE calendar_connections
		SET access_token = $1, refresh_token = $2, token_expires_at = $3, updated_at = now()
		WHERE id = $4
	`
	return r.db.ExecContext(ctx, query,
		conn.AccessToken, conn.RefreshToken, conn.TokenExpiresAt, conn.ID,
	)
}

// DeleteConnection soft deletes a calendar connection.
func (r *calendarRepository) DeleteConnection(ctx context.Context, participantID uuid.UUID, provider string) error {
	query := `
		UPDATE calendar_connections
		SET is_active = false, updated_at = now()
		WHERE participant_id = $1 AND provider = $2
	`
	return r.db.ExecContext(ctx, query, participantID, provider)
}
