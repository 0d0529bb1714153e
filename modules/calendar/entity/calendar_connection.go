package entity

import (
	"time"

	"timeweave/core/entity"

	"github.com/google/uuid"
)

// CalendarConnection stores a participant's calendar provider connection.
// Tokens are never serialized.
type CalendarConnection struct {
	entity.BaseEntity
	ParticipantID  uuid.UUID `db:"participant_id" json:"participant_id"`
	Provider       string    `db:"provider" json:"provider"` // "google"
	AccessToken    string    `db:"access_token" json:"-"`
	RefreshToken   string    `db:"refresh_token" json:"-"`
	TokenExpiresAt time.Time `db:"token_expires_at" json:"token_expires_at"`
	CalendarEmail  string    `db:"calendar_email" json:"calendar_email"`
	IsActive       bool      `db:"is_active" json:"is_active"`
}
