package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdentityKind tags how a participant is identified within a meeting.
type IdentityKind string

const (
	IdentityEmail     IdentityKind = "email"
	IdentityAnonymous IdentityKind = "anonymous"
)

// Identity is a participant's resolved identity. Email-identified
// participants are unique per meeting; anonymous ones may repeat.
type Identity struct {
	Kind  IdentityKind `json:"kind"`
	Email string       `json:"email,omitempty"`
}

// Participant represents someone invited to submit their availability.
// Only participants with HasResponded set contribute to aggregation.
type Participant struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	MeetingID    uuid.UUID  `db:"meeting_id" json:"meeting_id"`
	Name         string     `db:"name" json:"name"`
	Email        *string    `db:"email" json:"email,omitempty"`
	Timezone     string     `db:"timezone" json:"timezone"`
	HasResponded bool       `db:"has_responded" json:"has_responded"`
	RespondedAt  *time.Time `db:"responded_at" json:"responded_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

func (p *Participant) Identity() Identity {
	if p.Email != nil && *p.Email != "" {
		return Identity{Kind: IdentityEmail, Email: *p.Email}
	}
	return Identity{Kind: IdentityAnonymous}
}

// DisplayName falls back to the email, then a generic label, so anonymous
// participants always render something.
func (p *Participant) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	if id := p.Identity(); id.Kind == IdentityEmail {
		return id.Email
	}
	return "Ẩn danh"
}
