package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParticipant_Identity(t *testing.T) {
	email := "lan@example.com"

	p := &Participant{Name: "Lan", Email: &email}
	assert.Equal(t, Identity{Kind: IdentityEmail, Email: email}, p.Identity())

	empty := ""
	assert.Equal(t, IdentityAnonymous, (&Participant{Email: &empty}).Identity().Kind)
	assert.Equal(t, IdentityAnonymous, (&Participant{}).Identity().Kind)
}

func TestParticipant_DisplayName(t *testing.T) {
	email := "lan@example.com"

	assert.Equal(t, "Lan", (&Participant{Name: "Lan", Email: &email}).DisplayName())
	assert.Equal(t, email, (&Participant{Email: &email}).DisplayName())
	assert.Equal(t, "Ẩn danh", (&Participant{}).DisplayName())
}
