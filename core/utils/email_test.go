package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const templatesDir = "../../templates"

func TestRenderEmailTemplate_Invitation(t *testing.T) {
	body, err := RenderEmailTemplate(templatesDir, "meeting_invitation.html", TemplateData{
		RecipientName: "Lan",
		MeetingTitle:  "Họp sprint",
		MeetingURL:    "https://timeweave.example/r/abc?t=xyz",
		Deadline:      "20/01/2024 18:00",
		Timezone:      "Asia/Ho_Chi_Minh",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Xin chào Lan")
	assert.Contains(t, body, "Họp sprint")
	assert.Contains(t, body, "https://timeweave.example/r/abc?t=xyz")
	assert.Contains(t, body, "20/01/2024 18:00")
	// SiteName falls back when the caller leaves it empty.
	assert.Contains(t, body, "TimeWeave")
}

func TestRenderEmailTemplate_InvitationWithoutDeadline(t *testing.T) {
	body, err := RenderEmailTemplate(templatesDir, "meeting_invitation.html", TemplateData{
		RecipientName: "Minh",
		MeetingTitle:  "Họp nhanh",
		MeetingURL:    "https://timeweave.example/r/abc?t=xyz",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "Vui lòng phản hồi trước")
}

func TestRenderEmailTemplate_Locked(t *testing.T) {
	body, err := RenderEmailTemplate(templatesDir, "meeting_locked.html", TemplateData{
		SiteName:      "Lịch Nhóm",
		RecipientName: "Lan",
		MeetingTitle:  "Họp sprint",
		SlotStart:     "09:00 02/01/2024",
		SlotEnd:       "10:00 02/01/2024",
		Timezone:      "Asia/Ho_Chi_Minh",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Lịch Nhóm")
	assert.Contains(t, body, "09:00 02/01/2024")
	assert.Contains(t, body, "10:00 02/01/2024")
	assert.NotContains(t, body, "TimeWeave")
}

func TestRenderEmailTemplate_MissingFile(t *testing.T) {
	_, err := RenderEmailTemplate(templatesDir, "no_such_template.html", TemplateData{})
	require.Error(t, err)
}

func TestExtractAddress(t *testing.T) {
	tests := []struct {
		from string
		want string
	}{
		{"noreply@timeweave.example", "noreply@timeweave.example"},
		{"TimeWeave <noreply@timeweave.example>", "noreply@timeweave.example"},
		{"<a@b.c>", "a@b.c"},
		{"broken <unclosed", "broken <unclosed"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractAddress(tt.from))
	}
}
