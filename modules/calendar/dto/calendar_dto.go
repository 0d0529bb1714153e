package dto

// Provider constants
const (
	ProviderGoogle = "google"
)

// ========== OAuth DTOs ==========

// OAuthURLResponse carries the Google consent URL the participant must visit
type OAuthURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// ========== Calendar Connection DTOs ==========

// CalendarConnectionResponse represents a calendar connection
type CalendarConnectionResponse struct {
	ID            string `json:"id"`
	Provider      string `json:"provider"`
	CalendarEmail string `json:"calendar_email"`
	IsActive      bool   `json:"is_active"`
	ConnectedAt   string `json:"connected_at"`
}

// CalendarConnectionListResponse represents list of connections
type CalendarConnectionListResponse struct {
	Connections []CalendarConnectionResponse `json:"connections"`
}

// ========== Free/Busy DTOs ==========

// TimeSlot represents a busy period as reported by the provider (RFC3339)
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ImportBusyResponse summarizes an availability import from a connected
// calendar. Busy holds the merged intervals that were stored.
type ImportBusyResponse struct {
	Provider      string     `json:"provider"`
	CalendarEmail string     `json:"calendar_email,omitempty"`
	ImportedCount int        `json:"imported_count"`
	Busy          []TimeSlot `json:"busy"`
}
