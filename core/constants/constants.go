package constants

import "time"

// Context keys
const (
	ContextTokenData = "token_data"
)

// Timeouts
const (
	DefaultTimeout        = 30 * time.Second
	DefaultRequestTimeout = 15 * time.Second
)

// Database tuning
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Token scopes
const (
	ScopeTokenCreator = "creator"
)

// Redis key prefixes
const (
	RedisKeyMeetingVersion = "timeweave:meeting:version:"
	RedisKeyHeatmap        = "timeweave:heatmap:"
	RedisKeySuggestions    = "timeweave:suggestions:"
	RedisKeyRespondBlock   = "timeweave:respond:attempts:"
	RedisKeyOAuthState     = "timeweave:oauth:state:"
)

// Cache TTLs and rate limiting
const (
	HeatmapCacheTTL     = 5 * time.Minute
	SuggestionsCacheTTL = 5 * time.Minute
	BlockDuration       = 15 * time.Minute
	MaxRespondAttempts  = 60
	OAuthStateTTL       = 10 * time.Minute
)

// Scheduling defaults and bounds
const (
	DefaultTimezone       = "Asia/Ho_Chi_Minh"
	DefaultWorkHoursStart = "09:00"
	DefaultWorkHoursEnd   = "18:00"
	DefaultStepMinutes    = 30
	DefaultDurationMins   = 60

	MinDurationMinutes = 15
	MaxDurationMinutes = 480
	MaxDateRangeDays   = 92
	MaxTitleLength     = 200

	DefaultSuggestionLimit = 10
	DefaultMinPercentage   = 50.0

	ShareTokenLength = 43
)
