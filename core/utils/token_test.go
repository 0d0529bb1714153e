package utils

import (
	"testing"

	"timeweave/core/config"
	"timeweave/core/constants"
	"timeweave/core/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setJWTConfig(secret string, ttlHours int) {
	config.Set(&config.Config{JWT: config.JWTConfig{Secret: secret, AccessTTLHour: ttlHours}})
}

func TestToken_RoundTrip(t *testing.T) {
	setJWTConfig("round-trip-secret", 1)
	creatorID := uuid.New()

	token, err := GenerateToken(creatorID, constants.ScopeTokenCreator)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, appErr := ValidateAndParseToken(token)
	require.Nil(t, appErr)
	assert.Equal(t, creatorID, claims.CreatorID)
	assert.Equal(t, constants.ScopeTokenCreator, claims.Scope)
	assert.NotEmpty(t, claims.ID)
}

func TestToken_Expired(t *testing.T) {
	setJWTConfig("expired-secret", -1)

	token, err := GenerateToken(uuid.New(), constants.ScopeTokenCreator)
	require.NoError(t, err)

	_, appErr := ValidateAndParseToken(token)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrTokenExpired, appErr.Code)
}

func TestToken_WrongSecret(t *testing.T) {
	setJWTConfig("first-secret", 1)
	token, err := GenerateToken(uuid.New(), constants.ScopeTokenCreator)
	require.NoError(t, err)

	setJWTConfig("second-secret", 1)
	_, appErr := ValidateAndParseToken(token)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidTokenFormat, appErr.Code)
}

func TestToken_Garbage(t *testing.T) {
	setJWTConfig("garbage-secret", 1)

	for _, raw := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		_, appErr := ValidateAndParseToken(raw)
		require.NotNil(t, appErr, "token %q", raw)
		assert.Equal(t, errors.ErrInvalidTokenFormat, appErr.Code)
	}
}

func TestPassword_HashAndCompare(t *testing.T) {
	hashed, err := HashPassword("mật khẩu bí mật")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)

	assert.True(t, ComparePassword(hashed, "mật khẩu bí mật"))
	assert.False(t, ComparePassword(hashed, "đoán sai"))
}
