package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToString(t *testing.T) {
	id := uuid.New()

	assert.Equal(t, "xin chào", ToString("xin chào"))
	assert.Equal(t, id.String(), ToString(id))
	assert.Equal(t, "1h0m0s", ToString(time.Hour))
	assert.Equal(t, "42", ToString(42))
}

func TestToUUID(t *testing.T) {
	id := uuid.New()

	parsed, err := ToUUID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ToUUID("không phải uuid")
	assert.Error(t, err)
}

func TestToNumberWithDefault(t *testing.T) {
	assert.Equal(t, 7, ToNumberWithDefault("7", 1))
	assert.Equal(t, 1, ToNumberWithDefault("", 1))
	assert.Equal(t, 1, ToNumberWithDefault("bảy", 1))
}

func TestToFloatWithDefault(t *testing.T) {
	assert.Equal(t, 50.5, ToFloatWithDefault("50.5", 0))
	assert.Equal(t, 0.0, ToFloatWithDefault("", 0))
	assert.Equal(t, 0.0, ToFloatWithDefault("năm mươi", 0))
}
