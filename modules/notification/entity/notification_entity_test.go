package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONB_ValueAndScan(t *testing.T) {
	original := JSONB{
		"participant_id": "b2f7a3c1-0000-4000-8000-000000000000",
		"count":          float64(3),
	}

	raw, err := original.Value()
	require.NoError(t, err)

	var restored JSONB
	require.NoError(t, restored.Scan(raw.([]byte)))
	assert.Equal(t, original, restored)
}

func TestJSONB_ScanEdgeCases(t *testing.T) {
	var data JSONB

	// NULL column leaves the map untouched.
	require.NoError(t, data.Scan(nil))
	assert.Nil(t, data)

	// Non-byte values are driver bugs, not data.
	assert.Error(t, data.Scan("not bytes"))
	assert.Error(t, data.Scan([]byte("{invalid json")))

	require.NoError(t, data.Scan([]byte(`{"slot_id":"abc"}`)))
	assert.Equal(t, JSONB{"slot_id": "abc"}, data)
}

func TestJSONB_EmptyMapSerializesToObject(t *testing.T) {
	raw, err := JSONB{}.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), raw.([]byte))
}
