package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapler/fleet-records/internal/domain"
)

func TestDate_WireFormat(t *testing.T) {
	d, err := domain.ParseDate("2024-01-01")
	require.NoError(t, err)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-01"`, string(out))

	zero, err := json.Marshal(domain.Date{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(zero))
}

func TestDate_DecodesLegacyTimestamps(t *testing.T) {
	// Earlier versions persisted full ISO timestamps for dates.
	var d domain.Date
	require.NoError(t, json.Unmarshal([]byte(`"2023-05-17T09:30:00Z"`), &d))
	assert.Equal(t, "2023-05-17", d.String())
}

func TestDate_ToleratesGarbage(t *testing.T) {
	// A corrupt date field must not fail the collection decode.
	var d domain.Date
	require.NoError(t, json.Unmarshal([]byte(`"yesterday"`), &d))
	assert.True(t, d.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}
