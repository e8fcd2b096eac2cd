package state

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harutok/SchoolReserve-Service/internal/domain"
)

func TestEnvelope_RoundTrip(t *testing.T) {
	slots := []*domain.TimeSlot{
		{ID: "s1", TeacherID: "t1", Date: "2024-12-10", StartTime: "15:00", EndTime: "15:20", IsReserved: false},
		{ID: "s2", TeacherID: "t1", Date: "2024-12-10", StartTime: "15:30", EndTime: "15:50", IsReserved: true},
	}

	payload, err := encodeEnvelope(slots)
	require.NoError(t, err)
	assert.True(t, strings.Contains(payload, `"schemaVersion":1`))

	var decoded []*domain.TimeSlot
	require.NoError(t, decodeEnvelope(payload, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "s1", decoded[0].ID)
	assert.True(t, decoded[1].IsReserved)
}

func TestDecodeEnvelope_MalformedJSON(t *testing.T) {
	var decoded []*domain.TimeSlot
	err := decodeEnvelope(`{"schemaVersion":1,"records":[`, &decoded)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestDecodeEnvelope_UnsupportedSchemaVersion(t *testing.T) {
	var decoded []*domain.Reservation
	err := decodeEnvelope(`{"schemaVersion":99,"records":[]}`, &decoded)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestDecodeEnvelope_MalformedRecords(t *testing.T) {
	var decoded []*domain.TimeSlot
	err := decodeEnvelope(`{"schemaVersion":1,"records":{"not":"an array"}}`, &decoded)
	assert.ErrorIs(t, err, ErrDecode)
}
