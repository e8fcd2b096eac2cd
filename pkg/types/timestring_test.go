package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("15:30")
	require.NoError(t, err)
	assert.Equal(t, "15:30", ts.String())

	for _, bad := range []string{"", "15", "3pm", "25:00", "15:60", "15:30:00"} {
		_, err := NewTimeStringFromString(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 12, 10, 9, 5, 30, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestTimeString_Compare(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("15:30")

	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.False(t, a.IsZero())
	assert.True(t, TimeString("").IsZero())
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("15:45").AddMinutes(20)
	require.NoError(t, err)
	assert.Equal(t, TimeString("16:05"), ts)

	_, err = TimeString("bad").AddMinutes(5)
	assert.Error(t, err)
}
