package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, bad := range []string{"", "9:30:00", "25:00", "09:60", "morning"} {
		_, err := NewTimeStringFromString(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 14, 9, 30, 45, 0, time.UTC))
	assert.Equal(t, TimeString("09:30"), ts)
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		in      TimeString
		minutes int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		got, err := tt.in.Minutes()
		require.NoError(t, err)
		assert.Equal(t, tt.minutes, got)
	}

	_, err := TimeString("garbage").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	got, err = TimeString("09:30").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), got)

	// Выход за пределы суток и ровно 24:00 не представимы
	_, err = TimeString("23:00").AddMinutes(90)
	assert.Error(t, err)
	_, err = TimeString("23:00").AddMinutes(60)
	assert.Error(t, err)
	_, err = TimeString("00:30").AddMinutes(-60)
	assert.Error(t, err)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.True(t, TimeString("10:00").Equal("10:00"))
}

func TestTimeString_OnDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	day := time.Date(2026, 9, 14, 15, 45, 0, 0, time.UTC) // время внутри дня игнорируется
	got, err := TimeString("09:30").OnDay(day, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 9, 14, 9, 30, 0, 0, loc), got)

	_, err = TimeString("garbage").OnDay(day, loc)
	assert.Error(t, err)
}
