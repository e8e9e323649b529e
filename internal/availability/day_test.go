package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDay_Bounds(t *testing.T) {
	day := NewDay(testDate, time.UTC, longBefore)

	assert.Equal(t, at(0, 0), day.Start())
	assert.Equal(t, at(24, 0), day.End())
	assert.Equal(t, time.Monday, day.Weekday())
	assert.False(t, day.IsToday())
	assert.False(t, day.IsPast())
}

func TestNewDay_TodayInBusinessZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 03:00 UTC 15 сентября - это еще вечер 14 сентября в Нью-Йорке
	now := time.Date(2026, 9, 15, 3, 0, 0, 0, time.UTC)
	day := NewDay(testDate, loc, now)

	assert.True(t, day.IsToday())
	assert.False(t, day.IsPast())
}

func TestNewDay_PastDay(t *testing.T) {
	now := time.Date(2026, 9, 20, 10, 0, 0, 0, time.UTC)
	day := NewDay(testDate, time.UTC, now)

	assert.False(t, day.IsToday())
	assert.True(t, day.IsPast())
}
