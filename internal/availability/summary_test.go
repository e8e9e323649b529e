package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

func summaryInput(day Day) Input {
	return Input{
		Day:   day,
		Hours: []domain.BusinessHour{workingHours("hair", "09:00", "17:00")},
		Employees: []domain.Provider{
			employee(1, "hair"),
			employee(2, "hair"),
			employee(3, "nails"),
		},
		Owners: []domain.Provider{owner(50)},
	}
}

func TestSummarize_FutureDayRoster(t *testing.T) {
	engine := NewEngine(summaryInput(futureDay()))

	summary := engine.Summarize("hair", true)

	// Для не-сегодня режим присутствия деградирует до ROSTER
	assert.Equal(t, "hair", summary.Category)
	assert.True(t, summary.HasHours)
	assert.False(t, summary.HoursAlreadyPassed)
	assert.Equal(t, 2, summary.QualifiedAvailableProviderCount)
	assert.True(t, summary.OwnerAvailable)
	assert.Equal(t, domain.SourceRoster, summary.Source)
}

func TestSummarize_TodayAttendance(t *testing.T) {
	in := summaryInput(todayAt(11, 0))
	in.Attendance = []domain.AttendanceRecord{
		clockIn(1, at(9, 0), nil),
		clockIn(2, at(9, 0), ptr.Ptr(at(10, 0))), // уже ушел
	}
	engine := NewEngine(in)

	summary := engine.Summarize("hair", true)

	assert.Equal(t, domain.SourceAttendance, summary.Source)
	assert.Equal(t, 1, summary.QualifiedAvailableProviderCount)
	assert.True(t, summary.OwnerAvailable)
}

func TestSummarize_TodayRosterWhenNotEnforced(t *testing.T) {
	engine := NewEngine(summaryInput(todayAt(11, 0)))

	summary := engine.Summarize("hair", false)

	assert.Equal(t, domain.SourceRoster, summary.Source)
	assert.Equal(t, 2, summary.QualifiedAvailableProviderCount)
}

func TestSummarize_HoursAlreadyPassed(t *testing.T) {
	engine := NewEngine(summaryInput(todayAt(18, 0)))

	summary := engine.Summarize("hair", false)

	assert.True(t, summary.HasHours)
	assert.True(t, summary.HoursAlreadyPassed)
}

func TestSummarize_HoursNotPassedInsideWindow(t *testing.T) {
	engine := NewEngine(summaryInput(todayAt(12, 0)))

	summary := engine.Summarize("hair", false)

	assert.False(t, summary.HoursAlreadyPassed)
}

func TestSummarize_OvernightSecondWindow(t *testing.T) {
	in := summaryInput(todayAt(1, 0))
	in.Hours = []domain.BusinessHour{workingHours("hair", "22:00", "02:00")}
	engine := NewEngine(in)

	summary := engine.Summarize("hair", false)

	// 01:00 попадает в послеполуночную часть смены
	assert.True(t, summary.HasHours)
	assert.False(t, summary.HoursAlreadyPassed)
}

func TestSummarize_NoHours(t *testing.T) {
	in := summaryInput(futureDay())
	in.Hours = []domain.BusinessHour{closedHours("hair")}
	engine := NewEngine(in)

	summary := engine.Summarize("hair", false)

	assert.False(t, summary.HasHours)
	assert.False(t, summary.HoursAlreadyPassed)
	assert.Equal(t, 2, summary.QualifiedAvailableProviderCount)
}
