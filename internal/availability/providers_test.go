package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestListProviders_QualifiedSortedDeduplicated(t *testing.T) {
	engine := NewEngine(Input{
		Day:   futureDay(),
		Hours: []domain.BusinessHour{workingHours(domain.GeneralCategory, "09:00", "17:00")},
		Employees: []domain.Provider{
			employee(3), // универсал, подходит для обеих категорий
			employee(1, "hair"),
			employee(2, "nails"),
			employee(4, "massage"),
		},
		Owners: []domain.Provider{owner(50)},
	})

	result := engine.ListProviders(at(9, 0), at(10, 0), []string{"hair", "nails"})

	// Универсал попадает в список один раз, владельцы не попадают вовсе
	require.Len(t, result, 3)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, int64(2), result[1].ID)
	assert.Equal(t, int64(3), result[2].ID)
	for _, p := range result {
		assert.True(t, p.Available)
	}
}

func TestListProviders_BusyEmployee(t *testing.T) {
	engine := NewEngine(Input{
		Day:       futureDay(),
		Hours:     []domain.BusinessHour{workingHours("hair", "09:00", "17:00")},
		Employees: []domain.Provider{employee(1, "hair"), employee(2, "hair")},
		Bookings: []domain.Booking{
			employeeBooking(100, 2, at(9, 30), at(10, 30)),
		},
	})

	result := engine.ListProviders(at(9, 0), at(10, 0), []string{"hair"})

	require.Len(t, result, 2)
	assert.True(t, result[0].Available)
	assert.False(t, result[1].Available)
}

func TestListProviders_TouchingBookingDoesNotBlock(t *testing.T) {
	engine := NewEngine(Input{
		Day:       futureDay(),
		Hours:     []domain.BusinessHour{workingHours("hair", "09:00", "17:00")},
		Employees: []domain.Provider{employee(1, "hair")},
		Bookings: []domain.Booking{
			employeeBooking(100, 1, at(10, 0), at(11, 0)),
		},
	})

	result := engine.ListProviders(at(9, 0), at(10, 0), []string{"hair"})

	require.Len(t, result, 1)
	assert.True(t, result[0].Available)
}

func TestListProviders_TodayAttendanceGating(t *testing.T) {
	engine := NewEngine(Input{
		Day:       todayAt(8, 0),
		Hours:     []domain.BusinessHour{workingHours("hair", "09:00", "17:00")},
		Employees: []domain.Provider{employee(1, "hair"), employee(2, "hair")},
		Attendance: []domain.AttendanceRecord{
			clockIn(1, at(8, 0), nil),
		},
	})

	result := engine.ListProviders(at(9, 0), at(10, 0), []string{"hair"})

	require.Len(t, result, 2)
	assert.True(t, result[0].Available)
	assert.False(t, result[1].Available)
}

func TestListProviders_NoQualified(t *testing.T) {
	engine := NewEngine(Input{
		Day:       futureDay(),
		Hours:     []domain.BusinessHour{workingHours("hair", "09:00", "17:00")},
		Employees: []domain.Provider{employee(1, "hair")},
	})

	result := engine.ListProviders(at(9, 0), at(10, 0), []string{"massage"})

	require.NotNil(t, result)
	assert.Empty(t, result)
}
