package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// attendanceWindow один интервал присутствия сотрудника.
// out == nil означает открытую смену (сотрудник еще не отметился на выход).
type attendanceWindow struct {
	in  time.Time
	out *time.Time
}

// attendanceIndex индекс отметок присутствия на целевой день.
// Присутствие проверяется ТОЛЬКО для сегодняшнего дня: для прошлых и
// будущих дат любой сотрудник считается присутствующим - план на будущее
// не должен зависеть от того, кто отметился сейчас.
type attendanceIndex struct {
	enforced   bool
	byEmployee map[int64][]attendanceWindow
}

func newAttendanceIndex(day Day, records []domain.AttendanceRecord) *attendanceIndex {
	ix := &attendanceIndex{
		enforced:   day.IsToday(),
		byEmployee: make(map[int64][]attendanceWindow),
	}

	if !ix.enforced {
		return ix
	}

	for _, rec := range records {
		// Берем только активные отметки (present/late) с проставленным входом
		if !rec.IsActive() || rec.TimeIn.IsZero() {
			continue
		}
		ix.byEmployee[rec.EmployeeID] = append(ix.byEmployee[rec.EmployeeID], attendanceWindow{
			in:  rec.TimeIn,
			out: rec.TimeOut,
		})
	}

	return ix
}

// IsClockedInFor проверяет, что сотрудник присутствует на весь интервал
// [start, end): существует отметка с timeIn <= start и открытым либо не
// раньше end выходом. У сотрудника может быть несколько несмежных смен
// за день - достаточно любой подходящей.
func (ix *attendanceIndex) IsClockedInFor(employeeID int64, start, end time.Time) bool {
	if !ix.enforced {
		return true
	}

	for _, w := range ix.byEmployee[employeeID] {
		if w.in.After(start) {
			continue
		}
		if w.out == nil || !w.out.Before(end) {
			return true
		}
	}

	return false
}

// ClockedInAt проверяет присутствие сотрудника в конкретный момент времени
func (ix *attendanceIndex) ClockedInAt(employeeID int64, at time.Time) bool {
	return ix.IsClockedInFor(employeeID, at, at)
}
