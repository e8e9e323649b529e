package domain

import "time"

// AttendanceStatus represents the state of an attendance record
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceOnLeave AttendanceStatus = "on_leave"
)

// ActiveAttendanceStatuses statuses that count as "clocked in".
// Used when filtering records for today's attendance gating.
var ActiveAttendanceStatuses = []AttendanceStatus{
	AttendancePresent,
	AttendanceLate,
}

// AttendanceRecord is one clock-in interval of an employee. TimeOut is nil
// while the shift is still open. An employee may have several disjoint
// records per day (split shifts).
type AttendanceRecord struct {
	ID         int64
	BusinessID int64
	EmployeeID int64
	Status     AttendanceStatus
	TimeIn     time.Time
	TimeOut    *time.Time
}

// IsActive returns true if the record counts towards attendance gating
func (r *AttendanceRecord) IsActive() bool {
	return r.Status == AttendancePresent || r.Status == AttendanceLate
}

// Covers reports whether the record keeps the employee clocked in for the
// whole half-open interval [start, end).
func (r *AttendanceRecord) Covers(start, end time.Time) bool {
	if r.TimeIn.After(start) {
		return false
	}
	return r.TimeOut == nil || !r.TimeOut.Before(end)
}
