package domain

import "time"

// OperatingWindow is one contiguous span of operating hours within a single
// calendar day. Start < End always holds; a schedule entry that wraps past
// midnight is pre-split into two non-wrapping windows.
type OperatingWindow struct {
	Start time.Time
	End   time.Time
}

// Minutes returns the window length in whole minutes
func (w OperatingWindow) Minutes() int {
	return int(w.End.Sub(w.Start) / time.Minute)
}

// Contains reports whether [start, end) lies entirely inside the window
func (w OperatingWindow) Contains(start, end time.Time) bool {
	return !start.Before(w.Start) && !end.After(w.End)
}

// ServiceUnit is one unit of a requested service: a ServiceRequest with
// quantity N expands into N units. Immutable once resolved.
type ServiceUnit struct {
	ServiceID       int64
	Category        string
	DurationMinutes int
}

// TimeSlot is one feasible start time for the whole requested sequence.
// EndTime is StartTime plus the sum of all unit durations in packed order.
// The provider counts are coarse capacity hints, not a guarantee that one
// provider covers every unit.
type TimeSlot struct {
	StartTime              time.Time
	EndTime                time.Time
	Available              bool
	AvailableEmployeeCount int
	AvailableOwnerCount    int
}

// AvailabilitySource indicates which roster a summary counted
type AvailabilitySource string

const (
	SourceAttendance AvailabilitySource = "ATTENDANCE"
	SourceRoster     AvailabilitySource = "ROSTER"
)

// CategorySummary is the quick daily rollup for one category, used by UI
// eligibility gates instead of a full slot search.
type CategorySummary struct {
	Category                        string
	HasHours                        bool
	HoursAlreadyPassed              bool
	QualifiedAvailableProviderCount int
	OwnerAvailable                  bool
	Source                          AvailabilitySource
}

// ProviderAvailability is one row of the manual-assignment listing:
// a qualified employee with a live availability flag for a window.
type ProviderAvailability struct {
	ID          int64
	Name        string
	Available   bool
	Specialties []string
}
