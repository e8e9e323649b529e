package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending            BookingStatus = "pending"
	StatusConfirmed          BookingStatus = "confirmed"
	StatusInProgress         BookingStatus = "in_progress"
	StatusCompleted          BookingStatus = "completed"
	StatusCancelledByUser    BookingStatus = "cancelled_by_user"
	StatusCancelledByCompany BookingStatus = "cancelled_by_company"
	StatusNoShow             BookingStatus = "no_show"
)

// InactiveStatuses bookings in these statuses never occupy providers
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByCompany,
	StatusNoShow,
}

// Booking is a read model of an existing booking, as far as the
// availability engine cares: when it happens and who it occupies.
type Booking struct {
	ID             int64
	BusinessID     int64
	Status         BookingStatus
	ScheduledAt    *time.Time
	EstimatedEndAt *time.Time
	Services       []AvailedService
}

// AvailedService is one service item of a booking together with the
// provider assigned to deliver it. Exactly one of the server IDs is set
// once the item is assigned; both may be nil for unassigned items.
type AvailedService struct {
	ServiceID        int64
	ServerEmployeeID *int64
	ServerOwnerID    *int64
}

// IsActive returns true if the booking still occupies its providers
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByCompany &&
		b.Status != StatusNoShow
}

// HasSchedule returns true when both the start and the estimated end are
// known. Bookings without a schedule are excluded from conflict checks.
func (b *Booking) HasSchedule() bool {
	return b.ScheduledAt != nil && b.EstimatedEndAt != nil
}

// BookingOccupancy is the time range a booking holds and the distinct
// providers it keeps busy during that range.
type BookingOccupancy struct {
	BookingID       int64
	Start           time.Time
	End             time.Time
	BusyEmployeeIDs map[int64]struct{}
	BusyOwnerIDs    map[int64]struct{}
}

// Overlaps reports whether the occupancy overlaps the half-open interval
// [start, end). Touching boundaries do not overlap.
func (o *BookingOccupancy) Overlaps(start, end time.Time) bool {
	return o.Start.Before(end) && o.End.After(start)
}
