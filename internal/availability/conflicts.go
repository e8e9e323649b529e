package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// buildOccupancies строит занятость исполнителей из существующих
// бронирований. Бронирование дает одну занятость: интервал
// [scheduledAt, estimatedEndAt) и множества ID занятых в нем сотрудников
// и владельцев (назначенных серверами его услуг).
//
// Исключаются неактивные бронирования и бронирования без времени начала
// или расчетного окончания.
func buildOccupancies(bookings []domain.Booking) []domain.BookingOccupancy {
	occupancies := make([]domain.BookingOccupancy, 0, len(bookings))

	for i := range bookings {
		b := &bookings[i]
		if !b.IsActive() || !b.HasSchedule() {
			continue
		}

		occ := domain.BookingOccupancy{
			BookingID:       b.ID,
			Start:           *b.ScheduledAt,
			End:             *b.EstimatedEndAt,
			BusyEmployeeIDs: make(map[int64]struct{}),
			BusyOwnerIDs:    make(map[int64]struct{}),
		}

		for _, svc := range b.Services {
			if svc.ServerEmployeeID != nil {
				occ.BusyEmployeeIDs[*svc.ServerEmployeeID] = struct{}{}
			}
			if svc.ServerOwnerID != nil {
				occ.BusyOwnerIDs[*svc.ServerOwnerID] = struct{}{}
			}
		}

		occupancies = append(occupancies, occ)
	}

	return occupancies
}

// employeeBusy проверяет, занят ли сотрудник каким-либо бронированием,
// пересекающимся с интервалом [start, end)
func (e *Engine) employeeBusy(employeeID int64, start, end time.Time) bool {
	for i := range e.occupancies {
		occ := &e.occupancies[i]
		if !occ.Overlaps(start, end) {
			continue
		}
		if _, busy := occ.BusyEmployeeIDs[employeeID]; busy {
			return true
		}
	}
	return false
}
