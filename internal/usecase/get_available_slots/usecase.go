package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	directoryClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/directoryservice"
)

// UseCase use case поиска доступных слотов: собирает снапшот данных
// (бизнес, услуги, отметки присутствия, бронирования) и передает его
// чистому движку доступности
type UseCase struct {
	directory      DirectoryClient
	attendanceRepo AttendanceRepository
	bookingRepo    BookingRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	directory DirectoryClient,
	attendanceRepo AttendanceRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		directory:      directory,
		attendanceRepo: attendanceRepo,
		bookingRepo:    bookingRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case поиска доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%s, date=%s, services=%d",
		req.BusinessSlug, req.Date.Format(domain.DateFormat), len(req.Services))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	granularity := req.GranularityMinutes
	if granularity == 0 {
		granularity = domain.DefaultGranularityMinutes
	}

	// 2. Получаем бизнес со снапшотом расписания и исполнителей
	business, err := uc.getBusiness(ctx, req.BusinessSlug)
	if err != nil {
		return nil, err
	}

	// 3. Таймзона бизнеса - обязательный контракт, все сравнения
	// "сегодня"/"сейчас" выполняются в ней
	loc, err := business.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: business=%s has invalid timezone %q: %v",
			req.BusinessSlug, business.Timezone, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, business.Timezone)
	}

	// 4. Пустой запрос - пустой результат, не ошибка
	if len(req.Services) == 0 {
		uc.logger.Info("GetAvailableSlots: business=%s, empty service list", req.BusinessSlug)
		return emptyResponse(req, granularity), nil
	}

	// 5. Разворачиваем запрос в единицы услуг; неизвестные ID просто
	// отбрасываются - каталог мог измениться
	units, err := uc.resolveServiceUnits(ctx, business.ID, req.Services)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		uc.logger.Info("GetAvailableSlots: business=%s, no requested services resolved against catalog",
			req.BusinessSlug)
		return emptyResponse(req, granularity), nil
	}

	day := availability.NewDay(req.Date, loc, uc.timeProvider.Now())

	// 6. Отметки присутствия нужны только для сегодняшнего дня
	var attendance []domain.AttendanceRecord
	if day.IsToday() {
		attendance, err = uc.attendanceRepo.ListActiveForDay(ctx, business.ID, day.Start())
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get attendance: %v", err)
			return nil, fmt.Errorf("%w: failed to get attendance: %v", ErrInternal, err)
		}
	}

	// 7. Существующие бронирования дня - источник конфликтов
	bookings, err := uc.bookingRepo.ListForDay(ctx, business.ID, day.Start(), day.End())
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Чистый поиск по снапшоту
	engine := availability.NewEngine(availability.Input{
		Day:        day,
		Hours:      business.BusinessHours,
		Employees:  business.Employees,
		Owners:     business.Owners,
		Attendance: attendance,
		Bookings:   bookings,
	})

	slots := engine.SearchSlots(units, granularity)

	uc.logger.Info("GetAvailableSlots: business=%s, date=%s, units=%d, found %d slots",
		req.BusinessSlug, req.Date.Format(domain.DateFormat), len(units), len(slots))

	return toResponse(req, granularity, slots), nil
}

func (uc *UseCase) getBusiness(ctx context.Context, slug string) (*domain.Business, error) {
	snapshot, err := uc.directory.GetBusinessBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, directoryClient.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business slug=%s not found", slug)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get business slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	business, err := snapshot.ToDomain()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: bad business snapshot slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: bad business snapshot: %v", ErrInternal, err)
	}

	return business, nil
}

// resolveServiceUnits разворачивает запрос в единицы услуг: одна единица
// на каждую единицу количества, с категорией и длительностью из каталога
func (uc *UseCase) resolveServiceUnits(ctx context.Context, businessID int64, requested []ServiceRequest) ([]domain.ServiceUnit, error) {
	ids := make([]int64, 0, len(requested))
	for _, svc := range requested {
		ids = append(ids, svc.ServiceID)
	}

	catalog, err := uc.directory.GetServices(ctx, businessID, ids)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	byID := make(map[int64]domain.Service, len(catalog))
	for _, svc := range catalog {
		byID[svc.ID] = svc.ToDomain()
	}

	units := make([]domain.ServiceUnit, 0, len(requested))
	for _, svc := range requested {
		entry, ok := byID[svc.ServiceID]
		if !ok {
			uc.logger.Warn("GetAvailableSlots: unknown service id=%d dropped", svc.ServiceID)
			continue
		}
		for i := 0; i < svc.Quantity; i++ {
			units = append(units, domain.ServiceUnit{
				ServiceID:       entry.ID,
				Category:        entry.Category,
				DurationMinutes: entry.Duration(),
			})
		}
	}

	return units, nil
}

func emptyResponse(req *Request, granularity int) *Response {
	return &Response{
		BusinessSlug:       req.BusinessSlug,
		Date:               req.Date,
		GranularityMinutes: granularity,
		Slots:              []Slot{},
	}
}

func toResponse(req *Request, granularity int, slots []domain.TimeSlot) *Response {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			StartTime:              s.StartTime,
			EndTime:                s.EndTime,
			Available:              s.Available,
			AvailableEmployeeCount: s.AvailableEmployeeCount,
			AvailableOwnerCount:    s.AvailableOwnerCount,
		}
	}

	return &Response{
		BusinessSlug:       req.BusinessSlug,
		Date:               req.Date,
		GranularityMinutes: granularity,
		Slots:              result,
	}
}
