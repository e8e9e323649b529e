package get_available_providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	directoryClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/directoryservice"
)

// UseCase use case листинга сотрудников с живым флагом доступности на
// заданном окне времени. Используется UI ручного назначения исполнителя.
// Владельцы в листинг не попадают.
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

// Execute выполняет use case листинга доступных сотрудников
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableProviders: business=%s, date=%s, window=%s-%s, categories=%v",
		req.BusinessSlug, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.Categories)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableProviders: validation failed: %v", err)
		return nil, err
	}

	snapshot, err := uc.directory.GetBusinessBySlug(ctx, req.BusinessSlug)
	if err != nil {
		if errors.Is(err, directoryClient.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableProviders: business slug=%s not found", req.BusinessSlug)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableProviders: failed to get business slug=%s: %v", req.BusinessSlug, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	business, err := snapshot.ToDomain()
	if err != nil {
		uc.logger.Error("GetAvailableProviders: bad business snapshot slug=%s: %v", req.BusinessSlug, err)
		return nil, fmt.Errorf("%w: bad business snapshot: %v", ErrInternal, err)
	}

	loc, err := business.Location()
	if err != nil {
		uc.logger.Error("GetAvailableProviders: business=%s has invalid timezone %q: %v",
			req.BusinessSlug, business.Timezone, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, business.Timezone)
	}

	day := availability.NewDay(req.Date, loc, uc.timeProvider.Now())

	// Привязываем окно "HH:MM"-"HH:MM" к дате в таймзоне бизнеса
	windowStart, err := req.StartTime.OnDay(day.Start(), loc)
	if err != nil {
		return nil, fmt.Errorf("%w: bad start time: %v", ErrInvalidInput, err)
	}
	windowEnd, err := req.EndTime.OnDay(day.Start(), loc)
	if err != nil {
		return nil, fmt.Errorf("%w: bad end time: %v", ErrInvalidInput, err)
	}

	var attendance []domain.AttendanceRecord
	if day.IsToday() {
		attendance, err = uc.attendanceRepo.ListActiveForDay(ctx, business.ID, day.Start())
		if err != nil {
			uc.logger.Error("GetAvailableProviders: failed to get attendance: %v", err)
			return nil, fmt.Errorf("%w: failed to get attendance: %v", ErrInternal, err)
		}
	}

	bookings, err := uc.bookingRepo.ListForDay(ctx, business.ID, day.Start(), day.End())
	if err != nil {
		uc.logger.Error("GetAvailableProviders: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	engine := availability.NewEngine(availability.Input{
		Day:        day,
		Hours:      business.BusinessHours,
		Employees:  business.Employees,
		Owners:     business.Owners,
		Attendance: attendance,
		Bookings:   bookings,
	})

	listed := engine.ListProviders(windowStart, windowEnd, req.Categories)

	providers := make([]Provider, len(listed))
	for i, p := range listed {
		providers[i] = Provider{
			ID:          p.ID,
			Name:        p.Name,
			Available:   p.Available,
			Specialties: p.Specialties,
		}
	}

	uc.logger.Info("GetAvailableProviders: business=%s, listed %d providers", req.BusinessSlug, len(providers))

	return &Response{
		BusinessSlug: req.BusinessSlug,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Providers:    providers,
	}, nil
}

func validateRequest(req *Request) error {
	if req.BusinessSlug == "" {
		return fmt.Errorf("%w: business slug is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime == "" || req.EndTime == "" {
		return fmt.Errorf("%w: start and end time are required", ErrInvalidInput)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}
	if len(req.Categories) == 0 {
		return fmt.Errorf("%w: at least one category is required", ErrInvalidInput)
	}
	for _, c := range req.Categories {
		if c == "" {
			return fmt.Errorf("%w: category must not be empty", ErrInvalidInput)
		}
	}
	return nil
}
