package get_category_summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	directoryClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/directoryservice"
)

// UseCase use case быстрого дневного среза по категории: есть ли часы,
// прошли ли они, сколько квалифицированных исполнителей доступно.
// Дешевая альтернатива полному поиску слотов для UI-проверок.
type UseCase struct {
	directory      DirectoryClient
	attendanceRepo AttendanceRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	directory DirectoryClient,
	attendanceRepo AttendanceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		directory:      directory,
		attendanceRepo: attendanceRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения дневного среза категории
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCategorySummary: business=%s, category=%s, date=%s, enforceAttendance=%t",
		req.BusinessSlug, req.Category, req.Date.Format(domain.DateFormat), req.EnforceAttendance)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCategorySummary: validation failed: %v", err)
		return nil, err
	}

	snapshot, err := uc.directory.GetBusinessBySlug(ctx, req.BusinessSlug)
	if err != nil {
		if errors.Is(err, directoryClient.ErrBusinessNotFound) {
			uc.logger.Warn("GetCategorySummary: business slug=%s not found", req.BusinessSlug)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetCategorySummary: failed to get business slug=%s: %v", req.BusinessSlug, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	business, err := snapshot.ToDomain()
	if err != nil {
		uc.logger.Error("GetCategorySummary: bad business snapshot slug=%s: %v", req.BusinessSlug, err)
		return nil, fmt.Errorf("%w: bad business snapshot: %v", ErrInternal, err)
	}

	loc, err := business.Location()
	if err != nil {
		uc.logger.Error("GetCategorySummary: business=%s has invalid timezone %q: %v",
			req.BusinessSlug, business.Timezone, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, business.Timezone)
	}

	day := availability.NewDay(req.Date, loc, uc.timeProvider.Now())

	// Отметки присутствия нужны только в режиме ATTENDANCE для сегодня
	var attendance []domain.AttendanceRecord
	if day.IsToday() && req.EnforceAttendance {
		attendance, err = uc.attendanceRepo.ListActiveForDay(ctx, business.ID, day.Start())
		if err != nil {
			uc.logger.Error("GetCategorySummary: failed to get attendance: %v", err)
			return nil, fmt.Errorf("%w: failed to get attendance: %v", ErrInternal, err)
		}
	}

	engine := availability.NewEngine(availability.Input{
		Day:        day,
		Hours:      business.BusinessHours,
		Employees:  business.Employees,
		Owners:     business.Owners,
		Attendance: attendance,
	})

	summary := engine.Summarize(req.Category, req.EnforceAttendance)

	uc.logger.Info("GetCategorySummary: business=%s, category=%s, hasHours=%t, providers=%d, source=%s",
		req.BusinessSlug, req.Category, summary.HasHours,
		summary.QualifiedAvailableProviderCount, summary.Source)

	return &Response{
		BusinessSlug: req.BusinessSlug,
		Date:         req.Date,
		Summary:      summary,
	}, nil
}

func validateRequest(req *Request) error {
	if req.BusinessSlug == "" {
		return fmt.Errorf("%w: business slug is required", ErrInvalidInput)
	}
	if req.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
