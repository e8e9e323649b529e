package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/directoryservice"
)

// DirectoryClient интерфейс клиента DirectoryService (прямого или через кеш)
type DirectoryClient interface {
	GetBusinessBySlug(ctx context.Context, slug string) (*directoryservice.Business, error)
	GetServices(ctx context.Context, businessID int64, serviceIDs []int64) ([]directoryservice.Service, error)
}

// AttendanceRepository интерфейс репозитория отметок присутствия
type AttendanceRepository interface {
	// ListActiveForDay получает активные отметки бизнеса на дату
	ListActiveForDay(ctx context.Context, businessID int64, day time.Time) ([]domain.AttendanceRecord, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListForDay получает активные бронирования бизнеса в границах дня
	ListForDay(ctx context.Context, businessID int64, dayStart, dayEnd time.Time) ([]domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
