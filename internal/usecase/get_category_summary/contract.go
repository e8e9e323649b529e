package get_category_summary

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/directoryservice"
)

// DirectoryClient интерфейс клиента DirectoryService (прямого или через кеш)
type DirectoryClient interface {
	GetBusinessBySlug(ctx context.Context, slug string) (*directoryservice.Business, error)
}

// AttendanceRepository интерфейс репозитория отметок присутствия
type AttendanceRepository interface {
	ListActiveForDay(ctx context.Context, businessID int64, day time.Time) ([]domain.AttendanceRecord, error)
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
