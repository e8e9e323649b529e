package directoryservice

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Business снапшот бизнеса из DirectoryService
type Business struct {
	ID            int64          `json:"id"`
	Slug          string         `json:"slug"`
	Name          string         `json:"name"`
	Timezone      string         `json:"timezone"`
	BusinessHours []BusinessHour `json:"business_hours"`
	Employees     []Provider     `json:"employees"`
	Owners        []Provider     `json:"owners"`
}

// BusinessHour запись расписания: рабочие часы дня недели для категории
type BusinessHour struct {
	DayOfWeek string `json:"day_of_week"`
	Category  string `json:"category"`
	OpenTime  string `json:"open_time"`  // "HH:MM"
	CloseTime string `json:"close_time"` // "HH:MM"
	IsClosed  bool   `json:"is_closed"`
}

// Provider сотрудник или владелец бизнеса
type Provider struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
}

// Service услуга из каталога бизнеса
type Service struct {
	ID              int64  `json:"id"`
	Category        string `json:"category"`
	DurationMinutes *int   `json:"duration_minutes"`
}

// ErrorResponse модель ошибки от DirectoryService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует снапшот в доменную модель с валидацией времени
// в записях расписания
func (b *Business) ToDomain() (*domain.Business, error) {
	hours := make([]domain.BusinessHour, 0, len(b.BusinessHours))
	for _, h := range b.BusinessHours {
		dh := domain.BusinessHour{
			DayOfWeek: h.DayOfWeek,
			Category:  h.Category,
			IsClosed:  h.IsClosed,
		}

		if !h.IsClosed {
			openTime, err := types.NewTimeStringFromString(h.OpenTime)
			if err != nil {
				return nil, fmt.Errorf("business %s: bad open_time for %s/%s: %w", b.Slug, h.DayOfWeek, h.Category, err)
			}
			closeTime, err := types.NewTimeStringFromString(h.CloseTime)
			if err != nil {
				return nil, fmt.Errorf("business %s: bad close_time for %s/%s: %w", b.Slug, h.DayOfWeek, h.Category, err)
			}
			dh.OpenTime = openTime
			dh.CloseTime = closeTime
		}

		hours = append(hours, dh)
	}

	return &domain.Business{
		ID:            b.ID,
		Slug:          b.Slug,
		Name:          b.Name,
		Timezone:      b.Timezone,
		BusinessHours: hours,
		Employees:     toDomainProviders(b.Employees),
		Owners:        toDomainProviders(b.Owners),
	}, nil
}

func toDomainProviders(providers []Provider) []domain.Provider {
	result := make([]domain.Provider, 0, len(providers))
	for _, p := range providers {
		result = append(result, domain.Provider{
			ID:          p.ID,
			Name:        p.Name,
			Specialties: p.Specialties,
		})
	}
	return result
}

// ToDomain конвертирует услугу в доменную модель
func (s *Service) ToDomain() domain.Service {
	return domain.Service{
		ID:              s.ID,
		Category:        s.Category,
		DurationMinutes: s.DurationMinutes,
	}
}
