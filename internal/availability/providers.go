package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ListProviders возвращает сотрудников, квалифицированных хотя бы для одной
// из категорий (OR-семантика), с флагом доступности на интервале
// [start, end): свободен от пересекающихся бронирований и, если день -
// сегодня, отметился на весь интервал.
//
// Владельцы в этот список сознательно не попадают: листинг используется
// для ручного назначения сотрудника на услугу.
func (e *Engine) ListProviders(start, end time.Time, categories []string) []domain.ProviderAvailability {
	seen := make(map[int64]struct{})
	result := make([]domain.ProviderAvailability, 0)

	for _, category := range categories {
		for _, emp := range e.QualifiedFor(category).Employees {
			if _, ok := seen[emp.ID]; ok {
				continue
			}
			seen[emp.ID] = struct{}{}

			available := e.attendance.IsClockedInFor(emp.ID, start, end) &&
				!e.employeeBusy(emp.ID, start, end)

			result = append(result, domain.ProviderAvailability{
				ID:          emp.ID,
				Name:        emp.Name,
				Available:   available,
				Specialties: emp.Specialties,
			})
		}
	}

	// Стабильный порядок независимо от порядка категорий в запросе
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}
