package get_available_providers

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса листинга доступных сотрудников
type Request struct {
	BusinessSlug string
	Date         time.Time
	StartTime    types.TimeString // начало окна, "HH:MM" локального времени
	EndTime      types.TimeString // конец окна, "HH:MM" локального времени
	// Categories OR-семантика: сотрудник попадает в листинг, если
	// квалифицирован хотя бы для одной категории
	Categories []string
}

// Provider строка листинга: сотрудник с флагом доступности на окне
type Provider struct {
	ID          int64
	Name        string
	Available   bool
	Specialties []string
}

// Response модель ответа с листингом сотрудников
type Response struct {
	BusinessSlug string
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Providers    []Provider
}
