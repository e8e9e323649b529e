package get_available_slots

import "time"

// ServiceRequest запрошенная услуга с количеством
type ServiceRequest struct {
	ServiceID int64
	Quantity  int
}

// Request модель запроса на поиск доступных слотов
type Request struct {
	BusinessSlug string
	Date         time.Time // дата без времени
	Services     []ServiceRequest
	// GranularityMinutes шаг перебора кандидатов; 0 = значение по умолчанию
	GranularityMinutes int
}

// Response модель ответа со списком доступных слотов
type Response struct {
	BusinessSlug       string
	Date               time.Time
	GranularityMinutes int
	Slots              []Slot
}

// Slot временной слот, в который выполним весь запрошенный набор услуг
type Slot struct {
	StartTime              time.Time
	EndTime                time.Time
	Available              bool
	AvailableEmployeeCount int
	AvailableOwnerCount    int
}
