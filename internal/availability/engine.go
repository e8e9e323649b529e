package availability

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Engine движок расчета доступности на один календарный день.
// Строится на каждый запрос из неизменяемого снапшота данных и
// выбрасывается после ответа - между вызовами не живет никакое состояние.
// Все вычисления чистые, I/O выполняется вызывающим кодом до создания Engine.
type Engine struct {
	day       Day
	hours     []domain.BusinessHour
	employees []domain.Provider
	owners    []domain.Provider

	attendance  *attendanceIndex
	occupancies []domain.BookingOccupancy

	ordering OrderingStrategy

	// Кеши на время жизни одного запроса, ключ - категория в lower case
	windowCache    map[string][]domain.OperatingWindow
	qualifiedCache map[string]ProviderSet
}

// Input снапшот данных для одного расчета
type Input struct {
	Day        Day
	Hours      []domain.BusinessHour
	Employees  []domain.Provider
	Owners     []domain.Provider
	Attendance []domain.AttendanceRecord // учитывается только если Day - сегодня
	Bookings   []domain.Booking
}

// NewEngine создает движок из снапшота данных
func NewEngine(in Input) *Engine {
	return &Engine{
		day:            in.Day,
		hours:          in.Hours,
		employees:      in.Employees,
		owners:         in.Owners,
		attendance:     newAttendanceIndex(in.Day, in.Attendance),
		occupancies:    buildOccupancies(in.Bookings),
		ordering:       TightestWindowFirst{},
		windowCache:    make(map[string][]domain.OperatingWindow),
		qualifiedCache: make(map[string]ProviderSet),
	}
}

// SetOrderingStrategy заменяет стратегию упорядочивания единиц услуг.
// По умолчанию используется жадная эвристика TightestWindowFirst.
func (e *Engine) SetOrderingStrategy(s OrderingStrategy) {
	if s != nil {
		e.ordering = s
	}
}

// Day возвращает границы дня, для которого построен движок
func (e *Engine) Day() Day {
	return e.day
}
