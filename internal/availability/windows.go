package availability

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ResolveWindows возвращает рабочие окна категории на целевой день.
// Запись расписания ищется по паре (день недели, категория) без учета
// регистра; если записи нет - используется запись категории "general".
// Результат мемоизируется на время жизни движка.
//
// Варианты результата:
//   - нет записи или запись помечена закрытой: ноль окон (категория в этот
//     день недоступна - это не ошибка, а признак невыполнимости запроса);
//   - open == close: одно окно на все сутки;
//   - open < close: одно окно [open, close);
//   - open > close (смена через полночь): два окна - [open, конец дня) и
//     [начало дня, close). Отрицательных по длительности окон не бывает.
func (e *Engine) ResolveWindows(category string) []domain.OperatingWindow {
	key := strings.ToLower(category)
	if cached, ok := e.windowCache[key]; ok {
		return cached
	}

	windows := e.resolveWindows(category)
	e.windowCache[key] = windows
	return windows
}

func (e *Engine) resolveWindows(category string) []domain.OperatingWindow {
	hour := e.findHour(category)
	if hour == nil {
		hour = e.findHour(domain.GeneralCategory)
	}
	if hour == nil || hour.IsClosed {
		return nil
	}

	openMinutes, err := hour.OpenTime.Minutes()
	if err != nil {
		return nil
	}
	closeMinutes, err := hour.CloseTime.Minutes()
	if err != nil {
		return nil
	}

	dayStart := e.day.Start()
	dayEnd := e.day.End()
	open := dayStart.Add(time.Duration(openMinutes) * time.Minute)
	close := dayStart.Add(time.Duration(closeMinutes) * time.Minute)

	switch {
	case openMinutes == closeMinutes:
		// Открыто круглые сутки
		return []domain.OperatingWindow{{Start: dayStart, End: dayEnd}}
	case openMinutes < closeMinutes:
		return []domain.OperatingWindow{{Start: open, End: close}}
	default:
		// Смена через полночь: открытая часть вечером и часть после полуночи
		return []domain.OperatingWindow{
			{Start: open, End: dayEnd},
			{Start: dayStart, End: close},
		}
	}
}

func (e *Engine) findHour(category string) *domain.BusinessHour {
	weekday := e.day.Weekday()
	for i := range e.hours {
		if e.hours[i].Matches(weekday, category) {
			return &e.hours[i]
		}
	}
	return nil
}

// windowMinutes возвращает суммарную длительность рабочих окон категории
// в минутах. Ноль означает, что категория в этот день недоступна.
func (e *Engine) windowMinutes(category string) int {
	total := 0
	for _, w := range e.ResolveWindows(category) {
		total += w.Minutes()
	}
	return total
}

// fitsWindow проверяет, что интервал [start, end) целиком помещается в одно
// из рабочих окон категории. Интервал не может пересекать границу окна
// (например, перерыв на обед или полночь).
func (e *Engine) fitsWindow(category string, start, end time.Time) bool {
	for _, w := range e.ResolveWindows(category) {
		if w.Contains(start, end) {
			return true
		}
	}
	return false
}
