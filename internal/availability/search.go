package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// SearchSlots ищет все времена начала, в которые весь запрошенный набор
// единиц услуг может быть выполнен последовательно. Кандидаты перебираются
// с шагом granularityMinutes от самого раннего начала рабочего окна до
// самого позднего окончания среди категорий запроса.
//
// Для каждого кандидата единицы пакуются по очереди движущимся курсором:
// интервал единицы должен целиком попасть в рабочее окно ее категории,
// и после вычитания занятых бронированиями исполнителей должен остаться
// хотя бы один свободный квалифицированный (и, если день - сегодня,
// отметившийся на весь интервал) сотрудник либо владелец.
//
// Пустой результат означает либо невыполнимый день (у какой-то категории
// ноль рабочих минут), либо отсутствие свободного слота - вызывающий код
// эти случаи не различает.
func (e *Engine) SearchSlots(units []domain.ServiceUnit, granularityMinutes int) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)

	if len(units) == 0 {
		return slots
	}
	// Целиком прошедший день не содержит доступных времен
	if e.day.IsPast() {
		return slots
	}
	if granularityMinutes <= 0 {
		granularityMinutes = domain.DefaultGranularityMinutes
	}

	// Ранний выход: категория без рабочих минут делает весь запрос
	// невыполнимым на этот день
	for _, unit := range units {
		if e.windowMinutes(unit.Category) == 0 {
			return slots
		}
	}

	ordered := e.ordering.Order(units, e.windowMinutes)
	earliest, latest := e.searchBounds(ordered)

	step := time.Duration(granularityMinutes) * time.Minute
	for candidate := earliest; candidate.Before(latest); candidate = candidate.Add(step) {
		// Сегодня слот не может начинаться в прошлом или прямо сейчас
		if e.day.IsToday() && !candidate.After(e.day.Now()) {
			continue
		}

		result, ok := e.packAt(candidate, ordered)
		if !ok {
			continue
		}

		slots = append(slots, domain.TimeSlot{
			StartTime:              candidate,
			EndTime:                result.end,
			Available:              true,
			AvailableEmployeeCount: result.minEmployees,
			AvailableOwnerCount:    result.maxOwners,
		})
	}

	return slots
}

// packResult итог успешной упаковки одного кандидата
type packResult struct {
	end time.Time
	// minEmployees минимум свободных сотрудников по единицам -
	// грубая оценка емкости слота, не гарантия одного исполнителя на все
	minEmployees int
	// maxOwners максимум свободных владельцев по единицам
	maxOwners int
}

// packAt чистая проверка выполнимости одной точки старта: свертка по
// упорядоченным единицам с движущимся курсором. Возвращает итоговый курсор
// и агрегированные счетчики либо признак неудачи. Ничего не мутирует,
// поэтому тестируется отдельно от полного прохода по дню.
func (e *Engine) packAt(start time.Time, units []domain.ServiceUnit) (packResult, bool) {
	cursor := start
	minEmployees := -1
	maxOwners := 0

	for _, unit := range units {
		unitEnd := cursor.Add(time.Duration(unit.DurationMinutes) * time.Minute)

		if !e.fitsWindow(unit.Category, cursor, unitEnd) {
			return packResult{}, false
		}

		freeEmployees, freeOwners := e.freeProviders(unit.Category, cursor, unitEnd)
		if freeEmployees+freeOwners == 0 {
			return packResult{}, false
		}

		if minEmployees < 0 || freeEmployees < minEmployees {
			minEmployees = freeEmployees
		}
		if freeOwners > maxOwners {
			maxOwners = freeOwners
		}

		cursor = unitEnd
	}

	if minEmployees < 0 {
		minEmployees = 0
	}

	return packResult{end: cursor, minEmployees: minEmployees, maxOwners: maxOwners}, true
}

// freeProviders считает свободных исполнителей категории на интервале
// [start, end): квалифицированные сотрудники с подтвержденным присутствием
// (владельцы присутствие не отмечают) минус занятые пересекающимися
// бронированиями.
func (e *Engine) freeProviders(category string, start, end time.Time) (int, int) {
	qualified := e.QualifiedFor(category)

	eligibleEmployees := make(map[int64]struct{}, len(qualified.Employees))
	for _, emp := range qualified.Employees {
		if e.attendance.IsClockedInFor(emp.ID, start, end) {
			eligibleEmployees[emp.ID] = struct{}{}
		}
	}

	eligibleOwners := make(map[int64]struct{}, len(qualified.Owners))
	for _, owner := range qualified.Owners {
		eligibleOwners[owner.ID] = struct{}{}
	}

	if len(eligibleEmployees)+len(eligibleOwners) == 0 {
		return 0, 0
	}

	for i := range e.occupancies {
		occ := &e.occupancies[i]
		if !occ.Overlaps(start, end) {
			continue
		}
		for id := range occ.BusyEmployeeIDs {
			delete(eligibleEmployees, id)
		}
		for id := range occ.BusyOwnerIDs {
			delete(eligibleOwners, id)
		}
	}

	return len(eligibleEmployees), len(eligibleOwners)
}

// searchBounds возвращает границы перебора кандидатов: минимальное начало
// и максимальное окончание рабочих окон среди категорий запроса
func (e *Engine) searchBounds(units []domain.ServiceUnit) (time.Time, time.Time) {
	var earliest, latest time.Time

	for _, unit := range units {
		for _, w := range e.ResolveWindows(unit.Category) {
			if earliest.IsZero() || w.Start.Before(earliest) {
				earliest = w.Start
			}
			if latest.IsZero() || w.End.After(latest) {
				latest = w.End
			}
		}
	}

	return earliest, latest
}
