package availability

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// Summarize строит быстрый дневной срез по категории для UI-проверок
// доступности, без полного поиска слотов.
//
// enforceAttendance управляет режимом подсчета исполнителей: для
// сегодняшнего дня с включенной проверкой считаются только отметившиеся
// в данный момент квалифицированные сотрудники (источник ATTENDANCE),
// иначе - весь квалифицированный штат (источник ROSTER). Для не-сегодня
// режим всегда деградирует до ROSTER. Владельцы присутствие не отмечают.
func (e *Engine) Summarize(category string, enforceAttendance bool) domain.CategorySummary {
	summary := domain.CategorySummary{
		Category: category,
		Source:   domain.SourceRoster,
	}

	windows := e.ResolveWindows(category)
	summary.HasHours = len(windows) > 0

	// "Часы уже прошли" имеет смысл только сегодня: текущий момент вне
	// всех рабочих окон категории (для смены через полночь - вне обоих)
	if e.day.IsToday() && summary.HasHours {
		now := e.day.Now()
		inside := false
		for _, w := range windows {
			if !now.Before(w.Start) && now.Before(w.End) {
				inside = true
				break
			}
		}
		summary.HoursAlreadyPassed = !inside
	}

	qualified := e.QualifiedFor(category)

	if e.day.IsToday() && enforceAttendance {
		summary.Source = domain.SourceAttendance
		count := 0
		for _, emp := range qualified.Employees {
			if e.attendance.ClockedInAt(emp.ID, e.day.Now()) {
				count++
			}
		}
		summary.QualifiedAvailableProviderCount = count
	} else {
		summary.QualifiedAvailableProviderCount = len(qualified.Employees)
	}

	summary.OwnerAvailable = len(qualified.Owners) > 0

	return summary
}
