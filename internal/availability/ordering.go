package availability

import (
	"sort"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// OrderingStrategy определяет, в каком порядке единицы услуг пакуются в
// кандидата-слот. Вынесено в интерфейс, чтобы жадную эвристику можно было
// заменить на полный перебор, не трогая проверки окон/исполнителей/конфликтов.
type OrderingStrategy interface {
	// Order возвращает новый срез в порядке упаковки; вход не изменяется.
	// windowMinutes отдает суммарную длительность рабочих окон категории.
	Order(units []domain.ServiceUnit, windowMinutes func(category string) int) []domain.ServiceUnit
}

// TightestWindowFirst жадная эвристика по умолчанию: сначала единицы с
// самым узким рабочим окном категории, при равенстве - более длинные,
// далее по возрастанию ID услуги для стабильности.
//
// Эвристика может пропустить упаковку, которую нашел бы другой порядок -
// полный перебор порядков сознательно не выполняется.
type TightestWindowFirst struct{}

// Order реализует OrderingStrategy
func (TightestWindowFirst) Order(units []domain.ServiceUnit, windowMinutes func(category string) int) []domain.ServiceUnit {
	ordered := make([]domain.ServiceUnit, len(units))
	copy(ordered, units)

	sort.SliceStable(ordered, func(i, j int) bool {
		wi := windowMinutes(ordered[i].Category)
		wj := windowMinutes(ordered[j].Category)
		if wi != wj {
			return wi < wj
		}
		if ordered[i].DurationMinutes != ordered[j].DurationMinutes {
			return ordered[i].DurationMinutes > ordered[j].DurationMinutes
		}
		return ordered[i].ServiceID < ordered[j].ServiceID
	})

	return ordered
}
