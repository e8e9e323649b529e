package availability

import (
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ProviderSet квалифицированные исполнители для одной категории
type ProviderSet struct {
	Employees []domain.Provider
	Owners    []domain.Provider
}

// QualifiedFor возвращает сотрудников и владельцев, квалифицированных для
// категории. Исполнитель с пустым списком специальностей - универсал и
// подходит для любой категории; иначе категория должна входить в список
// (без учета регистра). Результат мемоизируется на время жизни движка.
func (e *Engine) QualifiedFor(category string) ProviderSet {
	key := strings.ToLower(category)
	if cached, ok := e.qualifiedCache[key]; ok {
		return cached
	}

	set := ProviderSet{}
	for _, emp := range e.employees {
		if emp.QualifiesFor(category) {
			set.Employees = append(set.Employees, emp)
		}
	}
	for _, owner := range e.owners {
		if owner.QualifiesFor(category) {
			set.Owners = append(set.Owners, owner)
		}
	}

	e.qualifiedCache[key] = set
	return set
}
