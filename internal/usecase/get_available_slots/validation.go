package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Пустой список услуг НЕ является ошибкой - это "ничего не запрошено",
// usecase вернет пустой результат.
func validateRequest(req *Request) error {
	if req.BusinessSlug == "" {
		return fmt.Errorf("%w: business slug is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.GranularityMinutes != 0 &&
		(req.GranularityMinutes < domain.MinGranularityMinutes || req.GranularityMinutes > domain.MaxGranularityMinutes) {
		return fmt.Errorf("%w: granularity must be between %d and %d minutes",
			ErrInvalidInput, domain.MinGranularityMinutes, domain.MaxGranularityMinutes)
	}

	totalUnits := 0
	for _, svc := range req.Services {
		if svc.ServiceID <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
		if svc.Quantity < 1 || svc.Quantity > domain.MaxServiceQuantity {
			return fmt.Errorf("%w: quantity must be between 1 and %d", ErrInvalidInput, domain.MaxServiceQuantity)
		}
		totalUnits += svc.Quantity
	}

	if totalUnits > domain.MaxServiceUnits {
		return fmt.Errorf("%w: at most %d service units per request", ErrInvalidInput, domain.MaxServiceUnits)
	}

	return nil
}
