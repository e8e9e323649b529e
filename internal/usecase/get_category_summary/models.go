package get_category_summary

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса дневного среза по категории
type Request struct {
	BusinessSlug string
	Category     string
	Date         time.Time
	// EnforceAttendance считать только отметившихся сотрудников
	// (действует только для сегодняшнего дня)
	EnforceAttendance bool
}

// Response модель ответа с дневным срезом категории
type Response struct {
	BusinessSlug string
	Date         time.Time
	Summary      domain.CategorySummary
}
