package get_category_summary

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getCategorySummary "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_category_summary"
)

// CategorySummaryResponse HTTP response model
type CategorySummaryResponse struct {
	Business                        string `json:"business"`
	Date                            string `json:"date"`
	Category                        string `json:"category"`
	HasHours                        bool   `json:"hasHours"`
	HoursAlreadyPassed              bool   `json:"hoursAlreadyPassed"`
	QualifiedAvailableProviderCount int    `json:"qualifiedAvailableProviderCount"`
	OwnerAvailable                  bool   `json:"ownerAvailable"`
	Source                          string `json:"source"` // ATTENDANCE | ROSTER
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCategorySummary.Response) *CategorySummaryResponse {
	return &CategorySummaryResponse{
		Business:                        resp.BusinessSlug,
		Date:                            resp.Date.Format(domain.DateFormat),
		Category:                        resp.Summary.Category,
		HasHours:                        resp.Summary.HasHours,
		HoursAlreadyPassed:              resp.Summary.HoursAlreadyPassed,
		QualifiedAvailableProviderCount: resp.Summary.QualifiedAvailableProviderCount,
		OwnerAvailable:                  resp.Summary.OwnerAvailable,
		Source:                          string(resp.Summary.Source),
	}
}
