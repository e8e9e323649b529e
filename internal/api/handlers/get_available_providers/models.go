package get_available_providers

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableProviders "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_providers"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// AvailableProvidersResponse HTTP response model
type AvailableProvidersResponse struct {
	Business  string     `json:"business"`
	Date      string     `json:"date"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	Providers []Provider `json:"providers"`
}

// Provider сотрудник с флагом доступности
type Provider struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Available   bool     `json:"available"`
	Specialties []string `json:"specialties"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableProviders.Response) *AvailableProvidersResponse {
	providers := make([]Provider, len(resp.Providers))
	for i, p := range resp.Providers {
		providers[i] = Provider{
			ID:          p.ID,
			Name:        p.Name,
			Available:   p.Available,
			Specialties: p.Specialties,
		}
	}

	return &AvailableProvidersResponse{
		Business:  resp.BusinessSlug,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Providers: providers,
	}
}

// ToUseCaseRequest создает запрос use case из параметров HTTP запроса
func ToUseCaseRequest(slug, dateStr, startStr, endStr, categoriesParam string) (*getAvailableProviders.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(startStr)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(endStr)
	if err != nil {
		return nil, err
	}

	var categories []string
	for _, c := range strings.Split(categoriesParam, ",") {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			categories = append(categories, trimmed)
		}
	}

	return &getAvailableProviders.Request{
		BusinessSlug: slug,
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		Categories:   categories,
	}, nil
}
