package get_available_slots

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Business           string `json:"business"`
	Date               string `json:"date"`
	GranularityMinutes int    `json:"granularityMinutes"`
	Slots              []Slot `json:"slots"`
}

// Slot модель временного слота
type Slot struct {
	StartTime              string `json:"startTime"` // RFC3339 в таймзоне бизнеса
	EndTime                string `json:"endTime"`
	Available              bool   `json:"available"`
	AvailableEmployeeCount int    `json:"availableEmployeeCount"`
	AvailableOwnerCount    int    `json:"availableOwnerCount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			StartTime:              slot.StartTime.Format(time.RFC3339),
			EndTime:                slot.EndTime.Format(time.RFC3339),
			Available:              slot.Available,
			AvailableEmployeeCount: slot.AvailableEmployeeCount,
			AvailableOwnerCount:    slot.AvailableOwnerCount,
		}
	}

	return &AvailableSlotsResponse{
		Business:           resp.BusinessSlug,
		Date:               resp.Date.Format(domain.DateFormat),
		GranularityMinutes: resp.GranularityMinutes,
		Slots:              slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров HTTP запроса.
// servicesParam - список вида "3:2,7" (ID услуги с опциональным
// количеством через двоеточие)
func ToUseCaseRequest(slug, dateStr, servicesParam string, granularity int) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	services, err := parseServices(servicesParam)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BusinessSlug:       slug,
		Date:               date,
		Services:           services,
		GranularityMinutes: granularity,
	}, nil
}

func parseServices(param string) ([]getAvailableSlots.ServiceRequest, error) {
	if param == "" {
		return nil, nil
	}

	parts := strings.Split(param, ",")
	services := make([]getAvailableSlots.ServiceRequest, 0, len(parts))

	for _, part := range parts {
		idStr, qtyStr, hasQty := strings.Cut(strings.TrimSpace(part), ":")

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad service id %q", idStr)
		}

		qty := 1
		if hasQty {
			qty, err = strconv.Atoi(qtyStr)
			if err != nil {
				return nil, fmt.Errorf("bad service quantity %q", qtyStr)
			}
		}

		services = append(services, getAvailableSlots.ServiceRequest{
			ServiceID: id,
			Quantity:  qty,
		})
	}

	return services, nil
}
