package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingServices    = "список услуг обязателен"
	msgInvalidServices    = "некорректный список услуг, ожидается id[:количество] через запятую"
	msgInvalidGranularity = "некорректный шаг слотов"
	msgInvalidInput       = "некорректные входные данные"
	msgBusinessNotFound   = "бизнес не найден"
)

type Handler struct {
	useCase            GetAvailableSlotsUseCase
	defaultGranularity int
	logger             Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, defaultGranularity int, logger Logger) *Handler {
	return &Handler{
		useCase:            useCase,
		defaultGranularity: defaultGranularity,
		logger:             logger,
	}
}

// Handle GET /api/v1/businesses/{slug}/available-slots
// Query params: date (required, YYYY-MM-DD), services (required, "id[:qty],..."),
// granularity (optional, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /businesses/{slug}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	servicesParam := r.URL.Query().Get("services")
	if servicesParam == "" {
		h.logger.Warn("GET /businesses/{slug}/available-slots - Missing services")
		handlers.RespondBadRequest(w, msgMissingServices)
		return
	}

	granularity := h.defaultGranularity
	if granularityStr := r.URL.Query().Get("granularity"); granularityStr != "" {
		parsed, err := strconv.Atoi(granularityStr)
		if err != nil {
			h.logger.Warn("GET /businesses/{slug}/available-slots - Invalid granularity: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGranularity)
			return
		}
		granularity = parsed
	}

	useCaseReq, err := ToUseCaseRequest(slug, dateStr, servicesParam, granularity)
	if err != nil {
		h.logger.Warn("GET /businesses/{slug}/available-slots - Bad request params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServices)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{slug}/available-slots - Business not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{slug}/available-slots - Invalid input: slug=%s, error=%v", slug, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /businesses/{slug}/available-slots - Failed to get slots: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /businesses/{slug}/available-slots - Slots retrieved: slug=%s, date=%s, slots_count=%d",
		slug, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
