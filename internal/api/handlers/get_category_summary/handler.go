package get_category_summary

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getCategorySummary "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_category_summary"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidEnforce   = "некорректное значение enforceAttendance"
	msgInvalidInput     = "некорректные входные данные"
	msgBusinessNotFound = "бизнес не найден"
)

type Handler struct {
	useCase GetCategorySummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetCategorySummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{slug}/categories/{category}/availability
// Query params: date (required, YYYY-MM-DD), enforceAttendance (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]
	category := vars["category"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /businesses/{slug}/categories/{category}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /businesses/{slug}/categories/{category}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	enforceAttendance := false
	if enforceStr := r.URL.Query().Get("enforceAttendance"); enforceStr != "" {
		enforceAttendance, err = strconv.ParseBool(enforceStr)
		if err != nil {
			h.logger.Warn("GET /businesses/{slug}/categories/{category}/availability - Invalid enforceAttendance: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEnforce)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getCategorySummary.Request{
		BusinessSlug:      slug,
		Category:          category,
		Date:              date,
		EnforceAttendance: enforceAttendance,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCategorySummary.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{slug}/categories/{category}/availability - Business not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getCategorySummary.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{slug}/categories/{category}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /businesses/{slug}/categories/{category}/availability - Failed: slug=%s, category=%s, error=%v",
				slug, category, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{slug}/categories/{category}/availability - Summary retrieved: slug=%s, category=%s",
		slug, category)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
