package get_available_providers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableProviders "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_providers"
)

const (
	msgMissingDate       = "дата обязательна"
	msgMissingWindow     = "время начала и конца окна обязательны"
	msgMissingCategories = "список категорий обязателен"
	msgInvalidParams     = "некорректные параметры запроса"
	msgInvalidInput      = "некорректные входные данные"
	msgBusinessNotFound  = "бизнес не найден"
)

type Handler struct {
	useCase GetAvailableProvidersUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableProvidersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{slug}/available-providers
// Query params: date (required, YYYY-MM-DD), startTime/endTime (required, HH:MM),
// categories (required, через запятую)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /businesses/{slug}/available-providers - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	startStr := query.Get("startTime")
	endStr := query.Get("endTime")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /businesses/{slug}/available-providers - Missing window")
		handlers.RespondBadRequest(w, msgMissingWindow)
		return
	}

	categoriesParam := query.Get("categories")
	if categoriesParam == "" {
		h.logger.Warn("GET /businesses/{slug}/available-providers - Missing categories")
		handlers.RespondBadRequest(w, msgMissingCategories)
		return
	}

	useCaseReq, err := ToUseCaseRequest(slug, dateStr, startStr, endStr, categoriesParam)
	if err != nil {
		h.logger.Warn("GET /businesses/{slug}/available-providers - Bad request params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableProviders.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{slug}/available-providers - Business not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getAvailableProviders.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{slug}/available-providers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /businesses/{slug}/available-providers - Failed: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{slug}/available-providers - Providers listed: slug=%s, count=%d",
		slug, len(result.Providers))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
