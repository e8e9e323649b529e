package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	gotReq *getAvailableSlots.Request
	resp   *getAvailableSlots.Response
	err    error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func newTestRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/businesses/{slug}/available-slots", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_Success(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	uc := &stubUseCase{
		resp: &getAvailableSlots.Response{
			BusinessSlug:       "clean-cut",
			Date:               date,
			GranularityMinutes: 30,
			Slots: []getAvailableSlots.Slot{
				{
					StartTime:              date.Add(9 * time.Hour),
					EndTime:                date.Add(9*time.Hour + 30*time.Minute),
					Available:              true,
					AvailableEmployeeCount: 2,
				},
			},
		},
	}
	router := newTestRouter(NewHandler(uc, 30, nopLogger{}))

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/businesses/clean-cut/available-slots?date=2026-09-14&services=10:2,11", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// Параметры запроса дошли до use case в разобранном виде
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "clean-cut", uc.gotReq.BusinessSlug)
	assert.Equal(t, date, uc.gotReq.Date)
	require.Len(t, uc.gotReq.Services, 2)
	assert.Equal(t, getAvailableSlots.ServiceRequest{ServiceID: 10, Quantity: 2}, uc.gotReq.Services[0])
	assert.Equal(t, getAvailableSlots.ServiceRequest{ServiceID: 11, Quantity: 1}, uc.gotReq.Services[1])
	assert.Equal(t, 30, uc.gotReq.GranularityMinutes)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "clean-cut", body.Business)
	assert.Equal(t, "2026-09-14", body.Date)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "2026-09-14T09:00:00Z", body.Slots[0].StartTime)
	assert.Equal(t, 2, body.Slots[0].AvailableEmployeeCount)
}

func TestHandle_GranularityOverride(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{Slots: []getAvailableSlots.Slot{}}}
	router := newTestRouter(NewHandler(uc, 30, nopLogger{}))

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/businesses/clean-cut/available-slots?date=2026-09-14&services=10&granularity=15", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 15, uc.gotReq.GranularityMinutes)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "missing date", url: "/api/v1/businesses/clean-cut/available-slots?services=10"},
		{name: "bad date", url: "/api/v1/businesses/clean-cut/available-slots?date=14.09.2026&services=10"},
		{name: "missing services", url: "/api/v1/businesses/clean-cut/available-slots?date=2026-09-14"},
		{name: "bad service id", url: "/api/v1/businesses/clean-cut/available-slots?date=2026-09-14&services=abc"},
		{name: "bad quantity", url: "/api/v1/businesses/clean-cut/available-slots?date=2026-09-14&services=10:x"},
		{name: "bad granularity", url: "/api/v1/businesses/clean-cut/available-slots?date=2026-09-14&services=10&granularity=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(NewHandler(&stubUseCase{}, 30, nopLogger{}))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: getAvailableSlots.ErrBusinessNotFound, status: http.StatusNotFound},
		{name: "invalid input", err: getAvailableSlots.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", err: getAvailableSlots.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(NewHandler(&stubUseCase{err: tt.err}, 30, nopLogger{}))
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet,
				"/api/v1/businesses/clean-cut/available-slots?date=2026-09-14&services=10", nil)
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
