package directoryservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetBusinessBySlug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/businesses/clean-cut", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 7,
			"slug": "clean-cut",
			"name": "Clean Cut",
			"timezone": "Europe/Moscow",
			"business_hours": [
				{"day_of_week": "monday", "category": "hair", "open_time": "09:00", "close_time": "17:00"}
			],
			"employees": [{"id": 1, "name": "Anna", "specialties": ["hair"]}],
			"owners": [{"id": 50, "name": "Olga"}]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})
	business, err := client.GetBusinessBySlug(context.Background(), "clean-cut")

	require.NoError(t, err)
	assert.Equal(t, int64(7), business.ID)
	assert.Equal(t, "Europe/Moscow", business.Timezone)
	require.Len(t, business.BusinessHours, 1)
	assert.Equal(t, "09:00", business.BusinessHours[0].OpenTime)
	require.Len(t, business.Employees, 1)
	require.Len(t, business.Owners, 1)
}

func TestGetBusinessBySlug_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})
	_, err := client.GetBusinessBySlug(context.Background(), "no-such")

	require.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestGetBusinessBySlug_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})
	_, err := client.GetBusinessBySlug(context.Background(), "clean-cut")

	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetBusinessBySlug_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": `))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})
	_, err := client.GetBusinessBySlug(context.Background(), "clean-cut")

	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetServices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/businesses/7/services", r.URL.Path)
		assert.Equal(t, "10,11", r.URL.Query().Get("ids"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 10, "category": "hair", "duration_minutes": 45},
			{"id": 11, "category": "nails", "duration_minutes": null}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})
	services, err := client.GetServices(context.Background(), 7, []int64{10, 11})

	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, int64(10), services[0].ID)
	require.NotNil(t, services[0].DurationMinutes)
	assert.Equal(t, 45, *services[0].DurationMinutes)
	assert.Nil(t, services[1].DurationMinutes)
}

func TestBusinessToDomain_BadTime(t *testing.T) {
	business := &Business{
		Slug:     "clean-cut",
		Timezone: "UTC",
		BusinessHours: []BusinessHour{
			{DayOfWeek: "monday", Category: "hair", OpenTime: "late", CloseTime: "17:00"},
		},
	}

	_, err := business.ToDomain()
	require.Error(t, err)
}

func TestBusinessToDomain_ClosedEntrySkipsTimeValidation(t *testing.T) {
	business := &Business{
		Slug:     "clean-cut",
		Timezone: "UTC",
		BusinessHours: []BusinessHour{
			{DayOfWeek: "sunday", Category: "hair", IsClosed: true},
		},
	}

	domainBusiness, err := business.ToDomain()
	require.NoError(t, err)
	require.Len(t, domainBusiness.BusinessHours, 1)
	assert.True(t, domainBusiness.BusinessHours[0].IsClosed)
}
