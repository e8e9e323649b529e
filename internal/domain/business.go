package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Business is a snapshot of a business as served by the directory service.
// The availability engine never mutates it.
type Business struct {
	ID       int64
	Slug     string
	Name     string
	Timezone string // IANA name, e.g. "Europe/Moscow"

	BusinessHours []BusinessHour
	Employees     []Provider
	Owners        []Provider
}

// Location resolves the business time zone. All "today"/"now" comparisons
// must happen in this location, never in the host zone.
func (b *Business) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

// BusinessHour is one schedule entry: operating hours for a weekday and a
// service category. Category "general" is the fallback for categories
// without an entry of their own.
type BusinessHour struct {
	DayOfWeek string // lowercase weekday name: "monday" ... "sunday"
	Category  string
	OpenTime  types.TimeString
	CloseTime types.TimeString
	IsClosed  bool
}

// Matches reports whether this entry is for the given weekday and category
// (both compared case-insensitively).
func (h *BusinessHour) Matches(weekday time.Weekday, category string) bool {
	return strings.EqualFold(h.DayOfWeek, weekday.String()) &&
		strings.EqualFold(h.Category, category)
}

// Provider is an employee or an owner who can deliver services.
type Provider struct {
	ID          int64
	Name        string
	Specialties []string
}

// QualifiesFor reports whether the provider can serve the given category.
// An empty specialty list means the provider is a generalist and qualifies
// for every category; this is a domain convention, not an accident.
func (p *Provider) QualifiesFor(category string) bool {
	if len(p.Specialties) == 0 {
		return true
	}
	for _, s := range p.Specialties {
		if strings.EqualFold(s, category) {
			return true
		}
	}
	return false
}

// Service is a catalog entry scoped to a business.
type Service struct {
	ID              int64
	Category        string
	DurationMinutes *int // nil = use DefaultServiceDurationMinutes
}

// Duration returns the effective service duration in minutes.
func (s *Service) Duration() int {
	if s.DurationMinutes == nil || *s.DurationMinutes <= 0 {
		return DefaultServiceDurationMinutes
	}
	return *s.DurationMinutes
}
