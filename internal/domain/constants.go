package domain

// GeneralCategory is the schedule fallback: categories without a dedicated
// business-hours entry inherit the "general" entry for that weekday.
const GeneralCategory = "general"

// Default values
const (
	DefaultServiceDurationMinutes = 30
	DefaultGranularityMinutes     = 30
)

// Business validation constants
const (
	MinGranularityMinutes = 5
	MaxGranularityMinutes = 240

	// MaxServiceUnits caps the expanded unit list per request so a large
	// quantity cannot blow up the packing loop.
	MaxServiceUnits = 20

	MaxServiceQuantity = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
