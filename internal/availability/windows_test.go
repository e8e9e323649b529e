package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestResolveWindows_Regular(t *testing.T) {
	engine := NewEngine(Input{
		Day:   futureDay(),
		Hours: []domain.BusinessHour{workingHours("hair", "09:00", "17:00")},
	})

	windows := engine.ResolveWindows("hair")

	require.Len(t, windows, 1)
	assert.Equal(t, at(9, 0), windows[0].Start)
	assert.Equal(t, at(17, 0), windows[0].End)
	assert.Equal(t, 480, engine.windowMinutes("hair"))
}

func TestResolveWindows_CaseInsensitive(t *testing.T) {
	engine := NewEngine(Input{
		Day:   futureDay(),
		Hours: []domain.BusinessHour{workingHours("Hair", "09:00", "17:00")},
	})

	assert.Len(t, engine.ResolveWindows("HAIR"), 1)
	assert.Len(t, engine.ResolveWindows("hair"), 1)
}

func TestResolveWindows_GeneralFallback(t *testing.T) {
	engine := NewEngine(Input{
		Day:   futureDay(),
		Hours: []domain.BusinessHour{workingHours(domain.GeneralCategory, "10:00", "18:00")},
	})

	windows := engine.ResolveWindows("massage")

	require.Len(t, windows, 1)
	assert.Equal(t, at(10, 0), windows[0].Start)
	assert.Equal(t, at(18, 0), windows[0].End)
}

func TestResolveWindows_CategoryOverridesGeneral(t *testing.T) {
	engine := NewEngine(Input{
		Day: futureDay(),
		Hours: []domain.BusinessHour{
			workingHours(domain.GeneralCategory, "09:00", "17:00"),
			workingHours("hair", "10:00", "12:00"),
		},
	})

	windows := engine.ResolveWindows("hair")

	require.Len(t, windows, 1)
	assert.Equal(t, at(10, 0), windows[0].Start)
	assert.Equal(t, at(12, 0), windows[0].End)
}

func TestResolveWindows_Closed(t *testing.T) {
	engine := NewEngine(Input{
		Day:   futureDay(),
		Hours: []domain.BusinessHour{closedHours("hair")},
	})

	assert.Empty(t, engine.ResolveWindows("hair"))
	assert.Equal(t, 0, engine.windowMinutes("hair"))
}

func TestResolveWindows_NoEntryNoFallback(t *testing.T) {
	engine := NewEngine(Input{
		Day:   futureDay(),
		Hours: []domain.BusinessHour{workingHours("hair", "09:00", "17:00")},
	})

	assert.Empty(t, engine.ResolveWindows("nails"))
}

func TestResolveWindows_OpenAroundTheClock(t *testing.T) {
	engine := NewEngine(Input{
		Day:   futureDay(),
		Hours: []domain.BusinessHour{workingHours("hair", "08:00", "08:00")},
	})

	windows := engine.ResolveWindows("hair")

	require.Len(t, windows, 1)
	assert.Equal(t, at(0, 0), windows[0].Start)
	assert.Equal(t, at(24, 0), windows[0].End)
	assert.Equal(t, 1440, engine.windowMinutes("hair"))
}

func TestResolveWindows_Overnight(t *testing.T) {
	engine := NewEngine(Input{
		Day:   futureDay(),
		Hours: []domain.BusinessHour{workingHours("hair", "22:00", "02:00")},
	})

	windows := engine.ResolveWindows("hair")

	require.Len(t, windows, 2)
	assert.Equal(t, at(22, 0), windows[0].Start)
	assert.Equal(t, at(24, 0), windows[0].End)
	assert.Equal(t, at(0, 0), windows[1].Start)
	assert.Equal(t, at(2, 0), windows[1].End)
	assert.Equal(t, 240, engine.windowMinutes("hair"))
}

func TestFitsWindow_CannotCrossBoundary(t *testing.T) {
	engine := NewEngine(Input{
		Day:   futureDay(),
		Hours: []domain.BusinessHour{workingHours("hair", "22:00", "02:00")},
	})

	// Интервал целиком внутри одного окна - подходит
	assert.True(t, engine.fitsWindow("hair", at(23, 0), at(24, 0)))
	assert.True(t, engine.fitsWindow("hair", at(0, 30), at(2, 0)))

	// Интервал через границу полуночи не помещается ни в одно окно
	assert.False(t, engine.fitsWindow("hair", at(23, 30), at(24, 30)))
}
