package availability

import "time"

// Day границы целевого календарного дня в таймзоне бизнеса.
// Все сравнения "сегодня"/"сейчас" выполняются относительно этой таймзоны,
// а не таймзоны хоста.
type Day struct {
	start time.Time // 00:00 локального дня
	end   time.Time // 00:00 следующего дня
	now   time.Time // текущий момент в той же таймзоне
	today bool
}

// NewDay строит границы дня date в локации loc. now - текущий момент
// (передается снаружи для тестируемости, см. TimeProvider в use case).
func NewDay(date time.Time, loc *time.Location, now time.Time) Day {
	localNow := now.In(loc)
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)

	ny, nm, nd := localNow.Date()
	sy, sm, sd := start.Date()

	return Day{
		start: start,
		end:   end,
		now:   localNow,
		today: ny == sy && nm == sm && nd == sd,
	}
}

// Start возвращает начало дня (00:00 локального времени)
func (d Day) Start() time.Time {
	return d.start
}

// End возвращает конец дня (00:00 следующего дня)
func (d Day) End() time.Time {
	return d.end
}

// Now возвращает текущий момент в таймзоне бизнеса
func (d Day) Now() time.Time {
	return d.now
}

// IsToday возвращает true, если целевой день - сегодняшний
func (d Day) IsToday() bool {
	return d.today
}

// IsPast возвращает true, если целевой день уже целиком прошел
func (d Day) IsPast() bool {
	return !d.end.After(d.now)
}

// Weekday возвращает день недели целевого дня
func (d Day) Weekday() time.Weekday {
	return d.start.Weekday()
}
