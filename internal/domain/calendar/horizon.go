package calendar

import "time"

const (
	// SameDayCutoffHour pushes the horizon one more day once reached.
	SameDayCutoffHour = 17
	// LookaheadDays is how close to month end the next month opens up.
	LookaheadDays = 7
)

// Horizon is the half-open range [Start, End) of offered slots.
type Horizon struct {
	Start time.Time
	End   time.Time
}

func (c *Calendar) HorizonAt(now time.Time) Horizon {
	local := now.In(c.loc)
	y, m, d := local.Date()

	startOffset := 1
	if local.Hour() >= SameDayCutoffHour {
		startOffset = 2
	}
	start := time.Date(y, m, d+startOffset, 0, 0, 0, 0, c.loc)

	monthsAhead := 1
	if d > daysIn(y, m)-LookaheadDays {
		monthsAhead = 2
	}
	end := time.Date(y, m+time.Month(monthsAhead), 1, 0, 0, 0, 0, c.loc)

	return Horizon{Start: start, End: end}
}

// StartOfWeek returns Monday 00:00 of the week containing t.
func (c *Calendar) StartOfWeek(t time.Time) time.Time {
	local := t.In(c.loc)
	offset := (int(local.Weekday()) + 6) % 7
	y, m, d := local.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, c.loc)
}

// DayBounds returns [00:00, next 00:00) of the day containing t.
func (c *Calendar) DayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(c.loc)
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc), time.Date(y, m, d+1, 0, 0, 0, 0, c.loc)
}

func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
