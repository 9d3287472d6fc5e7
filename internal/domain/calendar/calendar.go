package calendar

import (
	"time"
)

const DefaultLocation = "Europe/Rome"

type MonthDay struct {
	Month time.Month
	Day   int
}

// FixedHolidays are closed every year regardless of weekday.
var FixedHolidays = []MonthDay{
	{time.January, 1},
	{time.April, 25},
	{time.May, 1},
	{time.June, 2},
	{time.August, 15},
	{time.September, 19},
	{time.November, 1},
	{time.December, 25},
}

type openingHours struct {
	from, to int // inclusive
}

var weeklyHours = map[time.Weekday]openingHours{
	time.Monday:    {7, 21},
	time.Tuesday:   {7, 21},
	time.Wednesday: {7, 21},
	time.Thursday:  {7, 21},
	time.Friday:    {7, 21},
	time.Saturday:  {7, 11},
}

// Calendar decides which hourly slots are open, in the studio's time zone.
type Calendar struct {
	loc *time.Location
}

func New(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{loc: loc}
}

// NewDefault loads Europe/Rome and falls back to UTC when tzdata is missing.
func NewDefault() *Calendar {
	loc, err := time.LoadLocation(DefaultLocation)
	if err != nil {
		loc = time.UTC
	}
	return New(loc)
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}

func (c *Calendar) IsHoliday(t time.Time) bool {
	local := t.In(c.loc)
	month, day := local.Month(), local.Day()

	for _, h := range FixedHolidays {
		if h.Month == month && h.Day == day {
			return true
		}
	}

	em := EasterMonday(local.Year())
	return em.Month() == month && em.Day() == day
}

// IsBookable is deterministic for a given instant.
func (c *Calendar) IsBookable(t time.Time) bool {
	if c.IsHoliday(t) {
		return false
	}

	local := t.In(c.loc)
	hours, open := weeklyHours[local.Weekday()]
	if !open {
		return false
	}
	return local.Hour() >= hours.from && local.Hour() <= hours.to
}

// BookableSlots enumerates every hour-aligned instant of h that IsBookable accepts, ascending.
func (c *Calendar) BookableSlots(h Horizon) []time.Time {
	var slots []time.Time
	for t := h.Start; t.Before(h.End); t = t.Add(time.Hour) {
		if c.IsBookable(t) {
			slots = append(slots, t)
		}
	}
	return slots
}

// IsHourAligned reports whether t sits on a whole hour in the studio zone.
func (c *Calendar) IsHourAligned(t time.Time) bool {
	local := t.In(c.loc)
	return local.Minute() == 0 && local.Second() == 0 && local.Nanosecond() == 0
}
