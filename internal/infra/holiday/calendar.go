// Package holiday implements the HolidayCalendar capability for the Korean
// public holiday calendar.
package holiday

import (
	"time"

	"onduty/internal/domain/service"

	"github.com/rickar/cal/v2"
)

// Fixed-date Korean public holidays.
var fixedHolidays = []*cal.Holiday{
	{Name: "신정", Type: cal.ObservancePublic, Month: time.January, Day: 1, Func: cal.CalcDayOfMonth},
	{Name: "삼일절", Type: cal.ObservancePublic, Month: time.March, Day: 1, Func: cal.CalcDayOfMonth},
	{Name: "어린이날", Type: cal.ObservancePublic, Month: time.May, Day: 5, Func: cal.CalcDayOfMonth},
	{Name: "현충일", Type: cal.ObservancePublic, Month: time.June, Day: 6, Func: cal.CalcDayOfMonth},
	{Name: "광복절", Type: cal.ObservancePublic, Month: time.August, Day: 15, Func: cal.CalcDayOfMonth},
	{Name: "개천절", Type: cal.ObservancePublic, Month: time.October, Day: 3, Func: cal.CalcDayOfMonth},
	{Name: "한글날", Type: cal.ObservancePublic, Month: time.October, Day: 9, Func: cal.CalcDayOfMonth},
	{Name: "성탄절", Type: cal.ObservancePublic, Month: time.December, Day: 25, Func: cal.CalcDayOfMonth},
}

// Lunar-cycle holidays (설날, 부처님오신날, 추석) and gazetted substitute days
// do not follow a Gregorian rule, so they are tabled per year. Extend the
// table when the government publishes the next year's calendar.
var lunarHolidays = map[int][]string{
	2024: {"02-09", "02-10", "02-11", "02-12", "04-10", "05-06", "05-15", "09-16", "09-17", "09-18", "10-01"},
	2025: {"01-27", "01-28", "01-29", "01-30", "03-03", "05-06", "06-03", "10-05", "10-06", "10-07", "10-08"},
	2026: {"02-16", "02-17", "02-18", "03-02", "05-24", "05-25", "08-17", "09-24", "09-25", "09-26", "10-05"},
	2027: {"02-06", "02-07", "02-08", "02-09", "03-02", "05-13", "08-16", "09-14", "09-15", "09-16", "10-04"},
}

// Calendar answers holiday lookups for the Korean national calendar.
type Calendar struct {
	fixed *cal.BusinessCalendar
	lunar map[int]map[string]bool
}

// NewCalendar builds the production holiday calendar.
func NewCalendar() service.HolidayCalendar {
	fixed := cal.NewBusinessCalendar()
	fixed.AddHoliday(fixedHolidays...)

	lunar := make(map[int]map[string]bool, len(lunarHolidays))
	for year, days := range lunarHolidays {
		set := make(map[string]bool, len(days))
		for _, day := range days {
			set[day] = true
		}
		lunar[year] = set
	}

	return &Calendar{fixed: fixed, lunar: lunar}
}

// IsHoliday reports whether the date is a Korean public holiday. Sundays are
// deliberately not holidays here; the schedule engine routes them to their
// own slot.
func (c *Calendar) IsHoliday(t time.Time) bool {
	if set, ok := c.lunar[t.Year()]; ok && set[t.Format("01-02")] {
		return true
	}

	actual, observed, _ := c.fixed.IsHoliday(t)

	return actual || observed
}
