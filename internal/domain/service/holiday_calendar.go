// Package service defines capability interfaces the core depends on. Concrete
// implementations live under internal/infra and are swapped freely in tests.
package service

import "time"

// HolidayCalendar decides whether a calendar date is a public holiday in the
// deployment locale. Sundays are not holidays as far as this interface is
// concerned; routing Sunday to its own schedule slot is the open-status
// engine's job.
type HolidayCalendar interface {
	IsHoliday(t time.Time) bool
}
