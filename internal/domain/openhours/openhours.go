// Package openhours normalizes raw registry duty-time encodings and evaluates
// whether a facility is open at a given instant.
package openhours

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"onduty/internal/domain/entity"
	"onduty/internal/domain/service"
)

// SlotState classifies a resolved schedule slot.
type SlotState int

const (
	// SlotClosed means the slot has no hours on record.
	SlotClosed SlotState = iota
	// SlotInvalid means the slot has data that failed normalization.
	SlotInvalid
	// SlotOpenRange means the slot resolved to a valid open interval.
	SlotOpenRange
)

// Status messages. The open message carries the formatted closing time so the
// presentation layer can show it verbatim.
const (
	msgClosed        = "closed"
	msgClosedNoData  = "closed (no hours on record)"
	msgClosedBadData = "closed (invalid time format)"
)

// ParseClock normalizes a registry clock encoding to minutes since midnight.
// The registry is inconsistent: values arrive as "0900", "900", or a bare
// number that lost its leading zero upstream. Everything is zero-padded to
// four digits before splitting into hour and minute. Non-numeric input, more
// than four digits, hour > 23, or minute > 59 all fail.
func ParseClock(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("empty clock value")
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("clock value %q is not numeric", raw)
	}

	padded := fmt.Sprintf("%04d", n)
	if len(padded) != 4 {
		return 0, fmt.Errorf("clock value %q has too many digits", raw)
	}

	hour, _ := strconv.Atoi(padded[:2])
	minute, _ := strconv.Atoi(padded[2:])
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("clock value %q out of range", raw)
	}

	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ResolveSlot normalizes one schedule slot of a facility. For SlotOpenRange
// the returned start and end are minutes since midnight; otherwise they are
// zero. A slot with only one side present, an unparseable side, or a start
// after its end is invalid — the pair is dropped rather than guessed at.
func ResolveSlot(f *entity.Facility, slot int) (start, end int, state SlotState) {
	hours := f.Hours.Slot(slot)
	if hours == nil {
		return 0, 0, SlotClosed
	}

	openRaw := strings.TrimSpace(hours.Open)
	closeRaw := strings.TrimSpace(hours.Close)
	if openRaw == "" && closeRaw == "" {
		return 0, 0, SlotClosed
	}
	if openRaw == "" || closeRaw == "" {
		return 0, 0, SlotInvalid
	}

	start, err := ParseClock(openRaw)
	if err != nil {
		return 0, 0, SlotInvalid
	}
	end, err = ParseClock(closeRaw)
	if err != nil {
		return 0, 0, SlotInvalid
	}
	if start > end {
		return 0, 0, SlotInvalid
	}

	return start, end, SlotOpenRange
}

// SlotFor selects the schedule slot for an instant. Public holidays always
// use slot 8, even when the instant is a Sunday; otherwise Monday through
// Sunday map to slots 1-7.
func SlotFor(at time.Time, holiday bool) int {
	if holiday {
		return entity.SlotHoliday
	}

	// time.Weekday counts Sunday=0; the registry counts Monday=slot 1.
	weekday := (int(at.Weekday()) + 6) % 7

	return weekday + 1
}

// Status evaluates whether the facility is open at the given instant. It is a
// pure function of its inputs: identical (facility, instant, calendar verdict)
// always yields an identical result. The open interval is inclusive on both
// ends, so a facility closing at the current minute still reports open.
func Status(f *entity.Facility, at time.Time, calendar service.HolidayCalendar) entity.OpenStatus {
	slot := SlotFor(at, calendar.IsHoliday(at))

	start, end, state := ResolveSlot(f, slot)
	switch state {
	case SlotClosed:
		return entity.OpenStatus{Message: msgClosedNoData, ActiveSlot: slot}
	case SlotInvalid:
		return entity.OpenStatus{Message: msgClosedBadData, ActiveSlot: slot}
	}

	minute := at.Hour()*60 + at.Minute()
	if minute < start || minute > end {
		return entity.OpenStatus{Message: msgClosed, ActiveSlot: slot}
	}

	return entity.OpenStatus{
		IsOpen:     true,
		Message:    fmt.Sprintf("open (closes %s)", FormatClock(end)),
		ActiveSlot: slot,
	}
}

var slotNames = [entity.ScheduleSize]string{
	"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun", "Holiday",
}

// WeekOverview renders the facility's valid slots as display lines like
// "Mon 09:00 - 18:00". Closed and malformed slots are skipped.
func WeekOverview(f *entity.Facility) []string {
	lines := make([]string, 0, entity.ScheduleSize)
	for slot := entity.SlotMonday; slot <= entity.SlotHoliday; slot++ {
		start, end, state := ResolveSlot(f, slot)
		if state != SlotOpenRange {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s - %s",
			slotNames[slot-1], FormatClock(start), FormatClock(end)))
	}

	return lines
}
