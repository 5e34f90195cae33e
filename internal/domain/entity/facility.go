// Package entity contains the core business objects of the project.
package entity

import "time"

// Category partitions the facility data set. A search never mixes categories.
type Category string

const (
	CategoryPharmacy Category = "pharmacy"
	CategoryHospital Category = "hospital"
)

// Valid reports whether the category is one of the known partitions.
func (c Category) Valid() bool {
	return c == CategoryPharmacy || c == CategoryHospital
}

// Location is a WGS84 coordinate pair. A Facility carries a nil *Location when
// the source record had no usable coordinates; such facilities are excluded
// from every distance-based operation.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// InRange reports whether the coordinate pair is a plausible WGS84 point.
func (l Location) InRange() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// DutyHours is one schedule slot exactly as the registry delivered it.
// Open and Close are raw clock encodings ("0900", "900", sometimes a bare
// number upstream); normalization to minutes-of-day happens in the openhours
// package so a malformed value degrades a single slot instead of the record.
type DutyHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Slot indices into WeekSchedule. Slots 1-6 are Monday through Saturday,
// slot 7 is Sunday, and slot 8 overrides the weekday on public holidays.
const (
	SlotMonday   = 1
	SlotSunday   = 7
	SlotHoliday  = 8
	ScheduleSize = 8
)

// WeekSchedule holds the eight duty-hour slots of a facility. A nil entry
// means the registry reported no hours for that slot (closed).
type WeekSchedule [ScheduleSize]*DutyHours

// Slot returns the raw duty hours for a 1-based slot index, or nil when the
// index is out of range or the slot has no hours on record.
func (w WeekSchedule) Slot(n int) *DutyHours {
	if n < SlotMonday || n > SlotHoliday {
		return nil
	}

	return w[n-1]
}

// SetSlot stores raw duty hours at a 1-based slot index. Out-of-range indices
// are ignored.
func (w *WeekSchedule) SetSlot(n int, hours *DutyHours) {
	if n < SlotMonday || n > SlotHoliday {
		return
	}

	w[n-1] = hours
}

// Facility is one row of the facility registry. Records are created and
// replaced whole by the ingestion job and are read-only everywhere else.
type Facility struct {
	ID        string       `json:"id"` // registry identifier, stable across refreshes
	Name      string       `json:"name"`
	Address   string       `json:"address"`
	Phone     string       `json:"phone"`
	Category  Category     `json:"category"`
	Location  *Location    `json:"location,omitempty"`
	Hours     WeekSchedule `json:"hours"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// HasLocation reports whether the facility carries usable coordinates.
func (f *Facility) HasLocation() bool {
	return f.Location != nil
}

// Region is an administrative division pair used by region search and
// geocoding (e.g. "서울특별시" / "강남구").
type Region struct {
	City     string `json:"city"`
	District string `json:"district"`
}
