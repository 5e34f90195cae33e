package registry

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"onduty/internal/domain/entity"
)

// rawItem is one registry record before normalization, keyed by whatever
// field names the endpoint happened to use.
type rawItem map[string]json.RawMessage

// str decodes the first present, non-empty field among keys. Numeric values
// are returned in their literal form so duty times like 900 keep their
// digits for the schedule parser.
func (it rawItem) str(keys ...string) string {
	for _, key := range keys {
		raw, ok := it[key]
		if !ok {
			continue
		}

		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s != "" {
				return s
			}

			continue
		}

		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil {
			return n.String()
		}
	}

	return ""
}

// fieldAliases lists, per source, the accepted spellings of each logical
// field in priority order.
type fieldAliases struct {
	name    []string
	address []string
	phone   []string
	lat     []string
	lon     []string
}

// buildFacility normalizes one raw record into the canonical entity. Records
// without an id are unusable and dropped. A coordinate pair that fails to
// parse or lies outside WGS84 range degrades to no location; the record
// itself survives for region search.
func buildFacility(it rawItem, category entity.Category, aliases fieldAliases, at time.Time) *entity.Facility {
	id := it.str("hpid")
	if id == "" {
		return nil
	}

	facility := &entity.Facility{
		ID:        id,
		Name:      it.str(aliases.name...),
		Address:   it.str(aliases.address...),
		Phone:     it.str(aliases.phone...),
		Category:  category,
		Location:  parseLocation(it.str(aliases.lat...), it.str(aliases.lon...)),
		UpdatedAt: at,
	}

	for slot := entity.SlotMonday; slot <= entity.SlotHoliday; slot++ {
		openRaw := it.str(fmt.Sprintf("dutyTime%ds", slot))
		closeRaw := it.str(fmt.Sprintf("dutyTime%dc", slot))
		if openRaw == "" && closeRaw == "" {
			continue
		}
		facility.Hours.SetSlot(slot, &entity.DutyHours{Open: openRaw, Close: closeRaw})
	}

	return facility
}

func parseLocation(latRaw, lonRaw string) *entity.Location {
	if latRaw == "" || lonRaw == "" {
		return nil
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil
	}
	lon, err := strconv.ParseFloat(lonRaw, 64)
	if err != nil {
		return nil
	}

	loc := entity.Location{Latitude: lat, Longitude: lon}
	if !loc.InRange() {
		return nil
	}

	return &loc
}

func mapItems(items []rawItem, category entity.Category, aliases fieldAliases) []*entity.Facility {
	now := time.Now()
	facilities := make([]*entity.Facility, 0, len(items))
	for _, item := range items {
		if facility := buildFacility(item, category, aliases, now); facility != nil {
			facilities = append(facilities, facility)
		}
	}

	return facilities
}
