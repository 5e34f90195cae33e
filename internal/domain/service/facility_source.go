package service

import (
	"context"

	"onduty/internal/domain/entity"
)

// FacilitySource is a per-source adapter over the public facility registry.
// Each adapter owns the field-name quirks of its upstream endpoint (alternate
// spellings for name/address/phone, lat/lon vs x/y coordinate keys) and
// returns only canonical Facility records, so nothing downstream knows about
// source formats.
type FacilitySource interface {
	// Category identifies the partition this source feeds.
	Category() entity.Category

	// FetchPage returns one page of the full national data set and whether
	// more pages remain. Pages are 1-based.
	FetchPage(ctx context.Context, page, size int) ([]*entity.Facility, bool, error)

	// FetchRegion returns the records for one administrative division.
	FetchRegion(ctx context.Context, city, district string) ([]*entity.Facility, error)
}
