// Package usecase defines the application-level interfaces and their
// input/output types.
package usecase

import (
	"context"

	"onduty/internal/domain/entity"
)

// MaxComposedResults caps every composed result list, matching what the
// presentation layer can usefully show.
const MaxComposedResults = 100

// FacilityStatus is one presentation-ready result: the record, its open
// status at query time, and the distance from the query origin when the
// query had one.
type FacilityStatus struct {
	Facility   *entity.Facility  `json:"facility"`
	Status     entity.OpenStatus `json:"status"`
	DistanceKm *float64          `json:"distance_km,omitempty"`
	Distance   string            `json:"distance,omitempty"` // display form, e.g. "850m" or "2.4km"
}

// NearbyInput parameterizes a radius search around a coordinate.
type NearbyInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Category  entity.Category
	OpenOnly  bool
	Limit     int
}

// RegionInput parameterizes a region search backed by a live registry fetch.
type RegionInput struct {
	City     string
	District string
	Category entity.Category
	OpenOnly bool
}

// SearchUsecase answers "what is nearby and is it open".
type SearchUsecase interface {
	// SearchNearby runs the bounding-box + exact-distance pipeline over the
	// persisted store. A store failure degrades to an empty result.
	SearchNearby(ctx context.Context, input NearbyInput) ([]*FacilityStatus, error)

	// SearchRegion fetches one administrative division live from the
	// registry. A registry failure degrades to an empty result.
	SearchRegion(ctx context.Context, input RegionInput) ([]*FacilityStatus, error)

	// GetFacility returns a single stored facility with its current status
	// and formatted weekly hours.
	GetFacility(ctx context.Context, id string) (*FacilityStatus, []string, error)
}
