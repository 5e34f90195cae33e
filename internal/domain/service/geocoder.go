package service

import (
	"context"

	"onduty/internal/domain/entity"
)

// Geocoder translates between administrative divisions and coordinates.
// Both directions are best-effort: a lookup with no match returns (nil, nil),
// which callers must treat as a normal outcome rather than an error.
type Geocoder interface {
	// Forward resolves a city/district pair to a representative coordinate.
	Forward(ctx context.Context, city, district string) (*entity.Location, error)

	// Reverse resolves a coordinate to its administrative division.
	Reverse(ctx context.Context, lat, lon float64) (*entity.Region, error)
}
