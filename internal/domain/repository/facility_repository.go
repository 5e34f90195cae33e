// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"onduty/internal/domain/entity"
	"onduty/internal/errors"

	"github.com/paulmach/orb"
)

// ErrFacilityNotFound is returned when a facility id has no row in the store.
var ErrFacilityNotFound = errors.New("facility not found")

// FacilityRepository defines the database operations for the facility registry
// mirror. The ingestion job is the sole writer; query paths only read.
type FacilityRepository interface {
	// UpsertFacilities inserts or replaces records keyed by facility id.
	// Replacement is whole-record: a re-ingested id never keeps columns from
	// the previous generation.
	UpsertFacilities(ctx context.Context, facilities []*entity.Facility) error

	// FindByID retrieves a single facility.
	// Returns ErrFacilityNotFound if the id is unknown.
	FindByID(ctx context.Context, id string) (*entity.Facility, error)

	// FindWithinBound retrieves all located records of a category whose
	// coordinates fall inside the bounding box. Records without coordinates
	// never match.
	FindWithinBound(ctx context.Context, category entity.Category, bound orb.Bound) ([]*entity.Facility, error)

	// CountByCategory returns the number of stored records in a category.
	// Used by the collector for its completion report.
	CountByCategory(ctx context.Context, category entity.Category) (int64, error)
}
