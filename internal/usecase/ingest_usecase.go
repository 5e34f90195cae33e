package usecase

import (
	"context"

	"onduty/internal/domain/entity"
)

// IngestReport summarizes one collector run.
type IngestReport struct {
	Saved map[entity.Category]int64
	Pages map[entity.Category]int
}

// IngestUsecase mirrors the public registry into the persisted store. It is
// the only writer; each page of records is replaced atomically by id.
type IngestUsecase interface {
	Collect(ctx context.Context) (*IngestReport, error)
}
