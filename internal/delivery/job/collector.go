// Package job contains one-shot deliveries that run a use case to completion
// instead of serving requests.
package job

import (
	"context"
	"log/slog"

	"onduty/internal/delivery"
	"onduty/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type collectorJob struct {
	ingestUC usecase.IngestUsecase
	logger   *slog.Logger
}

// CollectorParams holds dependencies for the collector job
type CollectorParams struct {
	fx.In

	IngestUC usecase.IngestUsecase
	Logger   *slog.Logger
}

// NewCollector creates the registry mirroring job.
func NewCollector(params CollectorParams) (delivery.Delivery, error) {
	return &collectorJob{
		ingestUC: params.IngestUC,
		logger:   params.Logger,
	}, nil
}

// Serve runs one full ingestion pass and returns.
func (j *collectorJob) Serve(ctx context.Context) error {
	j.logger.Info("Starting registry collection")

	report, err := j.ingestUC.Collect(ctx)
	if err != nil {
		return errors.Wrap(err, "registry collection failed")
	}

	for category, saved := range report.Saved {
		j.logger.Info("Registry collection finished for category",
			slog.String("category", string(category)),
			slog.Int64("saved", saved),
			slog.Int("pages", report.Pages[category]),
		)
	}

	return nil
}
