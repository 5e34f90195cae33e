package impl

import (
	"context"
	"log/slog"
	"time"

	"onduty/config"
	deliverycontext "onduty/internal/delivery/context"
	"onduty/internal/domain/entity"
	"onduty/internal/domain/repository"
	"onduty/internal/domain/service"
	"onduty/internal/usecase"
	"onduty/internal/util"

	"github.com/pkg/errors"
)

// ingestService mirrors every registry source into the persisted store. Each
// page is upserted inside one transaction so a crash mid-run never leaves a
// record mixing fields from two ingestion generations.
type ingestService struct {
	txManager repository.TransactionManager
	sources   []service.FacilitySource
	config    *config.Config
	logger    *slog.Logger
}

// NewIngestService creates a new ingestion service instance.
func NewIngestService(
	txManager repository.TransactionManager,
	sources []service.FacilitySource,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.IngestUsecase {
	return &ingestService{
		txManager: txManager,
		sources:   sources,
		config:    cfg,
		logger:    logger,
	}
}

// Collect pages through every source and upserts the normalized records.
// A source failure aborts the run with an error; retrying is the scheduler's
// decision, not ours.
func (s *ingestService) Collect(ctx context.Context) (*usecase.IngestReport, error) {
	report := &usecase.IngestReport{
		Saved: make(map[entity.Category]int64, len(s.sources)),
		Pages: make(map[entity.Category]int, len(s.sources)),
	}

	started := time.Now()
	for _, source := range s.sources {
		if err := s.collectSource(ctx, source, report); err != nil {
			return report, err
		}
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).LogAttrs(ctx, slog.LevelInfo, "registry collection finished",
		slog.String("elapsed", util.FormatDuration(time.Since(started))),
	)

	return report, nil
}

func (s *ingestService) collectSource(ctx context.Context, source service.FacilitySource, report *usecase.IngestReport) error {
	category := source.Category()
	pageSize := s.config.Registry.PageSize

	for page := 1; ; page++ {
		facilities, more, err := source.FetchPage(ctx, page, pageSize)
		if err != nil {
			return errors.Wrapf(err, "fetch %s page %d", category, page)
		}

		if len(facilities) > 0 {
			if err := s.upsertPage(ctx, facilities); err != nil {
				return errors.Wrapf(err, "store %s page %d", category, page)
			}

			report.Saved[category] += int64(len(facilities))
			report.Pages[category]++

			deliverycontext.GetLoggerOrDefault(ctx, s.logger).LogAttrs(ctx, slog.LevelInfo, "registry page stored",
				slog.String("category", string(category)),
				slog.Int("page", page),
				slog.Int("records", len(facilities)),
				slog.Int64("total", report.Saved[category]),
			)
		}

		if !more {
			return nil
		}
	}
}

func (s *ingestService) upsertPage(ctx context.Context, facilities []*entity.Facility) error {
	return s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		return txRepoFactory.NewFacilityRepository().UpsertFacilities(ctx, facilities)
	})
}
