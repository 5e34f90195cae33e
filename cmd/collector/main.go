package main

import (
	"context"
	"log/slog"
	"os"

	"onduty/config"
	"onduty/internal/delivery"
	"onduty/internal/delivery/job"
	logs "onduty/internal/infra/log"
	"onduty/internal/infra/persistence/postgres"
	"onduty/internal/infra/registry"
	"onduty/internal/usecase/impl"

	"go.uber.org/fx"
)

type startJobParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startJobs,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			registry.NewClient,
			fx.Annotate(
				registry.NewPharmacySource,
				fx.ResultTags(`group:"facility_sources"`),
			),
			fx.Annotate(
				registry.NewHospitalSource,
				fx.ResultTags(`group:"facility_sources"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				impl.NewIngestService,
				fx.ParamTags("", `group:"facility_sources"`, "", ""),
			),
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				job.NewCollector,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startJobs(ctx context.Context, params startJobParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Job failed", slog.Any("error", err))
			}

			// A job runs to completion; trigger graceful shutdown so all
			// OnStop hooks execute.
			if shutdownErr := params.Shutdown(); shutdownErr != nil {
				slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
				os.Exit(1)
			}
		}()
	}
}
