package main

import (
	"context"
	"log/slog"
	"os"

	"onduty/config"
	"onduty/internal/delivery"
	"onduty/internal/delivery/http"
	"onduty/internal/delivery/http/router/handler"
	"onduty/internal/infra/geocode"
	"onduty/internal/infra/holiday"
	logs "onduty/internal/infra/log"
	"onduty/internal/infra/persistence/postgres"
	"onduty/internal/infra/registry"
	"onduty/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
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
			postgres.NewFacilityRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			holiday.NewCalendar,
			geocode.NewNominatimGeocoder,
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
				impl.NewSearchService,
				fx.ParamTags("", `group:"facility_sources"`, "", "", ""),
			),
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSearchHandler,
			handler.NewFacilityHandler,
			handler.NewGeocodeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
