package main

import (
	"context"
	"log/slog"
	"os"

	"localia/config"
	"localia/internal/delivery"
	"localia/internal/delivery/http"
	"localia/internal/delivery/http/middleware"
	"localia/internal/delivery/http/router/handler"
	"localia/internal/infra/auth"
	logs "localia/internal/infra/log"
	"localia/internal/infra/persistence/postgres"
	"localia/internal/usecase/impl"

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
		injectMiddleware(),
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
			postgres.NewRegionRepository,
			postgres.NewBusinessRepository,
			postgres.NewAddressRepository,
			postgres.NewCatalogRepository,
			postgres.NewClientRepository,
			postgres.NewCourierRepository,
			postgres.NewAPIKeyRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSupabaseTokenService,
			auth.NewSupabaseClient,
			auth.NewSupabaseAuthGateway,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegionService,
			impl.NewBusinessService,
			impl.NewCatalogService,
			impl.NewClientService,
			impl.NewCourierService,
			impl.NewAPIKeyService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewAPIKeyMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBusinessHandler,
			handler.NewRegionHandler,
			handler.NewCatalogHandler,
			handler.NewClientHandler,
			handler.NewCourierHandler,
			handler.NewAPIKeyHandler,
			handler.NewAuthHandler,
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
