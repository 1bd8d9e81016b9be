package main

import (
	"context"
	"log/slog"
	"os"

	"bookshelf/config"
	"bookshelf/internal/delivery"
	"bookshelf/internal/delivery/api"
	apimiddleware "bookshelf/internal/delivery/api/middleware"
	"bookshelf/internal/delivery/api/router/handler"
	"bookshelf/internal/delivery/middleware"
	"bookshelf/internal/domain/service"
	"bookshelf/internal/infra/auth"
	logs "bookshelf/internal/infra/log"
	"bookshelf/internal/infra/metrics"
	"bookshelf/internal/infra/persistence/postgres"
	"bookshelf/internal/infra/ratelimit"
	"bookshelf/internal/usecase/impl"

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
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(service.ReviewMetrics)),
		),
		ratelimit.NewAuthLimiter,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewBookRepository,
			postgres.NewReviewRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewBookService,
			impl.NewReviewService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			middleware.NewMetricsMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewBookHandler,
			handler.NewReviewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.StartHook(func() {
		for _, delivery := range params.Deliveries {
			go func() {
				if err := delivery.Serve(ctx); err != nil {
					slog.Error("Failed to start server", slog.Any("error", err))
					os.Exit(1)
				}
			}()
		}
	}))
}
