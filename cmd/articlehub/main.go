package main

import (
	"context"
	"log/slog"
	"os"

	"articlehub/config"
	"articlehub/internal/delivery"
	"articlehub/internal/delivery/api"
	apimiddleware "articlehub/internal/delivery/api/middleware"
	"articlehub/internal/delivery/api/router/handler"
	deliverymiddleware "articlehub/internal/delivery/middleware"
	"articlehub/internal/domain/lifecycle"
	"articlehub/internal/infra/auth"
	"articlehub/internal/infra/cache"
	logs "articlehub/internal/infra/log"
	"articlehub/internal/infra/metrics"
	"articlehub/internal/infra/persistence/postgres"
	"articlehub/internal/infra/pubsub"
	"articlehub/internal/infra/qrcode"
	"articlehub/internal/infra/sanitizer"
	"articlehub/internal/usecase"
	"articlehub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Seeder usecase.SeedUsecase
	Logger *slog.Logger
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
			seedOnStart,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
		cache.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewArticleRepository,
			postgres.NewLikeRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeServiceFromConfig,
			sanitizer.NewContentSanitizer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewArticleService,
			impl.NewLikeService,
			impl.NewSeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewErrorMiddleware,
			deliverymiddleware.ProvideRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewArticleHandler,
			handler.NewRankingHandler,
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

// seedOnStart inserts the demo data once the schema is migrated.
func seedOnStart(params seedParams) {
	if params.Config.Seed == nil || !params.Config.Seed.Enabled {
		return
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return params.Seeder.Seed(ctx)
		},
	})
}

// startServer launches every delivery after the other start hooks have run.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
