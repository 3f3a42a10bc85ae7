package main

import (
	"context"
	"log/slog"
	"os"

	"bakery/config"
	"bakery/internal/delivery"
	"bakery/internal/delivery/api"
	apimiddleware "bakery/internal/delivery/api/middleware"
	"bakery/internal/delivery/api/router/handler"
	"bakery/internal/domain/lifecycle"
	"bakery/internal/infra/auth"
	logs "bakery/internal/infra/log"
	"bakery/internal/infra/persistence/postgres"
	"bakery/internal/infra/pubsub"
	"bakery/internal/infra/qrcode"
	"bakery/internal/usecase"
	"bakery/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config     *config.Config
	Logger     *slog.Logger
	SessionUC  usecase.SessionUsecase
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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewPickupLocationRepository,
			postgres.NewUserRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProductService,
			impl.NewPickupLocationService,
			impl.NewUserService,
			impl.NewSessionService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewOrderHandler,
			handler.NewProductHandler,
			handler.NewPickupLocationHandler,
			handler.NewUserHandler,
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
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			startCtx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// No-op unless configured and the user table is empty
			if err := params.SessionUC.EnsureAdmin(startCtx, params.Config.Bakery.AdminEmail, params.Config.Bakery.AdminPassword); err != nil {
				return errors.Wrap(err, "failed to bootstrap admin")
			}

			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))

						// Trigger graceful shutdown to execute all OnStop hooks
						if shutdownErr := params.Shutdown(); shutdownErr != nil {
							params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
							os.Exit(1)
						}
					}
				}()
			}

			return nil
		},
	})
}
