package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	httpmiddleware "storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	deliverymiddleware "storefront/internal/delivery/middleware"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/cartstore"
	"storefront/internal/infra/httpclient"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/secretstore"
	"storefront/internal/infra/storeapi"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

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
		injectGateway(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			restoreSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		httpclient.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			secretstore.New,
			cartstore.NewMemoryStore,
		),
	)
}

func injectGateway() fx.Option {
	return fx.Options(
		fx.Provide(
			storeapi.NewCatalogGateway,
			storeapi.NewAuthGateway,
			storeapi.NewOrderGateway,
			auth.NewTokenInspector,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewAuthService,
			impl.NewCheckoutService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewRequestIDMiddleware,
			httpmiddleware.NewErrorMiddleware,
			httpmiddleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewCartHandler,
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

// restoreSession loads the stored credential before the server starts taking
// requests, so the first session read never races the restore.
func restoreSession(lc fx.Lifecycle, authUC usecase.AuthUsecase) {
	lc.Append(fx.Hook{
		OnStart: authUC.Restore,
	})
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
