package main

import (
	"context"
	"log/slog"
	"os"

	"directorio/config"
	"directorio/internal/delivery"
	"directorio/internal/delivery/http"
	"directorio/internal/delivery/http/middleware"
	"directorio/internal/delivery/http/router/handler"
	"directorio/internal/domain/service"
	"directorio/internal/infra/auth"
	"directorio/internal/infra/auth/google"
	"directorio/internal/infra/geocode"
	logs "directorio/internal/infra/log"
	"directorio/internal/infra/persistence/postgres"
	"directorio/internal/infra/pubsub"
	"directorio/internal/infra/qrcode"
	"directorio/internal/infra/storage"
	"directorio/internal/usecase/impl"

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
			postgres.NewResidenceRepository,
			postgres.NewDirectorRepository,
			postgres.NewFavoriteRepository,
			postgres.NewEnquiryRepository,
			postgres.NewNewsRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			geocode.NewNominatimGeocoder,
			storage.NewBlobStorageService,
			pubsub.NewLeadPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(cfg.Site.BaseURL, 256, "M")
	}

	return qrcode.NewQRCodeService(cfg.Site.BaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewAdminService,
			impl.NewDraftService,
			impl.NewFavoriteService,
			impl.NewEnquiryService,
			impl.NewAuthService,
			impl.NewNewsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewAuthHandler,
			handler.NewFavoriteHandler,
			handler.NewEnquiryHandler,
			handler.NewNewsHandler,
			handler.NewAdminHandler,
			handler.NewDraftHandler,
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
