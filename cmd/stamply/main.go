package main

import (
	"context"
	"log/slog"
	"os"

	"stamply/config"
	"stamply/internal/delivery"
	"stamply/internal/delivery/http"
	"stamply/internal/delivery/http/middleware"
	"stamply/internal/delivery/http/router/handler"
	"stamply/internal/domain/service"
	"stamply/internal/infra/auth"
	logs "stamply/internal/infra/log"
	"stamply/internal/infra/persistence/postgres"
	"stamply/internal/infra/pubsub"
	"stamply/internal/infra/qrcode"
	"stamply/internal/usecase/impl"

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
			postgres.NewStoreRepository,
			postgres.NewUserRepository,
			postgres.NewDeviceRepository,
			postgres.NewLedgerRepository,
			postgres.NewScanDedupRepository,
			postgres.NewPendingScanRepository,
			postgres.NewSuspiciousScanRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewScanService,
			impl.NewRedemptionService,
			impl.NewReviewService,
			impl.NewLedgerService,
			impl.NewStoreService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewScanHandler,
			handler.NewRedemptionHandler,
			handler.NewLedgerHandler,
			handler.NewStoreHandler,
			handler.NewReviewHandler,
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
