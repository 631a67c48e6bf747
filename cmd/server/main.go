package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/flexprice/clinicbilling/internal/api"
	v1 "github.com/flexprice/clinicbilling/internal/api/v1"
	"github.com/flexprice/clinicbilling/internal/cache"
	"github.com/flexprice/clinicbilling/internal/config"
	"github.com/flexprice/clinicbilling/internal/integration/stripe"
	"github.com/flexprice/clinicbilling/internal/logger"
	"github.com/flexprice/clinicbilling/internal/observability"
	"github.com/flexprice/clinicbilling/internal/sentry"
	"github.com/flexprice/clinicbilling/internal/service"
	"github.com/flexprice/clinicbilling/internal/types"
	"github.com/flexprice/clinicbilling/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// @title Clinic Billing API
// @version 1.0
// @description Quotes clinic purchases against the Stripe catalog
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.Initialize,

			// Metrics
			observability.NewDefaultMetrics,

			// Stripe catalog
			stripe.NewClient,
			stripe.NewCouponCatalog,
			stripe.NewPriceCatalog,
		),
		sentry.Module(),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewCouponService,
			service.NewFeePriceService,
			service.NewPlanService,
			service.NewClinicService,
			service.NewQuoteService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	quoteService service.QuoteService,
	couponService service.CouponService,
	feePriceService service.FeePriceService,
	clinicService service.ClinicService,
) api.Handlers {
	return api.Handlers{
		Health:   v1.NewHealthHandler(logger),
		Quote:    v1.NewQuoteHandler(quoteService, logger),
		Coupon:   v1.NewCouponHandler(couponService, logger),
		FeePrice: v1.NewFeePriceHandler(feePriceService, logger),
		Clinic:   v1.NewClinicHandler(clinicService, logger),
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	c cache.Cache,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startAPIServer(lc, r, c, cfg, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	c cache.Cache,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...", "address", cfg.Server.Address, "mode", cfg.Deployment.Mode)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			if closer, ok := c.(interface{ Close() error }); ok {
				return closer.Close()
			}
			return nil
		},
	})
}
