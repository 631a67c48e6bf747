package api

import (
	v1 "github.com/flexprice/clinicbilling/internal/api/v1"
	"github.com/flexprice/clinicbilling/internal/config"
	"github.com/flexprice/clinicbilling/internal/logger"
	"github.com/flexprice/clinicbilling/internal/observability"
	"github.com/flexprice/clinicbilling/internal/rest/middleware"
	"github.com/flexprice/clinicbilling/internal/types"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health   *v1.HealthHandler
	Quote    *v1.QuoteHandler
	Coupon   *v1.CouponHandler
	FeePrice *v1.FeePriceHandler
	Clinic   *v1.ClinicHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, log *logger.Logger, metrics *observability.Metrics) *gin.Engine {
	if cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.SentryMiddleware(cfg),
		middleware.ErrorHandler(log),
	)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	router.GET("/health", handlers.Health.Health)

	router.POST("/quotes", handlers.Quote.CreateQuote)
	router.POST("/breakdowns", handlers.Quote.ComputeBreakdown)

	coupons := router.Group("/coupons")
	{
		coupons.GET("/resolve", handlers.Coupon.ResolveCoupon)
	}

	router.POST("/fee-prices", handlers.FeePrice.GetOrCreateFeePrice)

	router.GET("/timezones", handlers.Clinic.ResolveTimezone)
	router.GET("/dates/window", handlers.Clinic.CheckDateWindow)
	router.POST("/clinic-metadata", handlers.Clinic.BuildClinicMetadata)
}
