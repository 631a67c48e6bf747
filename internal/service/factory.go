package service

import (
	"time"

	"github.com/flexprice/clinicbilling/internal/cache"
	"github.com/flexprice/clinicbilling/internal/config"
	"github.com/flexprice/clinicbilling/internal/domain/coupon"
	"github.com/flexprice/clinicbilling/internal/domain/price"
	"github.com/flexprice/clinicbilling/internal/idempotency"
	"github.com/flexprice/clinicbilling/internal/logger"
	"github.com/flexprice/clinicbilling/internal/observability"
	"github.com/flexprice/clinicbilling/internal/sentry"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger  *logger.Logger
	Config  *config.Configuration
	Cache   cache.Cache
	Metrics *observability.Metrics
	Sentry  *sentry.Service

	// External catalogs
	CouponCatalog coupon.Catalog
	PriceCatalog  price.Catalog

	Idempotency *idempotency.Generator

	// Now is the clock used for terms acceptance and date windows
	Now func() time.Time
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	cache cache.Cache,
	metrics *observability.Metrics,
	sentry *sentry.Service,
	couponCatalog coupon.Catalog,
	priceCatalog price.Catalog,
) ServiceParams {
	return ServiceParams{
		Logger:        logger,
		Config:        config,
		Cache:         cache,
		Metrics:       metrics,
		Sentry:        sentry,
		CouponCatalog: couponCatalog,
		PriceCatalog:  priceCatalog,
		Idempotency:   idempotency.NewGenerator(),
		Now:           time.Now,
	}
}

func (p ServiceParams) now() time.Time {
	if p.Now == nil {
		return time.Now().UTC()
	}
	return p.Now().UTC()
}
