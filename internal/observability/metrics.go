package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Catalog operations
const (
	OpFetchCoupon = "fetch_coupon"
	OpListPrices  = "list_prices"
	OpCreatePrice = "create_price"
	OpGetPrice    = "get_price"
)

// Metrics holds the billing core's Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// Catalog traffic
	CatalogRequestsTotal *prometheus.CounterVec
	CatalogErrorsTotal   *prometheus.CounterVec

	// Coupon cache
	CouponCacheHitsTotal   prometheus.Counter
	CouponCacheMissesTotal prometheus.Counter
	CouponUnknownCodeTotal prometheus.Counter

	// Fee price registry
	FeePriceCreatedTotal       *prometheus.CounterVec
	FeePriceReusedTotal        *prometheus.CounterVec
	FeePriceDuplicatesTotal    prometheus.Counter
	FeePricePageExhaustedTotal prometheus.Counter
}

// NewMetrics creates and registers all metrics on registry
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		CatalogRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clinicbilling_catalog_requests_total",
				Help: "Total number of requests sent to the external catalog",
			},
			[]string{"operation"},
		),
		CatalogErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clinicbilling_catalog_errors_total",
				Help: "Total number of failed external catalog requests",
			},
			[]string{"operation"},
		),
		CouponCacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clinicbilling_coupon_cache_hits_total",
			Help: "Coupon lookups served from the cache",
		}),
		CouponCacheMissesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clinicbilling_coupon_cache_misses_total",
			Help: "Coupon lookups that had to fetch from the catalog",
		}),
		CouponUnknownCodeTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clinicbilling_coupon_unknown_code_total",
			Help: "Promo codes that did not map to any configured coupon",
		}),
		FeePriceCreatedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clinicbilling_fee_price_created_total",
				Help: "Fee prices created in the catalog",
			},
			[]string{"type"},
		),
		FeePriceReusedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clinicbilling_fee_price_reused_total",
				Help: "Fee price lookups answered by an existing catalog entry",
			},
			[]string{"type"},
		),
		FeePriceDuplicatesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clinicbilling_fee_price_duplicates_total",
			Help: "Fee price lookups that found more than one catalog entry for the same key",
		}),
		FeePricePageExhaustedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clinicbilling_fee_price_page_exhausted_total",
			Help: "Fee price lookups that missed on a full first page and may create a duplicate",
		}),
	}

	registry.MustRegister(
		m.CatalogRequestsTotal,
		m.CatalogErrorsTotal,
		m.CouponCacheHitsTotal,
		m.CouponCacheMissesTotal,
		m.CouponUnknownCodeTotal,
		m.FeePriceCreatedTotal,
		m.FeePriceReusedTotal,
		m.FeePriceDuplicatesTotal,
		m.FeePricePageExhaustedTotal,
	)

	return m
}

// NewDefaultMetrics registers metrics on a fresh registry
func NewDefaultMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

// RecordCatalogRequest counts one catalog call and its failure, if any
func (m *Metrics) RecordCatalogRequest(operation string, err error) {
	m.CatalogRequestsTotal.WithLabelValues(operation).Inc()
	if err != nil {
		m.CatalogErrorsTotal.WithLabelValues(operation).Inc()
	}
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
