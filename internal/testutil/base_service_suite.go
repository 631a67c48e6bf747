package testutil

import (
	"context"
	"time"

	"github.com/flexprice/clinicbilling/internal/cache"
	"github.com/flexprice/clinicbilling/internal/config"
	"github.com/flexprice/clinicbilling/internal/logger"
	"github.com/flexprice/clinicbilling/internal/observability"
	"github.com/flexprice/clinicbilling/internal/types"
	"github.com/flexprice/clinicbilling/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Catalogs holds the in-memory external catalogs used by service tests
type Catalogs struct {
	CouponCatalog *InMemoryCouponCatalog
	PriceCatalog  *InMemoryPriceCatalog
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	catalogs Catalogs
	cache    *cache.InMemoryCache
	metrics  *observability.Metrics
	logger   *logger.Logger
	config   *config.Configuration
	now      time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()
	s.logger = logger.NewNoopLogger()
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.config = NewTestConfig()
	s.catalogs = Catalogs{
		CouponCatalog: NewInMemoryCouponCatalog(),
		PriceCatalog:  NewInMemoryPriceCatalog(),
	}
	s.cache = cache.NewInMemoryCache(s.config, s.logger)
	s.metrics = observability.NewDefaultMetrics()
	s.now = time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.catalogs.CouponCatalog.Clear()
	s.catalogs.PriceCatalog.Clear()
	s.cache.Flush(s.ctx)
}

// NewTestConfig returns the default configuration with coupon codes and
// subscription prices populated
func NewTestConfig() *config.Configuration {
	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelInfo
	cfg.Billing.CouponCodes = map[string]string{
		"welcome10": "co_welcome",
		"spring":    "co_welcome",
		"flat20":    "co_flat20",
		"eurflat":   "co_eur_flat",
	}
	cfg.Billing.SubscriptionPrices = map[string]map[string]string{
		string(types.PlanDurationTwelveMonths): {
			string(types.PlanCadenceMonthly): "price_sub_12_monthly",
			string(types.PlanCadenceAnnual):  "price_sub_12_annual",
		},
		string(types.PlanDurationTwoYears): {
			string(types.PlanCadenceMonthly):   "price_sub_24_monthly",
			string(types.PlanCadenceQuarterly): "",
		},
	}
	return cfg
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetCatalogs returns the in-memory catalogs
func (s *BaseServiceTestSuite) GetCatalogs() Catalogs {
	return s.catalogs
}

// GetCache returns the coupon cache
func (s *BaseServiceTestSuite) GetCache() *cache.InMemoryCache {
	return s.cache
}

// GetMetrics returns the per-test metrics
func (s *BaseServiceTestSuite) GetMetrics() *observability.Metrics {
	return s.metrics
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the frozen test clock
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

// GetUUID returns a new UUID string
func (s *BaseServiceTestSuite) GetUUID() string {
	return types.GenerateUUID()
}
