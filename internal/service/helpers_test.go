package service

import (
	"time"

	"github.com/flexprice/clinicbilling/internal/idempotency"
	"github.com/flexprice/clinicbilling/internal/testutil"
)

// newTestServiceParams wires the suite's in-memory dependencies
func newTestServiceParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	now := s.GetNow()
	return ServiceParams{
		Logger:        s.GetLogger(),
		Config:        s.GetConfig(),
		Cache:         s.GetCache(),
		Metrics:       s.GetMetrics(),
		CouponCatalog: s.GetCatalogs().CouponCatalog,
		PriceCatalog:  s.GetCatalogs().PriceCatalog,
		Idempotency:   idempotency.NewGenerator(),
		Now:           func() time.Time { return now },
	}
}
