package testutil

import (
	"context"
	"sync"

	"github.com/flexprice/clinicbilling/internal/domain/coupon"
	ierr "github.com/flexprice/clinicbilling/internal/errors"
)

// InMemoryCouponCatalog implements coupon.Catalog and counts every fetch
type InMemoryCouponCatalog struct {
	*InMemoryStore[*coupon.Coupon]

	mu      sync.Mutex
	fetches map[string]int
	err     error
}

// NewInMemoryCouponCatalog creates a new in-memory coupon catalog
func NewInMemoryCouponCatalog() *InMemoryCouponCatalog {
	return &InMemoryCouponCatalog{
		InMemoryStore: NewInMemoryStore[*coupon.Coupon](),
		fetches:       make(map[string]int),
	}
}

// AddCoupon seeds the catalog
func (s *InMemoryCouponCatalog) AddCoupon(ctx context.Context, c *coupon.Coupon) error {
	return s.InMemoryStore.Create(ctx, c.ID, copyCoupon(c))
}

// SetError makes every following fetch fail with err. Pass nil to recover.
func (s *InMemoryCouponCatalog) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *InMemoryCouponCatalog) FetchCoupon(ctx context.Context, externalID string) (*coupon.Coupon, error) {
	s.mu.Lock()
	s.fetches[externalID]++
	err := s.err
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}

	c, err := s.InMemoryStore.Get(ctx, externalID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Coupon %s not found", externalID).
			Mark(ierr.ErrNotFound)
	}
	return copyCoupon(c), nil
}

// FetchCount returns how many times the coupon was fetched
func (s *InMemoryCouponCatalog) FetchCount(externalID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches[externalID]
}

// TotalFetches returns the number of fetches across all coupons
func (s *InMemoryCouponCatalog) TotalFetches() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, n := range s.fetches {
		total += n
	}
	return total
}

// Clear removes all coupons and resets the counters
func (s *InMemoryCouponCatalog) Clear() {
	s.InMemoryStore.Clear()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetches = make(map[string]int)
	s.err = nil
}

func copyCoupon(c *coupon.Coupon) *coupon.Coupon {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}
