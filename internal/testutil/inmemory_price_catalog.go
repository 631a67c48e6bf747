package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/flexprice/clinicbilling/internal/domain/price"
	ierr "github.com/flexprice/clinicbilling/internal/errors"
	"github.com/flexprice/clinicbilling/internal/types"
)

// InMemoryPriceCatalog implements price.Catalog. Prices are listed in the
// order they were added, and create calls carrying an idempotency key
// already seen return the price created for it, as Stripe does. Calls made
// with a cancelled context fail with the context error.
type InMemoryPriceCatalog struct {
	*InMemoryStore[*price.CatalogPrice]

	// createMu serializes creates so that idempotent replays are exact
	createMu sync.Mutex

	mu          sync.Mutex
	seq         int
	listCalls   int
	createCalls int
	getCalls    int
	listErr     error
	createErr   error
	idempotent  map[string]string
	listHook    func()
	lastCreated *price.CreateParams
}

// NewInMemoryPriceCatalog creates a new in-memory price catalog
func NewInMemoryPriceCatalog() *InMemoryPriceCatalog {
	return &InMemoryPriceCatalog{
		InMemoryStore: NewInMemoryStore[*price.CatalogPrice](),
		idempotent:    make(map[string]string),
	}
}

// AddPrice seeds the catalog. An empty ID is generated.
func (s *InMemoryPriceCatalog) AddPrice(ctx context.Context, p *price.CatalogPrice) (*price.CatalogPrice, error) {
	copied := copyPrice(p)
	if copied.ID == "" {
		copied.ID = s.nextID()
	}
	if err := s.InMemoryStore.Create(ctx, copied.ID, copied); err != nil {
		return nil, err
	}
	return copyPrice(copied), nil
}

// SetListError makes every following list call fail with err
func (s *InMemoryPriceCatalog) SetListError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listErr = err
}

// SetCreateError makes every following create call fail with err
func (s *InMemoryPriceCatalog) SetCreateError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createErr = err
}

// SetListHook runs fn after a list call has read its page and before it returns
func (s *InMemoryPriceCatalog) SetListHook(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listHook = fn
}

func (s *InMemoryPriceCatalog) ListActivePrices(ctx context.Context, filter price.ListFilter) ([]*price.CatalogPrice, error) {
	s.mu.Lock()
	s.listCalls++
	err := s.listErr
	hook := s.listHook
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}

	items := s.InMemoryStore.List(ctx, func(_ context.Context, p *price.CatalogPrice) bool {
		if !p.Active || p.ProductID != filter.ProductID {
			return false
		}
		if filter.Currency != "" && !types.IsSameCurrency(filter.Currency, p.Currency) {
			return false
		}
		switch filter.Type {
		case price.PriceTypeOneTime:
			return p.IsOneTime()
		case price.PriceTypeRecurring:
			return !p.IsOneTime()
		}
		return true
	}, int(filter.Limit))

	if hook != nil {
		hook()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]*price.CatalogPrice, 0, len(items))
	for _, p := range items {
		result = append(result, copyPrice(p))
	}
	return result, nil
}

func (s *InMemoryPriceCatalog) CreatePrice(ctx context.Context, params price.CreateParams) (*price.CatalogPrice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.createMu.Lock()
	defer s.createMu.Unlock()

	s.mu.Lock()
	s.createCalls++
	err := s.createErr
	last := params
	s.lastCreated = &last
	existingID, replay := s.idempotent[params.IdempotencyKey]
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if params.IdempotencyKey != "" && replay {
		existing, err := s.InMemoryStore.Get(ctx, existingID)
		if err != nil {
			return nil, err
		}
		return copyPrice(existing), nil
	}

	p := &price.CatalogPrice{
		ID:         s.nextID(),
		ProductID:  params.ProductID,
		Currency:   types.NormalizeCurrency(params.Currency),
		UnitAmount: params.UnitAmount,
		Active:     true,
	}
	if params.Recurring != nil {
		rec := *params.Recurring
		p.Recurring = &rec
	}
	if err := s.InMemoryStore.Create(ctx, p.ID, p); err != nil {
		return nil, err
	}

	if params.IdempotencyKey != "" {
		s.mu.Lock()
		s.idempotent[params.IdempotencyKey] = p.ID
		s.mu.Unlock()
	}
	return copyPrice(p), nil
}

func (s *InMemoryPriceCatalog) GetPrice(ctx context.Context, id string) (*price.CatalogPrice, error) {
	s.mu.Lock()
	s.getCalls++
	s.mu.Unlock()

	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Price %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyPrice(p), nil
}

// ListCalls returns the number of list calls made
func (s *InMemoryPriceCatalog) ListCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls
}

// CreateCalls returns the number of create calls made, replays included
func (s *InMemoryPriceCatalog) CreateCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createCalls
}

// GetCalls returns the number of get calls made
func (s *InMemoryPriceCatalog) GetCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getCalls
}

// LastCreateParams returns the params of the most recent create call
func (s *InMemoryPriceCatalog) LastCreateParams() *price.CreateParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCreated
}

// CountMatching returns how many stored prices match key
func (s *InMemoryPriceCatalog) CountMatching(ctx context.Context, key price.FeePriceKey) int {
	return s.InMemoryStore.Count(ctx, func(_ context.Context, p *price.CatalogPrice) bool {
		return p.ProductID == key.ProductID && key.Matches(p)
	})
}

// Clear removes all prices and resets the counters
func (s *InMemoryPriceCatalog) Clear() {
	s.InMemoryStore.Clear()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq = 0
	s.listCalls = 0
	s.createCalls = 0
	s.getCalls = 0
	s.listErr = nil
	s.createErr = nil
	s.listHook = nil
	s.lastCreated = nil
	s.idempotent = make(map[string]string)
}

func (s *InMemoryPriceCatalog) nextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return fmt.Sprintf("price_%04d", s.seq)
}

func copyPrice(p *price.CatalogPrice) *price.CatalogPrice {
	if p == nil {
		return nil
	}
	copied := *p
	if p.Recurring != nil {
		rec := *p.Recurring
		copied.Recurring = &rec
	}
	return &copied
}
