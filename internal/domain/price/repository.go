package price

import (
	"context"
)

// ListFilter narrows a catalog price listing
type ListFilter struct {
	ProductID string
	Currency  string
	// Type is optional; empty lists both one-time and recurring prices
	Type PriceType
	// Limit bounds the single page returned
	Limit int64
}

// CreateParams describes a new catalog price
type CreateParams struct {
	ProductID  string
	Currency   string
	UnitAmount int64
	Recurring  *Recurrence
	// IdempotencyKey is optional and forwarded to the catalog when set
	IdempotencyKey string
}

// Catalog is the external system of record for prices. ListActivePrices
// returns at most one page; callers that need more must page themselves.
type Catalog interface {
	ListActivePrices(ctx context.Context, filter ListFilter) ([]*CatalogPrice, error)
	CreatePrice(ctx context.Context, params CreateParams) (*CatalogPrice, error)
	GetPrice(ctx context.Context, id string) (*CatalogPrice, error)
}
