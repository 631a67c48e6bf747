package price

import (
	"fmt"

	"github.com/flexprice/clinicbilling/internal/types"
)

// Recurrence is the billing shape of a recurring price
type Recurrence struct {
	Interval      types.RecurringInterval `json:"interval"`
	IntervalCount int64                   `json:"interval_count"`
}

// NewRecurrenceForCadence returns the recurrence a plan cadence bills on
func NewRecurrenceForCadence(cadence types.PlanCadence) (Recurrence, error) {
	interval, count, err := cadence.Interval()
	if err != nil {
		return Recurrence{}, err
	}
	return Recurrence{Interval: interval, IntervalCount: count}, nil
}

func (r Recurrence) String() string {
	return fmt.Sprintf("%d/%s", r.IntervalCount, r.Interval)
}

// CatalogPrice is a price as the external catalog reports it
type CatalogPrice struct {
	ID         string      `json:"id"`
	ProductID  string      `json:"product_id"`
	Currency   string      `json:"currency"`
	UnitAmount int64       `json:"unit_amount"`
	Recurring  *Recurrence `json:"recurring,omitempty"`
	Active     bool        `json:"active"`
}

// IsOneTime reports whether the price has no recurrence
func (p *CatalogPrice) IsOneTime() bool {
	return p.Recurring == nil
}

// FeePriceKey identifies one fee price. Two prices are the same catalog
// entry only when every field matches exactly.
type FeePriceKey struct {
	ProductID  string
	Currency   string
	UnitAmount int64
	// Recurring is nil for one-time fees
	Recurring *Recurrence
}

// Matches compares the key with a catalog price field by field.
// There is no tolerance: a one cent difference is a different entry.
func (k FeePriceKey) Matches(p *CatalogPrice) bool {
	if p == nil {
		return false
	}
	if !types.IsSameCurrency(k.Currency, p.Currency) || k.UnitAmount != p.UnitAmount {
		return false
	}
	if k.Recurring == nil {
		return p.IsOneTime()
	}
	if p.IsOneTime() {
		return false
	}
	return *k.Recurring == *p.Recurring
}

// String renders the key, e.g. "prod_fee:usd:150:one_time" or "prod_fee:usd:150:1/month"
func (k FeePriceKey) String() string {
	shape := "one_time"
	if k.Recurring != nil {
		shape = k.Recurring.String()
	}
	return fmt.Sprintf("%s:%s:%d:%s", k.ProductID, types.NormalizeCurrency(k.Currency), k.UnitAmount, shape)
}

// PriceType returns the catalog price type the key belongs to
func (k FeePriceKey) PriceType() PriceType {
	if k.Recurring == nil {
		return PriceTypeOneTime
	}
	return PriceTypeRecurring
}

type PriceType string

const (
	PriceTypeOneTime   PriceType = "one_time"
	PriceTypeRecurring PriceType = "recurring"
)
