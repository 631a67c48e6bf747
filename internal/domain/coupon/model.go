package coupon

import (
	"github.com/shopspring/decimal"
)

// Coupon is the discount shape of a catalog coupon. At most one of
// PercentOff and AmountOff drives a computation; AmountOff wins when both are set.
type Coupon struct {
	ID         string           `json:"id"`
	PercentOff *decimal.Decimal `json:"percent_off,omitempty"`
	AmountOff  *int64           `json:"amount_off,omitempty"`
	Currency   *string          `json:"currency,omitempty"`
}

// IsFlat reports whether the coupon discounts a fixed amount
func (c *Coupon) IsFlat() bool {
	return c != nil && c.AmountOff != nil
}

// AppliesToCurrency reports whether a flat coupon can discount a charge in
// currency. Percentage coupons apply to any currency.
func (c *Coupon) AppliesToCurrency(currency string) bool {
	if c == nil || c.AmountOff == nil || c.Currency == nil || *c.Currency == "" {
		return true
	}
	return normalize(*c.Currency) == normalize(currency)
}
