package dto

import (
	"github.com/flexprice/clinicbilling/internal/domain/coupon"
	"github.com/shopspring/decimal"
)

// CouponOutcome tells apart the three ways a promo code lookup can end
type CouponOutcome string

const (
	// CouponOutcomeNone means no code was given
	CouponOutcomeNone CouponOutcome = "none"
	// CouponOutcomeUnknown means the code maps to no configured coupon
	CouponOutcomeUnknown CouponOutcome = "unknown"
	// CouponOutcomeResolved means the coupon was found
	CouponOutcomeResolved CouponOutcome = "resolved"
)

// CouponResponse is the discount shape of a resolved coupon
type CouponResponse struct {
	ID         string           `json:"id"`
	PercentOff *decimal.Decimal `json:"percent_off,omitempty"`
	AmountOff  *int64           `json:"amount_off,omitempty"`
	Currency   *string          `json:"currency,omitempty"`
}

// NewCouponResponse converts a coupon, returning nil for nil
func NewCouponResponse(c *coupon.Coupon) *CouponResponse {
	if c == nil {
		return nil
	}
	return &CouponResponse{
		ID:         c.ID,
		PercentOff: c.PercentOff,
		AmountOff:  c.AmountOff,
		Currency:   c.Currency,
	}
}

// CouponResolutionResponse reports how a promo code resolved
type CouponResolutionResponse struct {
	Code    string          `json:"code"`
	Outcome CouponOutcome   `json:"outcome"`
	Coupon  *CouponResponse `json:"coupon,omitempty"`
}
