package billing

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AmountBreakdown is the itemized charge for a purchase, in minor currency units
type AmountBreakdown struct {
	BaseAmount            int64 `json:"base_amount"`
	DiscountAmount        int64 `json:"discount_amount"`
	SubtotalAfterDiscount int64 `json:"subtotal_after_discount"`
	ShippingAmount        int64 `json:"shipping_amount"`
	CreditCardFeeAmount   int64 `json:"credit_card_fee_amount"`
	TotalAmount           int64 `json:"total_amount"`
}

// BreakdownParams are the inputs of ComputeBreakdown. Callers validate
// ranges; the calculator only does arithmetic.
type BreakdownParams struct {
	Base     int64
	Shipping int64

	// CouponPercent is used only when CouponAmountOff is nil
	CouponPercent   *decimal.Decimal
	CouponAmountOff *int64

	AppliesFee bool
	FeePercent decimal.Decimal
}

// PercentToAmount returns round(amount * percent / 100), rounding half away
// from zero. Every percentage-derived amount goes through here.
func PercentToAmount(amount int64, percent decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).
		Mul(percent).
		Div(hundred).
		Round(0).
		IntPart()
}

// ComputeBreakdown derives the full breakdown. A flat discount wins over a
// percentage, the fee is charged on the discounted subtotal, and shipping is
// neither discounted nor fee-bearing.
func ComputeBreakdown(p BreakdownParams) AmountBreakdown {
	discount := discountFor(p)
	subtotal := max(p.Base-discount, 0)

	var fee int64
	if p.AppliesFee {
		fee = PercentToAmount(subtotal, p.FeePercent)
	}

	return AmountBreakdown{
		BaseAmount:            p.Base,
		DiscountAmount:        discount,
		SubtotalAfterDiscount: subtotal,
		ShippingAmount:        p.Shipping,
		CreditCardFeeAmount:   fee,
		TotalAmount:           subtotal + p.Shipping + fee,
	}
}

func discountFor(p BreakdownParams) int64 {
	var discount int64
	switch {
	case p.CouponAmountOff != nil:
		discount = *p.CouponAmountOff
	case p.CouponPercent != nil:
		discount = PercentToAmount(p.Base, *p.CouponPercent)
	}
	return min(max(discount, 0), max(p.Base, 0))
}
