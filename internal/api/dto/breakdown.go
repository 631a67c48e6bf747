package dto

import (
	"github.com/flexprice/clinicbilling/internal/domain/billing"
	ierr "github.com/flexprice/clinicbilling/internal/errors"
	"github.com/flexprice/clinicbilling/internal/validator"
	"github.com/shopspring/decimal"
)

// ComputeBreakdownRequest computes a breakdown from explicit inputs.
// Omitted percents fall back to the configured fee percent.
type ComputeBreakdownRequest struct {
	BaseAmount       int64            `json:"base_amount" validate:"gte=0"`
	ShippingAmount   int64            `json:"shipping_amount" validate:"gte=0"`
	CouponPercentOff *decimal.Decimal `json:"coupon_percent_off,omitempty"`
	CouponAmountOff  *int64           `json:"coupon_amount_off,omitempty" validate:"omitempty,gte=0"`
	AppliesFee       bool             `json:"applies_fee"`
	FeePercent       *decimal.Decimal `json:"fee_percent,omitempty"`
}

func (r *ComputeBreakdownRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.CouponPercentOff != nil && !isPercent(*r.CouponPercentOff) {
		return ierr.NewError("coupon_percent_off out of range").
			WithHint("Coupon percent off must be between 0 and 100").
			Mark(ierr.ErrValidation)
	}
	if r.FeePercent != nil && !isPercent(*r.FeePercent) {
		return ierr.NewError("fee_percent out of range").
			WithHint("Fee percent must be between 0 and 100").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToParams builds calculator params, using defaultFee when no fee percent was given
func (r *ComputeBreakdownRequest) ToParams(defaultFee decimal.Decimal) billing.BreakdownParams {
	fee := defaultFee
	if r.FeePercent != nil {
		fee = *r.FeePercent
	}
	return billing.BreakdownParams{
		Base:            r.BaseAmount,
		Shipping:        r.ShippingAmount,
		CouponPercent:   r.CouponPercentOff,
		CouponAmountOff: r.CouponAmountOff,
		AppliesFee:      r.AppliesFee,
		FeePercent:      fee,
	}
}

func isPercent(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(100))
}
