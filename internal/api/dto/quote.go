package dto

import (
	"github.com/flexprice/clinicbilling/internal/domain/billing"
	"github.com/flexprice/clinicbilling/internal/domain/clinic"
	ierr "github.com/flexprice/clinicbilling/internal/errors"
	"github.com/flexprice/clinicbilling/internal/types"
	"github.com/flexprice/clinicbilling/internal/validator"
)

// QuoteRequest describes a purchase to price. Nothing is charged.
type QuoteRequest struct {
	PurchaseType  types.PurchaseType  `json:"purchase_type" validate:"required"`
	FundingSource types.FundingSource `json:"funding_source" validate:"omitempty,oneof=credit debit prepaid unknown"`
	CouponCode    string              `json:"coupon_code,omitempty"`

	// Subscription only
	PlanDuration types.PlanDuration `json:"plan_duration,omitempty"`
	PlanCadence  types.PlanCadence  `json:"plan_cadence,omitempty"`

	Clinic BuildClinicMetadataRequest `json:"clinic" validate:"required"`
}

func (r *QuoteRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.PurchaseType.Validate(); err != nil {
		return err
	}
	if r.PurchaseType == types.PurchaseTypeSubscription && (r.PlanDuration == "" || r.PlanCadence == "") {
		return ierr.NewError("plan duration and cadence are required for subscriptions").
			WithHint("Please select a plan duration and billing cadence").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// QuoteResponse is the priced purchase
type QuoteResponse struct {
	PurchaseType    types.PurchaseType      `json:"purchase_type"`
	Currency        string                  `json:"currency"`
	Breakdown       billing.AmountBreakdown `json:"breakdown"`
	CouponID        string                  `json:"coupon_id,omitempty"`
	ProductID       string                  `json:"product_id,omitempty"`
	LineItemPriceID string                  `json:"line_item_price_id,omitempty"`
	FeePriceID      string                  `json:"fee_price_id,omitempty"`
	Metadata        clinic.Metadata         `json:"metadata"`
	StripeMetadata  types.Metadata          `json:"stripe_metadata"`
}
