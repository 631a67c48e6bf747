package dto

import (
	"github.com/flexprice/clinicbilling/internal/domain/price"
	ierr "github.com/flexprice/clinicbilling/internal/errors"
	"github.com/flexprice/clinicbilling/internal/types"
	"github.com/flexprice/clinicbilling/internal/validator"
)

// GetOrCreateFeePriceRequest asks for the catalog price of a fee amount.
// A nil Recurring requests a one-time price.
type GetOrCreateFeePriceRequest struct {
	Amount    int64              `json:"amount"`
	Recurring *RecurrenceRequest `json:"recurring,omitempty"`
}

// RecurrenceRequest is the billing shape of a recurring fee price
type RecurrenceRequest struct {
	Interval      types.RecurringInterval `json:"interval" validate:"required,recurring_interval"`
	IntervalCount int64                   `json:"interval_count" validate:"gte=1"`
}

func (r *GetOrCreateFeePriceRequest) Validate() error {
	if r.Amount <= 0 {
		return ierr.NewErrorf("fee amount must be positive, got %d", r.Amount).
			WithHint("Fee amount must be greater than zero").
			WithReportableDetails(map[string]any{"amount": r.Amount}).
			Mark(ierr.ErrInvalidAmount)
	}
	return validator.ValidateRequest(r)
}

// ToRecurrence returns the recurrence, nil for one-time
func (r *GetOrCreateFeePriceRequest) ToRecurrence() *price.Recurrence {
	if r.Recurring == nil {
		return nil
	}
	return &price.Recurrence{
		Interval:      r.Recurring.Interval,
		IntervalCount: r.Recurring.IntervalCount,
	}
}

// FeePriceResponse carries the catalog price id of a fee
type FeePriceResponse struct {
	PriceID    string            `json:"price_id"`
	ProductID  string            `json:"product_id"`
	Currency   string            `json:"currency"`
	UnitAmount int64             `json:"unit_amount"`
	Recurring  *price.Recurrence `json:"recurring,omitempty"`
}
