package types

import (
	"fmt"

	ierr "github.com/flexprice/clinicbilling/internal/errors"
)

// PurchaseType distinguishes a one-time kit purchase from a subscription
type PurchaseType string

const (
	PurchaseTypeOneTime      PurchaseType = "one_time"
	PurchaseTypeSubscription PurchaseType = "subscription"
)

func (p PurchaseType) Validate() error {
	switch p {
	case PurchaseTypeOneTime, PurchaseTypeSubscription:
		return nil
	}
	return ierr.NewErrorf("invalid purchase type %q", p).
		WithHintf("Purchase type must be one of %s or %s", PurchaseTypeOneTime, PurchaseTypeSubscription).
		Mark(ierr.ErrValidation)
}

// FundingSource is the settlement mechanism behind a payment instrument
type FundingSource string

const (
	FundingSourceCredit  FundingSource = "credit"
	FundingSourceDebit   FundingSource = "debit"
	FundingSourcePrepaid FundingSource = "prepaid"
	FundingSourceUnknown FundingSource = "unknown"
)

// AppliesCreditCardFee is true only for credit instruments
func (f FundingSource) AppliesCreditCardFee() bool {
	return f == FundingSourceCredit
}

// PlanDuration is the commitment length of a subscription plan
type PlanDuration string

const (
	PlanDurationMonthToMonth PlanDuration = "monthly_commitment"
	PlanDurationSixMonths    PlanDuration = "6_months"
	PlanDurationTwelveMonths PlanDuration = "12_months"
	PlanDurationTwoYears     PlanDuration = "24_months"
)

func (d PlanDuration) IsKnown() bool {
	switch d {
	case PlanDurationMonthToMonth, PlanDurationSixMonths, PlanDurationTwelveMonths, PlanDurationTwoYears:
		return true
	}
	return false
}

// PlanCadence is how often a subscription plan is billed
type PlanCadence string

const (
	PlanCadenceMonthly   PlanCadence = "monthly"
	PlanCadenceQuarterly PlanCadence = "quarterly"
	PlanCadenceAnnual    PlanCadence = "annual"
)

func (c PlanCadence) IsKnown() bool {
	switch c {
	case PlanCadenceMonthly, PlanCadenceQuarterly, PlanCadenceAnnual:
		return true
	}
	return false
}

// Interval returns the recurring interval and count a cadence bills on
func (c PlanCadence) Interval() (RecurringInterval, int64, error) {
	switch c {
	case PlanCadenceMonthly:
		return RecurringIntervalMonth, 1, nil
	case PlanCadenceQuarterly:
		return RecurringIntervalMonth, 3, nil
	case PlanCadenceAnnual:
		return RecurringIntervalYear, 1, nil
	}
	return "", 0, fmt.Errorf("unknown plan cadence %q", c)
}

// RecurringInterval mirrors the catalog's recurring interval values
type RecurringInterval string

const (
	RecurringIntervalDay   RecurringInterval = "day"
	RecurringIntervalWeek  RecurringInterval = "week"
	RecurringIntervalMonth RecurringInterval = "month"
	RecurringIntervalYear  RecurringInterval = "year"
)

func (i RecurringInterval) Validate() error {
	switch i {
	case RecurringIntervalDay, RecurringIntervalWeek, RecurringIntervalMonth, RecurringIntervalYear:
		return nil
	}
	return ierr.NewErrorf("invalid recurring interval %q", i).
		WithHint("Recurring interval must be one of day, week, month or year").
		Mark(ierr.ErrValidation)
}
