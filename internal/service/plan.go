package service

import (
	"github.com/flexprice/clinicbilling/internal/domain/price"
	ierr "github.com/flexprice/clinicbilling/internal/errors"
	"github.com/flexprice/clinicbilling/internal/types"
)

// PlanService maps subscription plans to their configured catalog prices
type PlanService interface {
	ResolveSubscriptionPriceID(duration types.PlanDuration, cadence types.PlanCadence) (string, error)
	ResolveRecurrence(cadence types.PlanCadence) (price.Recurrence, error)
}

type planService struct {
	ServiceParams
}

// NewPlanService creates a new plan service
func NewPlanService(params ServiceParams) PlanService {
	return &planService{
		ServiceParams: params,
	}
}

// ResolveSubscriptionPriceID returns the catalog price id for a plan.
// A combination that is unknown or absent from configuration is unsupported;
// one that is present with an empty id is a configuration error.
func (s *planService) ResolveSubscriptionPriceID(duration types.PlanDuration, cadence types.PlanCadence) (string, error) {
	details := map[string]any{
		"plan_duration": duration,
		"plan_cadence":  cadence,
	}

	if !duration.IsKnown() || !cadence.IsKnown() {
		return "", ierr.NewErrorf("unsupported plan %s/%s", duration, cadence).
			WithHint("The selected plan duration and billing cadence are not offered").
			WithReportableDetails(details).
			Mark(ierr.ErrUnsupportedPlan)
	}

	cadences, ok := s.Config.Billing.SubscriptionPrices[string(duration)]
	if !ok {
		return "", ierr.NewErrorf("no prices configured for plan duration %s", duration).
			WithHint("The selected plan duration is not offered").
			WithReportableDetails(details).
			Mark(ierr.ErrUnsupportedPlan)
	}

	priceID, ok := cadences[string(cadence)]
	if !ok {
		return "", ierr.NewErrorf("billing cadence %s not offered for %s", cadence, duration).
			WithHint("The selected billing cadence is not offered for this plan duration").
			WithReportableDetails(details).
			Mark(ierr.ErrUnsupportedPlan)
	}

	if priceID == "" {
		s.Logger.Errorw("subscription price id is not configured",
			"plan_duration", duration,
			"plan_cadence", cadence,
		)
		return "", ierr.NewErrorf("missing price id for plan %s/%s", duration, cadence).
			WithHint("This plan is temporarily unavailable").
			WithReportableDetails(details).
			Mark(ierr.ErrMissingPriceConfiguration)
	}

	return priceID, nil
}

// ResolveRecurrence returns the billing shape of a cadence
func (s *planService) ResolveRecurrence(cadence types.PlanCadence) (price.Recurrence, error) {
	rec, err := price.NewRecurrenceForCadence(cadence)
	if err != nil {
		return price.Recurrence{}, ierr.WithError(err).
			WithHint("The selected billing cadence is not offered").
			WithReportableDetails(map[string]any{"plan_cadence": cadence}).
			Mark(ierr.ErrUnsupportedPlan)
	}
	return rec, nil
}
