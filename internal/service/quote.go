package service

import (
	"context"

	"github.com/flexprice/clinicbilling/internal/api/dto"
	"github.com/flexprice/clinicbilling/internal/domain/billing"
	"github.com/flexprice/clinicbilling/internal/domain/coupon"
	"github.com/flexprice/clinicbilling/internal/domain/price"
	ierr "github.com/flexprice/clinicbilling/internal/errors"
	"github.com/flexprice/clinicbilling/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// QuoteService prices a purchase end to end without charging anything
type QuoteService interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error)
	ComputeBreakdown(req dto.ComputeBreakdownRequest) (*billing.AmountBreakdown, error)
}

type quoteService struct {
	ServiceParams
	coupons   CouponService
	feePrices FeePriceService
	plans     PlanService
	clinics   ClinicService
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	params ServiceParams,
	coupons CouponService,
	feePrices FeePriceService,
	plans PlanService,
	clinics ClinicService,
) QuoteService {
	return &quoteService{
		ServiceParams: params,
		coupons:       coupons,
		feePrices:     feePrices,
		plans:         plans,
		clinics:       clinics,
	}
}

func (s *quoteService) ComputeBreakdown(req dto.ComputeBreakdownRequest) (*billing.AmountBreakdown, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	breakdown := billing.ComputeBreakdown(req.ToParams(s.Config.Billing.FeePercent()))
	return &breakdown, nil
}

func (s *quoteService) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Clinic.DesiredStartDate != "" && !types.IsWithinNextTwoMonthsAt(req.Clinic.DesiredStartDate, s.now()) {
		return nil, ierr.NewError("desired start date outside the allowed window").
			WithHint("Desired start date must be within the next two months").
			WithReportableDetails(map[string]any{"desired_start_date": req.Clinic.DesiredStartDate}).
			Mark(ierr.ErrValidation)
	}

	cfg := s.Config.Billing
	currency := types.NormalizeCurrency(cfg.Currency)

	c, err := s.coupons.ResolveCoupon(ctx, req.CouponCode)
	if err != nil {
		return nil, err
	}
	if c != nil && !c.AppliesToCurrency(currency) {
		s.Logger.Warnw("ignoring flat coupon in another currency",
			"coupon_id", c.ID,
			"coupon_currency", lo.FromPtr(c.Currency),
			"currency", currency,
		)
		c = nil
	}

	resp := &dto.QuoteResponse{
		PurchaseType: req.PurchaseType,
		Currency:     currency,
	}

	var (
		base      int64
		recurring *price.Recurrence
	)
	switch req.PurchaseType {
	case types.PurchaseTypeOneTime:
		base = cfg.BaseOneTimeAmount
		resp.ProductID = cfg.OneTimeProductID
	case types.PurchaseTypeSubscription:
		priceID, err := s.plans.ResolveSubscriptionPriceID(req.PlanDuration, req.PlanCadence)
		if err != nil {
			return nil, err
		}
		rec, err := s.plans.ResolveRecurrence(req.PlanCadence)
		if err != nil {
			return nil, err
		}
		subPrice, err := s.PriceCatalog.GetPrice(ctx, priceID)
		if err != nil {
			return nil, err
		}
		if !types.IsSameCurrency(subPrice.Currency, currency) {
			s.Logger.Warnw("subscription price currency differs from billing currency",
				"price_id", priceID,
				"price_currency", subPrice.Currency,
				"currency", currency,
			)
		}
		base = subPrice.UnitAmount
		recurring = &rec
		resp.LineItemPriceID = priceID
		resp.ProductID = subPrice.ProductID
	}

	resp.Breakdown = billing.ComputeBreakdown(breakdownParams(base, cfg.ShippingAmount, c, req.FundingSource, cfg.FeePercent()))
	if c != nil {
		resp.CouponID = c.ID
	}

	if resp.Breakdown.CreditCardFeeAmount > 0 {
		feePriceID, err := s.feePrices.GetOrCreateFeePrice(ctx, resp.Breakdown.CreditCardFeeAmount, recurring)
		if err != nil {
			return nil, err
		}
		resp.FeePriceID = feePriceID
	}

	resp.Metadata = s.clinics.BuildClinicMetadata(req.Clinic)
	resp.StripeMetadata = resp.Metadata.ToStripeMetadata()

	s.Logger.Infow("quoted purchase",
		"purchase_type", req.PurchaseType,
		"total_amount", resp.Breakdown.TotalAmount,
		"coupon_id", resp.CouponID,
		"fee_price_id", resp.FeePriceID,
	)

	return resp, nil
}

func breakdownParams(base, shipping int64, c *coupon.Coupon, source types.FundingSource, feePercent decimal.Decimal) billing.BreakdownParams {
	p := billing.BreakdownParams{
		Base:       base,
		Shipping:   shipping,
		AppliesFee: source.AppliesCreditCardFee(),
		FeePercent: feePercent,
	}
	if c != nil {
		p.CouponAmountOff = c.AmountOff
		p.CouponPercent = c.PercentOff
	}
	return p
}
