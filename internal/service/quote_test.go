package service

import (
	"testing"

	"github.com/flexprice/clinicbilling/internal/api/dto"
	"github.com/flexprice/clinicbilling/internal/domain/billing"
	"github.com/flexprice/clinicbilling/internal/domain/clinic"
	"github.com/flexprice/clinicbilling/internal/domain/coupon"
	"github.com/flexprice/clinicbilling/internal/domain/price"
	ierr "github.com/flexprice/clinicbilling/internal/errors"
	"github.com/flexprice/clinicbilling/internal/testutil"
	"github.com/flexprice/clinicbilling/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type QuoteServiceSuite struct {
	testutil.BaseServiceTestSuite
	service QuoteService
}

func TestQuoteService(t *testing.T) {
	suite.Run(t, new(QuoteServiceSuite))
}

func (s *QuoteServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewQuoteService(
		params,
		NewCouponService(params),
		NewFeePriceService(params),
		NewPlanService(params),
		NewClinicService(params),
	)
	s.seed()
}

func (s *QuoteServiceSuite) seed() {
	ctx := s.GetContext()
	coupons := s.GetCatalogs().CouponCatalog
	s.Require().NoError(coupons.AddCoupon(ctx, &coupon.Coupon{ID: "co_welcome", PercentOff: lo.ToPtr(decimal.NewFromInt(10))}))
	s.Require().NoError(coupons.AddCoupon(ctx, &coupon.Coupon{ID: "co_flat20", AmountOff: lo.ToPtr(int64(2000)), Currency: lo.ToPtr("usd")}))
	s.Require().NoError(coupons.AddCoupon(ctx, &coupon.Coupon{ID: "co_eur_flat", AmountOff: lo.ToPtr(int64(500)), Currency: lo.ToPtr("eur")}))

	prices := s.GetCatalogs().PriceCatalog
	_, err := prices.AddPrice(ctx, &price.CatalogPrice{
		ID:         "price_sub_12_monthly",
		ProductID:  "prod_subscription",
		Currency:   "usd",
		UnitAmount: 10000,
		Recurring:  &price.Recurrence{Interval: types.RecurringIntervalMonth, IntervalCount: 1},
		Active:     true,
	})
	s.Require().NoError(err)
	_, err = prices.AddPrice(ctx, &price.CatalogPrice{
		ID:         "price_sub_12_annual",
		ProductID:  "prod_subscription",
		Currency:   "usd",
		UnitAmount: 100000,
		Recurring:  &price.Recurrence{Interval: types.RecurringIntervalYear, IntervalCount: 1},
		Active:     true,
	})
	s.Require().NoError(err)
}

func clinicRequest() dto.BuildClinicMetadataRequest {
	return dto.BuildClinicMetadataRequest{
		ClinicName: "Happy Tails",
		Address:    clinic.Address{Country: "US", State: "CA", City: "San Diego"},
	}
}

func (s *QuoteServiceSuite) TestOneTimeQuotes() {
	testCases := []struct {
		name          string
		fundingSource types.FundingSource
		couponCode    string
		expected      billing.AmountBreakdown
		couponID      string
		wantFeePrice  bool
	}{
		{
			name:          "credit_no_coupon",
			fundingSource: types.FundingSourceCredit,
			expected:      billing.AmountBreakdown{BaseAmount: 5000, SubtotalAfterDiscount: 5000, ShippingAmount: 500, CreditCardFeeAmount: 150, TotalAmount: 5650},
			wantFeePrice:  true,
		},
		{
			name:          "credit_percent_coupon",
			fundingSource: types.FundingSourceCredit,
			couponCode:    "Welcome10",
			expected:      billing.AmountBreakdown{BaseAmount: 5000, DiscountAmount: 500, SubtotalAfterDiscount: 4500, ShippingAmount: 500, CreditCardFeeAmount: 135, TotalAmount: 5135},
			couponID:      "co_welcome",
			wantFeePrice:  true,
		},
		{
			name:          "debit_has_no_fee",
			fundingSource: types.FundingSourceDebit,
			expected:      billing.AmountBreakdown{BaseAmount: 5000, SubtotalAfterDiscount: 5000, ShippingAmount: 500, TotalAmount: 5500},
		},
		{
			name:          "unknown_coupon_is_ignored",
			fundingSource: types.FundingSourcePrepaid,
			couponCode:    "notacode",
			expected:      billing.AmountBreakdown{BaseAmount: 5000, SubtotalAfterDiscount: 5000, ShippingAmount: 500, TotalAmount: 5500},
		},
		{
			name:          "flat_coupon_in_other_currency_is_ignored",
			fundingSource: types.FundingSourceDebit,
			couponCode:    "eurflat",
			expected:      billing.AmountBreakdown{BaseAmount: 5000, SubtotalAfterDiscount: 5000, ShippingAmount: 500, TotalAmount: 5500},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.Quote(s.GetContext(), dto.QuoteRequest{
				PurchaseType:  types.PurchaseTypeOneTime,
				FundingSource: tc.fundingSource,
				CouponCode:    tc.couponCode,
				Clinic:        clinicRequest(),
			})
			s.Require().NoError(err)
			s.Equal(tc.expected, resp.Breakdown)
			s.Equal(tc.couponID, resp.CouponID)
			s.Equal("prod_one_time", resp.ProductID)
			s.Empty(resp.LineItemPriceID)
			s.Equal("usd", resp.Currency)
			s.Equal(tc.wantFeePrice, resp.FeePriceID != "")
			s.Equal("America/Los_Angeles", resp.Metadata.ClinicTimezone)
			s.Equal("2024-01-15T12:00:00.000Z", resp.StripeMetadata[clinic.KeyTermsAcceptedAt])
		})
	}
}

func (s *QuoteServiceSuite) TestFeePriceReusedAcrossQuotes() {
	req := dto.QuoteRequest{
		PurchaseType:  types.PurchaseTypeOneTime,
		FundingSource: types.FundingSourceCredit,
		Clinic:        clinicRequest(),
	}

	first, err := s.service.Quote(s.GetContext(), req)
	s.Require().NoError(err)
	second, err := s.service.Quote(s.GetContext(), req)
	s.Require().NoError(err)

	s.Equal(first.FeePriceID, second.FeePriceID)
	s.Equal(1, s.GetCatalogs().PriceCatalog.CreateCalls())
}

func (s *QuoteServiceSuite) TestSubscriptionQuote() {
	resp, err := s.service.Quote(s.GetContext(), dto.QuoteRequest{
		PurchaseType:  types.PurchaseTypeSubscription,
		FundingSource: types.FundingSourceCredit,
		CouponCode:    "FLAT20",
		PlanDuration:  types.PlanDurationTwelveMonths,
		PlanCadence:   types.PlanCadenceMonthly,
		Clinic:        clinicRequest(),
	})
	s.Require().NoError(err)

	s.Equal(billing.AmountBreakdown{
		BaseAmount:            10000,
		DiscountAmount:        2000,
		SubtotalAfterDiscount: 8000,
		ShippingAmount:        500,
		CreditCardFeeAmount:   240,
		TotalAmount:           8740,
	}, resp.Breakdown)
	s.Equal("co_flat20", resp.CouponID)
	s.Equal("price_sub_12_monthly", resp.LineItemPriceID)
	s.Equal("prod_subscription", resp.ProductID)
	s.NotEmpty(resp.FeePriceID)

	created := s.GetCatalogs().PriceCatalog.LastCreateParams()
	s.Require().NotNil(created)
	s.Equal(int64(240), created.UnitAmount)
	s.Equal(&price.Recurrence{Interval: types.RecurringIntervalMonth, IntervalCount: 1}, created.Recurring)
}

func (s *QuoteServiceSuite) TestQuoteErrors() {
	testCases := []struct {
		name  string
		req   dto.QuoteRequest
		check func(error) bool
	}{
		{
			name:  "invalid_purchase_type",
			req:   dto.QuoteRequest{PurchaseType: "lease", Clinic: clinicRequest()},
			check: ierr.IsValidation,
		},
		{
			name:  "missing_clinic_name",
			req:   dto.QuoteRequest{PurchaseType: types.PurchaseTypeOneTime},
			check: ierr.IsValidation,
		},
		{
			name:  "subscription_without_plan",
			req:   dto.QuoteRequest{PurchaseType: types.PurchaseTypeSubscription, Clinic: clinicRequest()},
			check: ierr.IsValidation,
		},
		{
			name: "unsupported_plan",
			req: dto.QuoteRequest{
				PurchaseType: types.PurchaseTypeSubscription,
				PlanDuration: types.PlanDurationSixMonths,
				PlanCadence:  types.PlanCadenceMonthly,
				Clinic:       clinicRequest(),
			},
			check: ierr.IsUnsupportedPlan,
		},
		{
			name: "missing_price_configuration",
			req: dto.QuoteRequest{
				PurchaseType: types.PurchaseTypeSubscription,
				PlanDuration: types.PlanDurationTwoYears,
				PlanCadence:  types.PlanCadenceQuarterly,
				Clinic:       clinicRequest(),
			},
			check: ierr.IsMissingPriceConfiguration,
		},
		{
			name: "configured_price_missing_from_catalog",
			req: dto.QuoteRequest{
				PurchaseType: types.PurchaseTypeSubscription,
				PlanDuration: types.PlanDurationTwoYears,
				PlanCadence:  types.PlanCadenceMonthly,
				Clinic:       clinicRequest(),
			},
			check: ierr.IsNotFound,
		},
		{
			name: "desired_start_date_too_far",
			req: dto.QuoteRequest{
				PurchaseType: types.PurchaseTypeOneTime,
				Clinic: dto.BuildClinicMetadataRequest{
					ClinicName:       "Happy Tails",
					DesiredStartDate: "2024-06-01",
				},
			},
			check: ierr.IsValidation,
		},
		{
			name: "desired_start_date_unparsable",
			req: dto.QuoteRequest{
				PurchaseType: types.PurchaseTypeOneTime,
				Clinic: dto.BuildClinicMetadataRequest{
					ClinicName:       "Happy Tails",
					DesiredStartDate: "next tuesday",
				},
			},
			check: ierr.IsValidation,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.Quote(s.GetContext(), tc.req)
			s.Nil(resp)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error: %v", err)
		})
	}
}

func (s *QuoteServiceSuite) TestDesiredStartDateInWindow() {
	resp, err := s.service.Quote(s.GetContext(), dto.QuoteRequest{
		PurchaseType: types.PurchaseTypeOneTime,
		Clinic: dto.BuildClinicMetadataRequest{
			ClinicName:       "Happy Tails",
			DesiredStartDate: "2024-02-20",
		},
	})
	s.Require().NoError(err)
	s.Equal("2024-02-20", resp.Metadata.DesiredStartDate)
	s.Equal("UTC", resp.Metadata.ClinicTimezone)
}

func (s *QuoteServiceSuite) TestComputeBreakdown() {
	resp, err := s.service.ComputeBreakdown(dto.ComputeBreakdownRequest{
		BaseAmount:     5000,
		ShippingAmount: 500,
		AppliesFee:     true,
	})
	s.Require().NoError(err)
	s.Equal(int64(150), resp.CreditCardFeeAmount)
	s.Equal(int64(5650), resp.TotalAmount)

	resp, err = s.service.ComputeBreakdown(dto.ComputeBreakdownRequest{
		BaseAmount:       1000,
		CouponPercentOff: lo.ToPtr(decimal.RequireFromString("12.5")),
		AppliesFee:       true,
		FeePercent:       lo.ToPtr(decimal.RequireFromString("2.9")),
	})
	s.Require().NoError(err)
	s.Equal(int64(125), resp.DiscountAmount)
	s.Equal(int64(25), resp.CreditCardFeeAmount)

	_, err = s.service.ComputeBreakdown(dto.ComputeBreakdownRequest{
		BaseAmount:       1000,
		CouponPercentOff: lo.ToPtr(decimal.NewFromInt(101)),
	})
	s.True(ierr.IsValidation(err))

	_, err = s.service.ComputeBreakdown(dto.ComputeBreakdownRequest{BaseAmount: -1})
	s.True(ierr.IsValidation(err))
}
