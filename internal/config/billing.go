package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultFeePricePageSize is the number of fee prices read from the catalog
// in the single page scanned by the fee price registry.
const DefaultFeePricePageSize = 100

// BillingConfig is the static billing configuration, loaded once at startup
// and never mutated afterwards.
type BillingConfig struct {
	Currency             string `mapstructure:"currency" validate:"required,len=3"`
	ShippingAmount       int64  `mapstructure:"shipping_amount" validate:"gte=0"`
	BaseOneTimeAmount    int64  `mapstructure:"base_one_time_amount" validate:"gte=0"`
	CreditCardFeePercent string `mapstructure:"credit_card_fee_percent"`
	FeeProductID         string `mapstructure:"fee_product_id" validate:"required"`
	OneTimeProductID     string `mapstructure:"one_time_product_id" validate:"required"`

	// CouponCodes maps a human-entered promo code to the catalog coupon id
	CouponCodes map[string]string `mapstructure:"coupon_codes"`

	// SubscriptionPrices maps plan duration -> cadence -> catalog price id
	SubscriptionPrices map[string]map[string]string `mapstructure:"subscription_prices"`

	FeePricePageSize int64 `mapstructure:"fee_price_page_size" validate:"gte=1,lte=100"`

	// FeePriceSingleFlight collapses concurrent get-or-create calls for the
	// same fee key inside this process. The shared call ignores the
	// cancellation of the caller that started it. Off by default.
	FeePriceSingleFlight bool `mapstructure:"fee_price_single_flight"`

	// FeePriceIdempotencyKeys sends a deterministic idempotency key with
	// every fee price create. Off by default.
	FeePriceIdempotencyKeys bool `mapstructure:"fee_price_idempotency_keys"`
}

// Validate checks the parts of the billing config struct tags cannot express
func (b BillingConfig) Validate() error {
	pct, err := decimal.NewFromString(strings.TrimSpace(b.CreditCardFeePercent))
	if err != nil {
		return fmt.Errorf("billing.credit_card_fee_percent %q is not a decimal: %w", b.CreditCardFeePercent, err)
	}
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("billing.credit_card_fee_percent must be within [0, 100], got %s", pct)
	}
	return nil
}

// FeePercent returns the credit card fee percent. Validate guarantees it parses.
func (b BillingConfig) FeePercent() decimal.Decimal {
	pct, err := decimal.NewFromString(strings.TrimSpace(b.CreditCardFeePercent))
	if err != nil {
		return decimal.Zero
	}
	return pct
}

// normalize lower-cases promo codes and the currency so lookups are case-insensitive
func (b *BillingConfig) normalize() {
	b.Currency = strings.ToLower(strings.TrimSpace(b.Currency))

	codes := make(map[string]string, len(b.CouponCodes))
	for code, id := range b.CouponCodes {
		codes[strings.ToLower(strings.TrimSpace(code))] = strings.TrimSpace(id)
	}
	b.CouponCodes = codes

	prices := make(map[string]map[string]string, len(b.SubscriptionPrices))
	for duration, byCadence := range b.SubscriptionPrices {
		inner := make(map[string]string, len(byCadence))
		for cadence, id := range byCadence {
			inner[strings.ToLower(strings.TrimSpace(cadence))] = strings.TrimSpace(id)
		}
		prices[strings.ToLower(strings.TrimSpace(duration))] = inner
	}
	b.SubscriptionPrices = prices
}
