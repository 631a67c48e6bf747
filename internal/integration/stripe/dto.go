package stripe

import (
	"github.com/flexprice/clinicbilling/internal/domain/coupon"
	"github.com/flexprice/clinicbilling/internal/domain/price"
	"github.com/flexprice/clinicbilling/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
)

// maxListLimit is the largest page Stripe returns for a list call
const maxListLimit int64 = 100

// toCatalogPrice maps a Stripe price onto the catalog model
func toCatalogPrice(p *stripe.Price) *price.CatalogPrice {
	if p == nil {
		return nil
	}

	out := &price.CatalogPrice{
		ID:         p.ID,
		Currency:   types.NormalizeCurrency(string(p.Currency)),
		UnitAmount: p.UnitAmount,
		Active:     p.Active,
	}
	if p.Product != nil {
		out.ProductID = p.Product.ID
	}
	if p.Recurring != nil {
		out.Recurring = &price.Recurrence{
			Interval:      fromStripeInterval(p.Recurring.Interval),
			IntervalCount: p.Recurring.IntervalCount,
		}
	}
	return out
}

// toCoupon maps a Stripe coupon onto the coupon model. Stripe reports an
// unset discount as zero, so zero values are left nil.
func toCoupon(c *stripe.Coupon) *coupon.Coupon {
	if c == nil {
		return nil
	}

	out := &coupon.Coupon{ID: c.ID}
	if c.AmountOff > 0 {
		out.AmountOff = lo.ToPtr(c.AmountOff)
		if c.Currency != "" {
			out.Currency = lo.ToPtr(types.NormalizeCurrency(string(c.Currency)))
		}
	}
	if c.PercentOff > 0 {
		out.PercentOff = lo.ToPtr(decimal.NewFromFloat(c.PercentOff))
	}
	return out
}

func toStripeInterval(interval types.RecurringInterval) stripe.PriceRecurringInterval {
	switch interval {
	case types.RecurringIntervalDay:
		return stripe.PriceRecurringIntervalDay
	case types.RecurringIntervalWeek:
		return stripe.PriceRecurringIntervalWeek
	case types.RecurringIntervalYear:
		return stripe.PriceRecurringIntervalYear
	default:
		return stripe.PriceRecurringIntervalMonth
	}
}

func fromStripeInterval(interval stripe.PriceRecurringInterval) types.RecurringInterval {
	switch interval {
	case stripe.PriceRecurringIntervalDay:
		return types.RecurringIntervalDay
	case stripe.PriceRecurringIntervalWeek:
		return types.RecurringIntervalWeek
	case stripe.PriceRecurringIntervalYear:
		return types.RecurringIntervalYear
	default:
		return types.RecurringIntervalMonth
	}
}
