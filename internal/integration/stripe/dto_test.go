package stripe

import (
	"testing"

	"github.com/flexprice/clinicbilling/internal/domain/price"
	"github.com/flexprice/clinicbilling/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

func TestToCatalogPrice(t *testing.T) {
	tests := []struct {
		name     string
		input    *stripe.Price
		expected *price.CatalogPrice
	}{
		{
			name:     "nil price",
			input:    nil,
			expected: nil,
		},
		{
			name: "one-time price",
			input: &stripe.Price{
				ID:         "price_1",
				Active:     true,
				Currency:   stripe.Currency("USD"),
				UnitAmount: 150,
				Product:    &stripe.Product{ID: "prod_fee"},
			},
			expected: &price.CatalogPrice{
				ID:         "price_1",
				ProductID:  "prod_fee",
				Currency:   "usd",
				UnitAmount: 150,
				Active:     true,
			},
		},
		{
			name: "quarterly price",
			input: &stripe.Price{
				ID:         "price_2",
				Active:     true,
				Currency:   stripe.CurrencyUSD,
				UnitAmount: 4500,
				Recurring: &stripe.PriceRecurring{
					Interval:      stripe.PriceRecurringIntervalMonth,
					IntervalCount: 3,
				},
			},
			expected: &price.CatalogPrice{
				ID:         "price_2",
				Currency:   "usd",
				UnitAmount: 4500,
				Active:     true,
				Recurring:  &price.Recurrence{Interval: types.RecurringIntervalMonth, IntervalCount: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toCatalogPrice(tt.input))
		})
	}
}

func TestToCoupon(t *testing.T) {
	t.Run("percent coupon", func(t *testing.T) {
		c := toCoupon(&stripe.Coupon{ID: "co_pct", PercentOff: 12.5})
		require.NotNil(t, c)
		require.NotNil(t, c.PercentOff)
		assert.Equal(t, "12.5", c.PercentOff.String())
		assert.Nil(t, c.AmountOff)
		assert.Nil(t, c.Currency)
	})

	t.Run("flat coupon", func(t *testing.T) {
		c := toCoupon(&stripe.Coupon{ID: "co_flat", AmountOff: 1000, Currency: stripe.Currency("USD")})
		require.NotNil(t, c)
		require.NotNil(t, c.AmountOff)
		assert.Equal(t, int64(1000), *c.AmountOff)
		require.NotNil(t, c.Currency)
		assert.Equal(t, "usd", *c.Currency)
		assert.Nil(t, c.PercentOff)
		assert.True(t, c.IsFlat())
	})

	t.Run("nil coupon", func(t *testing.T) {
		assert.Nil(t, toCoupon(nil))
	})
}

func TestRecurringIntervalMapping(t *testing.T) {
	for _, interval := range []types.RecurringInterval{
		types.RecurringIntervalDay,
		types.RecurringIntervalWeek,
		types.RecurringIntervalMonth,
		types.RecurringIntervalYear,
	} {
		assert.Equal(t, interval, fromStripeInterval(toStripeInterval(interval)))
	}
	assert.Equal(t, stripe.PriceRecurringIntervalYear, toStripeInterval(types.RecurringIntervalYear))
}
