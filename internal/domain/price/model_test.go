package price

import (
	"testing"

	"github.com/flexprice/clinicbilling/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeePriceKeyMatches(t *testing.T) {
	monthly := &Recurrence{Interval: types.RecurringIntervalMonth, IntervalCount: 1}
	quarterly := &Recurrence{Interval: types.RecurringIntervalMonth, IntervalCount: 3}

	oneTimeKey := FeePriceKey{ProductID: "prod_fee", Currency: "usd", UnitAmount: 150}
	monthlyKey := FeePriceKey{ProductID: "prod_fee", Currency: "usd", UnitAmount: 150, Recurring: monthly}

	tests := []struct {
		name  string
		key   FeePriceKey
		price *CatalogPrice
		want  bool
	}{
		{name: "one-time exact", key: oneTimeKey, price: &CatalogPrice{Currency: "usd", UnitAmount: 150}, want: true},
		{name: "currency is case-insensitive", key: oneTimeKey, price: &CatalogPrice{Currency: "USD", UnitAmount: 150}, want: true},
		{name: "one cent off", key: oneTimeKey, price: &CatalogPrice{Currency: "usd", UnitAmount: 151}, want: false},
		{name: "other currency", key: oneTimeKey, price: &CatalogPrice{Currency: "cad", UnitAmount: 150}, want: false},
		{name: "one-time key rejects recurring price", key: oneTimeKey, price: &CatalogPrice{Currency: "usd", UnitAmount: 150, Recurring: monthly}, want: false},
		{name: "recurring exact", key: monthlyKey, price: &CatalogPrice{Currency: "usd", UnitAmount: 150, Recurring: &Recurrence{Interval: types.RecurringIntervalMonth, IntervalCount: 1}}, want: true},
		{name: "recurring key rejects one-time price", key: monthlyKey, price: &CatalogPrice{Currency: "usd", UnitAmount: 150}, want: false},
		{name: "different interval count", key: monthlyKey, price: &CatalogPrice{Currency: "usd", UnitAmount: 150, Recurring: quarterly}, want: false},
		{name: "different interval", key: monthlyKey, price: &CatalogPrice{Currency: "usd", UnitAmount: 150, Recurring: &Recurrence{Interval: types.RecurringIntervalYear, IntervalCount: 1}}, want: false},
		{name: "nil price", key: monthlyKey, price: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.Matches(tt.price))
		})
	}
}

func TestCatalogPriceIsOneTime(t *testing.T) {
	p := &CatalogPrice{Currency: "usd", UnitAmount: 150}
	assert.True(t, p.IsOneTime())
	assert.True(t, FeePriceKey{Currency: "usd", UnitAmount: 150}.Matches(p))

	p.Recurring = &Recurrence{Interval: types.RecurringIntervalWeek, IntervalCount: 2}
	assert.False(t, p.IsOneTime())
	assert.False(t, FeePriceKey{Currency: "usd", UnitAmount: 150}.Matches(p))
}

func TestFeePriceKeyString(t *testing.T) {
	key := FeePriceKey{ProductID: "prod_fee", Currency: "USD", UnitAmount: 150}
	assert.Equal(t, "prod_fee:usd:150:one_time", key.String())
	assert.Equal(t, PriceTypeOneTime, key.PriceType())

	key.Recurring = &Recurrence{Interval: types.RecurringIntervalMonth, IntervalCount: 3}
	assert.Equal(t, "prod_fee:usd:150:3/month", key.String())
	assert.Equal(t, PriceTypeRecurring, key.PriceType())
}

func TestNewRecurrenceForCadence(t *testing.T) {
	rec, err := NewRecurrenceForCadence(types.PlanCadenceAnnual)
	require.NoError(t, err)
	assert.Equal(t, Recurrence{Interval: types.RecurringIntervalYear, IntervalCount: 1}, rec)

	_, err = NewRecurrenceForCadence("biweekly")
	assert.Error(t, err)
}
