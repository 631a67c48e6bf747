package stripe

import (
	"context"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/flexprice/clinicbilling/internal/config"
	"github.com/flexprice/clinicbilling/internal/domain/price"
	ierr "github.com/flexprice/clinicbilling/internal/errors"
	"github.com/flexprice/clinicbilling/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoPricesMorePending = `{
	"object": "list",
	"url": "/v1/prices",
	"has_more": true,
	"data": [
		{"id": "price_1", "object": "price", "active": true, "currency": "usd", "unit_amount": 240, "product": "prod_fee", "type": "one_time"},
		{"id": "price_2", "object": "price", "active": true, "currency": "usd", "unit_amount": 360, "product": "prod_fee", "type": "one_time"}
	]
}`

const notFoundBody = `{"error": {"type": "invalid_request_error", "code": "resource_missing", "message": "No such price"}}`

func TestListActivePricesReadsOnePage(t *testing.T) {
	var calls atomic.Int32
	var query url.Values

	cfg := config.GetDefaultConfig()
	client := newTestClient(t, cfg, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/prices", r.URL.Path)
		query = r.URL.Query()
		writeStripeJSON(w, http.StatusOK, twoPricesMorePending)
	})

	prices, err := NewPriceCatalog(client).ListActivePrices(context.Background(), price.ListFilter{
		ProductID: "prod_fee",
		Currency:  "USD",
		Type:      price.PriceTypeOneTime,
		Limit:     2,
	})
	require.NoError(t, err)
	require.Len(t, prices, 2)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "true", query.Get("active"))
	assert.Equal(t, "prod_fee", query.Get("product"))
	assert.Equal(t, "usd", query.Get("currency"))
	assert.Equal(t, "one_time", query.Get("type"))
	assert.Equal(t, "2", query.Get("limit"))
	assert.Empty(t, query.Get("starting_after"))

	assert.Equal(t, "price_1", prices[0].ID)
	assert.Equal(t, "prod_fee", prices[0].ProductID)
	assert.Equal(t, int64(360), prices[1].UnitAmount)
	assert.True(t, prices[1].IsOneTime())
}

func TestListActivePricesDefaultsLimitAndAccount(t *testing.T) {
	var account string
	var query url.Values

	cfg := config.GetDefaultConfig()
	cfg.Stripe.AccountID = "acct_clinic"
	client := newTestClient(t, cfg, func(w http.ResponseWriter, r *http.Request) {
		account = r.Header.Get("Stripe-Account")
		query = r.URL.Query()
		writeStripeJSON(w, http.StatusOK, `{"object": "list", "url": "/v1/prices", "has_more": false, "data": []}`)
	})

	prices, err := NewPriceCatalog(client).ListActivePrices(context.Background(), price.ListFilter{ProductID: "prod_fee"})
	require.NoError(t, err)
	assert.Empty(t, prices)

	assert.Equal(t, "acct_clinic", account)
	assert.Equal(t, "100", query.Get("limit"))
	assert.False(t, query.Has("type"))
	assert.False(t, query.Has("currency"))
}

func TestCreatePriceSendsRecurrenceAndIdempotencyKey(t *testing.T) {
	var calls atomic.Int32
	var form url.Values
	var idempotencyKey string

	cfg := config.GetDefaultConfig()
	client := newTestClient(t, cfg, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/prices", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		form = r.PostForm
		idempotencyKey = r.Header.Get("Idempotency-Key")
		writeStripeJSON(w, http.StatusOK, `{
			"id": "price_new", "object": "price", "active": true, "currency": "usd",
			"unit_amount": 240, "product": "prod_fee", "type": "recurring",
			"recurring": {"interval": "month", "interval_count": 3}
		}`)
	})

	created, err := NewPriceCatalog(client).CreatePrice(context.Background(), price.CreateParams{
		ProductID:      "prod_fee",
		Currency:       "usd",
		UnitAmount:     240,
		Recurring:      &price.Recurrence{Interval: types.RecurringIntervalMonth, IntervalCount: 3},
		IdempotencyKey: "fee_price_abc",
	})
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "prod_fee", form.Get("product"))
	assert.Equal(t, "usd", form.Get("currency"))
	assert.Equal(t, "240", form.Get("unit_amount"))
	assert.Equal(t, "month", form.Get("recurring[interval]"))
	assert.Equal(t, "3", form.Get("recurring[interval_count]"))
	assert.Equal(t, "fee_price_abc", idempotencyKey)

	assert.Equal(t, "price_new", created.ID)
	require.NotNil(t, created.Recurring)
	assert.Equal(t, price.Recurrence{Interval: types.RecurringIntervalMonth, IntervalCount: 3}, *created.Recurring)
}

func TestCreateOneTimePriceOmitsRecurrence(t *testing.T) {
	var form url.Values

	cfg := config.GetDefaultConfig()
	client := newTestClient(t, cfg, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		form = r.PostForm
		writeStripeJSON(w, http.StatusOK, `{
			"id": "price_once", "object": "price", "active": true, "currency": "usd",
			"unit_amount": 150, "product": "prod_fee", "type": "one_time"
		}`)
	})

	created, err := NewPriceCatalog(client).CreatePrice(context.Background(), price.CreateParams{
		ProductID:  "prod_fee",
		Currency:   "usd",
		UnitAmount: 150,
	})
	require.NoError(t, err)

	assert.False(t, form.Has("recurring[interval]"))
	assert.False(t, form.Has("recurring[interval_count]"))
	assert.True(t, created.IsOneTime())
}

func TestGetPrice(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		cfg := config.GetDefaultConfig()
		client := newTestClient(t, cfg, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/prices/price_1", r.URL.Path)
			writeStripeJSON(w, http.StatusOK, `{
				"id": "price_1", "object": "price", "active": false, "currency": "usd",
				"unit_amount": 240, "product": "prod_fee", "type": "one_time"
			}`)
		})

		p, err := NewPriceCatalog(client).GetPrice(context.Background(), "price_1")
		require.NoError(t, err)
		assert.Equal(t, "price_1", p.ID)
		assert.False(t, p.Active)
	})

	t.Run("missing price is not found", func(t *testing.T) {
		cfg := config.GetDefaultConfig()
		client := newTestClient(t, cfg, func(w http.ResponseWriter, r *http.Request) {
			writeStripeJSON(w, http.StatusNotFound, notFoundBody)
		})

		_, err := NewPriceCatalog(client).GetPrice(context.Background(), "price_gone")
		require.Error(t, err)
		assert.True(t, ierr.IsNotFound(err))
		assert.Equal(t, "resource_missing", ierr.ReportableDetails(err)["stripe_code"])
	})

	t.Run("server failure is an http client error", func(t *testing.T) {
		cfg := config.GetDefaultConfig()
		client := newTestClient(t, cfg, func(w http.ResponseWriter, r *http.Request) {
			writeStripeJSON(w, http.StatusInternalServerError, `{"error": {"type": "api_error", "message": "boom"}}`)
		})

		_, err := NewPriceCatalog(client).GetPrice(context.Background(), "price_1")
		require.Error(t, err)
		assert.True(t, ierr.IsHTTPClient(err))
		assert.False(t, ierr.IsNotFound(err))
	})
}

func TestListActivePricesMapsNotFound(t *testing.T) {
	cfg := config.GetDefaultConfig()
	client := newTestClient(t, cfg, func(w http.ResponseWriter, r *http.Request) {
		writeStripeJSON(w, http.StatusNotFound, `{"error": {"type": "invalid_request_error", "code": "resource_missing", "message": "No such product"}}`)
	})

	_, err := NewPriceCatalog(client).ListActivePrices(context.Background(), price.ListFilter{ProductID: "prod_gone", Limit: 10})
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
	assert.Equal(t, "Could not list prices from Stripe", ierr.DisplayMessage(err))
}
