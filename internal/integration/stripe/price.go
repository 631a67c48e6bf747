package stripe

import (
	"context"

	"github.com/flexprice/clinicbilling/internal/domain/price"
	"github.com/flexprice/clinicbilling/internal/observability"
	"github.com/flexprice/clinicbilling/internal/types"
	"github.com/stripe/stripe-go/v82"
)

// PriceCatalog lists, creates and reads prices in Stripe
type PriceCatalog struct {
	client *Client
}

// NewPriceCatalog creates a price catalog backed by Stripe
func NewPriceCatalog(client *Client) price.Catalog {
	return &PriceCatalog{client: client}
}

// ListActivePrices returns the first page of active prices matching filter.
// Iteration stops once Limit prices were read so that no further page is requested.
func (c *PriceCatalog) ListActivePrices(ctx context.Context, filter price.ListFilter) ([]*price.CatalogPrice, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = maxListLimit
	}

	params := &stripe.PriceListParams{
		Active:  stripe.Bool(true),
		Product: stripe.String(filter.ProductID),
	}
	params.Limit = stripe.Int64(limit)
	if filter.Currency != "" {
		params.Currency = stripe.String(types.NormalizeCurrency(filter.Currency))
	}
	if filter.Type != "" {
		params.Type = stripe.String(string(filter.Type))
	}
	c.client.applyAccount(params)

	prices := make([]*price.CatalogPrice, 0, limit)
	err := c.client.observe(ctx, observability.OpListPrices, map[string]interface{}{
		"product_id": filter.ProductID,
		"currency":   filter.Currency,
		"type":       string(filter.Type),
		"limit":      limit,
	}, func(ctx context.Context) error {
		for p, err := range c.client.stripe.V1Prices.List(ctx, params) {
			if err != nil {
				return err
			}
			prices = append(prices, toCatalogPrice(p))
			if int64(len(prices)) >= limit {
				break
			}
		}
		return nil
	})
	if err != nil {
		c.client.logger.Errorw("failed to list prices from Stripe",
			"error", err,
			"product_id", filter.ProductID,
			"currency", filter.Currency,
		)
		return nil, wrapError(err,
			"failed to list prices from Stripe",
			"Could not list prices from Stripe",
			map[string]interface{}{"product_id": filter.ProductID},
		)
	}

	return prices, nil
}

// CreatePrice creates a new price and returns it as Stripe stored it
func (c *PriceCatalog) CreatePrice(ctx context.Context, req price.CreateParams) (*price.CatalogPrice, error) {
	params := &stripe.PriceCreateParams{
		Product:    stripe.String(req.ProductID),
		Currency:   stripe.String(types.NormalizeCurrency(req.Currency)),
		UnitAmount: stripe.Int64(req.UnitAmount),
	}
	if req.Recurring != nil {
		params.Recurring = &stripe.PriceCreateRecurringParams{
			Interval:      stripe.String(string(toStripeInterval(req.Recurring.Interval))),
			IntervalCount: stripe.Int64(req.Recurring.IntervalCount),
		}
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	c.client.applyAccount(params)

	var created *stripe.Price
	err := c.client.observe(ctx, observability.OpCreatePrice, map[string]interface{}{
		"product_id":  req.ProductID,
		"currency":    req.Currency,
		"unit_amount": req.UnitAmount,
	}, func(ctx context.Context) error {
		var err error
		created, err = c.client.stripe.V1Prices.Create(ctx, params)
		return err
	})
	if err != nil {
		c.client.logger.Errorw("failed to create price in Stripe",
			"error", err,
			"product_id", req.ProductID,
			"currency", req.Currency,
			"unit_amount", req.UnitAmount,
		)
		return nil, wrapError(err,
			"failed to create price in Stripe",
			"Could not create price in Stripe",
			map[string]interface{}{
				"product_id":  req.ProductID,
				"unit_amount": req.UnitAmount,
			},
		)
	}

	c.client.logger.Infow("created price in Stripe",
		"price_id", created.ID,
		"product_id", req.ProductID,
		"currency", req.Currency,
		"unit_amount", req.UnitAmount,
	)

	return toCatalogPrice(created), nil
}

// GetPrice retrieves a single price by id
func (c *PriceCatalog) GetPrice(ctx context.Context, id string) (*price.CatalogPrice, error) {
	params := &stripe.PriceRetrieveParams{}
	c.client.applyAccount(params)

	var p *stripe.Price
	err := c.client.observe(ctx, observability.OpGetPrice, map[string]interface{}{
		"price_id": id,
	}, func(ctx context.Context) error {
		var err error
		p, err = c.client.stripe.V1Prices.Retrieve(ctx, id, params)
		return err
	})
	if err != nil {
		c.client.logger.Errorw("failed to retrieve price from Stripe",
			"error", err,
			"price_id", id,
		)
		return nil, wrapError(err,
			"failed to retrieve price from Stripe",
			"Could not fetch price information from Stripe",
			map[string]interface{}{"price_id": id},
		)
	}

	return toCatalogPrice(p), nil
}
