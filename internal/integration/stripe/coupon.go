package stripe

import (
	"context"

	"github.com/flexprice/clinicbilling/internal/domain/coupon"
	"github.com/flexprice/clinicbilling/internal/observability"
	"github.com/stripe/stripe-go/v82"
)

// CouponCatalog reads coupons from Stripe
type CouponCatalog struct {
	client *Client
}

// NewCouponCatalog creates a coupon catalog backed by Stripe
func NewCouponCatalog(client *Client) coupon.Catalog {
	return &CouponCatalog{client: client}
}

// FetchCoupon retrieves a single coupon by its Stripe id
func (c *CouponCatalog) FetchCoupon(ctx context.Context, externalID string) (*coupon.Coupon, error) {
	var stripeCoupon *stripe.Coupon

	err := c.client.observe(ctx, observability.OpFetchCoupon, map[string]interface{}{
		"coupon_id": externalID,
	}, func(ctx context.Context) error {
		params := &stripe.CouponRetrieveParams{}
		c.client.applyAccount(params)

		var err error
		stripeCoupon, err = c.client.stripe.V1Coupons.Retrieve(ctx, externalID, params)
		return err
	})
	if err != nil {
		c.client.logger.Errorw("failed to retrieve coupon from Stripe",
			"error", err,
			"coupon_id", externalID,
		)
		return nil, wrapError(err,
			"failed to retrieve coupon from Stripe",
			"Could not fetch coupon information from Stripe",
			map[string]interface{}{"coupon_id": externalID},
		)
	}

	return toCoupon(stripeCoupon), nil
}
