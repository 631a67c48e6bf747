package coupon

import (
	"context"
	"strings"
)

// Catalog is the external system of record for coupons
type Catalog interface {
	// FetchCoupon reads the discount shape of the coupon with the given external id
	FetchCoupon(ctx context.Context, externalID string) (*Coupon, error)
}

func normalize(currency string) string {
	return strings.ToLower(strings.TrimSpace(currency))
}
