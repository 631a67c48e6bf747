package service

import (
	"context"
	"strings"

	"github.com/flexprice/clinicbilling/internal/api/dto"
	"github.com/flexprice/clinicbilling/internal/cache"
	"github.com/flexprice/clinicbilling/internal/domain/coupon"
)

// CouponService resolves human-entered promo codes to catalog coupons
type CouponService interface {
	// ResolveCoupon returns the coupon behind code. A blank or unknown code
	// resolves to nil without an error.
	ResolveCoupon(ctx context.Context, code string) (*coupon.Coupon, error)

	// ResolveCouponCode is ResolveCoupon with the outcome spelled out, so an
	// unknown code can be told apart from no code
	ResolveCouponCode(ctx context.Context, code string) (*dto.CouponResolutionResponse, error)
}

type couponService struct {
	ServiceParams
}

// NewCouponService creates a new coupon service
func NewCouponService(params ServiceParams) CouponService {
	return &couponService{
		ServiceParams: params,
	}
}

// NormalizeCouponCode lower-cases and trims a promo code
func NormalizeCouponCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func (s *couponService) ResolveCoupon(ctx context.Context, code string) (*coupon.Coupon, error) {
	c, _, err := s.resolve(ctx, code)
	return c, err
}

func (s *couponService) ResolveCouponCode(ctx context.Context, code string) (*dto.CouponResolutionResponse, error) {
	_, resp, err := s.resolve(ctx, code)
	return resp, err
}

func (s *couponService) resolve(ctx context.Context, code string) (*coupon.Coupon, *dto.CouponResolutionResponse, error) {
	normalized := NormalizeCouponCode(code)
	resp := &dto.CouponResolutionResponse{Code: normalized, Outcome: dto.CouponOutcomeNone}
	if normalized == "" {
		return nil, resp, nil
	}

	couponID, ok := s.Config.Billing.CouponCodes[normalized]
	if !ok || couponID == "" {
		s.Logger.Debugw("promo code does not map to a coupon", "code", normalized)
		if s.Metrics != nil {
			s.Metrics.CouponUnknownCodeTotal.Inc()
		}
		resp.Outcome = dto.CouponOutcomeUnknown
		return nil, resp, nil
	}

	c, err := s.lookup(ctx, couponID)
	if err != nil {
		return nil, nil, err
	}

	resp.Outcome = dto.CouponOutcomeResolved
	resp.Coupon = dto.NewCouponResponse(c)
	return c, resp, nil
}

// lookup reads a coupon through the cache. Entries never expire; a failed
// fetch stores nothing so the next call retries the catalog.
func (s *couponService) lookup(ctx context.Context, couponID string) (*coupon.Coupon, error) {
	key := cache.GenerateKey(cache.PrefixCoupon, couponID)

	if cached, ok := cache.GetTyped[*coupon.Coupon](ctx, s.Cache, key); ok && cached != nil {
		if s.Metrics != nil {
			s.Metrics.CouponCacheHitsTotal.Inc()
		}
		return cached, nil
	}
	if s.Metrics != nil {
		s.Metrics.CouponCacheMissesTotal.Inc()
	}

	c, err := s.CouponCatalog.FetchCoupon(ctx, couponID)
	if err != nil {
		s.Logger.Errorw("failed to fetch coupon", "coupon_id", couponID, "error", err)
		return nil, err
	}

	s.Cache.Set(ctx, key, c, cache.NoExpiration)
	return c, nil
}
