package service

import (
	"context"

	"github.com/flexprice/clinicbilling/internal/api/dto"
	"github.com/flexprice/clinicbilling/internal/domain/price"
	ierr "github.com/flexprice/clinicbilling/internal/errors"
	"github.com/flexprice/clinicbilling/internal/idempotency"
	"github.com/flexprice/clinicbilling/internal/types"
	"github.com/samber/lo"
	"golang.org/x/sync/singleflight"
)

// FeePriceService maps a credit card fee amount to a reusable catalog price
type FeePriceService interface {
	// GetOrCreateFeePrice returns the id of the active fee price for amount
	// and recurrence, creating it when the first catalog page has none.
	// A nil recurrence means a one-time price.
	GetOrCreateFeePrice(ctx context.Context, amount int64, recurring *price.Recurrence) (string, error)
	GetOrCreateRecurringFeePrice(ctx context.Context, amount int64, recurring price.Recurrence) (string, error)
	GetOrCreateOneTimeFeePrice(ctx context.Context, amount int64) (string, error)

	// GetOrCreate is the request/response form used by the API
	GetOrCreate(ctx context.Context, req dto.GetOrCreateFeePriceRequest) (*dto.FeePriceResponse, error)
}

type feePriceService struct {
	ServiceParams
	group singleflight.Group
}

// NewFeePriceService creates a new fee price service
func NewFeePriceService(params ServiceParams) FeePriceService {
	return &feePriceService{
		ServiceParams: params,
	}
}

func (s *feePriceService) GetOrCreateRecurringFeePrice(ctx context.Context, amount int64, recurring price.Recurrence) (string, error) {
	return s.GetOrCreateFeePrice(ctx, amount, &recurring)
}

func (s *feePriceService) GetOrCreateOneTimeFeePrice(ctx context.Context, amount int64) (string, error) {
	return s.GetOrCreateFeePrice(ctx, amount, nil)
}

func (s *feePriceService) GetOrCreate(ctx context.Context, req dto.GetOrCreateFeePriceRequest) (*dto.FeePriceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	recurring := req.ToRecurrence()
	id, err := s.GetOrCreateFeePrice(ctx, req.Amount, recurring)
	if err != nil {
		return nil, err
	}

	return &dto.FeePriceResponse{
		PriceID:    id,
		ProductID:  s.Config.Billing.FeeProductID,
		Currency:   types.NormalizeCurrency(s.Config.Billing.Currency),
		UnitAmount: req.Amount,
		Recurring:  recurring,
	}, nil
}

func (s *feePriceService) GetOrCreateFeePrice(ctx context.Context, amount int64, recurring *price.Recurrence) (string, error) {
	if amount <= 0 {
		return "", ierr.NewErrorf("fee amount must be positive, got %d", amount).
			WithHint("Fee amount must be greater than zero").
			WithReportableDetails(map[string]any{"amount": amount}).
			Mark(ierr.ErrInvalidAmount)
	}
	if recurring != nil {
		if err := recurring.Interval.Validate(); err != nil {
			return "", err
		}
		if recurring.IntervalCount < 1 {
			return "", ierr.NewErrorf("invalid interval count %d", recurring.IntervalCount).
				WithHint("Recurring interval count must be at least 1").
				Mark(ierr.ErrValidation)
		}
	}

	key := price.FeePriceKey{
		ProductID:  s.Config.Billing.FeeProductID,
		Currency:   types.NormalizeCurrency(s.Config.Billing.Currency),
		UnitAmount: amount,
		Recurring:  recurring,
	}

	if !s.Config.Billing.FeePriceSingleFlight {
		return s.getOrCreate(ctx, key)
	}

	// The shared call outlives any one caller: a cancelled caller returns
	// early while the lookup completes for the others waiting on it.
	ch := s.group.DoChan(key.String(), func() (interface{}, error) {
		return s.getOrCreate(context.WithoutCancel(ctx), key)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		if res.Shared {
			s.Logger.Debugw("fee price lookup shared with a concurrent caller", "fee_key", key.String())
		}
		return res.Val.(string), nil
	}
}

// getOrCreate scans the first page of active fee prices for an exact match
// and creates one when none is found. The scan and the create are separate
// catalog calls, so concurrent callers can both create.
func (s *feePriceService) getOrCreate(ctx context.Context, key price.FeePriceKey) (string, error) {
	limit := s.Config.Billing.FeePricePageSize
	priceType := key.PriceType()

	prices, err := s.PriceCatalog.ListActivePrices(ctx, price.ListFilter{
		ProductID: key.ProductID,
		Currency:  key.Currency,
		Type:      priceType,
		Limit:     limit,
	})
	if err != nil {
		return "", err
	}

	matches := lo.Filter(prices, func(p *price.CatalogPrice, _ int) bool {
		return p.Active && key.Matches(p)
	})

	if len(matches) > 1 {
		ids := lo.Map(matches, func(p *price.CatalogPrice, _ int) string { return p.ID })
		s.Logger.Warnw("found duplicate fee prices, using the first",
			"fee_key", key.String(),
			"price_ids", ids,
		)
		if s.Metrics != nil {
			s.Metrics.FeePriceDuplicatesTotal.Inc()
		}
		s.Sentry.AddBreadcrumb("fee_price", "duplicate fee prices", map[string]interface{}{
			"fee_key":   key.String(),
			"price_ids": ids,
		})
	}

	if len(matches) > 0 {
		if s.Metrics != nil {
			s.Metrics.FeePriceReusedTotal.WithLabelValues(string(priceType)).Inc()
		}
		return matches[0].ID, nil
	}

	if limit > 0 && int64(len(prices)) >= limit {
		s.Logger.Warnw("fee price page is full and has no match, a duplicate may be created",
			"fee_key", key.String(),
			"page_size", limit,
		)
		if s.Metrics != nil {
			s.Metrics.FeePricePageExhaustedTotal.Inc()
		}
	}

	params := price.CreateParams{
		ProductID:  key.ProductID,
		Currency:   key.Currency,
		UnitAmount: key.UnitAmount,
		Recurring:  key.Recurring,
	}
	if s.Config.Billing.FeePriceIdempotencyKeys {
		params.IdempotencyKey = s.idempotencyKey(key)
	}

	created, err := s.PriceCatalog.CreatePrice(ctx, params)
	if err != nil {
		return "", err
	}

	s.Logger.Infow("created fee price",
		"price_id", created.ID,
		"fee_key", key.String(),
	)
	if s.Metrics != nil {
		s.Metrics.FeePriceCreatedTotal.WithLabelValues(string(priceType)).Inc()
	}
	return created.ID, nil
}

func (s *feePriceService) idempotencyKey(key price.FeePriceKey) string {
	gen := s.Idempotency
	if gen == nil {
		gen = idempotency.NewGenerator()
	}
	params := map[string]interface{}{
		"product_id":  key.ProductID,
		"currency":    key.Currency,
		"unit_amount": key.UnitAmount,
	}
	if key.Recurring != nil {
		params["interval"] = string(key.Recurring.Interval)
		params["interval_count"] = key.Recurring.IntervalCount
	}
	return gen.GenerateKey(idempotency.ScopeFeePrice, params)
}
