package stripe

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/flexprice/clinicbilling/internal/config"
	ierr "github.com/flexprice/clinicbilling/internal/errors"
	"github.com/flexprice/clinicbilling/internal/logger"
	"github.com/flexprice/clinicbilling/internal/observability"
	"github.com/flexprice/clinicbilling/internal/sentry"
	"github.com/stripe/stripe-go/v82"
)

// Client handles Stripe API client setup and the bookkeeping shared by
// every catalog call (metrics, spans, error mapping)
type Client struct {
	stripe    *stripe.Client
	accountID string
	metrics   *observability.Metrics
	sentry    *sentry.Service
	logger    *logger.Logger
}

// NewClient creates a new Stripe client from the static configuration
func NewClient(
	cfg *config.Configuration,
	metrics *observability.Metrics,
	sentrySvc *sentry.Service,
	logger *logger.Logger,
) *Client {
	return newClient(cfg, stripe.NewClient(cfg.Stripe.SecretKey), metrics, sentrySvc, logger)
}

func newClient(
	cfg *config.Configuration,
	sc *stripe.Client,
	metrics *observability.Metrics,
	sentrySvc *sentry.Service,
	logger *logger.Logger,
) *Client {
	return &Client{
		stripe:    sc,
		accountID: cfg.Stripe.AccountID,
		metrics:   metrics,
		sentry:    sentrySvc,
		logger:    logger,
	}
}

// GetStripeClient returns the configured Stripe client
func (c *Client) GetStripeClient() *stripe.Client {
	return c.stripe
}

// accountScoped is satisfied by both request and list params
type accountScoped interface {
	SetStripeAccount(string)
}

// applyAccount scopes a request to the connected account, when one is configured
func (c *Client) applyAccount(params accountScoped) {
	if c.accountID != "" {
		params.SetStripeAccount(c.accountID)
	}
}

// observe wraps a single catalog call with a span and the request counters
func (c *Client) observe(ctx context.Context, operation string, data map[string]interface{}, fn func(ctx context.Context) error) error {
	span, spanCtx := c.sentry.StartCatalogSpan(ctx, operation, data)
	err := fn(spanCtx)
	sentry.FinishSpan(span, err)
	if c.metrics != nil {
		c.metrics.RecordCatalogRequest(operation, err)
	}
	return err
}

// wrapError converts a Stripe error into the application's error model.
// A missing resource is a not found error; everything else is a failed
// upstream call.
func wrapError(err error, msg, hint string, details map[string]interface{}) error {
	if details == nil {
		details = map[string]interface{}{}
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		details["stripe_code"] = string(stripeErr.Code)
		details["stripe_status"] = stripeErr.HTTPStatusCode
		if stripeErr.RequestID != "" {
			details["stripe_request_id"] = stripeErr.RequestID
		}
		if stripeErr.HTTPStatusCode == 404 {
			return ierr.WithError(err).
				WithMessage(msg).
				WithHint(hint).
				WithReportableDetails(details).
				Mark(ierr.ErrNotFound)
		}
	}

	return ierr.WithError(err).
		WithMessage(msg).
		WithHint(hint).
		WithReportableDetails(details).
		Mark(ierr.ErrHTTPClient)
}
