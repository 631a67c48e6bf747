package cache

import (
	"context"

	"github.com/getsentry/sentry-go"
)

// startSpan opens a span for one store operation. It returns nil when the
// request carries no sentry hub.
func startSpan(ctx context.Context, store, operation, key string) *sentry.Span {
	if sentry.GetHubFromContext(ctx) == nil {
		return nil
	}

	span := sentry.StartSpan(ctx, "cache."+operation)
	span.Description = "cache." + store + "." + operation
	span.SetData("cache.store", store)
	span.SetData("cache.key", key)
	return span
}

// finishSpan records the outcome of a store operation and closes the span.
// hit is only meaningful for reads.
func finishSpan(span *sentry.Span, hit bool, err error) {
	if span == nil {
		return
	}

	if err != nil {
		span.Status = sentry.SpanStatusInternalError
		span.SetData("error", err.Error())
	} else {
		span.Status = sentry.SpanStatusOK
		span.SetData("cache.hit", hit)
	}
	span.Finish()
}
