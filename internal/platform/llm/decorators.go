package llm

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"

	"github.com/yyoonchul/murmur-blog/internal/observability"
)

// WithTimeout bounds every call with its own deadline.
func WithTimeout(next Gateway, d time.Duration) Gateway {
	if d <= 0 {
		return next
	}
	return GatewayFunc(func(ctx context.Context, userMessage string, opts SendOptions) (string, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return next.SendMessage(ctx, userMessage, opts)
	})
}

// WithRateLimit blocks until the limiter admits the call or ctx ends.
func WithRateLimit(next Gateway, perSecond float64, burst int) Gateway {
	if perSecond <= 0 {
		return next
	}
	if burst <= 0 {
		burst = 1
	}
	lim := rate.NewLimiter(rate.Limit(perSecond), burst)
	return GatewayFunc(func(ctx context.Context, userMessage string, opts SendOptions) (string, error) {
		if err := lim.Wait(ctx); err != nil {
			return "", &GenerationError{Provider: "ratelimit", Model: opts.Model, Err: err}
		}
		return next.SendMessage(ctx, userMessage, opts)
	})
}

// WithInstrumentation wraps each call in a span and records call metrics.
// Provider and model labels come from the router when one is given.
func WithInstrumentation(next Gateway, router *Router, m *observability.Metrics) Gateway {
	tracer := otel.Tracer("murmur/llm")
	return GatewayFunc(func(ctx context.Context, userMessage string, opts SendOptions) (string, error) {
		provider, model := "unknown", opts.Model
		if router != nil {
			if p, err := router.Active(); err == nil {
				provider = p.Name()
				model = router.ResolveModel(p, opts.Model)
			}
		}
		ctx, span := tracer.Start(ctx, "llm.SendMessage")
		defer span.End()
		span.SetAttributes(
			attribute.String("llm.provider", provider),
			attribute.String("llm.model", model),
			attribute.Int("llm.max_tokens", opts.MaxTokens),
			attribute.Int("llm.prompt_chars", len(userMessage)),
		)

		start := time.Now()
		out, err := next.SendMessage(ctx, userMessage, opts)
		status := "ok"
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			status = "timeout"
		case err != nil:
			status = "error"
		}
		m.ObserveLLMRequest(provider, model, status, time.Since(start))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("llm.output_chars", len(out)))
		}
		return out, err
	})
}
