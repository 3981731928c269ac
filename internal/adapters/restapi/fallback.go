package restapi

import (
	"context"
	"errors"

	"github.com/zatekoja/hivclinic/internal/infrastructure/observability"
)

// FallbackPolicy decides whether list and dashboard reads degrade to
// sample data when the backend call fails. Writes and targeted lookups
// never go through it.
type FallbackPolicy struct {
	enabled bool
	metrics *observability.Metrics
}

// NewFallbackPolicy creates a policy. metrics may be nil.
func NewFallbackPolicy(enabled bool, metrics *observability.Metrics) *FallbackPolicy {
	return &FallbackPolicy{enabled: enabled, metrics: metrics}
}

// Enabled reports whether substitution is switched on
func (p *FallbackPolicy) Enabled() bool {
	return p != nil && p.enabled
}

// withFallback runs fetch and, when it fails and the policy allows it,
// returns sample() instead. Cancellation is always propagated: a
// superseded request must not show sample data.
func withFallback[T any](ctx context.Context, p *FallbackPolicy, operation string, fetch func() (T, error), sample func() T) (T, error) {
	out, err := fetch()
	if err == nil {
		return out, nil
	}
	if !p.Enabled() || errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return out, err
	}

	observability.LoggerFromContext(ctx).Warn().
		Err(err).
		Str("operation", operation).
		Msg("backend unavailable, serving sample data")
	observability.RecordFallback(ctx, p.metrics, operation)

	return sample(), nil
}
