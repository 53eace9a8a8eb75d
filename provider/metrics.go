package provider

import (
	"context"
	"time"

	"github.com/kbukum/netclient/observability"
)

// Labels derives the method and status metric labels for one call.
type Labels[I, O any] func(input I, output O, err error) (method, status string)

// WithMetrics returns a Middleware that records execution metrics using
// observability.Metrics. A nil labels func records method "execute" and
// status "ok" or "error".
func WithMetrics[I, O any](metrics *observability.Metrics, labels Labels[I, O]) Middleware[I, O] {
	if labels == nil {
		labels = defaultLabels[I, O]
	}
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return &metricsRR[I, O]{inner: inner, metrics: metrics, labels: labels}
	}
}

func defaultLabels[I, O any](_ I, _ O, err error) (string, string) {
	if err != nil {
		return "execute", "error"
	}
	return "execute", "ok"
}

type metricsRR[I, O any] struct {
	inner   RequestResponse[I, O]
	metrics *observability.Metrics
	labels  Labels[I, O]
}

func (m *metricsRR[I, O]) Name() string                         { return m.inner.Name() }
func (m *metricsRR[I, O]) IsAvailable(ctx context.Context) bool { return m.inner.IsAvailable(ctx) }

func (m *metricsRR[I, O]) Execute(ctx context.Context, input I) (O, error) {
	m.metrics.RecordRequestStart(ctx)
	start := time.Now()
	output, err := m.inner.Execute(ctx, input)
	duration := time.Since(start)

	method, status := m.labels(input, output, err)
	if err != nil {
		m.metrics.RecordError(ctx, status, m.inner.Name())
	}
	m.metrics.RecordRequestEnd(ctx, m.inner.Name(), method, status, duration)

	return output, err
}
