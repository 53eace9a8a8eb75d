package provider

import (
	"context"

	"github.com/kbukum/netclient/resilience"
)

// ResilienceConfig selects the policies WithResilience applies. Nil
// policies are skipped.
type ResilienceConfig struct {
	RateLimit      *resilience.LimiterConfig  `yaml:"rate_limit" mapstructure:"rate_limit"`
	Bulkhead       *resilience.BulkheadConfig `yaml:"bulkhead" mapstructure:"bulkhead"`
	CircuitBreaker *resilience.BreakerConfig  `yaml:"circuit_breaker" mapstructure:"circuit_breaker"`
	Retry          *resilience.RetryConfig    `yaml:"retry" mapstructure:"retry"`
}

// IsEmpty reports whether no policy is configured.
func (c ResilienceConfig) IsEmpty() bool {
	return c.RateLimit == nil && c.Bulkhead == nil && c.CircuitBreaker == nil && c.Retry == nil
}

// WithResilience returns a Middleware applying, from the outside in:
// rate limit, bulkhead, circuit breaker, retry. The breaker sees one
// outcome per call, after retries. An empty config passes through.
//
// The policies are built once, so every provider wrapped by the returned
// middleware shares them.
func WithResilience[I, O any](cfg ResilienceConfig) Middleware[I, O] {
	if cfg.IsEmpty() {
		return func(inner RequestResponse[I, O]) RequestResponse[I, O] { return inner }
	}

	p := &policies{}
	if cfg.RateLimit != nil {
		p.limiter = resilience.NewLimiter(*cfg.RateLimit)
	}
	if cfg.Bulkhead != nil {
		p.bulkhead = resilience.NewBulkhead(*cfg.Bulkhead)
	}
	if cfg.CircuitBreaker != nil {
		p.breaker = resilience.NewBreaker(*cfg.CircuitBreaker)
	}
	if cfg.Retry != nil {
		retry := *cfg.Retry
		p.retry = &retry
	}

	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return &resilientRR[I, O]{inner: inner, p: p}
	}
}

type policies struct {
	limiter  *resilience.Limiter
	bulkhead *resilience.Bulkhead
	breaker  *resilience.Breaker
	retry    *resilience.RetryConfig
}

type resilientRR[I, O any] struct {
	inner RequestResponse[I, O]
	p     *policies
}

func (r *resilientRR[I, O]) Name() string { return r.inner.Name() }

// IsAvailable is false while the circuit is open.
func (r *resilientRR[I, O]) IsAvailable(ctx context.Context) bool {
	if r.p.breaker != nil && r.p.breaker.State() == resilience.StateOpen {
		return false
	}
	return r.inner.IsAvailable(ctx)
}

func (r *resilientRR[I, O]) Execute(ctx context.Context, input I) (O, error) {
	var zero O

	if r.p.limiter != nil {
		if err := r.p.limiter.Wait(ctx); err != nil {
			return zero, err
		}
	}
	if r.p.bulkhead != nil {
		release, err := r.p.bulkhead.Acquire(ctx)
		if err != nil {
			return zero, err
		}
		defer release()
	}
	if r.p.breaker != nil && !r.p.breaker.Allow() {
		return zero, resilience.ErrCircuitOpen
	}

	var out O
	var err error
	if r.p.retry != nil {
		out, err = resilience.Retry(ctx, *r.p.retry, func(ctx context.Context) (O, error) {
			return r.inner.Execute(ctx, input)
		})
	} else {
		out, err = r.inner.Execute(ctx, input)
	}

	if r.p.breaker != nil {
		r.p.breaker.Record(err)
	}
	return out, err
}
