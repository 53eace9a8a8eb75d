// Package resilience holds the call policies the HTTP client can apply
// around each exchange: retry with exponential backoff, a circuit breaker,
// a token bucket rate limiter and a concurrency bulkhead.
//
// Each policy is configured from YAML and used directly or through
// provider.WithResilience:
//
//	cfg := resilience.RetryConfig{MaxAttempts: 3}
//	resp, err := resilience.Retry(ctx, cfg, func(ctx context.Context) (*Response, error) {
//		return send(ctx)
//	})
package resilience
