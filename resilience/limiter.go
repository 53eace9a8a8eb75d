package resilience

import (
	"context"
	"sync"
	"time"
)

// LimiterConfig configures a token bucket Limiter.
type LimiterConfig struct {
	// Rate is the sustained number of calls per second.
	Rate float64 `yaml:"rate" mapstructure:"rate" validate:"gte=0"`
	// Burst is the bucket size. Defaults to Rate rounded up, at least 1.
	Burst int `yaml:"burst" mapstructure:"burst" validate:"gte=0"`
}

// Limiter paces calls with a token bucket. Wait blocks instead of
// rejecting so a paced call still reaches the server.
type Limiter struct {
	rate  float64
	burst float64
	now   func() time.Time

	mu     sync.Mutex
	tokens float64
	last   time.Time
}

// NewLimiter creates a full bucket.
func NewLimiter(cfg LimiterConfig) *Limiter {
	if cfg.Rate <= 0 {
		cfg.Rate = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = int(cfg.Rate + 0.999)
	}
	l := &Limiter{rate: cfg.Rate, burst: float64(cfg.Burst), now: time.Now}
	l.tokens = l.burst
	l.last = l.now()
	return l
}

// Allow takes a token if one is available.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refill()
	if l.tokens >= 1 {
		l.tokens--
		return true
	}
	return false
}

// Wait takes a token, sleeping until one accrues or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	l.refill()
	l.tokens--
	deficit := -l.tokens
	l.mu.Unlock()

	if deficit <= 0 {
		return nil
	}

	timer := time.NewTimer(time.Duration(deficit / l.rate * float64(time.Second)))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		l.mu.Lock()
		l.tokens++
		l.mu.Unlock()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Tokens returns the tokens currently available.
func (l *Limiter) Tokens() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refill()
	return l.tokens
}

func (l *Limiter) refill() {
	now := l.now()
	l.tokens += now.Sub(l.last).Seconds() * l.rate
	if l.tokens > l.burst {
		l.tokens = l.burst
	}
	l.last = now
}
