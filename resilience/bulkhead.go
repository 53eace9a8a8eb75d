package resilience

import (
	"context"
	"errors"
	"time"
)

// ErrBulkheadFull is returned when no slot frees up within MaxWait.
var ErrBulkheadFull = errors.New("bulkhead is full")

// BulkheadConfig configures a Bulkhead.
type BulkheadConfig struct {
	// MaxConcurrent is the number of calls allowed in flight. Defaults to 10.
	MaxConcurrent int `yaml:"max_concurrent" mapstructure:"max_concurrent" validate:"gte=0"`
	// MaxWait is how long a call waits for a slot. Zero rejects at once.
	MaxWait time.Duration `yaml:"max_wait" mapstructure:"max_wait"`
}

// Bulkhead caps the number of concurrent calls.
type Bulkhead struct {
	slots   chan struct{}
	maxWait time.Duration
}

// NewBulkhead creates an empty bulkhead.
func NewBulkhead(cfg BulkheadConfig) *Bulkhead {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 10
	}
	return &Bulkhead{slots: make(chan struct{}, cfg.MaxConcurrent), maxWait: cfg.MaxWait}
}

// Acquire takes a slot. The returned func releases it.
func (b *Bulkhead) Acquire(ctx context.Context) (func(), error) {
	release := func() { <-b.slots }

	select {
	case b.slots <- struct{}{}:
		return release, nil
	default:
	}
	if b.maxWait <= 0 {
		return nil, ErrBulkheadFull
	}

	timer := time.NewTimer(b.maxWait)
	defer timer.Stop()
	select {
	case b.slots <- struct{}{}:
		return release, nil
	case <-timer.C:
		return nil, ErrBulkheadFull
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// InUse returns the number of occupied slots.
func (b *Bulkhead) InUse() int {
	return len(b.slots)
}
