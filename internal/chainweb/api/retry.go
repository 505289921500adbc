package api

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy configures exponential backoff around every request. Zero
// MaxElapsedTime and zero MaxRetries leave the corresponding bound off.
type RetryPolicy struct {
	InitialInterval     time.Duration
	MaxInterval         time.Duration
	MaxElapsedTime      time.Duration
	Multiplier          float64
	RandomizationFactor float64
	MaxRetries          uint64
}

// BackOff builds a fresh backoff bound to ctx.
func (p RetryPolicy) BackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}
	if p.Multiplier > 0 {
		b.Multiplier = p.Multiplier
	}
	if p.RandomizationFactor >= 0 && p.RandomizationFactor < 1 {
		b.RandomizationFactor = p.RandomizationFactor
	}
	b.MaxElapsedTime = p.MaxElapsedTime
	b.Reset()

	var bo backoff.BackOff = b
	if p.MaxRetries > 0 {
		bo = backoff.WithMaxRetries(bo, p.MaxRetries)
	}
	return backoff.WithContext(bo, ctx)
}
