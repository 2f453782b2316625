package ratelimiter

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// ProbeLimiter is a token bucket bounding how often the database probe may
// dial. Burst is set equal to the rate so no extra burst capacity is allowed
// beyond the configured per-second maximum.
type ProbeLimiter struct {
	limiter *rate.Limiter
}

// New creates a ProbeLimiter with ratePerSec tokens per second.
// A non-positive rate disables limiting.
func New(ratePerSec int) *ProbeLimiter {
	if ratePerSec <= 0 {
		return &ProbeLimiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &ProbeLimiter{limiter: rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec)}
}

// Wait blocks until a token is granted.
// It fails only when ctx ends first or its deadline is too close to ever
// obtain a token; the returned error then wraps the matching context error.
func (l *ProbeLimiter) Wait(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("probe limiter: %w", ctxErr)
		}
		return fmt.Errorf("probe limiter: %v: %w", err, context.DeadlineExceeded)
	}
	return nil
}
