package search

import (
	"context"
	"time"

	"jobscout-engine/internal/domain"
)

// RetryPolicy bounds the exponential-backoff wrapper around one adapter
// invocation. Every adapter error counts as retryable here — a named,
// deliberate simplification: this layer doesn't try to tell a dead upstream
// from a malformed query, at the cost of retrying some permanent failures.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: time.Second}
}

// Backoff returns the delay before attempt k (0-indexed): none before the
// first, BaseDelay*2^(k-1) after that.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return p.BaseDelay << (attempt - 1)
}

// WithRetry runs op up to p.MaxAttempts times, sleeping the backoff schedule
// between attempts, and returns the last error unchanged when all attempts
// fail so the caller can still attribute it to its source.
func WithRetry(ctx context.Context, p RetryPolicy, op func(context.Context) ([]domain.JobRecord, error)) ([]domain.JobRecord, error) {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if d := p.Backoff(attempt); d > 0 {
			t := time.NewTimer(d)
			select {
			case <-ctx.Done():
				t.Stop()
				return nil, lastErr
			case <-t.C:
			}
		}

		records, err := op(ctx)
		if err == nil {
			return records, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
