package retry

import (
	"context"
	"fmt"
	"time"
)

// Policy describes how a failing operation is reattempted.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
	Backoff     bool // linear backoff: attempt * Delay
}

// Do runs fn until it succeeds, the attempts are exhausted, or ctx is done.
// The attempt number (starting at 0) is passed to fn so callers can vary
// per-attempt behavior such as request identity.
func Do(ctx context.Context, p Policy, fn func(attempt int) error) error {
	var lastErr error

	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if err := fn(attempt); err != nil {
			lastErr = err

			if attempt == p.MaxAttempts-1 {
				return fmt.Errorf("failed after %d attempts: %w", p.MaxAttempts, err)
			}

			delay := p.Delay
			if p.Backoff {
				delay = time.Duration(attempt+1) * p.Delay
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				continue
			}
		}
		return nil
	}

	return lastErr
}
