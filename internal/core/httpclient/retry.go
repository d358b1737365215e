package httpclient

import (
	"context"
	"time"

	"carrier-sales/internal/core/logger"

	"go.uber.org/zap"
)

// RetryPolicy bounds how often and how patiently an upstream call is repeated.
type RetryPolicy struct {
	Attempts     int
	InitialDelay time.Duration
	Backoff      float64
	MaxDelay     time.Duration
}

// Do runs fn until it succeeds, the attempts run out or ctx is done.
// The last error is returned. Attempts are numbered from 1.
func (p RetryPolicy) Do(ctx context.Context, name string, fn func(attempt int) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	delay := p.InitialDelay

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(attempt); err == nil {
			return nil
		}

		logger.Get().Warn("Upstream attempt failed",
			zap.String("upstream", name),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Error(err),
		)

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * p.Backoff)
		if p.MaxDelay > 0 && delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}
	return err
}
