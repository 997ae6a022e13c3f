package client

import (
	"context"
	"time"

	"talentflow-backend/lib/apperr"
)

// RetryPolicy re-issues failed calls with doubling backoff. Only
// server-class failures are retried; validation, conflict, not-found and auth
// failures surface immediately, since repeating them cannot help.
type RetryPolicy struct {
	Attempts  int           // total tries, including the first
	BaseDelay time.Duration // delay before the second try, doubled each retry
}

func (p RetryPolicy) Do(ctx context.Context, call func(ctx context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	delay := p.BaseDelay
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
		err = call(ctx)
		if err == nil || !apperr.IsRetryable(err) {
			return err
		}
	}
	return err
}
