package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"talentflow-backend/lib/apperr"
)

func TestRetryRecoversFromTransientFailures(t *testing.T) {
	policy := RetryPolicy{Attempts: 3, BaseDelay: time.Millisecond}
	calls := 0

	err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return apperr.New(apperr.KindServer, "flaky")
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestRetryStopsAtAttemptCeiling(t *testing.T) {
	policy := RetryPolicy{Attempts: 3, BaseDelay: time.Millisecond}
	calls := 0

	err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return apperr.New(apperr.KindServer, "still down")
	})
	require.Error(t, err)
	require.True(t, apperr.IsKind(err, apperr.KindServer))
	require.Equal(t, 3, calls)
}

// Only server-class failures are worth repeating; everything else surfaces on
// the first try.
func TestRetrySkipsNonRetryableKinds(t *testing.T) {
	policy := RetryPolicy{Attempts: 5, BaseDelay: time.Millisecond}

	for _, kind := range []apperr.Kind{
		apperr.KindValidation,
		apperr.KindConflict,
		apperr.KindNotFound,
		apperr.KindAuth,
	} {
		calls := 0
		err := policy.Do(context.Background(), func(ctx context.Context) error {
			calls++
			return apperr.New(kind, "permanent")
		})
		require.Error(t, err)
		require.True(t, apperr.IsKind(err, kind))
		require.Equal(t, 1, calls, "kind %v must not be retried", kind)
	}
}

func TestRetryHonorsContext(t *testing.T) {
	policy := RetryPolicy{Attempts: 5, BaseDelay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := policy.Do(ctx, func(ctx context.Context) error {
		return apperr.New(apperr.KindServer, "down")
	})
	require.ErrorIs(t, err, context.Canceled)
}
