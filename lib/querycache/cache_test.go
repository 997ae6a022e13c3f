package querycache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"talentflow-backend/lib/querycache"
)

func TestQueryCachesResult(t *testing.T) {
	cache := querycache.New()
	calls := int32(0)
	fetch := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		got, err := cache.Query(context.Background(), "k", fetch)
		require.NoError(t, err)
		require.Equal(t, "value", got)
	}
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestQuerySingleFlight(t *testing.T) {
	cache := querycache.New()
	calls := int32(0)
	fetch := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(30 * time.Millisecond)
		return "shared", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := cache.Query(context.Background(), "k", fetch)
			require.NoError(t, err)
			require.Equal(t, "shared", got)
		}()
	}
	wg.Wait()
	require.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent callers must share one fetch")
}

func TestInvalidateTriggersRefetch(t *testing.T) {
	cache := querycache.New()
	calls := int32(0)
	fetch := func(ctx context.Context) (interface{}, error) {
		return atomic.AddInt32(&calls, 1), nil
	}

	got, err := cache.Query(context.Background(), "k", fetch)
	require.NoError(t, err)
	require.Equal(t, int32(1), got)

	cache.Invalidate("k")
	got, err = cache.Query(context.Background(), "k", fetch)
	require.NoError(t, err)
	require.Equal(t, int32(2), got, "invalidated key refetches")
}

func TestInvalidatePrefix(t *testing.T) {
	cache := querycache.New()
	ctx := context.Background()
	fetch := func(v string) querycache.FetchFunc {
		return func(ctx context.Context) (interface{}, error) { return v, nil }
	}

	_, err := cache.Query(ctx, querycache.Key("jobs", "list", "a"), fetch("a"))
	require.NoError(t, err)
	_, err = cache.Query(ctx, querycache.Key("jobs", "list", "b"), fetch("b"))
	require.NoError(t, err)
	_, err = cache.Query(ctx, querycache.Key("candidates", "list"), fetch("c"))
	require.NoError(t, err)

	affected := cache.InvalidatePrefix("jobs")
	require.Len(t, affected, 2)

	_, ok := cache.Peek(querycache.Key("jobs", "list", "a"))
	require.False(t, ok)
	_, ok = cache.Peek(querycache.Key("candidates", "list"))
	require.True(t, ok, "other prefixes stay cached")

	require.NoError(t, cache.Refetch(ctx, "jobs"))
	v, ok := cache.Peek(querycache.Key("jobs", "list", "a"))
	require.True(t, ok)
	require.Equal(t, "a", v)
}

// A write stamped at an earlier issuance position must not overwrite one
// stamped later, no matter in which order the responses land.
func TestLastWriteWinsByIssuance(t *testing.T) {
	cache := querycache.New()

	early := cache.Issue()
	late := cache.Issue()

	require.True(t, cache.SetAt("k", late, "late"))
	require.False(t, cache.SetAt("k", early, "early"), "older write must lose")

	v, ok := cache.Peek("k")
	require.True(t, ok)
	require.Equal(t, "late", v)
}
