// Package querycache is the client-side query and mutation cache: keyed query
// results with single-flight deduplication, prefix invalidation, and the
// optimistic-mutation protocol. Writes are ordered by issuance, not by
// response arrival, so a slow response never overwrites a newer one.
package querycache

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// FetchFunc loads fresh data for one key.
type FetchFunc func(ctx context.Context) (interface{}, error)

type entry struct {
	value interface{}
	valid bool
	seq   uint64 // issuance ticket of the write that produced value
	fetch FetchFunc
}

type Cache struct {
	mu      sync.Mutex
	seq     uint64
	entries map[string]*entry
	flight  singleflight.Group
}

func New() *Cache {
	return &Cache{entries: map[string]*entry{}}
}

// Key builds the canonical cache key from its parts, e.g.
// Key("jobs", "list", filter.CacheKey()). Prefix operations match on the
// leading parts.
func Key(parts ...string) string {
	return strings.Join(parts, "/")
}

// Issue hands out the next issuance-order ticket. A write stamped with an
// older ticket loses against one already stored.
func (c *Cache) Issue() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

func (c *Cache) ent(key string) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

// Query returns the cached value for key, or runs fetch and caches the
// result. Concurrent callers for the same key share a single in-flight fetch.
func (c *Cache) Query(ctx context.Context, key string, fetch FetchFunc) (interface{}, error) {
	c.mu.Lock()
	e := c.ent(key)
	e.fetch = fetch
	if e.valid {
		value := e.value
		c.mu.Unlock()
		return value, nil
	}
	c.mu.Unlock()

	value, err, _ := c.flight.Do(key, func() (interface{}, error) {
		seq := c.Issue()
		fetched, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.SetAt(key, seq, fetched)
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// SetAt stores value for key if seq is not older than the stored write.
// Reports whether the write won.
func (c *Cache) SetAt(key string, seq uint64, value interface{}) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.ent(key)
	if seq < e.seq {
		return false
	}
	e.seq = seq
	e.value = value
	e.valid = true
	return true
}

// Set stores value under a fresh issuance ticket.
func (c *Cache) Set(key string, value interface{}) {
	c.SetAt(key, c.Issue(), value)
}

// Peek returns the cached value without fetching.
func (c *Cache) Peek(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || !e.valid {
		return nil, false
	}
	return e.value, true
}

// Invalidate drops the cached value for one key. The registered fetcher stays,
// so a later Query or Refetch reloads it.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		e.valid = false
	}
}

// InvalidatePrefix drops every cached value whose key starts with prefix and
// returns the affected keys.
func (c *Cache) InvalidatePrefix(prefix string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	affected := []string{}
	for key, e := range c.entries {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if e.valid {
			e.valid = false
			affected = append(affected, key)
		}
	}
	return affected
}

// Refetch re-runs the registered fetcher for every invalidated key under
// prefix and stores the results. Keys that never registered a fetcher are
// skipped.
func (c *Cache) Refetch(ctx context.Context, prefix string) error {
	c.mu.Lock()
	pending := map[string]FetchFunc{}
	for key, e := range c.entries {
		if !strings.HasPrefix(key, prefix) || e.valid || e.fetch == nil {
			continue
		}
		pending[key] = e.fetch
	}
	c.mu.Unlock()

	for key, fetch := range pending {
		if _, err := c.Query(ctx, key, fetch); err != nil {
			return err
		}
	}
	return nil
}
