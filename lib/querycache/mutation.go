package querycache

import (
	"context"
	"sync"
)

// Restore undoes an optimistic cache edit.
type Restore func()

// Mutation is one write in the optimistic protocol. Optimistic applies the
// local edit immediately and returns how to undo it; Commit performs the
// server call (including any retries). When Commit ultimately fails, the edit
// is rolled back before OnError. OnSettled runs after success and failure
// alike.
type Mutation struct {
	Optimistic func() Restore
	Commit     func(ctx context.Context) (interface{}, error)
	OnSuccess  func(ctx context.Context, seq uint64, result interface{})
	OnError    func(err error)
	OnSettled  func(ctx context.Context)
	// Serialize, when set, is held for the whole mutation so that writes
	// sharing it never interleave. Board reorders share one.
	Serialize *sync.Mutex
}

// Mutate runs the optimistic protocol. The issuance ticket is taken before
// the commit starts and handed to OnSuccess, so a success that lands late
// still writes at its original position in the issuance order.
func (c *Cache) Mutate(ctx context.Context, m Mutation) (interface{}, error) {
	if m.Serialize != nil {
		m.Serialize.Lock()
		defer m.Serialize.Unlock()
	}

	seq := c.Issue()
	var restore Restore
	if m.Optimistic != nil {
		restore = m.Optimistic()
	}

	result, err := m.Commit(ctx)
	if err != nil {
		if restore != nil {
			restore()
		}
		if m.OnError != nil {
			m.OnError(err)
		}
	} else if m.OnSuccess != nil {
		m.OnSuccess(ctx, seq, result)
	}
	if m.OnSettled != nil {
		m.OnSettled(ctx)
	}
	return result, err
}
