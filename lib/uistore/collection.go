// Package uistore holds the synchronous in-memory state the UI renders from.
// Every mutation applies before the call returns; nothing here touches the
// network. The session layer writes into it from query results and optimistic
// edits.
package uistore

import "sync"

// Meta is the list metadata shown next to a collection.
type Meta struct {
	Total    int
	Page     int
	PageSize int
	Loading  bool
}

// Collection holds one entity list plus a current-item slot. The slot is
// tracked by id, so edits to the list are visible through Current without
// extra bookkeeping.
type Collection[T any] struct {
	mu        sync.RWMutex
	items     []T
	meta      Meta
	currentID string
	idOf      func(T) string
}

func NewCollection[T any](idOf func(T) string) *Collection[T] {
	return &Collection[T]{idOf: idOf}
}

// SetAll replaces the whole list.
func (c *Collection[T]) SetAll(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T(nil), items...)
}

// Items returns a copy of the list.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get returns the item with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Add appends one item.
func (c *Collection[T]) Add(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// UpdateByID applies an in-place edit to the item with the given id. A
// missing id is a no-op; the return value reports whether anything changed.
func (c *Collection[T]) UpdateByID(id string, apply func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for idx := range c.items {
		if c.idOf(c.items[idx]) == id {
			apply(&c.items[idx])
			return true
		}
	}
	return false
}

// RemoveByID drops the item with the given id and clears the current slot
// when it pointed at the removed item.
func (c *Collection[T]) RemoveByID(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for idx := range c.items {
		if c.idOf(c.items[idx]) == id {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			if c.currentID == id {
				c.currentID = ""
			}
			return true
		}
	}
	return false
}

// SetCurrent points the current-item slot at the given id.
func (c *Collection[T]) SetCurrent(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentID = id
}

func (c *Collection[T]) ClearCurrent() {
	c.SetCurrent("")
}

// Current resolves the current-item slot against the list.
func (c *Collection[T]) Current() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var zero T
	if c.currentID == "" {
		return zero, false
	}
	for _, item := range c.items {
		if c.idOf(item) == c.currentID {
			return item, true
		}
	}
	return zero, false
}

func (c *Collection[T]) SetMeta(meta Meta) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.meta = meta
}

func (c *Collection[T]) Meta() Meta {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.meta
}

func (c *Collection[T]) SetLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.meta.Loading = loading
}

// Snapshot copies the list and metadata for a later Restore. Used by the
// optimistic protocol to roll a failed edit back.
func (c *Collection[T]) Snapshot() Snapshot[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot[T]{
		Items: append([]T(nil), c.items...),
		Meta:  c.meta,
	}
}

func (c *Collection[T]) Restore(snap Snapshot[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T(nil), snap.Items...)
	c.meta = snap.Meta
}

type Snapshot[T any] struct {
	Items []T
	Meta  Meta
}
