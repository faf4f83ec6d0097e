// Package store keeps the client-side copy of a remote collection. It is
// the single source of truth for every screen: rows live here keyed by id,
// screens subscribe for change notifications, and every mutation goes
// through one optimistic apply/commit/rollback primitive, so toggling a
// field and deleting a row follow the same reconciliation rule.
package store

import (
	"context"
	"sync"

	"taskpurse/internal/common"
)

// Collection holds the rows of one remote collection in server order
// (newest first). Safe for concurrent use.
type Collection[T any] struct {
	id func(T) string

	mu    sync.RWMutex
	rows  map[string]T
	order []string

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewCollection builds an empty collection. id extracts the row key.
func NewCollection[T any](id func(T) string) *Collection[T] {
	return &Collection[T]{
		id:   id,
		rows: make(map[string]T),
		subs: make(map[int]func()),
	}
}

// Subscribe registers fn to run after every change. The returned function
// removes the subscription.
func (c *Collection[T]) Subscribe(fn func()) func() {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	n := c.nextSub
	c.nextSub++
	c.subs[n] = fn
	return func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		delete(c.subs, n)
	}
}

func (c *Collection[T]) notify() {
	c.subMu.Lock()
	fns := make([]func(), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Replace reconciles the collection with the result of a full fetch,
// keeping the server's ordering.
func (c *Collection[T]) Replace(rows []T) {
	c.mu.Lock()
	c.rows = make(map[string]T, len(rows))
	c.order = make([]string, 0, len(rows))
	for _, row := range rows {
		key := c.id(row)
		if _, dup := c.rows[key]; dup {
			continue
		}
		c.rows[key] = row
		c.order = append(c.order, key)
	}
	c.mu.Unlock()
	c.notify()
}

// Snapshot returns the rows in order. The slice is a copy; mutating it does
// not affect the collection, so derived views recompute from snapshots.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.rows[key])
	}
	return out
}

// Get returns the row with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	row, ok := c.rows[id]
	return row, ok
}

// Len returns the number of rows.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Insert adds a server-confirmed row at the head (rows are ordered newest
// first). Creates are confirm-then-apply because ids are server-assigned.
func (c *Collection[T]) Insert(row T) {
	key := c.id(row)
	c.mu.Lock()
	if _, exists := c.rows[key]; !exists {
		c.order = append([]string{key}, c.order...)
	}
	c.rows[key] = row
	c.mu.Unlock()
	c.notify()
}

// Apply is the single mutation primitive: it applies patch to the local row
// immediately, then runs commit (the remote write). If commit fails the
// saved row is restored and the error returned. Returns
// common.ErrorNotFound when no row has the given id.
func (c *Collection[T]) Apply(ctx context.Context, id string, patch func(T) T, commit func(context.Context) error) error {
	c.mu.Lock()
	prev, ok := c.rows[id]
	if !ok {
		c.mu.Unlock()
		return common.ErrorNotFound
	}
	c.rows[id] = patch(prev)
	c.mu.Unlock()
	c.notify()

	if err := commit(ctx); err != nil {
		c.mu.Lock()
		if _, still := c.rows[id]; still {
			c.rows[id] = prev
		}
		c.mu.Unlock()
		c.notify()
		return err
	}
	return nil
}

// Delete removes the row optimistically and runs commit. On commit failure
// the row is restored at its previous position.
func (c *Collection[T]) Delete(ctx context.Context, id string, commit func(context.Context) error) error {
	c.mu.Lock()
	prev, ok := c.rows[id]
	if !ok {
		c.mu.Unlock()
		return common.ErrorNotFound
	}
	pos := c.indexOf(id)
	delete(c.rows, id)
	c.order = append(c.order[:pos], c.order[pos+1:]...)
	c.mu.Unlock()
	c.notify()

	if err := commit(ctx); err != nil {
		c.mu.Lock()
		if _, back := c.rows[id]; !back {
			c.rows[id] = prev
			if pos > len(c.order) {
				pos = len(c.order)
			}
			c.order = append(c.order[:pos], append([]string{id}, c.order[pos:]...)...)
		}
		c.mu.Unlock()
		c.notify()
		return err
	}
	return nil
}

// indexOf must be called with mu held.
func (c *Collection[T]) indexOf(id string) int {
	for i, key := range c.order {
		if key == id {
			return i
		}
	}
	return -1
}

// Clear drops all rows, e.g. on sign-out.
func (c *Collection[T]) Clear() {
	c.mu.Lock()
	c.rows = make(map[string]T)
	c.order = nil
	c.mu.Unlock()
	c.notify()
}
