// Package collection provides a generic, concurrency-safe keyed record collection.
package collection

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Keyed is implemented by record types stored in a Collection.
// WithKey must return a copy of the record carrying the given key.
type Keyed[T any] interface {
	Key() string
	WithKey(id string) T
}

// ErrDuplicateKey indicates an insert with an ID that is already present.
type ErrDuplicateKey struct {
	Kind string
	ID   string
}

func (e *ErrDuplicateKey) Error() string {
	return fmt.Sprintf("duplicate %s id: %s", e.Kind, e.ID)
}

// Collection holds records of one kind keyed by ID.
// List returns insertion order unless the collection was built with an ordering.
type Collection[T Keyed[T]] struct {
	kind string
	cmp  func(a, b T) int

	mu    sync.RWMutex
	items map[string]T
	keys  []string // insertion order
}

// New creates a collection listed in insertion order.
func New[T Keyed[T]](kind string) *Collection[T] {
	return &Collection[T]{
		kind:  kind,
		items: make(map[string]T),
	}
}

// NewOrdered creates a collection listed by cmp. Ties keep insertion order.
func NewOrdered[T Keyed[T]](kind string, cmp func(a, b T) int) *Collection[T] {
	c := New[T](kind)
	c.cmp = cmp
	return c
}

// Kind returns the record kind name.
func (c *Collection[T]) Kind() string {
	return c.kind
}

// Get returns the record with the given ID.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.items[id]
	return rec, ok
}

// List returns a copy of all records.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	out := make([]T, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.items[k])
	}
	c.mu.RUnlock()

	if c.cmp != nil {
		slices.SortStableFunc(out, c.cmp)
	}
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.keys)
}

// Insert adds a record, generating an ID when the record has none.
// The uniqueness check and the write happen under one lock.
func (c *Collection[T]) Insert(rec T) (T, error) {
	id := rec.Key()
	if id == "" {
		id = uuid.NewString()
		rec = rec.WithKey(id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; exists {
		var zero T
		return zero, &ErrDuplicateKey{Kind: c.kind, ID: id}
	}
	c.items[id] = rec
	c.keys = append(c.keys, id)
	return rec, nil
}
