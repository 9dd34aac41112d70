package repositories

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// memoryCollection holds one entity collection in process memory.
// Mutations build a new slice and swap it in whole; readers only ever get copies.
type memoryCollection[T any] struct {
	mu    sync.RWMutex
	items []T
	idOf  func(*T) uuid.UUID
}

func newMemoryCollection[T any](idOf func(*T) uuid.UUID) *memoryCollection[T] {
	return &memoryCollection[T]{
		items: []T{},
		idOf:  idOf,
	}
}

func (c *memoryCollection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

func (c *memoryCollection[T]) find(id uuid.UUID) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.items {
		if c.idOf(&c.items[i]) == id {
			return c.items[i], true
		}
	}

	var zero T
	return zero, false
}

func (c *memoryCollection[T]) count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// replace computes the next collection from the current one under the write lock
func (c *memoryCollection[T]) replace(next func(current []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated, err := next(slices.Clone(c.items))
	if err != nil {
		return err
	}

	if updated == nil {
		updated = []T{}
	}
	c.items = updated
	return nil
}

func (c *memoryCollection[T]) indexOf(items []T, id uuid.UUID) int {
	return slices.IndexFunc(items, func(item T) bool {
		return c.idOf(&item) == id
	})
}

func (c *memoryCollection[T]) insert(item T, duplicate error) error {
	return c.replace(func(current []T) ([]T, error) {
		if c.indexOf(current, c.idOf(&item)) >= 0 {
			return nil, duplicate
		}
		return append(current, item), nil
	})
}

// insertUnless appends item unless conflict rejects one of the stored items.
// The check and the append run under the same write lock.
func (c *memoryCollection[T]) insertUnless(item T, conflict func(existing *T) error) error {
	return c.replace(func(current []T) ([]T, error) {
		for i := range current {
			if err := conflict(&current[i]); err != nil {
				return nil, err
			}
		}
		return append(current, item), nil
	})
}

// modify replaces the item with id by change(item) under the write lock and returns the stored value
func (c *memoryCollection[T]) modify(id uuid.UUID, change func(T) (T, error), notFound error) (T, error) {
	var result T
	err := c.replace(func(current []T) ([]T, error) {
		pos := c.indexOf(current, id)
		if pos < 0 {
			return nil, notFound
		}
		updated, err := change(current[pos])
		if err != nil {
			return nil, err
		}
		current[pos] = updated
		result = updated
		return current, nil
	})
	return result, err
}

func (c *memoryCollection[T]) swap(item T, notFound error) error {
	return c.replace(func(current []T) ([]T, error) {
		pos := c.indexOf(current, c.idOf(&item))
		if pos < 0 {
			return nil, notFound
		}
		current[pos] = item
		return current, nil
	})
}

func (c *memoryCollection[T]) remove(id uuid.UUID, notFound error) error {
	return c.replace(func(current []T) ([]T, error) {
		pos := c.indexOf(current, id)
		if pos < 0 {
			return nil, notFound
		}
		return slices.Delete(current, pos, pos+1), nil
	})
}

func (c *memoryCollection[T]) replaceAll(items []T, duplicate error) error {
	seen := make(map[uuid.UUID]struct{}, len(items))
	for i := range items {
		id := c.idOf(&items[i])
		if _, ok := seen[id]; ok {
			return duplicate
		}
		seen[id] = struct{}{}
	}

	cloned := slices.Clone(items)
	return c.replace(func([]T) ([]T, error) {
		return cloned, nil
	})
}
