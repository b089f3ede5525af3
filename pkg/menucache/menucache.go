// Package menucache holds one cached value behind a static tag, invalidated
// out-of-band by admin mutations. It backs the hot public menu read; the
// /data variant queries the database directly and skips it.
package menucache

import (
	"sync"
)

type Cache[T any] struct {
	mu    sync.RWMutex
	value T
	valid bool
}

func New[T any]() *Cache[T] {
	return &Cache[T]{}
}

func (c *Cache[T]) Get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value, c.valid
}

func (c *Cache[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	c.valid = true
	c.mu.Unlock()
}

func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	var zero T
	c.value = zero
	c.valid = false
	c.mu.Unlock()
}
