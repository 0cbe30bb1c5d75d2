// Package cache provides a bounded, concurrency-safe LRU cache with an
// optional time-to-live. Caches are plain values owned by the component that
// uses them; there is no package-level state.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// entry is the value stored in the recency list.
type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time // zero means no expiry
}

// Cache is an LRU cache holding at most size entries. When full, the least
// recently used entry is evicted. Entries older than ttl are treated as
// missing and dropped on access.
type Cache[K comparable, V any] struct {
	mu    sync.Mutex
	size  int
	ttl   time.Duration
	ll    *list.List
	items map[K]*list.Element

	// now is swapped in tests.
	now func() time.Time
}

// New creates a cache holding at most size entries (minimum 1). A ttl <= 0
// disables expiry.
func New[K comparable, V any](size int, ttl time.Duration) *Cache[K, V] {
	if size < 1 {
		size = 1
	}

	return &Cache[K, V]{
		size:  size,
		ttl:   ttl,
		ll:    list.New(),
		items: make(map[K]*list.Element, size),
		now:   time.Now,
	}
}

// Get returns the value for key and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.get(key)
}

// Set inserts or replaces the value for key, evicting the least recently
// used entry when the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.set(key, value)
}

// GetOrSet returns the cached value for key, or stores and returns the value
// produced by fn. fn runs under the cache lock and must not call back into it.
func (c *Cache[K, V]) GetOrSet(key K, fn func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.get(key); ok {
		return v
	}

	v := fn()
	c.set(key, v)

	return v
}

// Delete removes key from the cache.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.remove(el)
	}
}

// Len returns the number of entries, including expired ones not yet dropped.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.ll.Len()
}

// Purge removes every entry.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ll.Init()
	c.items = make(map[K]*list.Element, c.size)
}

func (c *Cache[K, V]) get(key K) (V, bool) {
	var zero V

	el, ok := c.items[key]
	if !ok {
		return zero, false
	}

	e := el.Value.(*entry[K, V]) //nolint: forcetypeassert
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		c.remove(el)

		return zero, false
	}

	c.ll.MoveToFront(el)

	return e.value, true
}

func (c *Cache[K, V]) set(key K, value V) {
	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = c.now().Add(c.ttl)
	}

	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry[K, V]) //nolint: forcetypeassert
		e.value = value
		e.expiresAt = expiresAt
		c.ll.MoveToFront(el)

		return
	}

	c.items[key] = c.ll.PushFront(&entry[K, V]{key: key, value: value, expiresAt: expiresAt})
	for c.ll.Len() > c.size {
		c.remove(c.ll.Back())
	}
}

func (c *Cache[K, V]) remove(el *list.Element) {
	c.ll.Remove(el)
	delete(c.items, el.Value.(*entry[K, V]).key) //nolint: forcetypeassert
}
