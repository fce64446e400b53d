// Package lru provides a fixed-capacity, recency-ordered key/value cache.
//
// Recency is a strict total order: every Set and every successful Get moves
// the key to the most-recently-used position. When a Set of a new key would
// exceed the capacity, the single least-recently-used key is evicted first.
// Peek, Has, Keys and Values never change the order.
//
// The cache is safe for concurrent use.
package lru

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity is used when a non-positive capacity is requested.
const DefaultCapacity = 100

// Cache is a bounded least-recently-used cache.
type Cache[K comparable, V any] struct {
	capacity int
	inner    *lru.Cache[K, V]
}

// New creates a cache holding at most capacity entries. A non-positive
// capacity falls back to DefaultCapacity.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return NewWithEvict[K, V](capacity, nil)
}

// NewWithEvict is like New but calls onEvict for every entry that leaves the
// cache, whether through capacity pressure, Delete or Clear. onEvict runs
// synchronously inside the call that removed the entry.
func NewWithEvict[K comparable, V any](capacity int, onEvict func(key K, value V)) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	// lru.NewWithEvict only fails for a non-positive size, excluded above.
	inner, _ := lru.NewWithEvict[K, V](capacity, onEvict)
	return &Cache[K, V]{capacity: capacity, inner: inner}
}

// Get returns the value for key and marks it most recently used.
// A miss returns the zero value and false without touching the order.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.inner.Get(key)
}

// Set stores value under key and marks it most recently used.
func (c *Cache[K, V]) Set(key K, value V) {
	c.inner.Add(key, value)
}

// Peek returns the value for key without updating its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	return c.inner.Peek(key)
}

// Has reports whether key is present without updating its recency.
func (c *Cache[K, V]) Has(key K) bool {
	return c.inner.Contains(key)
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	return c.inner.Remove(key)
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.inner.Purge()
}

// Keys returns the keys from least to most recently used.
func (c *Cache[K, V]) Keys() []K {
	return c.inner.Keys()
}

// Values returns the values from least to most recently used.
func (c *Cache[K, V]) Values() []V {
	return c.inner.Values()
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	return c.inner.Len()
}

// Capacity returns the maximum number of entries.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}
