package cache

import (
	"container/list"
	"errors"
)

// ErrInvalidCapacity is returned by New when capacity is less than one.
var ErrInvalidCapacity = errors.New("cache capacity must be positive")

type entry[K comparable, V any] struct {
	key   K
	value V
}

// LRUCache is a capacity-bounded key-value cache with least-recently-used
// eviction. Lookups go through a map while recency order lives in a doubly
// linked list; the two structures always hold exactly the same key set.
//
// The cache is not safe for concurrent use. Callers that share it across
// goroutines must serialize access themselves.
type LRUCache[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	eviction *list.List // front = most recently used, back = eviction victim
	onEvict  func(key K, value V)
}

// New creates an empty cache bound to the given capacity. The capacity is
// fixed for the lifetime of the cache; values below one are rejected.
func New[K comparable, V any](capacity int) (*LRUCache[K, V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		eviction: list.New(),
	}, nil
}

// SetEvictCallback registers a function invoked with the key and value of
// every entry removed by eviction, Remove, or Clear.
func (c *LRUCache[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.onEvict = fn
}

// Get returns the value stored under key and marks it most recently used.
// A miss reports false and leaves the recency order untouched.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Put stores value under key and marks it most recently used. Overwriting an
// existing key does not change the entry count. Inserting a new key at
// capacity first evicts the least recently used entry, so the count never
// exceeds capacity. Returns the previous value and whether the key existed.
func (c *LRUCache[K, V]) Put(key K, value V) (V, bool) {
	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		ent := elem.Value.(*entry[K, V])
		old := ent.value
		ent.value = value
		return old, true
	}

	c.items[key] = c.eviction.PushFront(&entry[K, V]{key: key, value: value})
	if c.eviction.Len() > c.capacity {
		c.evictOldest()
	}

	var zero V
	return zero, false
}

// Remove deletes key from the cache. Returns the removed value and whether
// the key existed.
func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Len returns the number of entries currently held.
func (c *LRUCache[K, V]) Len() int {
	return c.eviction.Len()
}

// Cap returns the capacity the cache was constructed with.
func (c *LRUCache[K, V]) Cap() int {
	return c.capacity
}

// Clear removes every entry. The evict callback, if set, runs for each.
func (c *LRUCache[K, V]) Clear() {
	if c.onEvict != nil {
		for _, elem := range c.items {
			ent := elem.Value.(*entry[K, V])
			c.onEvict(ent.key, ent.value)
		}
	}
	c.items = make(map[K]*list.Element, c.capacity)
	c.eviction.Init()
}

func (c *LRUCache[K, V]) evictOldest() {
	if elem := c.eviction.Back(); elem != nil {
		c.removeElement(elem)
	}
}

func (c *LRUCache[K, V]) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	ent := elem.Value.(*entry[K, V])
	delete(c.items, ent.key)

	if c.onEvict != nil {
		c.onEvict(ent.key, ent.value)
	}
}
