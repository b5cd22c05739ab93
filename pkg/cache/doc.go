// Package cache implements a generic LRU (Least Recently Used) cache with a
// fixed capacity set at construction.
//
// The cache couples a map (O(1) lookup) with a doubly linked list (O(1)
// recency maintenance). Every successful Get and every Put promotes the key
// to most recently used; inserting a new key at capacity evicts the entry at
// the least recently used end. Get, Put, Remove, and Len are all O(1).
//
// # Usage
//
//	c, err := cache.New[string, string](128)
//	if err != nil {
//		// capacity was not positive
//	}
//
//	c.Put("greeting", "hello")
//
//	if v, ok := c.Get("greeting"); ok {
//		// v == "hello", and "greeting" is now most recently used
//	}
//
// An optional callback observes removals, which is useful for logging or for
// releasing resources tied to evicted entries:
//
//	c.SetEvictCallback(func(key, value string) {
//		log.Printf("evicted %s", key)
//	})
//
// # Concurrency
//
// The cache performs no locking: even reads mutate recency order, so there is
// no useful read-only mode to protect. It is intended for single-goroutine
// use; wrap it in a mutex if it must be shared.
package cache
