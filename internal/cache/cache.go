package cache

import (
	"sync"
	"time"
)

// Cache defines a generic key-value cache with expiring entries.
type Cache[T any] interface {
	// Get retrieves a live value from the cache
	Get(key string) (T, bool)

	// Set stores a value in the cache with the configured TTL
	Set(key string, data T)

	// Delete removes a key from the cache, expired or not
	Delete(key string)

	// Size returns the current number of items in the cache
	Size() int
}

// Cleaner interface for caches that support cleanup of expired entries
type Cleaner interface {
	CleanExpired() int
}

type cacheItem[T any] struct {
	data      T
	expiresAt time.Time
}

// TTLCache is a mutex-guarded map cache where every entry expires after a
// fixed duration. There is no capacity bound: the expected cardinality is one
// entry per active user-month.
type TTLCache[T any] struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]cacheItem[T]
}

// NewTTLCache creates a cache whose entries live for ttl.
func NewTTLCache[T any](ttl time.Duration) *TTLCache[T] {
	return &TTLCache[T]{
		ttl:   ttl,
		items: make(map[string]cacheItem[T]),
	}
}

func (c *TTLCache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	item, exists := c.items[key]
	c.mu.RUnlock()

	var zero T
	if !exists {
		return zero, false
	}
	if time.Now().After(item.expiresAt) {
		c.Delete(key)
		return zero, false
	}
	return item.data, true
}

func (c *TTLCache[T]) Set(key string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = cacheItem[T]{
		data:      data,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *TTLCache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

func (c *TTLCache[T]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// CleanExpired removes all expired entries and returns how many were removed.
func (c *TTLCache[T]) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	cleaned := 0
	now := time.Now()
	for key, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, key)
			cleaned++
		}
	}
	return cleaned
}

// StartCleanup sweeps expired entries on the given interval until stop is closed.
func (c *TTLCache[T]) StartCleanup(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.CleanExpired()
			case <-stop:
				return
			}
		}
	}()
}
