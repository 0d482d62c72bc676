// Package cache provides a generic in-memory LRU cache with optional
// time-based expiry. It backs the template cache in labelkit engines but
// carries no template-specific behavior, so it can hold any value type.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// DefaultMaxSize is the entry limit applied when no WithMaxSize option is
// given.
const DefaultMaxSize = 1024

// Cache is a thread-safe string-keyed LRU cache. A max size of 0 disables
// caching entirely: Set becomes a no-op and Get always misses. A TTL of 0
// means entries never expire. Expired entries are dropped lazily on access.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]*entry[V]
	lru     *list.List

	maxSize int
	ttl     time.Duration
	onEvict func(key string)
}

type entry[V any] struct {
	key     string
	value   V
	expiry  time.Time
	element *list.Element
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	maxSize int
	ttl     time.Duration
	onEvict func(key string)
}

// WithMaxSize sets the maximum number of entries. When the cache is full the
// least recently used entry is evicted. Zero disables caching.
func WithMaxSize(n int) Option {
	return func(o *options) {
		o.maxSize = n
	}
}

// WithTTL sets the time-to-live for entries. Zero means no expiry.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.ttl = ttl
	}
}

// WithEvictionHook registers a callback invoked with the key of every entry
// removed by LRU eviction or lazy expiry. Explicit Remove and Clear calls do
// not trigger it. The hook runs while the cache lock is held, so it must not
// call back into the cache.
func WithEvictionHook(fn func(key string)) Option {
	return func(o *options) {
		if fn != nil {
			o.onEvict = fn
		}
	}
}

// New creates a cache with the given options.
func New[V any](opts ...Option) *Cache[V] {
	o := options{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxSize < 0 {
		o.maxSize = 0
	}
	return &Cache[V]{
		entries: make(map[string]*entry[V]),
		lru:     list.New(),
		maxSize: o.maxSize,
		ttl:     o.ttl,
		onEvict: o.onEvict,
	}
}

// Get retrieves a value and marks it most recently used.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.RLock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.RUnlock()
		return zero, false
	}
	expired := c.ttl > 0 && time.Now().After(e.expiry)
	value := e.value
	c.mu.RUnlock()

	if expired {
		c.expire(key)
		return zero, false
	}

	// Bumping LRU order needs the write lock. The entry may have been
	// removed between locks, so re-check before touching the list.
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		c.lru.MoveToFront(e.element)
	}
	c.mu.Unlock()

	return value, true
}

// Set stores a value, evicting the least recently used entry if the cache is
// full. Storing under an existing key replaces the value and resets its
// expiry.
func (c *Cache[V]) Set(key string, value V) {
	if c.maxSize == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		e.expiry = c.expiryTime()
		c.lru.MoveToFront(e.element)
		return
	}

	if c.lru.Len() >= c.maxSize {
		c.evictOldest()
	}

	e := &entry[V]{
		key:    key,
		value:  value,
		expiry: c.expiryTime(),
	}
	e.element = c.lru.PushFront(e)
	c.entries[key] = e
}

// GetOrCompute returns the cached value for key, computing and storing it on
// a miss. The compute function runs outside the cache lock, so concurrent
// callers may compute the same value; the result must not depend on how many
// times it is computed.
func (c *Cache[V]) GetOrCompute(key string, compute func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := compute()
	c.Set(key, v)
	return v
}

// Remove deletes an entry. It is a no-op if the key is not present.
func (c *Cache[V]) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return
	}
	delete(c.entries, key)
	c.lru.Remove(e.element)
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry[V])
	c.lru = list.New()
}

// Len returns the current number of entries, counting expired entries that
// have not yet been dropped.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// expire removes an entry found expired during Get and reports it to the
// eviction hook. The entry may have been replaced since the expiry check, so
// the expiry is re-verified under the write lock.
func (c *Cache[V]) expire(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return
	}
	if c.ttl > 0 && time.Now().After(e.expiry) {
		delete(c.entries, key)
		c.lru.Remove(e.element)
		if c.onEvict != nil {
			c.onEvict(key)
		}
	}
}

// evictOldest drops the least recently used entry. Callers must hold the
// write lock.
func (c *Cache[V]) evictOldest() {
	oldest := c.lru.Back()
	if oldest == nil {
		return
	}
	e := oldest.Value.(*entry[V])
	delete(c.entries, e.key)
	c.lru.Remove(oldest)
	if c.onEvict != nil {
		c.onEvict(e.key)
	}
}

func (c *Cache[V]) expiryTime() time.Time {
	if c.ttl > 0 {
		return time.Now().Add(c.ttl)
	}
	return time.Time{}
}
