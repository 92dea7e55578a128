package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/patrickmn/go-cache"
)

// Cache is the process-wide cache for aggregated render data.
var Cache *cache.Cache

// InitCache sets up the global cache: 5 minute default expiry, cleanup every
// 10 minutes.
func InitCache() {
	Cache = cache.New(5*time.Minute, 10*time.Minute)
}

// CacheGet reads a value from the global cache.
func CacheGet(key string) (interface{}, bool) {
	return Cache.Get(key)
}

// CacheSet stores a value in the global cache with the given TTL.
func CacheSet(key string, value interface{}, duration time.Duration) {
	Cache.Set(key, value, duration)
}

type cacheItem[T any] struct {
	value     T
	expiredAt time.Time
}

// SearchCache is a bounded LRU over search results with per-entry TTL. The
// underlying LRU is thread safe, so it needs no extra locking.
type SearchCache[T any] struct {
	storage *lru.Cache[string, cacheItem[T]]
	ttl     time.Duration
}

// NewSearchCache builds a cache holding at most size entries, each valid for
// ttl after insertion. Non-positive sizes are raised to 1, so the cache is
// always usable.
func NewSearchCache[T any](size int, ttl time.Duration) *SearchCache[T] {
	if size <= 0 {
		size = 1
	}
	c, err := lru.New[string, cacheItem[T]](size)
	if err != nil {
		panic(err)
	}
	return &SearchCache[T]{storage: c, ttl: ttl}
}

// Set inserts or refreshes an entry.
func (c *SearchCache[T]) Set(key string, value T) {
	c.storage.Add(key, cacheItem[T]{
		value:     value,
		expiredAt: time.Now().Add(c.ttl),
	})
}

// Get returns the entry for key unless it has expired. Expired entries are
// evicted on read.
func (c *SearchCache[T]) Get(key string) (T, bool) {
	var zero T
	item, ok := c.storage.Get(key)
	if !ok {
		return zero, false
	}
	if time.Now().After(item.expiredAt) {
		c.storage.Remove(key)
		return zero, false
	}
	return item.value, true
}

// Len reports the number of live plus expired entries currently held.
func (c *SearchCache[T]) Len() int {
	return c.storage.Len()
}
