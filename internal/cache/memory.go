package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is an in-process cache with expiration
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a memory cache with the given default TTL
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{store: gocache.New(defaultTTL, cleanupInterval)}
}

func (c *MemoryCache) Get(key string) ([]byte, bool) {
	if v, ok := c.store.Get(key); ok {
		return v.([]byte), true
	}
	return nil, false
}

func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	c.store.Set(key, value, ttl)
	return nil
}

func (c *MemoryCache) Delete(key string) error {
	c.store.Delete(key)
	return nil
}

func (c *MemoryCache) Clear() error {
	c.store.Flush()
	return nil
}
