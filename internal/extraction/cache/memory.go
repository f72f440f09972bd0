package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultSize = 256
	DefaultTTL  = 24 * time.Hour
)

// MemoryCache is a size-bounded in-process cache whose entries expire after a TTL.
type MemoryCache struct {
	lru *expirable.LRU[string, string]
}

// NewMemoryCache builds a MemoryCache. Non-positive arguments take the defaults.
func NewMemoryCache(size int, ttl time.Duration) *MemoryCache {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{lru: expirable.NewLRU[string, string](size, nil, ttl)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	return c.lru.Get(key)
}

func (c *MemoryCache) Set(_ context.Context, key, value string) {
	c.lru.Add(key, value)
}

// Len returns the number of live entries.
func (c *MemoryCache) Len() int {
	return c.lru.Len()
}
