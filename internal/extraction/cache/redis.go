package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	pkgLog "inbox-planner/pkg/log"
)

// RedisCache shares answers across runs. Redis failures are logged and treated as
// misses so extraction keeps working without it.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
	l   pkgLog.Logger
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration, l pkgLog.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{rdb: rdb, ttl: ttl, l: l}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	v, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.l.Warnf(ctx, "cache.RedisCache.Get: key=%s err=%v", key, err)
		}
		return "", false
	}
	return v, true
}

func (c *RedisCache) Set(ctx context.Context, key, value string) {
	if err := c.rdb.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.l.Warnf(ctx, "cache.RedisCache.Set: key=%s err=%v", key, err)
	}
}
