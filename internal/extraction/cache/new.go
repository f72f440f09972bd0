package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"inbox-planner/config"
	"inbox-planner/internal/extraction"
	pkgLog "inbox-planner/pkg/log"
)

const pingTimeout = 2 * time.Second

// New picks the cache backend from cfg. When Redis is configured but unreachable the
// in-memory cache is used instead. The returned close func is never nil.
func New(ctx context.Context, cfg config.CacheConfig, l pkgLog.Logger) (extraction.Cache, func() error) {
	mem := NewMemoryCache(cfg.Size, cfg.TTL)
	if cfg.RedisAddr == "" {
		return mem, func() error { return nil }
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		l.Warnf(ctx, "cache.New: redis %s unreachable, using memory cache: %v", cfg.RedisAddr, err)
		_ = rdb.Close()
		return mem, func() error { return nil }
	}

	l.Infof(ctx, "cache.New: using redis at %s", cfg.RedisAddr)
	return NewRedisCache(rdb, cfg.TTL, l), rdb.Close
}
