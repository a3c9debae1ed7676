package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"anoa.com/nftmarketplace/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// JSONCache stores JSON encoded values in redis. A nil client disables caching.
type JSONCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewJSONCache(rdb *redis.Client, prefix string, ttl time.Duration) *JSONCache {
	return &JSONCache{rdb: rdb, prefix: prefix, ttl: ttl}
}

// GetOrLoad returns the cached value for key, or calls load and stores its result.
// Redis failures are logged and fall through to load.
func GetOrLoad[T any](ctx context.Context, c *JSONCache, key string, load func(context.Context) (T, error)) (T, error) {
	if c == nil || c.rdb == nil || c.ttl <= 0 {
		return load(ctx)
	}

	fullKey := c.prefix + ":" + key

	bs, err := c.rdb.Get(ctx, fullKey).Bytes()
	switch {
	case err == nil:
		var cached T
		if err := json.Unmarshal(bs, &cached); err == nil {
			return cached, nil
		}
		logger.Warn("discarding undecodable cache entry", zap.String("key", fullKey))
	case !errors.Is(err, redis.Nil):
		logger.Warn("cache read failed", zap.String("key", fullKey), zap.Error(err))
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if payload, err := json.Marshal(value); err == nil {
		if err := c.rdb.Set(ctx, fullKey, payload, c.ttl).Err(); err != nil {
			logger.Warn("cache write failed", zap.String("key", fullKey), zap.Error(err))
		}
	}
	return value, nil
}
