package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Allow sets a lock for subject/action lasting window. It returns false while a previous lock is alive.
// Without redis every call is allowed.
func Allow(ctx context.Context, rdb *redis.Client, subject, action string, window time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	wasSet, err := rdb.SetNX(ctx, key(subject, action), "locked", window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

// RetryAfter returns how long the current lock for subject/action still lives.
func RetryAfter(ctx context.Context, rdb *redis.Client, subject, action string) (time.Duration, error) {
	if rdb == nil {
		return 0, nil
	}
	return rdb.TTL(ctx, key(subject, action)).Result()
}

func Clear(ctx context.Context, rdb *redis.Client, subject, action string) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(ctx, key(subject, action)).Err()
}

func key(subject, action string) string {
	return fmt.Sprintf("rate_limit:%s:%s", action, subject)
}
