package ratelimit

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Lua script for atomic increment with TTL set on first increment.
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const incrWithTTLScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// RedisLimiter is a fixed-window counter backed by Redis, shared across
// server instances. Allow returns an error when Redis is unreachable so the
// caller can fall back to a local limiter.
type RedisLimiter struct {
	client *goredis.Client
	limit  int
	window time.Duration
	prefix string
}

func NewRedisLimiter(client *goredis.Client, limit int, window time.Duration, prefix string) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: prefix,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	ttlSeconds := int(r.window.Seconds())

	raw, err := r.client.Eval(ctx, incrWithTTLScript, []string{r.prefix + key}, ttlSeconds).Result()
	if err != nil {
		return Result{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := raw.([]interface{})
	if !ok || len(arr) < 2 {
		return Result{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return Result{
		Count:   int(count),
		Limit:   r.limit,
		ResetAt: time.Now().Add(time.Duration(ttl) * time.Second),
	}, nil
}
