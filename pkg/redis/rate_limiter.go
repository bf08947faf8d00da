package redis

import (
	"context"
	"fmt"
	"time"
)

// INCR the window counter and start its TTL on the first hit.
const fixedWindowScript = `
	local count = redis.call("INCR", KEYS[1])
	if count == 1 then
		redis.call("PEXPIRE", KEYS[1], ARGV[1])
	end
	return count
`

// RateLimiter allows at most Limit hits per key within each Window.
type RateLimiter struct {
	client    *Client
	namespace string
	limit     int
	window    time.Duration
}

func NewRateLimiter(client *Client, namespace string, limit int, window time.Duration) (*RateLimiter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit: %d, must be positive", limit)
	}
	if window <= 0 {
		return nil, fmt.Errorf("invalid window: %v, must be positive", window)
	}
	return &RateLimiter{client: client, namespace: namespace, limit: limit, window: window}, nil
}

// Allow records a hit for key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	fullKey := "ratelimit::" + rl.namespace + "::" + key
	count, err := rl.client.GetClient().Eval(ctx, fixedWindowScript, []string{fullKey}, rl.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}
	return count <= int64(rl.limit), nil
}
