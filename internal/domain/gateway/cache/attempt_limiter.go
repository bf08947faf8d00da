package cache

import (
	"context"
	"time"

	"todo-api/pkg/redis"
)

// AttemptLimiter counts attempts per key in a fixed window.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type RedisAttemptLimiter struct {
	limiter *redis.RateLimiter
}

var _ AttemptLimiter = (*RedisAttemptLimiter)(nil)

func NewRedisAttemptLimiter(client *redis.Client, namespace string, maxAttempts int, window time.Duration) (*RedisAttemptLimiter, error) {
	limiter, err := redis.NewRateLimiter(client, namespace, maxAttempts, window)
	if err != nil {
		return nil, err
	}
	return &RedisAttemptLimiter{limiter: limiter}, nil
}

func (gateway *RedisAttemptLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return gateway.limiter.Allow(ctx, key)
}
