package cache

import (
	"context"
	"errors"

	"todo-api/internal/domain/model"
	"todo-api/pkg/redis"
)

const StatsCacheName = "stats"

// StatsCache holds the computed statistics of each user until the next mutation.
type StatsCache interface {
	Get(ctx context.Context, userID string) (*model.StatsResponse, bool, error)
	Set(ctx context.Context, userID string, stats model.StatsResponse) error
	Evict(ctx context.Context, userID string) error
}

type RedisStatsCache struct {
	cache *redis.Cache
}

var _ StatsCache = (*RedisStatsCache)(nil)

func NewRedisStatsCache(client *redis.Client) *RedisStatsCache {
	return &RedisStatsCache{cache: redis.NewCache(client, StatsCacheName)}
}

func (gateway *RedisStatsCache) Get(ctx context.Context, userID string) (*model.StatsResponse, bool, error) {
	var stats model.StatsResponse
	err := gateway.cache.Get(ctx, userID, &stats)
	if errors.Is(err, redis.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &stats, true, nil
}

func (gateway *RedisStatsCache) Set(ctx context.Context, userID string, stats model.StatsResponse) error {
	return gateway.cache.Set(ctx, userID, stats)
}

func (gateway *RedisStatsCache) Evict(ctx context.Context, userID string) error {
	return gateway.cache.Delete(ctx, userID)
}
