package cache

import (
	"context"
	"fmt"

	gatewaycache "todo-api/internal/domain/gateway/cache"
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
)

// NewRedisClient connects to the server described by app.redis.* and registers the cache TTLs.
func NewRedisClient(ctx context.Context) (*redis.Client, error) {
	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithCacheTTL(gatewaycache.StatsCacheName, resource.GetDuration("app.stats.cache-ttl"))

	client, err := redis.NewClient(config)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}
