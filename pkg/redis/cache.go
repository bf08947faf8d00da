package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores JSON values under CacheName::key.
type Cache struct {
	client    *Client
	cacheName string
	ttl       time.Duration
}

// NewCache creates a cache whose TTL comes from the client configuration for cacheName.
func NewCache(client *Client, cacheName string) *Cache {
	return &Cache{client: client, cacheName: cacheName, ttl: resolveTTL(client.config, cacheName)}
}

func resolveTTL(config *Config, cacheName string) time.Duration {
	if ttl, ok := config.CacheTTLs[cacheName]; ok {
		return ttl
	}
	return config.DefaultCacheTTL
}

func (c *Cache) buildCacheKey(key string) string {
	if c.cacheName != "" {
		return c.cacheName + "::" + key
	}
	return key
}

// Get decodes the cached value into dest. Missing keys return ErrNotFound.
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.GetBytes(ctx, c.buildCacheKey(key))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Set stores value with the cache TTL.
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.Set(ctx, c.buildCacheKey(key), data, c.ttl)
}

// Delete removes a value from cache
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildCacheKey(key))
}
