package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthCheck pings Redis and reports pool statistics.
func HealthCheck(ctx context.Context, client *Client) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	details := map[string]string{
		"host":     client.config.Host,
		"port":     strconv.Itoa(client.config.Port),
		"database": strconv.Itoa(client.config.Database),
	}

	if err := client.Ping(ctx); err != nil {
		return details, err
	}

	stats := client.rdb.PoolStats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	return details, nil
}
