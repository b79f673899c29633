package redis

import (
	"context"
	"fmt"
	"time"

	"habitat-api/internal/domain/gateway/cache"
	"habitat-api/pkg/redis"
	"habitat-api/pkg/resource"
)

// ConfigFromProperties reads the app.redis.* properties.
func ConfigFromProperties() *redis.Config {
	return redis.NewRedisConfig().
		WithAddress(resource.GetString("app.redis.address")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.db")).
		WithKeyPrefix(resource.GetString("app.redis.key-prefix")).
		WithCacheTTL(cache.SummaryCacheName, resource.GetDuration("app.redis.cache.rating-summaries.ttl"))
}

// Open creates the client and checks that the server answers.
func Open(ctx context.Context, config *redis.Config) (*redis.Client, error) {
	client, err := redis.NewClient(config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", config.Address, err)
	}
	return client, nil
}
