package cache

import (
	"context"

	"habitat-api/internal/domain/entity"
	"habitat-api/pkg/location"
	"habitat-api/pkg/redis"
)

type RedisSummaryCache struct {
	cache *redis.Cache
}

var _ SummaryCache = (*RedisSummaryCache)(nil)

func NewRedisSummaryCache(client *redis.Client) *RedisSummaryCache {
	return &RedisSummaryCache{
		cache: redis.NewCache(client, redis.NewCacheOptions().WithCacheName(SummaryCacheName)),
	}
}

func (c *RedisSummaryCache) Get(ctx context.Context, key location.Key) (*entity.RatingSummary, bool, error) {
	var summary entity.RatingSummary
	found, err := c.cache.Get(ctx, summaryKey(key), &summary)
	if err != nil || !found {
		return nil, false, err
	}
	return &summary, true, nil
}

func (c *RedisSummaryCache) Set(ctx context.Context, key location.Key, summary entity.RatingSummary) error {
	return c.cache.Set(ctx, summaryKey(key), summary)
}

func (c *RedisSummaryCache) Delete(ctx context.Context, key location.Key) error {
	return c.cache.Delete(ctx, summaryKey(key))
}
