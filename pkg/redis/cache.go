package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// CacheOptions configures how a Cache encodes values and resolves its TTL.
type CacheOptions struct {
	// CacheName prefixes keys as CacheName::key and selects the TTL from Config.CacheTTLs
	CacheName string
	// TTL is used when the cache has no name
	TTL          time.Duration
	Serializer   func(interface{}) ([]byte, error)
	Deserializer func([]byte, interface{}) error
}

// NewCacheOptions returns JSON encoded options with a one hour TTL.
func NewCacheOptions() *CacheOptions {
	return &CacheOptions{
		TTL:          time.Hour,
		Serializer:   json.Marshal,
		Deserializer: json.Unmarshal,
	}
}

func (co *CacheOptions) WithCacheName(cacheName string) *CacheOptions {
	co.CacheName = cacheName
	return co
}

func (co *CacheOptions) WithTTL(ttl time.Duration) *CacheOptions {
	co.TTL = ttl
	return co
}

// Cache stores serialized values under a named key space.
type Cache struct {
	client *Client
	opts   *CacheOptions
}

func NewCache(client *Client, opts *CacheOptions) *Cache {
	if opts == nil {
		opts = NewCacheOptions()
	}
	return &Cache{client: client, opts: opts}
}

func (c *Cache) ttl() time.Duration {
	if c.opts.CacheName != "" {
		if ttl := c.client.config.cacheTTL(c.opts.CacheName); ttl > 0 {
			return ttl
		}
	}
	return c.opts.TTL
}

// buildCacheKey constructs the cache key using the CacheName::key format.
func (c *Cache) buildCacheKey(key string) string {
	return cacheKey(c.opts.CacheName, key)
}

func cacheKey(cacheName, key string) string {
	if cacheName != "" {
		return cacheName + "::" + key
	}
	return key
}

// Get decodes the cached value into dest and reports whether the key was present.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, found, err := c.client.GetBytes(ctx, c.buildCacheKey(key))
	if err != nil || !found {
		return false, err
	}
	if err := c.opts.Deserializer(data, dest); err != nil {
		return false, fmt.Errorf("failed to deserialize value: %w", err)
	}
	return true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := c.opts.Serializer(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.Set(ctx, c.buildCacheKey(key), data, c.ttl())
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	full := make([]string, len(keys))
	for i, key := range keys {
		full[i] = c.buildCacheKey(key)
	}
	return c.client.Delete(ctx, full...)
}

// Clear removes every entry of the cache.
func (c *Cache) Clear(ctx context.Context) (int, error) {
	return c.client.DeleteMatching(ctx, c.buildCacheKey("*"))
}
