package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"missing port", func(c *Config) { c.Address = "localhost" }, "invalid address"},
		{"empty host", func(c *Config) { c.Address = ":6379" }, "host and port"},
		{"database out of range", func(c *Config) { c.Database = 16 }, "between 0 and 15"},
		{"negative pool", func(c *Config) { c.MaxActive = -1 }, "pool sizes"},
		{"negative timeout", func(c *Config) { c.ReadTimeout = -time.Second }, "timeouts"},
		{"negative cache ttl", func(c *Config) { c.CacheTTLs["x"] = -time.Second }, "cache x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewRedisConfig()
			tt.modify(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	_, err := NewClient(NewRedisConfig().WithAddress("nope"))
	assert.Error(t, err)
}

func TestClientKey(t *testing.T) {
	client, err := NewClient(NewRedisConfig().WithKeyPrefix("habitat:"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.Equal(t, "habitat:rating-summaries::Sants|Barcelona", client.Key(cacheKey("rating-summaries", "Sants|Barcelona")))

	bare, err := NewClient(NewRedisConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = bare.Close() })
	assert.Equal(t, "k", bare.Key("k"))
}

func TestCacheTTL(t *testing.T) {
	config := NewRedisConfig().
		WithDefaultCacheTTL(time.Minute).
		WithCacheTTL("rating-summaries", 30*time.Second).
		WithCacheTTL("ignored", 0)
	client, err := NewClient(config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	named := NewCache(client, NewCacheOptions().WithCacheName("rating-summaries"))
	assert.Equal(t, 30*time.Second, named.ttl())
	assert.Equal(t, "rating-summaries::k", named.buildCacheKey("k"))

	fallback := NewCache(client, NewCacheOptions().WithCacheName("other"))
	assert.Equal(t, time.Minute, fallback.ttl())

	unnamed := NewCache(client, NewCacheOptions().WithTTL(5*time.Second))
	assert.Equal(t, 5*time.Second, unnamed.ttl())
	assert.Equal(t, "k", unnamed.buildCacheKey("k"))
	_, exists := config.CacheTTLs["ignored"]
	assert.False(t, exists)
}

func TestNewLock(t *testing.T) {
	client, err := NewClient(NewRedisConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	a := NewLock(client, "rating-warm-up", nil)
	b := NewLock(client, "rating-warm-up", nil)
	assert.Equal(t, "lock::rating-warm-up", a.key)
	assert.NotEqual(t, a.value, b.value, "each lock owns a distinct token")
}
