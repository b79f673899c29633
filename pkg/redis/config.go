package redis

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// Config holds the connection, pool and cache settings of a Client.
type Config struct {
	// Address is the host:port of the Redis server
	Address  string
	Password string
	// Database is the Redis database number, 0 to 15
	Database int
	// KeyPrefix namespaces every key written through the Client
	KeyPrefix    string
	MinIdleConns int
	MaxIdleConns int
	MaxActive    int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
	// CacheTTLs maps cache names to their TTL
	CacheTTLs map[string]time.Duration
	// DefaultCacheTTL applies to named caches missing from CacheTTLs
	DefaultCacheTTL time.Duration
}

// NewRedisConfig creates a configuration pointing at localhost with conservative pool sizes.
func NewRedisConfig() *Config {
	return &Config{
		Address:         "localhost:6379",
		MinIdleConns:    2,
		MaxIdleConns:    10,
		MaxActive:       50,
		MaxRetries:      3,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
		PoolTimeout:     4 * time.Second,
		CacheTTLs:       make(map[string]time.Duration),
		DefaultCacheTTL: 10 * time.Minute,
	}
}

func (c *Config) WithAddress(address string) *Config {
	c.Address = address
	return c
}

func (c *Config) WithPassword(password string) *Config {
	c.Password = password
	return c
}

func (c *Config) WithDatabase(database int) *Config {
	c.Database = database
	return c
}

func (c *Config) WithKeyPrefix(prefix string) *Config {
	c.KeyPrefix = strings.TrimSuffix(prefix, ":")
	return c
}

// WithCacheTTL sets the TTL of a named cache. Non-positive values are ignored.
func (c *Config) WithCacheTTL(cacheName string, ttl time.Duration) *Config {
	if ttl <= 0 {
		return c
	}
	if c.CacheTTLs == nil {
		c.CacheTTLs = make(map[string]time.Duration)
	}
	c.CacheTTLs[cacheName] = ttl
	return c
}

func (c *Config) WithDefaultCacheTTL(ttl time.Duration) *Config {
	c.DefaultCacheTTL = ttl
	return c
}

// Validate checks the configuration before a client is built.
func (c *Config) Validate() error {
	host, port, err := net.SplitHostPort(c.Address)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", c.Address, err)
	}
	if host == "" || port == "" {
		return fmt.Errorf("invalid address %q: host and port are required", c.Address)
	}
	if c.Database < 0 || c.Database > 15 {
		return fmt.Errorf("invalid database: %d, must be between 0 and 15", c.Database)
	}
	if c.MinIdleConns < 0 || c.MaxIdleConns < 0 || c.MaxActive < 0 {
		return fmt.Errorf("pool sizes must be non-negative")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("invalid max retries: %d, must be non-negative", c.MaxRetries)
	}
	if c.DialTimeout < 0 || c.ReadTimeout < 0 || c.WriteTimeout < 0 || c.PoolTimeout < 0 {
		return fmt.Errorf("timeouts must be non-negative")
	}
	for name, ttl := range c.CacheTTLs {
		if ttl < 0 {
			return fmt.Errorf("invalid TTL %v for cache %s", ttl, name)
		}
	}
	return nil
}

// cacheTTL returns the TTL configured for cacheName, falling back to DefaultCacheTTL.
func (c *Config) cacheTTL(cacheName string) time.Duration {
	if ttl, ok := c.CacheTTLs[cacheName]; ok {
		return ttl
	}
	return c.DefaultCacheTTL
}
