package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrLockNotAcquired is returned when the lock is held by someone else after every retry.
var ErrLockNotAcquired = errors.New("lock not acquired")

const unlockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`

// LockOptions configures acquisition of a distributed lock.
type LockOptions struct {
	TTL        time.Duration
	RetryDelay time.Duration
	// MaxRetries is the number of extra attempts after the first one
	MaxRetries    int
	LockNamespace string
}

func NewLockOptions() *LockOptions {
	return &LockOptions{
		TTL:           30 * time.Second,
		RetryDelay:    100 * time.Millisecond,
		LockNamespace: "lock",
	}
}

func (lo *LockOptions) WithTTL(ttl time.Duration) *LockOptions {
	lo.TTL = ttl
	return lo
}

func (lo *LockOptions) WithMaxRetries(maxRetries int) *LockOptions {
	lo.MaxRetries = maxRetries
	return lo
}

func (lo *LockOptions) WithRetryDelay(delay time.Duration) *LockOptions {
	lo.RetryDelay = delay
	return lo
}

// Lock is a single-owner lock backed by SET NX with a random token.
type Lock struct {
	client *Client
	key    string
	value  string
	opts   *LockOptions
}

func NewLock(client *Client, key string, opts *LockOptions) *Lock {
	if opts == nil {
		opts = NewLockOptions()
	}
	return &Lock{
		client: client,
		key:    cacheKey(opts.LockNamespace, key),
		value:  uuid.NewString(),
		opts:   opts,
	}
}

// Lock tries to acquire the lock, retrying up to MaxRetries times.
func (l *Lock) Lock(ctx context.Context) error {
	for attempt := 0; ; attempt++ {
		ok, err := l.client.SetNX(ctx, l.key, l.value, l.opts.TTL)
		if err != nil {
			return fmt.Errorf("failed to acquire lock: %w", err)
		}
		if ok {
			return nil
		}
		if attempt >= l.opts.MaxRetries {
			return ErrLockNotAcquired
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.opts.RetryDelay):
		}
	}
}

// Unlock releases the lock only if this instance still owns it.
func (l *Lock) Unlock(ctx context.Context) error {
	result, err := l.client.Eval(ctx, unlockScript, []string{l.key}, l.value)
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if n, ok := result.(int64); !ok || n == 0 {
		return fmt.Errorf("lock %s was not held by this client", l.key)
	}
	return nil
}

// LockWithFunc runs fn while holding the lock named key.
func LockWithFunc(ctx context.Context, client *Client, key string, opts *LockOptions, fn func(ctx context.Context) error) error {
	lock := NewLock(client, key, opts)
	if err := lock.Lock(ctx); err != nil {
		return err
	}
	defer func() {
		// the lock expires on its own if the release fails
		_ = lock.Unlock(context.WithoutCancel(ctx))
	}()

	return fn(ctx)
}
