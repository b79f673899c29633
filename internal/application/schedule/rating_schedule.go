package schedule

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"habitat-api/internal/domain/usecase/rating"
	"habitat-api/pkg/log"
	"habitat-api/pkg/metrics"
	"habitat-api/pkg/msg"
	"habitat-api/pkg/redis"
)

const (
	warmUpJob     = "rating-summary-warm-up"
	warmUpLockKey = "rating-warm-up"
)

// RatingSchedulerConfig holds configuration for the rating scheduler
type RatingSchedulerConfig struct {
	// CronExpression uses the six field format with seconds
	CronExpression string
	LockTTL        time.Duration
}

// Locker runs fn while holding the named distributed lock.
type Locker interface {
	WithLock(ctx context.Context, key string, ttl time.Duration, fn func(ctx context.Context) error) error
}

// RedisLocker takes the lock with redis.LockWithFunc and does not retry: a busy lock means
// another instance is running the job.
type RedisLocker struct {
	Client *redis.Client
}

func (l RedisLocker) WithLock(ctx context.Context, key string, ttl time.Duration, fn func(ctx context.Context) error) error {
	return redis.LockWithFunc(ctx, l.Client, key, redis.NewLockOptions().WithTTL(ttl).WithMaxRetries(0), fn)
}

// RatingScheduler warms up the rating summary cache on a cron schedule. Each run is guarded
// by a distributed lock so only one instance performs it.
type RatingScheduler struct {
	cron    *cron.Cron
	useCase rating.UseCase
	locker  Locker
	config  RatingSchedulerConfig

	mu  sync.Mutex
	ctx context.Context
}

// NewRatingScheduler creates the scheduler. A nil locker runs every job without locking.
func NewRatingScheduler(useCase rating.UseCase, locker Locker, config RatingSchedulerConfig) *RatingScheduler {
	return &RatingScheduler{
		cron:    cron.New(cron.WithSeconds()),
		useCase: useCase,
		locker:  locker,
		config:  config,
		ctx:     context.Background(),
	}
}

// InitRatingScheduleTasks registers the warm-up job and starts the cron. Jobs receive ctx and
// stop early once it is cancelled.
func (s *RatingScheduler) InitRatingScheduleTasks(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
		log.Error(msg.GetMessage("schedule.register-error", warmUpJob, err))
		return err
	}
	s.cron.Start()
	log.Info(msg.GetMessage("schedule.register", warmUpJob, s.config.CronExpression))
	return nil
}

// ExecuteScheduledTask runs one warm-up
func (s *RatingScheduler) ExecuteScheduledTask() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	requestID := uuid.New().String()
	if s.locker == nil {
		s.warmUp(ctx, requestID)
		return
	}

	err := s.locker.WithLock(ctx, warmUpLockKey, s.getLockTTL(), func(ctx context.Context) error {
		s.warmUp(ctx, requestID)
		return nil
	})
	switch {
	case errors.Is(err, redis.ErrLockNotAcquired):
		log.Info(msg.GetMessage("schedule.warm-up.skipped"), zap.String("request_id", requestID))
	case err != nil:
		log.Error(msg.GetMessage("schedule.warm-up.error", err), zap.String("request_id", requestID))
	}
}

func (s *RatingScheduler) warmUp(ctx context.Context, requestID string) {
	log.Info(msg.GetMessage("schedule.warm-up.start"), zap.String("request_id", requestID))

	start := time.Now()
	refreshed, err := s.useCase.WarmUpSummaries(ctx)
	metrics.WarmUpDurationMs.Observe(float64(time.Since(start).Milliseconds()))

	if err != nil {
		log.Error(msg.GetMessage("schedule.warm-up.error", err), zap.String("request_id", requestID), zap.Int("refreshed", refreshed))
		return
	}
	log.Info(msg.GetMessage("schedule.warm-up.done", refreshed), zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler, waiting for a running job
func (s *RatingScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *RatingScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 5 * time.Minute
}
