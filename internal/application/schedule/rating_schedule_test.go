package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"habitat-api/internal/domain/entity"
	"habitat-api/internal/domain/model"
	"habitat-api/pkg/location"
	"habitat-api/pkg/redis"
)

type warmUpUseCase struct {
	mock.Mock
}

func (m *warmUpUseCase) Submit(context.Context, model.CreateRatingDTO) (*entity.NeighborhoodRating, error) {
	panic("not used")
}

func (m *warmUpUseCase) GetSummary(context.Context, string, string) (*entity.RatingSummary, error) {
	panic("not used")
}

func (m *warmUpUseCase) GetSummaryByDisplayName(context.Context, string) (*entity.RatingSummary, error) {
	panic("not used")
}

func (m *warmUpUseCase) ListCitySummaries(context.Context, string, int, int) (*model.Page[entity.RatingSummary], error) {
	panic("not used")
}

func (m *warmUpUseCase) ListForFilter(context.Context, string, string) ([]entity.RatingSummary, error) {
	panic("not used")
}

func (m *warmUpUseCase) RefreshSummary(context.Context, location.Key) (*entity.RatingSummary, error) {
	panic("not used")
}

func (m *warmUpUseCase) WarmUpSummaries(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type fakeLocker struct {
	err   error
	keys  []string
	ttls  []time.Duration
	calls int
}

func (l *fakeLocker) WithLock(ctx context.Context, key string, ttl time.Duration, fn func(ctx context.Context) error) error {
	l.calls++
	l.keys = append(l.keys, key)
	l.ttls = append(l.ttls, ttl)
	if l.err != nil {
		return l.err
	}
	return fn(ctx)
}

func TestExecuteScheduledTask(t *testing.T) {
	t.Run("runs under the lock", func(t *testing.T) {
		useCase := &warmUpUseCase{}
		useCase.On("WarmUpSummaries", mock.Anything).Return(3, nil).Once()
		locker := &fakeLocker{}

		NewRatingScheduler(useCase, locker, RatingSchedulerConfig{LockTTL: time.Minute}).ExecuteScheduledTask()

		useCase.AssertExpectations(t)
		assert.Equal(t, []string{warmUpLockKey}, locker.keys)
		assert.Equal(t, []time.Duration{time.Minute}, locker.ttls)
	})

	t.Run("skips when another instance holds the lock", func(t *testing.T) {
		useCase := &warmUpUseCase{}
		locker := &fakeLocker{err: redis.ErrLockNotAcquired}

		NewRatingScheduler(useCase, locker, RatingSchedulerConfig{}).ExecuteScheduledTask()

		useCase.AssertNotCalled(t, "WarmUpSummaries", mock.Anything)
		assert.Equal(t, []time.Duration{5 * time.Minute}, locker.ttls)
	})

	t.Run("warm-up errors are logged, not raised", func(t *testing.T) {
		useCase := &warmUpUseCase{}
		useCase.On("WarmUpSummaries", mock.Anything).Return(1, errors.New("timeout")).Once()

		assert.NotPanics(t, NewRatingScheduler(useCase, nil, RatingSchedulerConfig{}).ExecuteScheduledTask)
		useCase.AssertExpectations(t)
	})
}

func TestInitRatingScheduleTasks(t *testing.T) {
	t.Run("invalid cron", func(t *testing.T) {
		scheduler := NewRatingScheduler(&warmUpUseCase{}, nil, RatingSchedulerConfig{CronExpression: "every day"})
		assert.Error(t, scheduler.InitRatingScheduleTasks(context.Background()))
	})

	t.Run("runs on schedule", func(t *testing.T) {
		ran := make(chan struct{}, 1)
		useCase := &warmUpUseCase{}
		useCase.On("WarmUpSummaries", mock.Anything).Return(0, nil).Run(func(mock.Arguments) {
			select {
			case ran <- struct{}{}:
			default:
			}
		})

		scheduler := NewRatingScheduler(useCase, nil, RatingSchedulerConfig{CronExpression: "* * * * * *"})
		require.NoError(t, scheduler.InitRatingScheduleTasks(context.Background()))
		defer scheduler.Stop()

		select {
		case <-ran:
		case <-time.After(3 * time.Second):
			t.Fatal("warm-up did not run")
		}
	})
}
