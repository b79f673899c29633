package rating

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
)

type gatewayMock struct{ mock.Mock }

func (m *gatewayMock) Create(ctx context.Context, rating entity.NeighborhoodRating) (*entity.NeighborhoodRating, error) {
	args := m.Called(ctx, rating)
	created, _ := args.Get(0).(*entity.NeighborhoodRating)
	return created, args.Error(1)
}

func (m *gatewayMock) Summarize(ctx context.Context, key location.Key) (*entity.RatingSummary, error) {
	args := m.Called(ctx, key)
	summary, _ := args.Get(0).(*entity.RatingSummary)
	return summary, args.Error(1)
}

func (m *gatewayMock) SummarizeCity(ctx context.Context, city string, offset int, limit int) ([]entity.RatingSummary, error) {
	args := m.Called(ctx, city, offset, limit)
	summaries, _ := args.Get(0).([]entity.RatingSummary)
	return summaries, args.Error(1)
}

func (m *gatewayMock) SummarizeNeighborhoods(ctx context.Context, city string, neighborhoods []string) ([]entity.RatingSummary, error) {
	args := m.Called(ctx, city, neighborhoods)
	summaries, _ := args.Get(0).([]entity.RatingSummary)
	return summaries, args.Error(1)
}

func (m *gatewayMock) CountRatedInCity(ctx context.Context, city string) (int64, error) {
	args := m.Called(ctx, city)
	return args.Get(0).(int64), args.Error(1)
}

func (m *gatewayMock) ListRatedKeys(ctx context.Context) ([]location.Key, error) {
	args := m.Called(ctx)
	keys, _ := args.Get(0).([]location.Key)
	return keys, args.Error(1)
}

type cacheMock struct{ mock.Mock }

func (m *cacheMock) Get(ctx context.Context, key location.Key) (*entity.RatingSummary, bool, error) {
	args := m.Called(ctx, key)
	summary, _ := args.Get(0).(*entity.RatingSummary)
	return summary, args.Bool(1), args.Error(2)
}

func (m *cacheMock) Set(ctx context.Context, key location.Key, summary entity.RatingSummary) error {
	return m.Called(ctx, key, summary).Error(0)
}

func (m *cacheMock) Delete(ctx context.Context, key location.Key) error {
	return m.Called(ctx, key).Error(0)
}

type senderMock struct{ mock.Mock }

func (m *senderMock) SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) (string, error) {
	args := m.Called(ctx, queueName, body, attributes)
	return args.String(0), args.Error(1)
}

var (
	ctx       = context.Background()
	santsKey  = location.Key{Neighborhood: "Sants", District: "Sants-Montjuïc", City: "Barcelona"}
	submitted = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
)

func validDTO() model.CreateRatingDTO {
	return model.CreateRatingDTO{
		Neighborhood:    "Sants",
		City:            "Barcelona",
		Security:        7,
		Parking:         4,
		FamilyFriendly:  8,
		PublicTransport: 9,
		GreenSpaces:     6,
		Services:        8,
	}
}

func TestSubmit(t *testing.T) {
	t.Run("stores, invalidates and publishes", func(t *testing.T) {
		gateway, cache, sender := &gatewayMock{}, &cacheMock{}, &senderMock{}
		uc := NewRatingUseCase(gateway, cache, sender, Config{EventsQueue: "rating-events"})

		gateway.On("Create", ctx, mock.MatchedBy(func(r entity.NeighborhoodRating) bool {
			return r.District == "Sants-Montjuïc" && r.Security == 7
		})).Return(&entity.NeighborhoodRating{ID: "r-1", Neighborhood: "Sants", District: "Sants-Montjuïc", City: "Barcelona", CreatedAt: submitted}, nil)
		cache.On("Delete", ctx, santsKey).Return(nil)
		sender.On("SendMessage", ctx, "rating-events", model.RatingEvent{
			RatingID: "r-1", Neighborhood: "Sants", District: "Sants-Montjuïc", City: "Barcelona", SubmittedAt: submitted,
		}, map[string]string{"city": "Barcelona"}).Return("m-1", nil)

		created, err := uc.Submit(ctx, validDTO())
		require.NoError(t, err)
		assert.Equal(t, "r-1", created.ID)
		gateway.AssertExpectations(t)
		cache.AssertExpectations(t)
		sender.AssertNumberOfCalls(t, "SendMessage", 1)
	})

	t.Run("publish and cache failures do not fail the submission", func(t *testing.T) {
		gateway, cache, sender := &gatewayMock{}, &cacheMock{}, &senderMock{}
		uc := NewRatingUseCase(gateway, cache, sender, Config{EventsQueue: "rating-events"})

		gateway.On("Create", ctx, mock.Anything).Return(&entity.NeighborhoodRating{ID: "r-2", Neighborhood: "Sants", City: "Barcelona"}, nil)
		cache.On("Delete", ctx, santsKey).Return(errors.New("redis down"))
		sender.On("SendMessage", ctx, "rating-events", mock.Anything, mock.Anything).Return("", errors.New("queue down"))

		_, err := uc.Submit(ctx, validDTO())
		assert.NoError(t, err)
	})

	t.Run("accepts the matching district and runs without cache or queue", func(t *testing.T) {
		gateway := &gatewayMock{}
		uc := NewRatingUseCase(gateway, nil, nil, Config{})
		gateway.On("Create", ctx, mock.Anything).Return(&entity.NeighborhoodRating{ID: "r-3"}, nil)

		dto := validDTO()
		dto.District = "Sants-Montjuïc"
		_, err := uc.Submit(ctx, dto)
		assert.NoError(t, err)
	})

	t.Run("rejections", func(t *testing.T) {
		tests := []struct {
			name   string
			modify func(dto *model.CreateRatingDTO)
			want   error
		}{
			{"score below range", func(d *model.CreateRatingDTO) { d.Security = 0 }, ErrInvalidScore},
			{"score above range", func(d *model.CreateRatingDTO) { d.Services = 11 }, ErrInvalidScore},
			{"missing neighborhood", func(d *model.CreateRatingDTO) { d.Neighborhood = " " }, ErrMissingField},
			{"missing city", func(d *model.CreateRatingDTO) { d.City = "" }, ErrMissingField},
			{"unknown city", func(d *model.CreateRatingDTO) { d.City = "Atlantis" }, ErrUnknownCity},
			{"unknown neighborhood", func(d *model.CreateRatingDTO) { d.Neighborhood = "Nonexistent Place" }, ErrUnknownNeighborhood},
			{"district as neighborhood", func(d *model.CreateRatingDTO) { d.Neighborhood = "Eixample" }, ErrUnknownNeighborhood},
			{"neighborhood of another city", func(d *model.CreateRatingDTO) { d.Neighborhood = "Retiro"; d.City = "Barcelona" }, ErrUnknownNeighborhood},
			{"district mismatch", func(d *model.CreateRatingDTO) { d.District = "Gràcia" }, ErrDistrictMismatch},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				gateway := &gatewayMock{}
				uc := NewRatingUseCase(gateway, nil, nil, Config{})
				dto := validDTO()
				tt.modify(&dto)

				_, err := uc.Submit(ctx, dto)
				assert.ErrorIs(t, err, tt.want)
				gateway.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("store failure", func(t *testing.T) {
		gateway := &gatewayMock{}
		uc := NewRatingUseCase(gateway, nil, nil, Config{})
		gateway.On("Create", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

		_, err := uc.Submit(ctx, validDTO())
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestGetSummary(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		gateway, cache := &gatewayMock{}, &cacheMock{}
		uc := NewRatingUseCase(gateway, cache, nil, Config{})
		cached := &entity.RatingSummary{Neighborhood: "Sants", Count: 3}
		cache.On("Get", ctx, santsKey).Return(cached, true, nil)

		got, err := uc.GetSummary(ctx, "Sants", "Barcelona")
		require.NoError(t, err)
		assert.Same(t, cached, got)
		gateway.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
	})

	t.Run("cache miss reads the store and fills the cache", func(t *testing.T) {
		gateway, cache := &gatewayMock{}, &cacheMock{}
		uc := NewRatingUseCase(gateway, cache, nil, Config{})
		stored := &entity.RatingSummary{Neighborhood: "Sants", Count: 2, Overall: 7.5}
		cache.On("Get", ctx, santsKey).Return(nil, false, nil)
		gateway.On("Summarize", ctx, santsKey).Return(stored, nil)
		cache.On("Set", ctx, santsKey, *stored).Return(nil)

		got, err := uc.GetSummary(ctx, "Sants", "Barcelona")
		require.NoError(t, err)
		assert.Equal(t, 7.5, got.Overall)
		cache.AssertExpectations(t)
	})

	t.Run("cache errors degrade to the store", func(t *testing.T) {
		gateway, cache := &gatewayMock{}, &cacheMock{}
		uc := NewRatingUseCase(gateway, cache, nil, Config{})
		cache.On("Get", ctx, santsKey).Return(nil, false, errors.New("timeout"))
		gateway.On("Summarize", ctx, santsKey).Return(nil, nil)
		cache.On("Set", ctx, santsKey, mock.Anything).Return(errors.New("timeout"))

		got, err := uc.GetSummary(ctx, "Sants", "Barcelona")
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.Count)
		assert.Equal(t, "Sants, Sants-Montjuïc, Barcelona", got.DisplayName)
	})

	t.Run("unknown neighborhood", func(t *testing.T) {
		uc := NewRatingUseCase(&gatewayMock{}, nil, nil, Config{})
		_, err := uc.GetSummary(ctx, "Nonexistent Place", "Barcelona")
		assert.ErrorIs(t, err, ErrUnknownNeighborhood)
	})
}

func TestGetSummaryByDisplayName(t *testing.T) {
	gateway := &gatewayMock{}
	uc := NewRatingUseCase(gateway, nil, nil, Config{})
	gateway.On("Summarize", ctx, santsKey).Return(&entity.RatingSummary{Neighborhood: "Sants", Count: 1}, nil)

	got, err := uc.GetSummaryByDisplayName(ctx, "Sants, Sants-Montjuïc, Barcelona")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Count)

	_, err = uc.GetSummaryByDisplayName(ctx, "Sants, Barcelona")
	assert.NoError(t, err, "the two segment form is accepted")

	_, err = uc.GetSummaryByDisplayName(ctx, "Sants")
	assert.ErrorIs(t, err, ErrInvalidDisplayName)

	_, err = uc.GetSummaryByDisplayName(ctx, "Sants, Gràcia, Barcelona")
	assert.ErrorIs(t, err, ErrDistrictMismatch)
}

func TestListCitySummaries(t *testing.T) {
	t.Run("pages through the city", func(t *testing.T) {
		gateway := &gatewayMock{}
		uc := NewRatingUseCase(gateway, nil, nil, Config{DefaultPageSize: 2, MaxPageSize: 5})
		summaries := []entity.RatingSummary{{Neighborhood: "Sants", Overall: 9}, {Neighborhood: "El Raval", Overall: 6}}
		gateway.On("SummarizeCity", mock.Anything, "Barcelona", 2, 2).Return(summaries, nil)
		gateway.On("CountRatedInCity", mock.Anything, "Barcelona").Return(int64(5), nil)

		page, err := uc.ListCitySummaries(ctx, "Barcelona", 1, 0)
		require.NoError(t, err)
		assert.Equal(t, summaries, page.Content)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 1, page.Number)
	})

	t.Run("size is capped", func(t *testing.T) {
		gateway := &gatewayMock{}
		uc := NewRatingUseCase(gateway, nil, nil, Config{MaxPageSize: 5})
		gateway.On("SummarizeCity", mock.Anything, "Madrid", 0, 5).Return([]entity.RatingSummary{}, nil)
		gateway.On("CountRatedInCity", mock.Anything, "Madrid").Return(int64(0), nil)

		page, err := uc.ListCitySummaries(ctx, "Madrid", -3, 500)
		require.NoError(t, err)
		assert.Equal(t, 5, page.Size)
		assert.Equal(t, 0, page.Number)
	})

	t.Run("store failure", func(t *testing.T) {
		gateway := &gatewayMock{}
		uc := NewRatingUseCase(gateway, nil, nil, Config{})
		gateway.On("SummarizeCity", mock.Anything, "Madrid", 0, 20).Return(nil, errors.New("boom"))
		gateway.On("CountRatedInCity", mock.Anything, "Madrid").Return(int64(0), nil)

		_, err := uc.ListCitySummaries(ctx, "Madrid", 0, 0)
		assert.ErrorContains(t, err, "boom")
	})

	t.Run("unknown city", func(t *testing.T) {
		uc := NewRatingUseCase(&gatewayMock{}, nil, nil, Config{})
		_, err := uc.ListCitySummaries(ctx, "Atlantis", 0, 10)
		assert.ErrorIs(t, err, ErrUnknownCity)
	})
}

func TestListForFilter(t *testing.T) {
	gateway := &gatewayMock{}
	uc := NewRatingUseCase(gateway, nil, nil, Config{})
	neighborhoods := location.ListDistrictNeighborhoods("Barcelona", "Ciutat Vella")
	gateway.On("SummarizeNeighborhoods", ctx, "Barcelona", neighborhoods).
		Return([]entity.RatingSummary{{Neighborhood: "El Raval"}}, nil)

	got, err := uc.ListForFilter(ctx, "Ciutat Vella", "Barcelona")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	empty, err := uc.ListForFilter(ctx, "Nonexistent Place", "Barcelona")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = uc.ListForFilter(ctx, "Retiro", "Atlantis")
	assert.ErrorIs(t, err, ErrUnknownCity)
}

func TestWarmUpSummaries(t *testing.T) {
	gateway, cache := &gatewayMock{}, &cacheMock{}
	uc := NewRatingUseCase(gateway, cache, nil, Config{})
	ravalKey := location.Key{Neighborhood: "El Raval", District: "Ciutat Vella", City: "Barcelona"}
	gateway.On("ListRatedKeys", ctx).Return([]location.Key{santsKey, ravalKey}, nil)
	gateway.On("Summarize", ctx, santsKey).Return(&entity.RatingSummary{Count: 1}, nil)
	gateway.On("Summarize", ctx, ravalKey).Return(nil, errors.New("timeout"))
	cache.On("Set", ctx, santsKey, mock.Anything).Return(nil)

	refreshed, err := uc.WarmUpSummaries(ctx)
	assert.Equal(t, 1, refreshed)
	assert.ErrorContains(t, err, "timeout")
	cache.AssertNumberOfCalls(t, "Set", 1)
}

func TestWarmUpSummariesStopsOnCancel(t *testing.T) {
	gateway := &gatewayMock{}
	uc := NewRatingUseCase(gateway, nil, nil, Config{})
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	gateway.On("ListRatedKeys", canceled).Return([]location.Key{santsKey}, nil)

	refreshed, err := uc.WarmUpSummaries(canceled)
	assert.Zero(t, refreshed)
	assert.ErrorIs(t, err, context.Canceled)
}
