package rating

import (
	"context"

	"habitat-api/internal/domain/entity"
	"habitat-api/internal/domain/model"
	"habitat-api/pkg/location"
)

type UseCase interface {
	Submit(ctx context.Context, dto model.CreateRatingDTO) (*entity.NeighborhoodRating, error)

	GetSummary(ctx context.Context, neighborhood, city string) (*entity.RatingSummary, error)
	GetSummaryByDisplayName(ctx context.Context, label string) (*entity.RatingSummary, error)
	ListCitySummaries(ctx context.Context, city string, page, size int) (*model.Page[entity.RatingSummary], error)
	ListForFilter(ctx context.Context, query, city string) ([]entity.RatingSummary, error)

	RefreshSummary(ctx context.Context, key location.Key) (*entity.RatingSummary, error)
	WarmUpSummaries(ctx context.Context) (int, error)
}
