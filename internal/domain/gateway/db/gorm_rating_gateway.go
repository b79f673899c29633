package db

import (
	"context"

	"gorm.io/gorm"

	"habitat-api/internal/domain/entity"
	"habitat-api/pkg/location"
)

type GormRatingGateway struct {
	DB *gorm.DB
}

var _ RatingGateway = (*GormRatingGateway)(nil)

func NewGormRatingGateway(db *gorm.DB) *GormRatingGateway {
	return &GormRatingGateway{DB: db}
}

func (gateway *GormRatingGateway) Create(ctx context.Context, rating entity.NeighborhoodRating) (*entity.NeighborhoodRating, error) {
	stamp(&rating)
	if err := gateway.DB.WithContext(ctx).Create(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (gateway *GormRatingGateway) summaries(ctx context.Context) *gorm.DB {
	return gateway.DB.WithContext(ctx).
		Model(&entity.NeighborhoodRating{}).
		Select(summaryColumns).
		Group(summaryGroupBy)
}

func (gateway *GormRatingGateway) Summarize(ctx context.Context, key location.Key) (*entity.RatingSummary, error) {
	var rows []summaryRow
	err := gateway.summaries(ctx).
		Where("city = ? AND neighborhood = ?", key.City, key.Neighborhood).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	summary := rows[0].toEntity()
	return &summary, nil
}

func (gateway *GormRatingGateway) SummarizeCity(ctx context.Context, city string, offset int, limit int) ([]entity.RatingSummary, error) {
	var rows []summaryRow
	err := gateway.summaries(ctx).
		Where("city = ?", city).
		Order(summaryOrderBy).
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (gateway *GormRatingGateway) SummarizeNeighborhoods(ctx context.Context, city string, neighborhoods []string) ([]entity.RatingSummary, error) {
	if len(neighborhoods) == 0 {
		return []entity.RatingSummary{}, nil
	}
	var rows []summaryRow
	err := gateway.summaries(ctx).
		Where("city = ? AND neighborhood IN ?", city, neighborhoods).
		Order(summaryOrderBy).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (gateway *GormRatingGateway) CountRatedInCity(ctx context.Context, city string) (int64, error) {
	var count int64
	err := gateway.DB.WithContext(ctx).
		Model(&entity.NeighborhoodRating{}).
		Where("city = ?", city).
		Distinct("neighborhood").
		Count(&count).Error
	return count, err
}

func (gateway *GormRatingGateway) ListRatedKeys(ctx context.Context) ([]location.Key, error) {
	var keys []location.Key
	err := gateway.DB.WithContext(ctx).
		Model(&entity.NeighborhoodRating{}).
		Select("neighborhood, MAX(district) AS district, city").
		Group(summaryGroupBy).
		Order("city, neighborhood").
		Scan(&keys).Error
	if err != nil {
		return nil, err
	}
	if keys == nil {
		keys = []location.Key{}
	}
	return keys, nil
}
