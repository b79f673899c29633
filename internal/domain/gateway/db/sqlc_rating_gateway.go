package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"habitat-api/internal/domain/entity"
	"habitat-api/pkg/location"
)

type SQLCRatingGateway struct {
	DB *sql.DB
}

var _ RatingGateway = (*SQLCRatingGateway)(nil)

func NewSQLCRatingGateway(db *sql.DB) *SQLCRatingGateway {
	return &SQLCRatingGateway{DB: db}
}

func (gateway *SQLCRatingGateway) Create(ctx context.Context, rating entity.NeighborhoodRating) (*entity.NeighborhoodRating, error) {
	stamp(&rating)

	_, err := gateway.DB.ExecContext(ctx, `
		INSERT INTO neighborhood_ratings (id, neighborhood, district, city, security, parking, family_friendly,
			public_transport, green_spaces, services, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		rating.ID, rating.Neighborhood, rating.District, rating.City, rating.Security, rating.Parking,
		rating.FamilyFriendly, rating.PublicTransport, rating.GreenSpaces, rating.Services, rating.Comment,
		rating.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (gateway *SQLCRatingGateway) Summarize(ctx context.Context, key location.Key) (*entity.RatingSummary, error) {
	rows, err := gateway.querySummaries(ctx, `
		SELECT `+summaryColumns+`
		FROM `+ratingsTable+`
		WHERE city = $1 AND neighborhood = $2
		GROUP BY `+summaryGroupBy, key.City, key.Neighborhood)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	summary := rows[0].toEntity()
	return &summary, nil
}

func (gateway *SQLCRatingGateway) SummarizeCity(ctx context.Context, city string, offset int, limit int) ([]entity.RatingSummary, error) {
	rows, err := gateway.querySummaries(ctx, `
		SELECT `+summaryColumns+`
		FROM `+ratingsTable+`
		WHERE city = $1
		GROUP BY `+summaryGroupBy+`
		ORDER BY `+summaryOrderBy+`
		OFFSET $2 LIMIT $3`, city, offset, limit)
	if err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (gateway *SQLCRatingGateway) SummarizeNeighborhoods(ctx context.Context, city string, neighborhoods []string) ([]entity.RatingSummary, error) {
	if len(neighborhoods) == 0 {
		return []entity.RatingSummary{}, nil
	}
	rows, err := gateway.querySummaries(ctx, `
		SELECT `+summaryColumns+`
		FROM `+ratingsTable+`
		WHERE city = $1 AND neighborhood = ANY($2)
		GROUP BY `+summaryGroupBy+`
		ORDER BY `+summaryOrderBy, city, pq.Array(neighborhoods))
	if err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (gateway *SQLCRatingGateway) CountRatedInCity(ctx context.Context, city string) (int64, error) {
	var count int64
	err := gateway.DB.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT neighborhood)
		FROM neighborhood_ratings
		WHERE city = $1`, city).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return count, err
}

func (gateway *SQLCRatingGateway) ListRatedKeys(ctx context.Context) ([]location.Key, error) {
	rows, err := gateway.DB.QueryContext(ctx, `
		SELECT neighborhood, MAX(district), city
		FROM neighborhood_ratings
		GROUP BY city, neighborhood
		ORDER BY city, neighborhood`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make([]location.Key, 0)
	for rows.Next() {
		var (
			key      location.Key
			district sql.NullString
		)
		if err := rows.Scan(&key.Neighborhood, &district, &key.City); err != nil {
			return nil, err
		}
		key.District = district.String
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (gateway *SQLCRatingGateway) querySummaries(ctx context.Context, query string, args ...any) ([]summaryRow, error) {
	rows, err := gateway.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]summaryRow, 0)
	for rows.Next() {
		var r summaryRow
		if err := rows.Scan(&r.Neighborhood, &r.District, &r.City, &r.Count, &r.Security, &r.Parking,
			&r.FamilyFriendly, &r.PublicTransport, &r.GreenSpaces, &r.Services, &r.Overall, &r.LastRatedAt); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
