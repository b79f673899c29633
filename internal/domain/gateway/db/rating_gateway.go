package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"habitat-api/internal/domain/entity"
	"habitat-api/pkg/location"
	"habitat-api/pkg/util/numberutils"
)

// RatingGateway persists ratings and computes per-neighborhood summaries.
type RatingGateway interface {
	Create(ctx context.Context, rating entity.NeighborhoodRating) (*entity.NeighborhoodRating, error)

	// Summarize returns nil when the neighborhood has no ratings.
	Summarize(ctx context.Context, key location.Key) (*entity.RatingSummary, error)
	// SummarizeCity returns the rated neighborhoods of city ordered by overall average, best first.
	SummarizeCity(ctx context.Context, city string, offset int, limit int) ([]entity.RatingSummary, error)
	SummarizeNeighborhoods(ctx context.Context, city string, neighborhoods []string) ([]entity.RatingSummary, error)

	CountRatedInCity(ctx context.Context, city string) (int64, error)
	ListRatedKeys(ctx context.Context) ([]location.Key, error)
}

const ratingsTable = "neighborhood_ratings"

// summaryColumns aggregates one row per (city, neighborhood). Both gateways select them so the
// scanned shape is the same.
const summaryColumns = `neighborhood, MAX(district) AS district, city, COUNT(*) AS count,
	AVG(security) AS security, AVG(parking) AS parking, AVG(family_friendly) AS family_friendly,
	AVG(public_transport) AS public_transport, AVG(green_spaces) AS green_spaces, AVG(services) AS services,
	AVG((security + parking + family_friendly + public_transport + green_spaces + services) / 6.0) AS overall,
	MAX(created_at) AS last_rated_at`

const summaryGroupBy = "city, neighborhood"

const summaryOrderBy = "overall DESC, neighborhood ASC"

type summaryRow struct {
	Neighborhood    string
	District        sql.NullString
	City            string
	Count           int64
	Security        float64
	Parking         float64
	FamilyFriendly  float64
	PublicTransport float64
	GreenSpaces     float64
	Services        float64
	Overall         float64
	LastRatedAt     sql.NullTime
}

func (r summaryRow) toEntity() entity.RatingSummary {
	summary := entity.RatingSummary{
		Neighborhood:    r.Neighborhood,
		District:        r.District.String,
		City:            r.City,
		DisplayName:     location.FormatDisplayName(r.Neighborhood, r.District.String, r.City),
		Count:           r.Count,
		Security:        numberutils.Round2(r.Security),
		Parking:         numberutils.Round2(r.Parking),
		FamilyFriendly:  numberutils.Round2(r.FamilyFriendly),
		PublicTransport: numberutils.Round2(r.PublicTransport),
		GreenSpaces:     numberutils.Round2(r.GreenSpaces),
		Services:        numberutils.Round2(r.Services),
		Overall:         numberutils.Round2(r.Overall),
	}
	if r.LastRatedAt.Valid {
		last := r.LastRatedAt.Time.UTC()
		summary.LastRatedAt = &last
	}
	return summary
}

func toEntities(rows []summaryRow) []entity.RatingSummary {
	results := make([]entity.RatingSummary, 0, len(rows))
	for _, row := range rows {
		results = append(results, row.toEntity())
	}
	return results
}

// stamp assigns the id and creation time a new rating is missing.
func stamp(rating *entity.NeighborhoodRating) {
	if rating.ID == "" {
		rating.ID = uuid.NewString()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now().UTC()
	}
}
