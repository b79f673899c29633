package cache

import (
	"context"

	"habitat-api/internal/domain/entity"
	"habitat-api/pkg/location"
)

// SummaryCacheName is the key space and TTL name of cached rating summaries.
const SummaryCacheName = "rating-summaries"

type SummaryCache interface {
	// Get reports false when the summary is not cached.
	Get(ctx context.Context, key location.Key) (*entity.RatingSummary, bool, error)
	Set(ctx context.Context, key location.Key, summary entity.RatingSummary) error
	Delete(ctx context.Context, key location.Key) error
}

// summaryKey identifies a neighborhood by city and name; the district is derived from both.
func summaryKey(key location.Key) string {
	return key.City + "|" + key.Neighborhood
}
