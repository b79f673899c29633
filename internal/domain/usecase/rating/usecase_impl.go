package rating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"habitat-api/internal/domain/entity"
	"habitat-api/internal/domain/gateway/cache"
	"habitat-api/internal/domain/gateway/db"
	"habitat-api/internal/domain/gateway/queue"
	"habitat-api/internal/domain/model"
	"habitat-api/pkg/location"
	"habitat-api/pkg/log"
	"habitat-api/pkg/metrics"
	"habitat-api/pkg/msg"
	"habitat-api/pkg/util/numberutils"
)

type Config struct {
	// EventsQueue is the queue rating events are published to; events are disabled when empty
	EventsQueue     string
	DefaultPageSize int
	MaxPageSize     int
}

type ratingUseCase struct {
	gateway db.RatingGateway
	cache   cache.SummaryCache
	sender  queue.Sender
	config  Config
}

// NewRatingUseCase wires the rating flows. summaryCache and sender may be nil to run without
// a cache or without rating events.
func NewRatingUseCase(gateway db.RatingGateway, summaryCache cache.SummaryCache, sender queue.Sender, config Config) UseCase {
	if config.MaxPageSize <= 0 {
		config.MaxPageSize = 100
	}
	if config.DefaultPageSize <= 0 || config.DefaultPageSize > config.MaxPageSize {
		config.DefaultPageSize = numberutils.ClampInt(20, 1, config.MaxPageSize)
	}
	return &ratingUseCase{
		gateway: gateway,
		cache:   summaryCache,
		sender:  sender,
		config:  config,
	}
}

func (uc *ratingUseCase) Submit(ctx context.Context, dto model.CreateRatingDTO) (*entity.NeighborhoodRating, error) {
	rating := entity.NeighborhoodRating{
		Neighborhood:    strings.TrimSpace(dto.Neighborhood),
		City:            strings.TrimSpace(dto.City),
		Security:        dto.Security,
		Parking:         dto.Parking,
		FamilyFriendly:  dto.FamilyFriendly,
		PublicTransport: dto.PublicTransport,
		GreenSpaces:     dto.GreenSpaces,
		Services:        dto.Services,
		Comment:         strings.TrimSpace(dto.Comment),
	}
	if err := validateScores(rating); err != nil {
		return nil, err
	}

	key, err := uc.resolveKey(rating.Neighborhood, rating.City)
	if err != nil {
		return nil, err
	}
	if district := strings.TrimSpace(dto.District); district != "" && district != key.District {
		return nil, fmt.Errorf("%w: %s", ErrDistrictMismatch,
			msg.GetMessage("rating.invalid.district", key.Neighborhood, key.District, district))
	}
	rating.District = key.District

	created, err := uc.gateway.Create(ctx, rating)
	if err != nil {
		return nil, fmt.Errorf("store rating: %w", err)
	}
	metrics.RatingSubmissionsTotal.WithLabelValues(key.City).Inc()
	log.Infow(msg.GetMessage("rating.submitted", created.ID, key.DisplayName()), "city", key.City)

	uc.invalidate(ctx, key)
	uc.publish(ctx, *created)

	return created, nil
}

func validateScores(rating entity.NeighborhoodRating) error {
	if rating.Neighborhood == "" {
		return fmt.Errorf("%w: neighborhood", ErrMissingField)
	}
	if rating.City == "" {
		return fmt.Errorf("%w: city", ErrMissingField)
	}
	for _, score := range rating.Scores() {
		if !numberutils.IsIntInRange(score.Value, entity.MinScore, entity.MaxScore) {
			return fmt.Errorf("%w: %s", ErrInvalidScore,
				msg.GetMessage("rating.invalid.score", score.Name, entity.MinScore, entity.MaxScore))
		}
	}
	return nil
}

// resolveKey returns the canonical key of neighborhood in city.
func (uc *ratingUseCase) resolveKey(neighborhood, city string) (location.Key, error) {
	if !location.IsCity(city) {
		return location.Key{}, fmt.Errorf("%w: %s", ErrUnknownCity, msg.GetMessage("rating.invalid.city", city))
	}
	key, ok := location.RatingKey(neighborhood, city)
	if !ok {
		return location.Key{}, fmt.Errorf("%w: %s", ErrUnknownNeighborhood,
			msg.GetMessage("rating.invalid.neighborhood", neighborhood, city))
	}
	return key, nil
}

func (uc *ratingUseCase) invalidate(ctx context.Context, key location.Key) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, key); err != nil {
		metrics.CacheErrorsTotal.Inc()
		log.Warn(msg.GetMessage("cache.error", "delete", key.DisplayName(), err))
	}
}

func (uc *ratingUseCase) publish(ctx context.Context, rating entity.NeighborhoodRating) {
	if uc.sender == nil || uc.config.EventsQueue == "" {
		return
	}
	event := model.RatingEvent{
		RatingID:     rating.ID,
		Neighborhood: rating.Neighborhood,
		District:     rating.District,
		City:         rating.City,
		SubmittedAt:  rating.CreatedAt,
	}
	if _, err := uc.sender.SendMessage(ctx, uc.config.EventsQueue, event, map[string]string{"city": rating.City}); err != nil {
		metrics.RatingEventsTotal.WithLabelValues("out", "error").Inc()
		log.Error(msg.GetMessage("queue.publish.error", rating.ID, err))
		return
	}
	metrics.RatingEventsTotal.WithLabelValues("out", "ok").Inc()
}

func (uc *ratingUseCase) GetSummary(ctx context.Context, neighborhood, city string) (*entity.RatingSummary, error) {
	key, err := uc.resolveKey(strings.TrimSpace(neighborhood), strings.TrimSpace(city))
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		cached, found, err := uc.cache.Get(ctx, key)
		switch {
		case err != nil:
			metrics.CacheErrorsTotal.Inc()
			log.Warn(msg.GetMessage("cache.error", "get", key.DisplayName(), err))
		case found:
			metrics.CacheHitsTotal.Inc()
			return cached, nil
		default:
			metrics.CacheMissesTotal.Inc()
		}
	}

	return uc.RefreshSummary(ctx, key)
}

func (uc *ratingUseCase) GetSummaryByDisplayName(ctx context.Context, label string) (*entity.RatingSummary, error) {
	name, ok := location.ParseDisplayName(label)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDisplayName, msg.GetMessage("rating.invalid.label", label))
	}
	if name.District != "" {
		if key, ok := location.RatingKey(name.Neighborhood, name.City); ok && key.District != name.District {
			return nil, fmt.Errorf("%w: %s", ErrDistrictMismatch,
				msg.GetMessage("rating.invalid.district", key.Neighborhood, key.District, name.District))
		}
	}
	return uc.GetSummary(ctx, name.Neighborhood, name.City)
}

func (uc *ratingUseCase) ListCitySummaries(ctx context.Context, city string, page, size int) (*model.Page[entity.RatingSummary], error) {
	if !location.IsCity(city) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCity, msg.GetMessage("rating.invalid.city", city))
	}
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = uc.config.DefaultPageSize
	}
	size = numberutils.ClampInt(size, 1, uc.config.MaxPageSize)

	var (
		wg        sync.WaitGroup
		content   []entity.RatingSummary
		total     int64
		errResult error
		errCount  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		content, errResult = uc.gateway.SummarizeCity(ctx, city, model.Offset(page, size), size)
	}()
	go func() {
		defer wg.Done()
		total, errCount = uc.gateway.CountRatedInCity(ctx, city)
	}()
	wg.Wait()

	if err := errors.Join(errResult, errCount); err != nil {
		return nil, fmt.Errorf("list summaries of %s: %w", city, err)
	}
	return model.NewPage(content, page, size, total), nil
}

func (uc *ratingUseCase) ListForFilter(ctx context.Context, query, city string) ([]entity.RatingSummary, error) {
	if !location.IsCity(city) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCity, msg.GetMessage("rating.invalid.city", city))
	}
	neighborhoods := location.ExpandSearch(query, city)
	if len(neighborhoods) == 0 {
		return []entity.RatingSummary{}, nil
	}
	summaries, err := uc.gateway.SummarizeNeighborhoods(ctx, city, neighborhoods)
	if err != nil {
		return nil, fmt.Errorf("summaries for %q in %s: %w", query, city, err)
	}
	return summaries, nil
}

// RefreshSummary recomputes the summary from the store and overwrites the cached copy.
func (uc *ratingUseCase) RefreshSummary(ctx context.Context, key location.Key) (*entity.RatingSummary, error) {
	summary, err := uc.gateway.Summarize(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", key.DisplayName(), err)
	}
	if summary == nil {
		summary = emptySummary(key)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, *summary); err != nil {
			metrics.CacheErrorsTotal.Inc()
			log.Warn(msg.GetMessage("cache.error", "set", key.DisplayName(), err))
		}
	}
	return summary, nil
}

// WarmUpSummaries refreshes every rated neighborhood and returns how many were refreshed.
// It keeps going after individual failures and reports them joined.
func (uc *ratingUseCase) WarmUpSummaries(ctx context.Context) (int, error) {
	keys, err := uc.gateway.ListRatedKeys(ctx)
	if err != nil {
		return 0, fmt.Errorf("list rated neighborhoods: %w", err)
	}

	var (
		refreshed int
		errs      []error
	)
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if _, err := uc.RefreshSummary(ctx, key); err != nil {
			errs = append(errs, err)
			continue
		}
		refreshed++
	}
	return refreshed, errors.Join(errs...)
}

func emptySummary(key location.Key) *entity.RatingSummary {
	return &entity.RatingSummary{
		Neighborhood: key.Neighborhood,
		District:     key.District,
		City:         key.City,
		DisplayName:  key.DisplayName(),
	}
}
