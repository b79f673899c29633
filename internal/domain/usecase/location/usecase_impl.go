package location

import (
	"habitat-api/internal/domain/model"
	"habitat-api/pkg/location"
	"habitat-api/pkg/metrics"
)

// Config holds the defaults applied when callers pass zero values.
type Config struct {
	MinSearchLength int
	SuggestLimit    int
}

type locationUseCase struct {
	config Config
}

func NewLocationUseCase(config Config) UseCase {
	if config.MinSearchLength <= 0 {
		config.MinSearchLength = location.DefaultMinSearchLength
	}
	if config.SuggestLimit <= 0 {
		config.SuggestLimit = location.MaxSearchResults
	}
	return &locationUseCase{config: config}
}

func (uc *locationUseCase) ListCities() []string {
	return location.ListCities()
}

func (uc *locationUseCase) ListDistricts(city string) []string {
	districts := location.ListDistricts(city)
	metrics.ObserveLookup("districts", len(districts))
	return districts
}

func (uc *locationUseCase) ListNeighborhoods(city, district string) []string {
	var neighborhoods []string
	if district == "" {
		neighborhoods = location.ListNeighborhoods(city)
	} else {
		neighborhoods = location.ListDistrictNeighborhoods(city, district)
	}
	metrics.ObserveLookup("neighborhoods", len(neighborhoods))
	return neighborhoods
}

func (uc *locationUseCase) Resolve(query, city string) (*model.LocationResolution, bool) {
	filter, ok := location.ResolveFilter(query, city)
	if ok && filter.Kind() == location.KindAll {
		// a city is mandatory here, an empty query resolves nothing
		ok = false
	}
	if !ok {
		metrics.ObserveLookup("resolve", 0)
		return nil, false
	}

	parent, _ := location.FindParentDistrict(query, city)
	neighborhoods := location.Neighborhoods(filter)
	metrics.ObserveLookup("resolve", len(neighborhoods))

	return &model.LocationResolution{
		Query:         query,
		City:          city,
		Kind:          filter.Kind(),
		District:      parent,
		Label:         filter.Label(),
		Neighborhoods: neighborhoods,
	}, true
}

func (uc *locationUseCase) Expand(query, city string) model.LocationExpansion {
	neighborhoods := location.ExpandSearch(query, city)
	metrics.ObserveLookup("expand", len(neighborhoods))
	if neighborhoods == nil {
		neighborhoods = []string{}
	}
	return model.LocationExpansion{
		Query:         query,
		City:          city,
		CityWide:      location.IsCityWideSearch(query, city),
		Neighborhoods: neighborhoods,
	}
}

func (uc *locationUseCase) Search(query string, minLength int) []string {
	if minLength <= 0 {
		minLength = uc.config.MinSearchLength
	}
	results := location.SearchByPrefixOrSubstring(query, minLength)
	metrics.ObserveLookup("search", len(results))
	if results == nil {
		results = []string{}
	}
	return results
}

func (uc *locationUseCase) Suggest(query, city string, limit int) []location.Suggestion {
	if limit <= 0 {
		limit = uc.config.SuggestLimit
	}
	suggestions := location.Suggest(query, location.SuggestOptions{
		MinLength: uc.config.MinSearchLength,
		Limit:     limit,
		City:      city,
	})
	metrics.ObserveLookup("suggest", len(suggestions))
	if suggestions == nil {
		suggestions = []location.Suggestion{}
	}
	return suggestions
}

func (uc *locationUseCase) FormatDisplayName(neighborhood, district, city string) string {
	return location.FormatDisplayName(neighborhood, district, city)
}

func (uc *locationUseCase) ParseDisplayName(label string) (location.DisplayName, bool) {
	return location.ParseDisplayName(label)
}
