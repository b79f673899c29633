package location

import (
	"habitat-api/internal/domain/model"
	"habitat-api/pkg/location"
)

type UseCase interface {
	ListCities() []string
	ListDistricts(city string) []string
	// ListNeighborhoods lists the neighborhoods of city, or of one of its districts when district is set.
	ListNeighborhoods(city, district string) []string
	Resolve(query, city string) (*model.LocationResolution, bool)
	Expand(query, city string) model.LocationExpansion
	Search(query string, minLength int) []string
	Suggest(query, city string, limit int) []location.Suggestion
	FormatDisplayName(neighborhood, district, city string) string
	ParseDisplayName(label string) (location.DisplayName, bool)
}
