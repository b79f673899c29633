package location

// FilterKind names the granularity of a Filter.
type FilterKind string

const (
	KindAll          FilterKind = "all"
	KindCity         FilterKind = "city"
	KindDistrict     FilterKind = "district"
	KindNeighborhood FilterKind = "neighborhood"
)

// Filter is a resolved location search option. The set of implementations is closed:
// AllCities, CityFilter, DistrictFilter and NeighborhoodFilter.
type Filter interface {
	Kind() FilterKind
	Label() string
	isFilter()
}

// AllCities selects every neighborhood of every city.
type AllCities struct{}

// CityFilter selects every neighborhood of one city.
type CityFilter struct {
	City string `json:"city"`
}

// DistrictFilter selects the neighborhoods of one district.
type DistrictFilter struct {
	City     string `json:"city"`
	District string `json:"district"`
}

// NeighborhoodFilter selects a single neighborhood.
type NeighborhoodFilter struct {
	City         string `json:"city"`
	District     string `json:"district"`
	Neighborhood string `json:"neighborhood"`
}

func (AllCities) Kind() FilterKind          { return KindAll }
func (CityFilter) Kind() FilterKind         { return KindCity }
func (DistrictFilter) Kind() FilterKind     { return KindDistrict }
func (NeighborhoodFilter) Kind() FilterKind { return KindNeighborhood }

func (AllCities) Label() string            { return "" }
func (f CityFilter) Label() string         { return CityWideLabel(f.City) }
func (f DistrictFilter) Label() string     { return f.District + Separator + f.City }
func (f NeighborhoodFilter) Label() string { return FormatDisplayName(f.Neighborhood, f.District, f.City) }

func (AllCities) isFilter()          {}
func (CityFilter) isFilter()         {}
func (DistrictFilter) isFilter()     {}
func (NeighborhoodFilter) isFilter() {}

// ResolveFilter maps a free-text query within city onto a Filter. An empty query with
// an empty city resolves to AllCities; an unknown query reports false.
func ResolveFilter(query, city string) (Filter, bool) {
	if query == "" && city == "" {
		return AllCities{}, true
	}
	switch {
	case IsCityWideSearch(query, city):
		return CityFilter{City: city}, true
	case IsDistrict(query, city):
		return DistrictFilter{City: city, District: query}, true
	}
	if district, ok := tree.neighborhoodIdx[city][query]; ok {
		return NeighborhoodFilter{City: city, District: district, Neighborhood: query}, true
	}
	return nil, false
}

// Neighborhoods returns the effective neighborhood set of f.
func Neighborhoods(f Filter) []string {
	switch v := f.(type) {
	case AllCities:
		var all []string
		for _, n := range tree.flat {
			all = append(all, n.name)
		}
		return all
	case CityFilter:
		return ListNeighborhoods(v.City)
	case DistrictFilter:
		return ListDistrictNeighborhoods(v.City, v.District)
	case NeighborhoodFilter:
		if !IsNeighborhood(v.Neighborhood, v.City) {
			return nil
		}
		return []string{v.Neighborhood}
	default:
		return nil
	}
}
