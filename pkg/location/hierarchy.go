// Package location holds the canonical city -> district -> neighborhood hierarchy and the
// pure lookup, expansion and display-name helpers built on top of it.
//
// Every function is total: unknown or malformed input yields an empty slice, false or the
// zero value, never an error or a panic. Returned slices are copies owned by the caller.
package location

// ListCities returns every configured city in dataset order.
func ListCities() []string {
	names := make([]string, len(tree.cities))
	for i, c := range tree.cities {
		names[i] = c.Name
	}
	return names
}

// ListDistricts returns the districts of city in dataset order, or nil for an unknown city.
func ListDistricts(city string) []string {
	c, ok := tree.city(city)
	if !ok {
		return nil
	}
	names := make([]string, len(c.Districts))
	for i, d := range c.Districts {
		names[i] = d.Name
	}
	return names
}

// ListNeighborhoods returns every neighborhood of city, flattened across its districts.
func ListNeighborhoods(city string) []string {
	c, ok := tree.city(city)
	if !ok {
		return nil
	}
	var names []string
	for _, d := range c.Districts {
		names = append(names, d.Neighborhoods...)
	}
	return names
}

// ListDistrictNeighborhoods returns the neighborhoods of one district of city.
func ListDistrictNeighborhoods(city, district string) []string {
	d, ok := tree.district(city, district)
	if !ok {
		return nil
	}
	return append([]string(nil), d.Neighborhoods...)
}

// Cities returns a deep copy of the whole tree.
func Cities() []City {
	out := make([]City, len(tree.cities))
	for i, c := range tree.cities {
		districts := make([]District, len(c.Districts))
		for j, d := range c.Districts {
			districts[j] = District{Name: d.Name, Neighborhoods: append([]string(nil), d.Neighborhoods...)}
		}
		out[i] = City{Name: c.Name, Districts: districts}
	}
	return out
}

// IsCity reports whether name is a configured city.
func IsCity(name string) bool {
	_, ok := tree.cityIdx[name]
	return ok
}

// IsDistrict reports whether name is exactly one of the district names of city.
// There is no default city: "Retiro" is a Madrid district and not a Barcelona one.
func IsDistrict(name, city string) bool {
	_, ok := tree.district(city, name)
	return ok
}

// IsNeighborhood reports whether name is exactly a neighborhood of city.
func IsNeighborhood(name, city string) bool {
	_, ok := tree.neighborhoodIdx[city][name]
	return ok
}

// FindParentDistrict resolves name within city. It returns the city itself for a
// city-wide query, the district for a district name (a district contains itself),
// the owning district for a neighborhood, and ("", false) otherwise.
func FindParentDistrict(name, city string) (string, bool) {
	if !IsCity(city) {
		return "", false
	}
	if IsCityWideSearch(name, city) {
		return city, true
	}
	if IsDistrict(name, city) {
		return name, true
	}
	district, ok := tree.neighborhoodIdx[city][name]
	return district, ok
}

// Key is the canonical (neighborhood, district, city) tuple used to store ratings.
// District is empty when the neighborhood has none.
type Key struct {
	Neighborhood string `json:"neighborhood"`
	District     string `json:"district,omitempty"`
	City         string `json:"city"`
}

// DisplayName renders the key as a suggestion label.
func (k Key) DisplayName() string {
	return FormatDisplayName(k.Neighborhood, k.District, k.City)
}

// RatingKey builds the canonical key for a neighborhood of city.
func RatingKey(neighborhood, city string) (Key, bool) {
	district, ok := tree.neighborhoodIdx[city][neighborhood]
	if !ok {
		return Key{}, false
	}
	return Key{Neighborhood: neighborhood, District: district, City: city}, true
}
