package location

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultMinSearchLength is the shortest query SearchByPrefixOrSubstring answers.
	DefaultMinSearchLength = 3
	// MaxSearchResults caps SearchByPrefixOrSubstring.
	MaxSearchResults = 10
)

// cityWidePhrases are the accepted "whole city" suffixes, English first.
var cityWidePhrases = []string{
	"All neighborhoods",
	"Todos los barrios",
	"Tots els barris",
}

// CityWideLabel returns the selectable "whole city" option shown in suggestion lists.
func CityWideLabel(city string) string {
	return city + " (" + cityWidePhrases[0] + ")"
}

// IsCityWideSearch reports whether query stands for every neighborhood of city: either
// the city name itself or the "<City> (<phrase>)" option in any supported locale.
func IsCityWideSearch(query, city string) bool {
	if !IsCity(city) {
		return false
	}
	return query == city || isCityWidePattern(query, city)
}

func isCityWidePattern(query, city string) bool {
	rest, ok := strings.CutPrefix(query, city+" (")
	if !ok {
		return false
	}
	phrase, ok := strings.CutSuffix(rest, ")")
	if !ok {
		return false
	}
	for _, p := range cityWidePhrases {
		if strings.EqualFold(phrase, p) {
			return true
		}
	}
	return false
}

// ExpandSearch turns one user-entered location string into the neighborhoods a listing
// query must filter by: every neighborhood of the city for a city-wide query, the
// district's neighborhoods for a district, the neighborhood itself for a neighborhood,
// and nothing for anything else.
func ExpandSearch(query, city string) []string {
	f, ok := ResolveFilter(query, city)
	if !ok {
		return nil
	}
	if _, all := f.(AllCities); all {
		// an empty query is not a location
		return nil
	}
	return Neighborhoods(f)
}

// SearchByPrefixOrSubstring matches query against every neighborhood name, ignoring case
// and diacritics, and returns up to MaxSearchResults display names in dataset order.
// Queries shorter than minLength runes return nothing; minLength <= 0 selects the default.
func SearchByPrefixOrSubstring(query string, minLength int) []string {
	if minLength <= 0 {
		minLength = DefaultMinSearchLength
	}
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < minLength {
		return nil
	}
	needle := fold(q)

	var out []string
	for _, n := range tree.flat {
		if !strings.Contains(n.folded, needle) {
			continue
		}
		out = append(out, FormatDisplayName(n.name, n.district, n.city))
		if len(out) == MaxSearchResults {
			break
		}
	}
	return out
}

// SuggestionKind tells the UI which granularity a suggestion selects.
type SuggestionKind string

const (
	SuggestCity         SuggestionKind = "city"
	SuggestDistrict     SuggestionKind = "district"
	SuggestNeighborhood SuggestionKind = "neighborhood"
)

// Suggestion is one dropdown entry.
type Suggestion struct {
	Kind         SuggestionKind `json:"kind"`
	Label        string         `json:"label"`
	City         string         `json:"city"`
	District     string         `json:"district,omitempty"`
	Neighborhood string         `json:"neighborhood,omitempty"`
}

// SuggestOptions tunes Suggest. Zero values select the defaults.
type SuggestOptions struct {
	MinLength int
	Limit     int
	// City restricts suggestions to one city when set.
	City string
}

// Suggest is the richer dropdown variant of SearchByPrefixOrSubstring: matching cities
// (as their city-wide option) come first, then districts, then neighborhoods.
func Suggest(query string, opts SuggestOptions) []Suggestion {
	if opts.MinLength <= 0 {
		opts.MinLength = DefaultMinSearchLength
	}
	if opts.Limit <= 0 {
		opts.Limit = MaxSearchResults
	}
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < opts.MinLength {
		return nil
	}
	needle := fold(q)

	var cities, districts, neighborhoods []Suggestion
	for _, c := range tree.cities {
		if opts.City != "" && c.Name != opts.City {
			continue
		}
		if strings.Contains(fold(c.Name), needle) {
			cities = append(cities, Suggestion{Kind: SuggestCity, Label: CityWideLabel(c.Name), City: c.Name})
		}
		for _, d := range c.Districts {
			if strings.Contains(fold(d.Name), needle) {
				districts = append(districts, Suggestion{
					Kind:     SuggestDistrict,
					Label:    d.Name + Separator + c.Name,
					City:     c.Name,
					District: d.Name,
				})
			}
		}
	}
	for _, n := range tree.flat {
		if opts.City != "" && n.city != opts.City {
			continue
		}
		if strings.Contains(n.folded, needle) {
			neighborhoods = append(neighborhoods, Suggestion{
				Kind:         SuggestNeighborhood,
				Label:        FormatDisplayName(n.name, n.district, n.city),
				City:         n.city,
				District:     n.district,
				Neighborhood: n.name,
			})
		}
	}

	out := append(append(cities, districts...), neighborhoods...)
	if len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out
}

// fold lowercases s and strips combining marks, so "Sarrià" and "SARRIA" compare equal.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), cases.Fold(), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
