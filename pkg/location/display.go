package location

import (
	"net/url"
	"strings"
)

// Separator joins the segments of a display name.
const Separator = ", "

// DisplayName is the parsed form of a suggestion label. District is empty for the
// two-segment "neighborhood, city" form.
type DisplayName struct {
	Neighborhood string `json:"neighborhood"`
	District     string `json:"district,omitempty"`
	City         string `json:"city"`
}

// Key converts the parsed label into a rating key without checking the dataset.
func (d DisplayName) Key() Key {
	return Key{Neighborhood: d.Neighborhood, District: d.District, City: d.City}
}

// FormatDisplayName joins neighborhood, district and city with Separator, omitting the
// district segment when it is empty.
func FormatDisplayName(neighborhood, district, city string) string {
	if district == "" {
		return neighborhood + Separator + city
	}
	return neighborhood + Separator + district + Separator + city
}

// ParseDisplayName splits a label produced by FormatDisplayName. Both the three-segment
// and the two-segment (no district) forms are accepted; any other shape, or an empty
// segment, reports false.
func ParseDisplayName(label string) (DisplayName, bool) {
	parts := strings.Split(label, Separator)
	for _, p := range parts {
		if p == "" {
			return DisplayName{}, false
		}
	}
	switch len(parts) {
	case 3:
		return DisplayName{Neighborhood: parts[0], District: parts[1], City: parts[2]}, true
	case 2:
		return DisplayName{Neighborhood: parts[0], City: parts[1]}, true
	default:
		return DisplayName{}, false
	}
}

// PathSegment percent-encodes a location name for use as one URL path segment.
func PathSegment(name string) string {
	return url.PathEscape(name)
}

// FromPathSegment reverses PathSegment. A segment that is not valid percent-encoding is
// returned unchanged.
func FromPathSegment(segment string) string {
	name, err := url.PathUnescape(segment)
	if err != nil {
		return segment
	}
	return name
}
