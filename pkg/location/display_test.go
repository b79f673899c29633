package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDisplayName(t *testing.T) {
	assert.Equal(t, "Sants, Sants-Montjuïc, Barcelona", FormatDisplayName("Sants", "Sants-Montjuïc", "Barcelona"))
	assert.Equal(t, "Sants, Barcelona", FormatDisplayName("Sants", "", "Barcelona"))
}

func TestParseDisplayName(t *testing.T) {
	tests := []struct {
		label  string
		want   DisplayName
		wantOK bool
	}{
		{"Sants, Sants-Montjuïc, Barcelona", DisplayName{"Sants", "Sants-Montjuïc", "Barcelona"}, true},
		{"Sants, Barcelona", DisplayName{Neighborhood: "Sants", City: "Barcelona"}, true},
		{"Sants", DisplayName{}, false},
		{"a, b, c, d", DisplayName{}, false},
		{"Sants, , Barcelona", DisplayName{}, false},
		{"", DisplayName{}, false},
		{"Sants,Sants-Montjuïc,Barcelona", DisplayName{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseDisplayName(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayNameRoundTrip(t *testing.T) {
	for _, city := range ListCities() {
		for _, d := range ListDistricts(city) {
			for _, n := range ListDistrictNeighborhoods(city, d) {
				got, ok := ParseDisplayName(FormatDisplayName(n, d, city))
				require.Truef(t, ok, "%s/%s/%s", city, d, n)
				assert.Equal(t, DisplayName{Neighborhood: n, District: d, City: city}, got)

				short, ok := ParseDisplayName(FormatDisplayName(n, "", city))
				require.True(t, ok)
				assert.Equal(t, DisplayName{Neighborhood: n, City: city}, short)
			}
		}
	}
}

func TestPathSegment(t *testing.T) {
	seg := PathSegment("Sant Pere - Santa Caterina i la Ribera")
	assert.Equal(t, "Sant%20Pere%20-%20Santa%20Caterina%20i%20la%20Ribera", seg)
	assert.Equal(t, "Sant Pere - Santa Caterina i la Ribera", FromPathSegment(seg))

	for _, n := range ListNeighborhoods("Barcelona") {
		assert.Equal(t, n, FromPathSegment(PathSegment(n)))
	}

	assert.Equal(t, "100%", FromPathSegment("100%"), "invalid escapes pass through")
}
