package location

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCities(t *testing.T) {
	cities := ListCities()
	require.NotEmpty(t, cities)
	assert.Equal(t, []string{"Barcelona", "Madrid"}, cities)
}

func TestListDistricts(t *testing.T) {
	t.Run("known city keeps dataset order", func(t *testing.T) {
		districts := ListDistricts("Barcelona")
		require.Len(t, districts, 10)
		assert.Equal(t, "Ciutat Vella", districts[0])
		assert.Equal(t, "Sant Martí", districts[9])
	})

	t.Run("unknown city is empty", func(t *testing.T) {
		assert.Empty(t, ListDistricts("Atlantis"))
		assert.Empty(t, ListDistricts(""))
	})
}

func TestListNeighborhoods_ContainmentInvariant(t *testing.T) {
	for _, city := range ListCities() {
		var union []string
		seen := map[string]bool{}
		for _, d := range ListDistricts(city) {
			for _, n := range ListDistrictNeighborhoods(city, d) {
				if !seen[n] {
					seen[n] = true
					union = append(union, n)
				}
			}
		}
		if diff := cmp.Diff(union, ListNeighborhoods(city)); diff != "" {
			t.Errorf("%s: flattened neighborhoods differ from district union (-union +flat):\n%s", city, diff)
		}
	}
}

func TestListNeighborhoods_ExclusivityInvariant(t *testing.T) {
	for _, city := range ListCities() {
		owner := map[string]string{}
		for _, d := range ListDistricts(city) {
			for _, n := range ListDistrictNeighborhoods(city, d) {
				prev, dup := owner[n]
				assert.Falsef(t, dup, "%s: %q is in both %q and %q", city, n, prev, d)
				owner[n] = d
			}
		}
	}
}

func TestListNeighborhoods_CrossCityIsolation(t *testing.T) {
	assert.NotContains(t, ListNeighborhoods("Madrid"), "El Raval")
	assert.Contains(t, ListNeighborhoods("Barcelona"), "El Raval")
	assert.False(t, IsDistrict("Retiro", "Barcelona"))
	assert.True(t, IsDistrict("Retiro", "Madrid"))
}

func TestListDistrictNeighborhoods_Unknown(t *testing.T) {
	assert.Empty(t, ListDistrictNeighborhoods("Barcelona", "Retiro"))
	assert.Empty(t, ListDistrictNeighborhoods("Atlantis", "Eixample"))
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	list := ListDistrictNeighborhoods("Barcelona", "Ciutat Vella")
	list[0] = "mutated"
	assert.Equal(t, "El Raval", ListDistrictNeighborhoods("Barcelona", "Ciutat Vella")[0])

	cities := ListCities()
	cities[0] = "mutated"
	assert.Equal(t, "Barcelona", ListCities()[0])

	tree := Cities()
	tree[0].Districts[0].Neighborhoods[0] = "mutated"
	assert.Equal(t, "El Raval", Cities()[0].Districts[0].Neighborhoods[0])

	all := ListNeighborhoods("Madrid")
	all[0] = "mutated"
	assert.Equal(t, "Palacio", ListNeighborhoods("Madrid")[0])
}

func TestIsDistrict(t *testing.T) {
	tests := []struct {
		name string
		in   string
		city string
		want bool
	}{
		{"exact district", "Eixample", "Barcelona", true},
		{"case sensitive", "eixample", "Barcelona", false},
		{"neighborhood is not a district", "El Raval", "Barcelona", false},
		{"other city's district", "Retiro", "Barcelona", false},
		{"unknown city", "Eixample", "Valencia", false},
		{"empty", "", "Barcelona", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDistrict(tt.in, tt.city))
		})
	}
}

func TestFindParentDistrict(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		city   string
		want   string
		wantOK bool
	}{
		{"neighborhood", "El Raval", "Barcelona", "Ciutat Vella", true},
		{"district resolves to itself", "Eixample", "Barcelona", "Eixample", true},
		{"city-wide pattern", "Barcelona (All neighborhoods)", "Barcelona", "Barcelona", true},
		{"spanish city-wide pattern", "Barcelona (Todos los barrios)", "Barcelona", "Barcelona", true},
		{"city name", "Madrid", "Madrid", "Madrid", true},
		{"madrid neighborhood", "Ibiza", "Madrid", "Retiro", true},
		{"neighborhood of another city", "El Raval", "Madrid", "", false},
		{"unknown", "Nonexistent Place", "Barcelona", "", false},
		{"unknown city", "El Raval", "Atlantis", "", false},
		{"empty", "", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindParentDistrict(tt.in, tt.city)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindParentDistrict_EveryNeighborhood(t *testing.T) {
	for _, city := range ListCities() {
		for _, d := range ListDistricts(city) {
			for _, n := range ListDistrictNeighborhoods(city, d) {
				got, ok := FindParentDistrict(n, city)
				require.Truef(t, ok, "%s/%s", city, n)
				assert.Equal(t, d, got)
			}
		}
	}
}

func TestRatingKey(t *testing.T) {
	key, ok := RatingKey("Sants", "Barcelona")
	require.True(t, ok)
	assert.Equal(t, Key{Neighborhood: "Sants", District: "Sants-Montjuïc", City: "Barcelona"}, key)
	assert.Equal(t, "Sants, Sants-Montjuïc, Barcelona", key.DisplayName())

	_, ok = RatingKey("Eixample", "Barcelona")
	assert.False(t, ok, "a district is not a rating key")

	_, ok = RatingKey("Sants", "Madrid")
	assert.False(t, ok)
}
