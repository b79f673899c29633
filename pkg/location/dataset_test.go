package location

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDataset(t *testing.T) {
	h, err := load(hierarchyYAML)
	require.NoError(t, err)
	assert.Len(t, h.cities, 2)
	assert.Len(t, h.cities[1].Districts, 21)

	for _, n := range h.flat {
		assert.NotContains(t, n.name, Separator)
		assert.False(t, IsDistrict(n.name, n.city), "%s collides with a district", n.name)
	}
}

func TestLoadRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		errPart string
	}{
		{
			name:    "no cities",
			yaml:    "cities: []",
			errPart: "no cities",
		},
		{
			name: "separator in a name",
			yaml: `
cities:
  - name: Barcelona
    districts:
      - name: Ciutat Vella
        neighborhoods: ["Sant Pere, Santa Caterina"]`,
			errPart: "separator",
		},
		{
			name: "neighborhood in two districts",
			yaml: `
cities:
  - name: Barcelona
    districts:
      - name: A
        neighborhoods: [X]
      - name: B
        neighborhoods: [X]`,
			errPart: "listed in both",
		},
		{
			name: "neighborhood named like a district",
			yaml: `
cities:
  - name: Barcelona
    districts:
      - name: Les Corts
        neighborhoods: [Les Corts]`,
			errPart: "collides",
		},
		{
			name: "duplicate district",
			yaml: `
cities:
  - name: Barcelona
    districts:
      - name: A
      - name: A`,
			errPart: "duplicate district",
		},
		{
			name:    "malformed yaml",
			yaml:    "cities: [",
			errPart: "parse",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load([]byte(strings.TrimSpace(tt.yaml)))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestMustLoadPanicsOnInvalidTable(t *testing.T) {
	assert.Panics(t, func() { mustLoad([]byte("cities: []")) })
}
