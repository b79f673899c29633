package location

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/hierarchy.yml
var hierarchyYAML []byte

// City is a top-level location owning an ordered list of districts.
type City struct {
	Name      string     `yaml:"name" json:"name"`
	Districts []District `yaml:"districts" json:"districts"`
}

// District groups neighborhoods inside a city. Names are unique per city only.
type District struct {
	Name          string   `yaml:"name" json:"name"`
	Neighborhoods []string `yaml:"neighborhoods" json:"neighborhoods"`
}

type hierarchyFile struct {
	Cities []City `yaml:"cities"`
}

// placement locates a neighborhood inside the tree.
type placement struct {
	city     string
	district string
}

// hierarchy is the parsed, validated and indexed dataset. It is built once during
// package initialisation and never mutated afterwards, so it is safe for concurrent reads.
type hierarchy struct {
	cities      []City
	cityIdx     map[string]int
	districtIdx map[string]map[string]int
	// neighborhoodIdx maps city -> neighborhood -> district
	neighborhoodIdx map[string]map[string]string
	// flat holds every neighborhood in dataset order, for substring search
	flat []placedNeighborhood
}

type placedNeighborhood struct {
	name     string
	folded   string
	district string
	city     string
}

var tree = mustLoad(hierarchyYAML)

func mustLoad(raw []byte) *hierarchy {
	h, err := load(raw)
	if err != nil {
		panic(fmt.Sprintf("location: invalid hierarchy dataset: %v", err))
	}
	return h
}

func load(raw []byte) (*hierarchy, error) {
	var file hierarchyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse hierarchy: %w", err)
	}
	if len(file.Cities) == 0 {
		return nil, fmt.Errorf("hierarchy has no cities")
	}

	h := &hierarchy{
		cities:          file.Cities,
		cityIdx:         make(map[string]int, len(file.Cities)),
		districtIdx:     make(map[string]map[string]int, len(file.Cities)),
		neighborhoodIdx: make(map[string]map[string]string, len(file.Cities)),
	}

	for ci, city := range file.Cities {
		if err := validName(city.Name); err != nil {
			return nil, fmt.Errorf("city #%d: %w", ci, err)
		}
		if _, dup := h.cityIdx[city.Name]; dup {
			return nil, fmt.Errorf("duplicate city %q", city.Name)
		}
		h.cityIdx[city.Name] = ci

		districts := make(map[string]int, len(city.Districts))
		for di, district := range city.Districts {
			if err := validName(district.Name); err != nil {
				return nil, fmt.Errorf("%s district #%d: %w", city.Name, di, err)
			}
			if _, dup := districts[district.Name]; dup {
				return nil, fmt.Errorf("%s: duplicate district %q", city.Name, district.Name)
			}
			districts[district.Name] = di
		}
		h.districtIdx[city.Name] = districts

		neighborhoods := make(map[string]string)
		for _, district := range city.Districts {
			for _, n := range district.Neighborhoods {
				if err := validName(n); err != nil {
					return nil, fmt.Errorf("%s/%s: %w", city.Name, district.Name, err)
				}
				if owner, dup := neighborhoods[n]; dup {
					return nil, fmt.Errorf("%s: neighborhood %q listed in both %q and %q", city.Name, n, owner, district.Name)
				}
				if _, clash := districts[n]; clash || n == city.Name {
					return nil, fmt.Errorf("%s: neighborhood %q collides with a district or city name", city.Name, n)
				}
				neighborhoods[n] = district.Name
				h.flat = append(h.flat, placedNeighborhood{
					name:     n,
					folded:   fold(n),
					district: district.Name,
					city:     city.Name,
				})
			}
		}
		h.neighborhoodIdx[city.Name] = neighborhoods
	}

	return h, nil
}

func validName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("empty name")
	}
	if strings.Contains(name, Separator) {
		return fmt.Errorf("name %q contains the display-name separator", name)
	}
	return nil
}

func (h *hierarchy) city(name string) (City, bool) {
	i, ok := h.cityIdx[name]
	if !ok {
		return City{}, false
	}
	return h.cities[i], true
}

func (h *hierarchy) district(city, name string) (District, bool) {
	districts, ok := h.districtIdx[city]
	if !ok {
		return District{}, false
	}
	i, ok := districts[name]
	if !ok {
		return District{}, false
	}
	return h.cities[h.cityIdx[city]].Districts[i], true
}
