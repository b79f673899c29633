package model

import "habitat-api/pkg/location"

// LocationResolution describes what a free-text query selects inside a city.
type LocationResolution struct {
	Query string              `json:"query"`
	City  string              `json:"city"`
	Kind  location.FilterKind `json:"kind"`
	// District is the owning district, or the city itself for city-wide queries
	District      string   `json:"district"`
	Label         string   `json:"label"`
	Neighborhoods []string `json:"neighborhoods"`
}

type LocationExpansion struct {
	Query         string   `json:"query"`
	City          string   `json:"city"`
	CityWide      bool     `json:"cityWide"`
	Neighborhoods []string `json:"neighborhoods"`
}

type DisplayNameResponse struct {
	Label string `json:"label"`
}
