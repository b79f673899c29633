package entity

import "time"

// RatingSummary aggregates every rating of one neighborhood. Averages are rounded to two decimals
// and zero when Count is zero.
type RatingSummary struct {
	Neighborhood    string     `json:"neighborhood"`
	District        string     `json:"district,omitempty"`
	City            string     `json:"city"`
	DisplayName     string     `json:"displayName"`
	Count           int64      `json:"count"`
	Security        float64    `json:"security"`
	Parking         float64    `json:"parking"`
	FamilyFriendly  float64    `json:"familyFriendly"`
	PublicTransport float64    `json:"publicTransport"`
	GreenSpaces     float64    `json:"greenSpaces"`
	Services        float64    `json:"services"`
	Overall         float64    `json:"overall"`
	LastRatedAt     *time.Time `json:"lastRatedDate,omitempty"`
}
