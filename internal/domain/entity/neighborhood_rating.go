package entity

import "time"

const (
	MinScore = 1
	MaxScore = 10
)

// NeighborhoodRating is one user's evaluation of a neighborhood. Every score is in [MinScore, MaxScore].
type NeighborhoodRating struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid"`
	Neighborhood    string    `json:"neighborhood" gorm:"not null;index:idx_neighborhood_ratings_location,priority:2"`
	District        string    `json:"district"`
	City            string    `json:"city" gorm:"not null;index:idx_neighborhood_ratings_location,priority:1"`
	Security        int       `json:"security" gorm:"not null"`
	Parking         int       `json:"parking" gorm:"not null"`
	FamilyFriendly  int       `json:"familyFriendly" gorm:"not null"`
	PublicTransport int       `json:"publicTransport" gorm:"not null"`
	GreenSpaces     int       `json:"greenSpaces" gorm:"not null"`
	Services        int       `json:"services" gorm:"not null"`
	Comment         string    `json:"comment,omitempty"`
	CreatedAt       time.Time `json:"createdDate" gorm:"not null"`
}

func (NeighborhoodRating) TableName() string {
	return "neighborhood_ratings"
}

// Scores returns the sub-scores keyed by their JSON name, in a stable order.
func (r NeighborhoodRating) Scores() []Score {
	return []Score{
		{Name: "security", Value: r.Security},
		{Name: "parking", Value: r.Parking},
		{Name: "familyFriendly", Value: r.FamilyFriendly},
		{Name: "publicTransport", Value: r.PublicTransport},
		{Name: "greenSpaces", Value: r.GreenSpaces},
		{Name: "services", Value: r.Services},
	}
}

type Score struct {
	Name  string
	Value int
}
