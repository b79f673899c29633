package model

import "time"

// CreateRatingDTO is the body of a rating submission. District is optional and, when sent,
// must match the district that owns the neighborhood.
type CreateRatingDTO struct {
	Neighborhood    string `json:"neighborhood" example:"Sants"`
	District        string `json:"district,omitempty" example:"Sants-Montjuïc"`
	City            string `json:"city" example:"Barcelona"`
	Security        int    `json:"security" example:"7"`
	Parking         int    `json:"parking" example:"4"`
	FamilyFriendly  int    `json:"familyFriendly" example:"8"`
	PublicTransport int    `json:"publicTransport" example:"9"`
	GreenSpaces     int    `json:"greenSpaces" example:"6"`
	Services        int    `json:"services" example:"8"`
	Comment         string `json:"comment,omitempty"`
}

// RatingEvent is published to the rating events queue after a rating is stored.
type RatingEvent struct {
	RatingID     string    `json:"ratingId"`
	Neighborhood string    `json:"neighborhood"`
	District     string    `json:"district,omitempty"`
	City         string    `json:"city"`
	SubmittedAt  time.Time `json:"submittedAt"`
}
