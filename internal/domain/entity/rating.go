package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating scores bounds.
const (
	MinScore = 1
	MaxScore = 5
)

// Rating is a user's review of a restaurant. A user rates a restaurant at most once.
type Rating struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	RestaurantID  uuid.UUID `json:"restaurant_id"`
	FoodScore     int       `json:"food_score"`
	ServiceScore  int       `json:"service_score"`
	AmbienceScore int       `json:"ambience_score"`
	Comment       string    `json:"comment,omitempty"`
	RatedAt       time.Time `json:"rated_at"`
}

// Average returns the mean of the three sub-scores.
func (r *Rating) Average() float64 {
	return float64(r.FoodScore+r.ServiceScore+r.AmbienceScore) / 3.0
}

// RatingSummary aggregates the ratings of one restaurant.
type RatingSummary struct {
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Average      float64   `json:"average"` // Mean of per-rating averages, 0 when Count is 0.
	Count        int64     `json:"count"`
}
