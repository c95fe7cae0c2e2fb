package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a restaurant as saved by a user. One per (user, restaurant) pair.
type Favorite struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	AddedAt      time.Time `json:"added_at"`
}
