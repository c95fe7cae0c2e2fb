package entity

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is a venue listed by an owner-type user.
type Restaurant struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`                // The RESTAURANT_OWNER user who manages the venue.
	Name         string    `json:"name"`                    // Display name, required.
	Description  string    `json:"description,omitempty"`   // Free text description.
	Address      string    `json:"address"`                 // Street address, required.
	Latitude     *float64  `json:"latitude,omitempty"`      // WGS84 latitude in [-90, 90].
	Longitude    *float64  `json:"longitude,omitempty"`     // WGS84 longitude in [-180, 180].
	Phone        string    `json:"phone,omitempty"`         // Contact phone.
	OpensAt      string    `json:"opens_at,omitempty"`      // Opening time of day, "HH:MM:SS".
	ClosesAt     string    `json:"closes_at,omitempty"`     // Closing time of day, "HH:MM:SS".
	AveragePrice *float64  `json:"average_price,omitempty"` // Average ticket price, never negative.
	Category     string    `json:"category,omitempty"`      // Cuisine or venue category.
	MenuURL      string    `json:"menu_url,omitempty"`      // Link to the published menu.
	RegisteredAt time.Time `json:"registered_at"`
	Active       bool      `json:"active"`
}

// HasLocation reports whether both coordinates are set.
func (r *Restaurant) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// NearbyRestaurant is a restaurant paired with its distance from a search point.
type NearbyRestaurant struct {
	Restaurant *Restaurant `json:"restaurant"`
	DistanceKm float64     `json:"distance_km"`
}
