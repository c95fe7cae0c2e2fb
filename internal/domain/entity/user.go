// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of the platform, either a diner or a restaurant owner.
type User struct {
	ID           uuid.UUID  `json:"id"`                      // The Global Unique Identifier (GUID) for the user.
	Email        string     `json:"email"`                   // Lower-cased login email, unique across users.
	PasswordHash string     `json:"-"`                       // Bcrypt hash of the password. Never serialized.
	UserType     UserType   `json:"user_type"`               // NORMAL or RESTAURANT_OWNER.
	FirstName    string     `json:"first_name"`              // Given name, required.
	LastName     string     `json:"last_name,omitempty"`     // Family name, optional.
	Phone        string     `json:"phone,omitempty"`         // Contact phone in international digits.
	RegisteredAt time.Time  `json:"registered_at"`           // Timestamp of account creation.
	Active       bool       `json:"active"`                  // Inactive accounts cannot log in.
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"` // Timestamp of the last successful login.
	PushToken    string     `json:"push_token,omitempty"`    // Device token used for push delivery.
}

// IsOwnerOf reports whether the user owns the given restaurant.
func (u *User) IsOwnerOf(restaurant *Restaurant) bool {
	return restaurant != nil && restaurant.OwnerID == u.ID
}
