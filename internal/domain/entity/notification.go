package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a message addressed to one user, optionally about a restaurant.
type Notification struct {
	ID           uuid.UUID        `json:"id"`
	UserID       uuid.UUID        `json:"user_id"`                 // Recipient.
	Title        string           `json:"title"`                   // At most 200 characters.
	Message      string           `json:"message"`                 // At most 1000 characters.
	Type         NotificationType `json:"type"`                    // Category of the notification.
	RestaurantID *uuid.UUID       `json:"restaurant_id,omitempty"` // Restaurant the notification refers to, if any.
	Read         bool             `json:"read"`
	CreatedAt    time.Time        `json:"created_at"`
	SentAt       *time.Time       `json:"sent_at,omitempty"` // Set once a push delivery succeeded.
}

// NotificationType classifies notifications.
type NotificationType string

const (
	NotificationTypeNewRestaurant NotificationType = "NEW_RESTAURANT"
	NotificationTypeMenuUpdate    NotificationType = "MENU_UPDATE"
	NotificationTypePromotion     NotificationType = "PROMOTION"
	NotificationTypeSystem        NotificationType = "SYSTEM"
)

// String returns the string representation of the NotificationType.
func (t NotificationType) String() string {
	return string(t)
}

// IsValid checks if the NotificationType is a valid value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeNewRestaurant, NotificationTypeMenuUpdate, NotificationTypePromotion, NotificationTypeSystem:
		return true
	default:
		return false
	}
}
