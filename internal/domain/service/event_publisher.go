package service

import (
	"context"
)

// RestaurantCreatedEvent is emitted after a restaurant has been registered.
type RestaurantCreatedEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	RestaurantID string `json:"restaurant_id"`
	OwnerID      string `json:"owner_id"`
	Name         string `json:"name"`
	Category     string `json:"category,omitempty"`
}

// EventPublisher defines the interface for publishing domain events to a message queue
type EventPublisher interface {
	// PublishRestaurantCreated publishes a restaurant.created event for async fan-out
	PublishRestaurantCreated(ctx context.Context, event *RestaurantCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
