package usecase

import (
	"context"
	"time"

	"food/internal/domain/entity"
	"food/internal/domain/service"

	"github.com/google/uuid"
)

// CreateNotificationInput defines a notification for one user.
type CreateNotificationInput struct {
	UserID       uuid.UUID
	Title        string
	Message      string
	Type         string
	RestaurantID *uuid.UUID
}

// UpdateNotificationInput defines the editable fields of a notification.
type UpdateNotificationInput struct {
	Title   string
	Message string
	Type    string
	Read    *bool
}

// NotificationResult reports whether the push delivery of a saved notification succeeded.
type NotificationResult struct {
	Notification *entity.Notification
	Delivered    bool
}

// BroadcastResult summarizes a fan-out.
type BroadcastResult struct {
	Recipients int
	Delivered  int
}

// NotificationUsecase defines user notifications and their push delivery.
type NotificationUsecase interface {
	List(ctx context.Context) ([]*entity.Notification, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)
	ListUnreadByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)
	CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	ListByType(ctx context.Context, notificationType string) ([]*entity.Notification, error)
	ListByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Notification, error)

	// Create saves the notification, then attempts a push. An undelivered push is not an error.
	Create(ctx context.Context, input *CreateNotificationInput) (*NotificationResult, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateNotificationInput) (*entity.Notification, error)
	Delete(ctx context.Context, id uuid.UUID) error

	MarkAsRead(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// MarkAllAsRead returns the number of notifications that changed.
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// Broadcast notifies every active diner about a newly registered restaurant.
	Broadcast(ctx context.Context, event *service.RestaurantCreatedEvent) (*BroadcastResult, error)
}
