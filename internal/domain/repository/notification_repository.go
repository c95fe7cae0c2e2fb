package repository

import (
	"context"
	"errors"
	"time"

	"food/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines persistence operations for notifications.
// Listings are ordered newest first.
type NotificationRepository interface {
	FindAll(ctx context.Context) ([]*entity.Notification, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)
	FindUnreadByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)
	CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	FindByType(ctx context.Context, notificationType entity.NotificationType) ([]*entity.Notification, error)

	// FindByDateRange returns notifications created within [start, end].
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Notification, error)

	Create(ctx context.Context, notification *entity.Notification) error

	// CreateBatch persists many notifications in one statement.
	CreateBatch(ctx context.Context, notifications []*entity.Notification) error

	Update(ctx context.Context, notification *entity.Notification) error

	// MarkSent stamps SentAt on the given notifications.
	MarkSent(ctx context.Context, ids []uuid.UUID, sentAt time.Time) error

	// MarkAllAsReadByUser flips every unread notification of the user and returns how many changed.
	MarkAllAsReadByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
