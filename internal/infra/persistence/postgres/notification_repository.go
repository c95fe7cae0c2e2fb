package postgres

import (
	"context"
	"time"

	"food/internal/domain/entity"
	domainerrors "food/internal/domain/errors"
	"food/internal/domain/repository"
	"food/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const notificationBatchSize = 500

// notificationRepository implements the repository.NotificationRepository interface using GORM.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (repo *notificationRepository) FindAll(ctx context.Context) ([]*entity.Notification, error) {
	return repo.find(ctx, "failed to list notifications", func(db *gorm.DB) *gorm.DB {
		return db
	})
}

func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by id")
	}

	return toNotificationDomain(&notificationM), nil
}

func (repo *notificationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	return repo.find(ctx, "failed to list notifications by user", func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	})
}

func (repo *notificationRepository) FindUnreadByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	return repo.find(ctx, "failed to list unread notifications", func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ? AND read = ?", userID, false)
	})
}

func (repo *notificationRepository) CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

func (repo *notificationRepository) FindByType(ctx context.Context, notificationType entity.NotificationType) ([]*entity.Notification, error) {
	return repo.find(ctx, "failed to list notifications by type", func(db *gorm.DB) *gorm.DB {
		return db.Where("type = ?", notificationType.String())
	})
}

func (repo *notificationRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Notification, error) {
	return repo.find(ctx, "failed to list notifications by date range", func(db *gorm.DB) *gorm.DB {
		return db.Where("created_at BETWEEN ? AND ?", start, end)
	})
}

func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if err := repo.db.WithContext(ctx).Create(fromNotificationDomain(notification)).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	return nil
}

func (repo *notificationRepository) CreateBatch(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	models := make([]*model.NotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		models = append(models, fromNotificationDomain(notification))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(models, notificationBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notifications")
	}

	return nil
}

func (repo *notificationRepository) Update(ctx context.Context, notification *entity.Notification) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", notification.ID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(fromNotificationDomain(notification))
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update notification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *notificationRepository) MarkSent(ctx context.Context, ids []uuid.UUID, sentAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id IN ?", ids).
		Update("sent_at", sentAt).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark notifications as sent")
	}

	return nil
}

func (repo *notificationRepository) MarkAllAsReadByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	if err := result.Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to mark notifications as read")
	}

	return result.RowsAffected, nil
}

func (repo *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NotificationModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete notification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *notificationRepository) find(ctx context.Context, errMsg string, scope func(*gorm.DB) *gorm.DB) ([]*entity.Notification, error) {
	var notifications []*model.NotificationModel
	if err := repo.db.WithContext(ctx).
		Scopes(scope).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, errors.Wrap(err, errMsg)
	}

	result := make([]*entity.Notification, 0, len(notifications))
	for _, notificationM := range notifications {
		result = append(result, toNotificationDomain(notificationM))
	}

	return result, nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:           data.ID,
		UserID:       data.UserID,
		Title:        data.Title,
		Message:      data.Message,
		Type:         entity.NotificationType(data.Type),
		RestaurantID: data.RestaurantID,
		Read:         data.Read,
		CreatedAt:    data.CreatedAt,
		SentAt:       data.SentAt,
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Title:        data.Title,
		Message:      data.Message,
		Type:         data.Type.String(),
		RestaurantID: data.RestaurantID,
		Read:         data.Read,
		CreatedAt:    data.CreatedAt,
		SentAt:       data.SentAt,
	}
}
