package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "food/internal/delivery/context"
	"food/internal/domain/entity"
	domainerrors "food/internal/domain/errors"
	"food/internal/domain/repository"
	"food/internal/domain/service"
	"food/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Push data keys understood by the mobile clients.
const (
	pushDataType           = "type"
	pushDataNotificationID = "notificationId"
	pushDataRestaurantID   = "restaurantId"
)

const newRestaurantTitle = "New restaurant"

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	restaurantRepo   repository.RestaurantRepository
	pushService      service.PushService
	logger           *slog.Logger
	now              func() time.Time
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
// PushService is absent when Firebase is not configured.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
	RestaurantRepo   repository.RestaurantRepository
	PushService      service.PushService `optional:"true"`
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		userRepo:         params.UserRepo,
		restaurantRepo:   params.RestaurantRepo,
		pushService:      params.PushService,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *notificationService) List(ctx context.Context) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.FindAll(ctx)

	return notifications, translateRepoError(err, "failed to list notifications")
}

func (s *notificationService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find notification")
	}

	return notification, nil
}

func (s *notificationService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.FindByUser(ctx, userID)

	return notifications, translateRepoError(err, "failed to list notifications by user")
}

func (s *notificationService) ListUnreadByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.FindUnreadByUser(ctx, userID)

	return notifications, translateRepoError(err, "failed to list unread notifications")
}

func (s *notificationService) CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return 0, err
	}

	count, err := s.notificationRepo.CountUnreadByUser(ctx, userID)

	return count, translateRepoError(err, "failed to count unread notifications")
}

func (s *notificationService) ListByType(ctx context.Context, notificationType string) ([]*entity.Notification, error) {
	parsed, err := parseNotificationType(notificationType)
	if err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.FindByType(ctx, parsed)

	return notifications, translateRepoError(err, "failed to list notifications by type")
}

func (s *notificationService) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Notification, error) {
	switch {
	case start == nil || end == nil:
		return nil, invalid("Start and end dates are required")
	case start.After(*end):
		return nil, invalid("Start date must not be after end date")
	}

	notifications, err := s.notificationRepo.FindByDateRange(ctx, *start, *end)

	return notifications, translateRepoError(err, "failed to list notifications by date range")
}

// Create persists first; the push outcome only decides Delivered.
func (s *notificationService) Create(ctx context.Context, input *usecase.CreateNotificationInput) (*usecase.NotificationResult, error) {
	if input.UserID == uuid.Nil {
		return nil, invalid("User id is required")
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find user")
	}

	if err := validateNotificationText(input.Title, input.Message); err != nil {
		return nil, err
	}
	notificationType, err := parseNotificationType(input.Type)
	if err != nil {
		return nil, err
	}

	if input.RestaurantID != nil {
		if _, err := s.restaurantRepo.FindByID(ctx, *input.RestaurantID); err != nil {
			return nil, translateRepoError(err, "failed to find restaurant")
		}
	}

	notification := &entity.Notification{
		ID:           uuid.New(),
		UserID:       user.ID,
		Title:        strings.TrimSpace(input.Title),
		Message:      strings.TrimSpace(input.Message),
		Type:         notificationType,
		RestaurantID: input.RestaurantID,
		CreatedAt:    s.now(),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, translateRepoError(err, "failed to create notification")
	}

	return &usecase.NotificationResult{
		Notification: notification,
		Delivered:    s.push(ctx, user, notification),
	}, nil
}

func (s *notificationService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateNotificationInput) (*entity.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find notification")
	}

	if err := validateNotificationText(input.Title, input.Message); err != nil {
		return nil, err
	}
	notificationType, err := parseNotificationType(input.Type)
	if err != nil {
		return nil, err
	}

	notification.Title = strings.TrimSpace(input.Title)
	notification.Message = strings.TrimSpace(input.Message)
	notification.Type = notificationType
	if input.Read != nil {
		notification.Read = *input.Read
	}

	if err := s.notificationRepo.Update(ctx, notification); err != nil {
		return nil, translateRepoError(err, "failed to update notification")
	}

	return notification, nil
}

func (s *notificationService) Delete(ctx context.Context, id uuid.UUID) error {
	return translateRepoError(s.notificationRepo.Delete(ctx, id), "failed to delete notification")
}

func (s *notificationService) MarkAsRead(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find notification")
	}
	if notification.Read {
		return nil, domainerrors.ErrNotificationAlreadyRead
	}

	notification.Read = true
	if err := s.notificationRepo.Update(ctx, notification); err != nil {
		return nil, translateRepoError(err, "failed to mark notification as read")
	}

	return notification, nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return 0, err
	}

	changed, err := s.notificationRepo.MarkAllAsReadByUser(ctx, userID)
	if err != nil {
		return 0, translateRepoError(err, "failed to mark notifications as read")
	}
	if changed == 0 {
		return 0, domainerrors.ErrNoUnreadNotifications
	}

	return changed, nil
}

// Broadcast stores one NEW_RESTAURANT notification per active diner, then pushes to those with a token.
// Tokens rejected by the push provider are cleared.
func (s *notificationService) Broadcast(ctx context.Context, event *service.RestaurantCreatedEvent) (*usecase.BroadcastResult, error) {
	restaurantID, err := uuid.Parse(event.RestaurantID)
	if err != nil {
		return nil, invalid("Invalid restaurant id: %s", event.RestaurantID)
	}

	restaurant, err := s.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find restaurant")
	}

	diners, err := s.userRepo.FindByType(ctx, entity.UserTypeNormal)
	if err != nil {
		return nil, translateRepoError(err, "failed to list diners")
	}

	now := s.now()
	message := newRestaurantMessage(restaurant)
	notifications := make([]*entity.Notification, 0, len(diners))
	recipients := make(map[uuid.UUID]*entity.User, len(diners))
	for _, diner := range diners {
		if !diner.Active {
			continue
		}

		recipients[diner.ID] = diner
		notifications = append(notifications, &entity.Notification{
			ID:           uuid.New(),
			UserID:       diner.ID,
			Title:        newRestaurantTitle,
			Message:      message,
			Type:         entity.NotificationTypeNewRestaurant,
			RestaurantID: &restaurant.ID,
			CreatedAt:    now,
		})
	}

	result := &usecase.BroadcastResult{Recipients: len(notifications)}
	if len(notifications) == 0 {
		return result, nil
	}

	if err := s.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		return nil, translateRepoError(err, "failed to store broadcast notifications")
	}

	if s.pushService == nil {
		return result, nil
	}

	var (
		messages []service.PushMessage
		pushed   []*entity.Notification
	)
	for _, notification := range notifications {
		recipient := recipients[notification.UserID]
		if recipient.PushToken == "" {
			continue
		}

		messages = append(messages, pushMessage(recipient.PushToken, notification))
		pushed = append(pushed, notification)
	}
	if len(messages) == 0 {
		return result, nil
	}

	batch, err := s.pushService.SendBatchNotification(ctx, messages)
	if err != nil {
		s.log(ctx).Warn("Broadcast push failed", slog.Any("restaurantID", restaurant.ID), slog.Any("error", err))

		return result, nil
	}

	delivered := make([]uuid.UUID, 0, batch.SuccessCount)
	for idx, ok := range batch.Delivered {
		if ok {
			delivered = append(delivered, pushed[idx].ID)
		}
	}
	if len(delivered) > 0 {
		if err := s.notificationRepo.MarkSent(ctx, delivered, s.now()); err != nil {
			s.log(ctx).Error("Failed to record sent notifications", slog.Any("error", err))
		}
	}
	result.Delivered = len(delivered)

	s.clearInvalidTokens(ctx, recipients, batch.InvalidTokens)

	s.log(ctx).Info("Broadcast completed",
		slog.Any("restaurantID", restaurant.ID),
		slog.Int("recipients", result.Recipients),
		slog.Int("delivered", result.Delivered),
		slog.Int("failed", batch.FailureCount),
	)

	return result, nil
}

// push returns whether the notification reached the device. Failures are logged, never returned.
func (s *notificationService) push(ctx context.Context, user *entity.User, notification *entity.Notification) bool {
	if s.pushService == nil || user.PushToken == "" {
		return false
	}

	if err := s.pushService.SendSingleNotification(ctx, pushMessage(user.PushToken, notification)); err != nil {
		s.log(ctx).Warn("Push delivery failed", slog.Any("notificationID", notification.ID), slog.Any("error", err))

		return false
	}

	sentAt := s.now()
	if err := s.notificationRepo.MarkSent(ctx, []uuid.UUID{notification.ID}, sentAt); err != nil {
		s.log(ctx).Error("Failed to record sent notification", slog.Any("notificationID", notification.ID), slog.Any("error", err))
	}
	notification.SentAt = &sentAt

	return true
}

func (s *notificationService) clearInvalidTokens(ctx context.Context, recipients map[uuid.UUID]*entity.User, tokens []string) {
	if len(tokens) == 0 {
		return
	}

	invalidTokens := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		invalidTokens[token] = struct{}{}
	}

	for _, user := range recipients {
		if _, ok := invalidTokens[user.PushToken]; !ok {
			continue
		}

		user.PushToken = ""
		if err := s.userRepo.Update(ctx, user); err != nil {
			s.log(ctx).Warn("Failed to clear invalid push token", slog.Any("userID", user.ID), slog.Any("error", err))
		}
	}
}

func (s *notificationService) requireUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return translateRepoError(err, "failed to find user")
	}

	return nil
}

func pushMessage(token string, notification *entity.Notification) service.PushMessage {
	data := map[string]string{
		pushDataType:           notification.Type.String(),
		pushDataNotificationID: notification.ID.String(),
	}
	if notification.RestaurantID != nil {
		data[pushDataRestaurantID] = notification.RestaurantID.String()
	}

	return service.PushMessage{
		Token: token,
		Title: notification.Title,
		Body:  notification.Message,
		Data:  data,
	}
}

func validateNotificationText(title, message string) error {
	switch {
	case isBlank(title):
		return invalid("Title is required")
	case tooLong(title, maxTitleLength):
		return invalid("Title must not exceed %d characters", maxTitleLength)
	case isBlank(message):
		return invalid("Message is required")
	case tooLong(message, maxMessageLength):
		return invalid("Message must not exceed %d characters", maxMessageLength)
	}

	return nil
}

func parseNotificationType(value string) (entity.NotificationType, error) {
	notificationType := entity.NotificationType(strings.ToUpper(strings.TrimSpace(value)))
	if !notificationType.IsValid() {
		return "", domainerrors.ErrInvalidNotificationType.WithDetails(value)
	}

	return notificationType, nil
}

func newRestaurantMessage(restaurant *entity.Restaurant) string {
	if restaurant.Category == "" {
		return fmt.Sprintf("%s just opened. Take a look!", restaurant.Name)
	}

	return fmt.Sprintf("%s (%s) just opened. Take a look!", restaurant.Name, restaurant.Category)
}
