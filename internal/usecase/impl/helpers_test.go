package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"food/config"
	"food/internal/domain/entity"
	domainerrors "food/internal/domain/errors"
	"food/internal/domain/repository"
	"food/internal/domain/service"
	"food/internal/errors"
	"food/internal/infra/auth"
	"food/internal/infra/persistence/postgres"
	"food/internal/infra/persistence/sqlite"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testRepos bundles real repositories over one in-memory database.
type testRepos struct {
	txManager     repository.TransactionManager
	users         repository.UserRepository
	restaurants   repository.RestaurantRepository
	ratings       repository.RatingRepository
	favorites     repository.FavoriteRepository
	notifications repository.NotificationRepository
	photos        repository.PhotoRepository
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()

	db, err := sqlite.OpenInMemory(context.Background())
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return testRepos{
		txManager:     postgres.NewTransactionManager(db),
		users:         postgres.NewUserRepository(db),
		restaurants:   postgres.NewRestaurantRepository(db),
		ratings:       postgres.NewRatingRepository(db),
		favorites:     postgres.NewFavoriteRepository(db),
		notifications: postgres.NewNotificationRepository(db),
		photos:        postgres.NewPhotoRepository(db),
	}
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHasher() service.PasswordHasher {
	return auth.NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})
}

func (r testRepos) seedUser(t *testing.T, userType entity.UserType, mutators ...func(*entity.User)) *entity.User {
	t.Helper()

	id := uuid.New()
	user := &entity.User{
		ID:           id,
		Email:        strings.ToLower(id.String()) + "@example.com",
		PasswordHash: "hash",
		UserType:     userType,
		FirstName:    "Test",
		RegisteredAt: time.Now(),
		Active:       true,
	}
	for _, mutate := range mutators {
		mutate(user)
	}
	require.NoError(t, r.users.Create(context.Background(), user))

	return user
}

func (r testRepos) seedRestaurant(t *testing.T, ownerID uuid.UUID, mutators ...func(*entity.Restaurant)) *entity.Restaurant {
	t.Helper()

	restaurant := &entity.Restaurant{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         "Trattoria",
		Address:      "1 Main St",
		Category:     "Italian",
		RegisteredAt: time.Now(),
		Active:       true,
	}
	for _, mutate := range mutators {
		mutate(restaurant)
	}
	require.NoError(t, r.restaurants.Create(context.Background(), restaurant))

	return restaurant
}

// requireAppError asserts the error carries the given business code and severity.
func requireAppError(t *testing.T, err error, code string, severity entity.Severity) domainerrors.AppError {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, code, appErr.ErrorCode())
	assert.Equal(t, severity, appErr.Severity())

	return appErr
}

func requireValidationError(t *testing.T, err error, message string) {
	t.Helper()

	appErr := requireAppError(t, err, "VALIDATION_FAILED", entity.SeverityWarning)
	assert.Equal(t, message, appErr.Message())
}

// --- Fakes ---

type mockPushService struct {
	mock.Mock
}

func (m *mockPushService) SendSingleNotification(ctx context.Context, message service.PushMessage) error {
	return m.Called(ctx, message).Error(0)
}

func (m *mockPushService) SendBatchNotification(ctx context.Context, messages []service.PushMessage) (*service.PushBatchResult, error) {
	args := m.Called(ctx, messages)
	if fn, ok := args.Get(0).(func(context.Context, []service.PushMessage) *service.PushBatchResult); ok {
		return fn(ctx, messages), args.Error(1)
	}
	result, _ := args.Get(0).(*service.PushBatchResult)

	return result, args.Error(1)
}

type mockImageStorage struct {
	mock.Mock
}

func (m *mockImageStorage) Upload(ctx context.Context, folder, filename, contentType string, content io.Reader) (string, error) {
	args := m.Called(ctx, folder, filename, contentType, content)

	return args.String(0), args.Error(1)
}

func (m *mockImageStorage) Delete(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) PublishRestaurantCreated(ctx context.Context, event *service.RestaurantCreatedEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventPublisher) Close() error {
	return m.Called().Error(0)
}

type mockQRCodeService struct {
	mock.Mock
}

func (m *mockQRCodeService) GenerateRestaurantQR(restaurantID uuid.UUID) ([]byte, error) {
	args := m.Called(restaurantID)
	png, _ := args.Get(0).([]byte)

	return png, args.Error(1)
}
