package postgres

import (
	"context"
	"testing"
	"time"

	"food/internal/domain/entity"
	"food/internal/domain/repository"
	"food/internal/errors"
	"food/internal/infra/persistence/sqlite"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := sqlite.OpenInMemory(context.Background())
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, userType entity.UserType) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "hash",
		UserType:     userType,
		FirstName:    "Test",
		RegisteredAt: time.Now(),
		Active:       true,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedRestaurant(t *testing.T, db *gorm.DB, ownerID uuid.UUID, name string) *entity.Restaurant {
	t.Helper()

	restaurant := &entity.Restaurant{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         name,
		Address:      "1 Main St",
		Category:     "Italian",
		RegisteredAt: time.Now(),
		Active:       true,
	}
	require.NoError(t, NewRestaurantRepository(db).Create(context.Background(), restaurant))

	return restaurant
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := seedUser(t, db, "alice@example.com", entity.UserTypeNormal)

	found, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, entity.UserTypeNormal, found.UserType)

	exists, err := repo.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "dup@example.com", entity.UserTypeNormal)

	err := NewUserRepository(db).Create(context.Background(), &entity.User{
		ID:           uuid.New(),
		Email:        "dup@example.com",
		PasswordHash: "hash",
		UserType:     entity.UserTypeNormal,
		FirstName:    "Other",
		RegisteredAt: time.Now(),
		Active:       true,
	})

	assert.ErrorIs(t, err, repository.ErrEmailAlreadyExists)
}

func TestUserRepository_UpdatePersistsFalseActive(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := seedUser(t, db, "bob@example.com", entity.UserTypeRestaurantOwner)

	user.Active = false
	user.LastName = "Builder"
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, found.Active)
	assert.Equal(t, "Builder", found.LastName)

	count, err := repo.CountByType(ctx, entity.UserTypeRestaurantOwner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	active, err := repo.FindActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	missing := *user
	missing.ID = uuid.New()
	assert.ErrorIs(t, repo.Update(ctx, &missing), repository.ErrUserNotFound)
}

func TestRestaurantRepository_Lookups(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)
	owner := seedUser(t, db, "owner@example.com", entity.UserTypeRestaurantOwner)

	pasta := seedRestaurant(t, db, owner.ID, "Pasta_House")
	pasta.AveragePrice = floatPtr(20)
	pasta.OpensAt = "09:30:00"
	pasta.Latitude = floatPtr(25.03)
	pasta.Longitude = floatPtr(121.56)
	require.NoError(t, repo.Update(ctx, pasta))
	sushi := seedRestaurant(t, db, owner.ID, "Sushi Bar")
	sushi.Category = "Japanese"
	sushi.AveragePrice = floatPtr(50)
	require.NoError(t, repo.Update(ctx, sushi))

	found, err := repo.FindByID(ctx, pasta.ID)
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", found.OpensAt)
	assert.Empty(t, found.ClosesAt)

	byName, err := repo.SearchByName(ctx, "pasta_")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, pasta.ID, byName[0].ID)

	noWildcard, err := repo.SearchByName(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, noWildcard)

	byCategory, err := repo.FindByCategory(ctx, "japanese")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)

	byPrice, err := repo.FindByPriceRange(ctx, 10, 30)
	require.NoError(t, err)
	require.Len(t, byPrice, 1)
	assert.Equal(t, pasta.ID, byPrice[0].ID)

	located, err := repo.FindActiveWithLocation(ctx)
	require.NoError(t, err)
	require.Len(t, located, 1)

	count, err := repo.CountByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRestaurantRepository_UnknownOwner(t *testing.T) {
	db := newTestDB(t)

	err := NewRestaurantRepository(db).Create(context.Background(), &entity.Restaurant{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Name:         "Ghost",
		Address:      "Nowhere",
		RegisteredAt: time.Now(),
		Active:       true,
	})

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestRatingRepository_UniquePairAndSummary(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRatingRepository(db)
	owner := seedUser(t, db, "owner@example.com", entity.UserTypeRestaurantOwner)
	diner := seedUser(t, db, "diner@example.com", entity.UserTypeNormal)
	other := seedUser(t, db, "other@example.com", entity.UserTypeNormal)
	restaurant := seedRestaurant(t, db, owner.ID, "Grill")

	empty, err := repo.Summary(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Zero(t, empty.Count)
	assert.Zero(t, empty.Average)

	first := &entity.Rating{ID: uuid.New(), UserID: diner.ID, RestaurantID: restaurant.ID, FoodScore: 5, ServiceScore: 4, AmbienceScore: 3, RatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, first))
	second := &entity.Rating{ID: uuid.New(), UserID: other.ID, RestaurantID: restaurant.ID, FoodScore: 2, ServiceScore: 2, AmbienceScore: 2, RatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, second))

	duplicate := *first
	duplicate.ID = uuid.New()
	assert.ErrorIs(t, repo.Create(ctx, &duplicate), repository.ErrRatingAlreadyExists)

	summary, err := repo.Summary(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Count)
	assert.InDelta(t, 3.0, summary.Average, 0.0001)

	exists, err := repo.ExistsByUserAndRestaurant(ctx, diner.ID, restaurant.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), repository.ErrRatingNotFound)
}

func TestFavoriteRepository_PairLookups(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	owner := seedUser(t, db, "owner@example.com", entity.UserTypeRestaurantOwner)
	diner := seedUser(t, db, "diner@example.com", entity.UserTypeNormal)
	restaurant := seedRestaurant(t, db, owner.ID, "Cafe")

	favorite := &entity.Favorite{ID: uuid.New(), UserID: diner.ID, RestaurantID: restaurant.ID, AddedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, favorite))

	duplicate := *favorite
	duplicate.ID = uuid.New()
	assert.ErrorIs(t, repo.Create(ctx, &duplicate), repository.ErrFavoriteAlreadyExists)

	found, err := repo.FindByUserAndRestaurant(ctx, diner.ID, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, favorite.ID, found.ID)

	byUser, err := repo.CountByUser(ctx, diner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), byUser)

	require.NoError(t, repo.Delete(ctx, favorite.ID))
	_, err = repo.FindByUserAndRestaurant(ctx, diner.ID, restaurant.ID)
	assert.ErrorIs(t, err, repository.ErrFavoriteNotFound)
}

func TestNotificationRepository_ReadState(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	user := seedUser(t, db, "reader@example.com", entity.UserTypeNormal)

	batch := []*entity.Notification{
		{ID: uuid.New(), UserID: user.ID, Title: "a", Message: "m", Type: entity.NotificationTypeSystem, CreatedAt: time.Now()},
		{ID: uuid.New(), UserID: user.ID, Title: "b", Message: "m", Type: entity.NotificationTypePromotion, CreatedAt: time.Now()},
	}
	require.NoError(t, repo.CreateBatch(ctx, batch))

	unread, err := repo.CountUnreadByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	byType, err := repo.FindByType(ctx, entity.NotificationTypePromotion)
	require.NoError(t, err)
	require.Len(t, byType, 1)

	inRange, err := repo.FindByDateRange(ctx,
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, inRange, 2)

	sentAt := time.Now()
	require.NoError(t, repo.MarkSent(ctx, []uuid.UUID{batch[0].ID}, sentAt))
	sent, err := repo.FindByID(ctx, batch[0].ID)
	require.NoError(t, err)
	assert.NotNil(t, sent.SentAt)

	changed, err := repo.MarkAllAsReadByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), changed)

	changed, err = repo.MarkAllAsReadByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestPhotoRepository_CoverOrdering(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPhotoRepository(db)
	owner := seedUser(t, db, "owner@example.com", entity.UserTypeRestaurantOwner)
	restaurant := seedRestaurant(t, db, owner.ID, "Bistro")

	now := time.Now()
	older := &entity.Photo{ID: uuid.New(), RestaurantID: restaurant.ID, URL: "u1", IsCover: true, UploadedAt: now.Add(-time.Hour)}
	newer := &entity.Photo{ID: uuid.New(), RestaurantID: restaurant.ID, URL: "u2", UploadedAt: now}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	photos, err := repo.FindByRestaurant(ctx, restaurant.ID)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, older.ID, photos[0].ID)

	cover, err := repo.FindCover(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, older.ID, cover.ID)

	require.NoError(t, repo.Delete(ctx, older.ID))
	_, err = repo.FindCover(ctx, restaurant.ID)
	assert.ErrorIs(t, err, repository.ErrPhotoNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com", entity.UserTypeRestaurantOwner)
	restaurant := seedRestaurant(t, db, owner.ID, "Diner")
	photo := &entity.Photo{ID: uuid.New(), RestaurantID: restaurant.ID, URL: "u", UploadedAt: time.Now()}
	require.NoError(t, NewPhotoRepository(db).Create(ctx, photo))

	errAbort := errors.New("abort")
	err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		photo.IsCover = true
		if err := factory.NewPhotoRepository().Update(ctx, photo); err != nil {
			return err
		}

		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	stored, err := NewPhotoRepository(db).FindByID(ctx, photo.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsCover)
}
