package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"food/config"
	"food/internal/domain/entity"
	"food/internal/domain/service"
	"food/internal/errors"
	"food/internal/infra/storage"
	"food/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

const testPublicBaseURL = "https://cdn.example.com/photos"

type photoServiceFixtures struct {
	service    usecase.PhotoUsecase
	repos      testRepos
	bucket     *blob.Bucket
	restaurant *entity.Restaurant
}

func createTestPhotoService(t *testing.T, imageStorage service.ImageStorage) photoServiceFixtures {
	repos := newTestRepos(t)
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	if imageStorage == nil {
		imageStorage = storage.NewBlobStorage(bucket, testPublicBaseURL)
	}

	owner := repos.seedUser(t, entity.UserTypeRestaurantOwner)

	return photoServiceFixtures{
		service: NewPhotoService(PhotoServiceParams{
			TxManager:      repos.txManager,
			PhotoRepo:      repos.photos,
			RestaurantRepo: repos.restaurants,
			Storage:        imageStorage,
			Config:         &config.Config{Storage: &config.StorageConfig{MaxUploadSize: 1024}},
			Logger:         newDiscardLogger(),
		}),
		repos:      repos,
		bucket:     bucket,
		restaurant: repos.seedRestaurant(t, owner.ID),
	}
}

func imageUpload(filename, contentType string, content []byte) *entity.PhotoUpload {
	return &entity.PhotoUpload{
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(content)), nil
		},
	}
}

func (fx photoServiceFixtures) upload(t *testing.T, cover bool) *entity.Photo {
	t.Helper()

	photo, err := fx.service.Upload(context.Background(), &usecase.UploadPhotoInput{
		RestaurantID: fx.restaurant.ID,
		File:         imageUpload("dish.PNG", "image/png", []byte("png-bytes")),
		Description:  "Signature dish",
		IsCover:      cover,
	})
	require.NoError(t, err)

	return photo
}

func (fx photoServiceFixtures) covers(t *testing.T) []*entity.Photo {
	t.Helper()

	photos, err := fx.repos.photos.FindByRestaurant(context.Background(), fx.restaurant.ID)
	require.NoError(t, err)

	var covers []*entity.Photo
	for _, photo := range photos {
		if photo.IsCover {
			covers = append(covers, photo)
		}
	}

	return covers
}

func TestPhotoService_Upload_StoresObject(t *testing.T) {
	fx := createTestPhotoService(t, nil)
	ctx := context.Background()

	photo := fx.upload(t, false)

	prefix := testPublicBaseURL + "/restaurants/" + fx.restaurant.ID.String() + "/"
	require.True(t, strings.HasPrefix(photo.URL, prefix), photo.URL)
	assert.True(t, strings.HasSuffix(photo.URL, ".png"))

	content, err := fx.bucket.ReadAll(ctx, strings.TrimPrefix(photo.URL, testPublicBaseURL+"/"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), content)

	stored, err := fx.repos.photos.FindByID(ctx, photo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Signature dish", stored.Description)
}

func TestPhotoService_Upload_Validation(t *testing.T) {
	fx := createTestPhotoService(t, nil)
	ctx := context.Background()

	upload := func(restaurantID uuid.UUID, file *entity.PhotoUpload, description string) error {
		_, err := fx.service.Upload(ctx, &usecase.UploadPhotoInput{RestaurantID: restaurantID, File: file, Description: description})

		return err
	}

	requireValidationError(t, upload(fx.restaurant.ID, nil, ""), "Photo file is required")
	requireValidationError(t, upload(fx.restaurant.ID, imageUpload("a.png", "image/png", nil), ""), "Photo file is required")
	requireValidationError(t, upload(uuid.New(), imageUpload("a.pdf", "application/pdf", []byte("x")), ""), "Only image files are allowed")
	requireValidationError(t, upload(fx.restaurant.ID, imageUpload("a.png", "image/png", make([]byte, 2048)), ""), "Photo must not exceed 1024 bytes")
	requireAppError(t, upload(uuid.New(), imageUpload("a.png", "image/png", []byte("x")), ""), "RESTAURANT_NOT_FOUND", entity.SeverityError)
	requireValidationError(t, upload(fx.restaurant.ID, imageUpload("a.png", "image/png", []byte("x")), strings.Repeat("d", 301)), "Description must not exceed 300 characters")
}

func TestPhotoService_Upload_CoverReplacesPrevious(t *testing.T) {
	fx := createTestPhotoService(t, nil)

	first := fx.upload(t, true)
	second := fx.upload(t, true)

	covers := fx.covers(t)
	require.Len(t, covers, 1)
	assert.Equal(t, second.ID, covers[0].ID)
	assert.NotEqual(t, first.ID, covers[0].ID)
}

func TestPhotoService_SetCover_LeavesExactlyOneCover(t *testing.T) {
	fx := createTestPhotoService(t, nil)
	ctx := context.Background()

	cover := fx.upload(t, true)
	plain := fx.upload(t, false)

	updated, err := fx.service.SetCover(ctx, plain.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsCover)

	covers := fx.covers(t)
	require.Len(t, covers, 1)
	assert.Equal(t, plain.ID, covers[0].ID)

	previous, err := fx.repos.photos.FindByID(ctx, cover.ID)
	require.NoError(t, err)
	assert.False(t, previous.IsCover)

	photos, err := fx.service.ListByRestaurant(ctx, fx.restaurant.ID)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, plain.ID, photos[0].ID)

	// Setting the current cover again keeps it.
	_, err = fx.service.SetCover(ctx, plain.ID)
	require.NoError(t, err)
	assert.Len(t, fx.covers(t), 1)

	_, err = fx.service.SetCover(ctx, uuid.New())
	requireAppError(t, err, "PHOTO_NOT_FOUND", entity.SeverityError)
}

func TestPhotoService_Delete(t *testing.T) {
	fx := createTestPhotoService(t, nil)
	ctx := context.Background()

	photo := fx.upload(t, false)

	require.NoError(t, fx.service.Delete(ctx, photo.ID))

	exists, err := fx.bucket.Exists(ctx, strings.TrimPrefix(photo.URL, testPublicBaseURL+"/"))
	require.NoError(t, err)
	assert.False(t, exists)

	err = fx.service.Delete(ctx, photo.ID)
	requireAppError(t, err, "PHOTO_NOT_FOUND", entity.SeverityError)
}

func TestPhotoService_Delete_StorageFailureKeepsRecord(t *testing.T) {
	imageStorage := &mockImageStorage{}
	fx := createTestPhotoService(t, imageStorage)
	ctx := context.Background()

	photo := &entity.Photo{ID: uuid.New(), RestaurantID: fx.restaurant.ID, URL: testPublicBaseURL + "/x.png"}
	require.NoError(t, fx.repos.photos.Create(ctx, photo))

	imageStorage.On("Delete", mock.Anything, photo.URL).Return(errors.New("bucket offline")).Once()

	err := fx.service.Delete(ctx, photo.ID)

	requireAppError(t, err, "STORAGE_FAILED", entity.SeverityError)
	imageStorage.AssertExpectations(t)

	_, err = fx.repos.photos.FindByID(ctx, photo.ID)
	require.NoError(t, err)
}

func TestPhotoService_Upload_StorageFailure(t *testing.T) {
	imageStorage := &mockImageStorage{}
	fx := createTestPhotoService(t, imageStorage)

	imageStorage.On("Upload", mock.Anything, "restaurants/"+fx.restaurant.ID.String(), "a.png", "image/png", mock.Anything).
		Return("", errors.New("quota exceeded")).Once()

	_, err := fx.service.Upload(context.Background(), &usecase.UploadPhotoInput{
		RestaurantID: fx.restaurant.ID,
		File:         imageUpload("a.png", "image/png", []byte("x")),
	})

	requireAppError(t, err, "STORAGE_FAILED", entity.SeverityError)
	imageStorage.AssertExpectations(t)
	assert.Empty(t, fx.covers(t))
}
