package usecase

import (
	"context"

	"food/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadPhotoInput defines an uploaded restaurant image.
type UploadPhotoInput struct {
	RestaurantID uuid.UUID
	File         *entity.PhotoUpload
	Description  string
	IsCover      bool
}

// PhotoUsecase defines restaurant photo hosting.
type PhotoUsecase interface {
	Upload(ctx context.Context, input *UploadPhotoInput) (*entity.Photo, error)

	// ListByRestaurant lists the cover first, then the newest photos.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Photo, error)

	// SetCover makes the photo the only cover of its restaurant.
	SetCover(ctx context.Context, photoID uuid.UUID) (*entity.Photo, error)

	// Delete removes the stored image, then the record.
	Delete(ctx context.Context, photoID uuid.UUID) error
}
