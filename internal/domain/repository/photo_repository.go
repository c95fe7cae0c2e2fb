package repository

import (
	"context"
	"errors"

	"food/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPhotoNotFound is returned when a photo, or a restaurant's cover photo, is not found.
var ErrPhotoNotFound = errors.New("photo not found")

// PhotoRepository defines persistence operations for restaurant photos.
type PhotoRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error)

	// FindByRestaurant lists photos with the cover first, then newest first.
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Photo, error)

	// FindCover returns the restaurant's cover photo or ErrPhotoNotFound.
	FindCover(ctx context.Context, restaurantID uuid.UUID) (*entity.Photo, error)

	Create(ctx context.Context, photo *entity.Photo) error
	Update(ctx context.Context, photo *entity.Photo) error
	Delete(ctx context.Context, id uuid.UUID) error
}
