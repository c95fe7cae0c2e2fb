package repository

import (
	"context"
	"errors"

	"food/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrFavoriteNotFound is returned when a favorite is not found.
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrFavoriteAlreadyExists is returned when the (user, restaurant) unique index rejects a favorite.
	ErrFavoriteAlreadyExists = errors.New("favorite already exists")
)

// FavoriteRepository defines persistence operations for favorites.
type FavoriteRepository interface {
	FindAll(ctx context.Context) ([]*entity.Favorite, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Favorite, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Favorite, error)
	FindByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.Favorite, error)
	ExistsByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (bool, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountByRestaurant(ctx context.Context, restaurantID uuid.UUID) (int64, error)
	Create(ctx context.Context, favorite *entity.Favorite) error
	Delete(ctx context.Context, id uuid.UUID) error
}
