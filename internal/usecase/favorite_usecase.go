package usecase

import (
	"context"

	"food/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase defines saved restaurants.
type FavoriteUsecase interface {
	List(ctx context.Context) ([]*entity.Favorite, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Favorite, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Favorite, error)
	Exists(ctx context.Context, userID, restaurantID uuid.UUID) (bool, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountByRestaurant(ctx context.Context, restaurantID uuid.UUID) (int64, error)

	Create(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.Favorite, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// RemoveByUserAndRestaurant fails with a warning when the pair is not saved.
	RemoveByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) error
}
