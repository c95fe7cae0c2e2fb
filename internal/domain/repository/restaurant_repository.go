package repository

import (
	"context"
	"errors"

	"food/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRestaurantNotFound is returned when a restaurant is not found.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository defines persistence operations for restaurants.
type RestaurantRepository interface {
	FindAll(ctx context.Context) ([]*entity.Restaurant, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Restaurant, error)
	FindActive(ctx context.Context) ([]*entity.Restaurant, error)
	FindByCategory(ctx context.Context, category string) ([]*entity.Restaurant, error)

	// SearchByName matches a case-insensitive substring of the name.
	SearchByName(ctx context.Context, name string) ([]*entity.Restaurant, error)

	// FindByPriceRange returns restaurants whose average price lies in [min, max].
	FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*entity.Restaurant, error)

	// FindActiveWithLocation returns active restaurants that have both coordinates.
	FindActiveWithLocation(ctx context.Context) ([]*entity.Restaurant, error)

	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	Update(ctx context.Context, restaurant *entity.Restaurant) error
}
