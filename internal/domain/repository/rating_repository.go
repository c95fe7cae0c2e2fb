package repository

import (
	"context"
	"errors"

	"food/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrRatingNotFound is returned when a rating is not found.
	ErrRatingNotFound = errors.New("rating not found")

	// ErrRatingAlreadyExists is returned when the (user, restaurant) unique index rejects a rating.
	ErrRatingAlreadyExists = errors.New("rating already exists")
)

// RatingRepository defines persistence operations for ratings.
type RatingRepository interface {
	FindAll(ctx context.Context) ([]*entity.Rating, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error)
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Rating, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Rating, error)
	ExistsByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (bool, error)

	// Summary aggregates the average of per-rating averages and the rating count.
	Summary(ctx context.Context, restaurantID uuid.UUID) (*entity.RatingSummary, error)

	Create(ctx context.Context, rating *entity.Rating) error
	Update(ctx context.Context, rating *entity.Rating) error
	Delete(ctx context.Context, id uuid.UUID) error
}
