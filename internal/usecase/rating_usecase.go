package usecase

import (
	"context"

	"food/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRatingInput defines a new review of a restaurant.
type CreateRatingInput struct {
	UserID        uuid.UUID
	RestaurantID  uuid.UUID
	FoodScore     int
	ServiceScore  int
	AmbienceScore int
	Comment       string
}

// UpdateRatingInput replaces the scores and the comment of a rating.
type UpdateRatingInput struct {
	FoodScore     int
	ServiceScore  int
	AmbienceScore int
	Comment       string
}

// RatingUsecase defines restaurant reviews.
type RatingUsecase interface {
	List(ctx context.Context) ([]*entity.Rating, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error)

	// ListByRestaurant fails with a not-found error when the restaurant has no ratings.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Rating, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Rating, error)
	RestaurantSummary(ctx context.Context, restaurantID uuid.UUID) (*entity.RatingSummary, error)

	Create(ctx context.Context, input *CreateRatingInput) (*entity.Rating, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateRatingInput) (*entity.Rating, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
