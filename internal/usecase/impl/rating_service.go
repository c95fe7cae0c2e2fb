package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "food/internal/delivery/context"
	"food/internal/domain/entity"
	domainerrors "food/internal/domain/errors"
	"food/internal/domain/repository"
	"food/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	ratingRepo     repository.RatingRepository
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	logger         *slog.Logger
	now            func() time.Time
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	RatingRepo     repository.RatingRepository
	UserRepo       repository.UserRepository
	RestaurantRepo repository.RestaurantRepository
	Logger         *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		ratingRepo:     params.RatingRepo,
		userRepo:       params.UserRepo,
		restaurantRepo: params.RestaurantRepo,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *ratingService) List(ctx context.Context) ([]*entity.Rating, error) {
	ratings, err := srv.ratingRepo.FindAll(ctx)

	return ratings, translateRepoError(err, "failed to list ratings")
}

func (srv *ratingService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	rating, err := srv.ratingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find rating")
	}

	return rating, nil
}

func (srv *ratingService) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Rating, error) {
	ratings, err := srv.ratingRepo.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, translateRepoError(err, "failed to list ratings by restaurant")
	}
	if len(ratings) == 0 {
		return nil, domainerrors.ErrNoRatingsForRestaurant
	}

	return ratings, nil
}

func (srv *ratingService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Rating, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return nil, translateRepoError(err, "failed to find user")
	}

	ratings, err := srv.ratingRepo.FindByUser(ctx, userID)

	return ratings, translateRepoError(err, "failed to list ratings by user")
}

func (srv *ratingService) RestaurantSummary(ctx context.Context, restaurantID uuid.UUID) (*entity.RatingSummary, error) {
	if _, err := srv.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		return nil, translateRepoError(err, "failed to find restaurant")
	}

	summary, err := srv.ratingRepo.Summary(ctx, restaurantID)
	if err != nil {
		return nil, translateRepoError(err, "failed to summarize ratings")
	}

	return summary, nil
}

// Create checks the references before the scores, so a bad id is reported first.
func (srv *ratingService) Create(ctx context.Context, input *usecase.CreateRatingInput) (*entity.Rating, error) {
	switch {
	case input.UserID == uuid.Nil:
		return nil, invalid("User id is required")
	case input.RestaurantID == uuid.Nil:
		return nil, invalid("Restaurant id is required")
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find user")
	}
	restaurant, err := srv.restaurantRepo.FindByID(ctx, input.RestaurantID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find restaurant")
	}
	if user.IsOwnerOf(restaurant) {
		srv.log(ctx).Warn("Owner tried to rate own restaurant", slog.Any("userID", user.ID), slog.Any("restaurantID", restaurant.ID))

		return nil, domainerrors.ErrOwnerCannotRate
	}

	if err := validateScores(input.FoodScore, input.ServiceScore, input.AmbienceScore); err != nil {
		return nil, err
	}

	exists, err := srv.ratingRepo.ExistsByUserAndRestaurant(ctx, user.ID, restaurant.ID)
	if err != nil {
		return nil, translateRepoError(err, "failed to check existing rating")
	}
	if exists {
		return nil, domainerrors.ErrRatingAlreadyExists
	}

	if tooLong(input.Comment, maxCommentLength) {
		return nil, invalid("Comment must not exceed %d characters", maxCommentLength)
	}

	rating := &entity.Rating{
		ID:            uuid.New(),
		UserID:        user.ID,
		RestaurantID:  restaurant.ID,
		FoodScore:     input.FoodScore,
		ServiceScore:  input.ServiceScore,
		AmbienceScore: input.AmbienceScore,
		Comment:       strings.TrimSpace(input.Comment),
		RatedAt:       srv.now(),
	}

	if err := srv.ratingRepo.Create(ctx, rating); err != nil {
		return nil, translateRepoError(err, "failed to create rating")
	}

	return rating, nil
}

func (srv *ratingService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateRatingInput) (*entity.Rating, error) {
	rating, err := srv.ratingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find rating")
	}

	if err := validateScores(input.FoodScore, input.ServiceScore, input.AmbienceScore); err != nil {
		return nil, err
	}
	if tooLong(input.Comment, maxCommentLength) {
		return nil, invalid("Comment must not exceed %d characters", maxCommentLength)
	}

	rating.FoodScore = input.FoodScore
	rating.ServiceScore = input.ServiceScore
	rating.AmbienceScore = input.AmbienceScore
	rating.Comment = strings.TrimSpace(input.Comment)

	if err := srv.ratingRepo.Update(ctx, rating); err != nil {
		return nil, translateRepoError(err, "failed to update rating")
	}

	return rating, nil
}

func (srv *ratingService) Delete(ctx context.Context, id uuid.UUID) error {
	return translateRepoError(srv.ratingRepo.Delete(ctx, id), "failed to delete rating")
}

func validateScores(food, service, ambience int) error {
	for _, score := range []struct {
		name  string
		value int
	}{
		{"Food", food},
		{"Service", service},
		{"Ambience", ambience},
	} {
		if score.value < entity.MinScore || score.value > entity.MaxScore {
			return invalid("%s score must be between %d and %d", score.name, entity.MinScore, entity.MaxScore)
		}
	}

	return nil
}
