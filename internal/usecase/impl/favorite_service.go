package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "food/internal/delivery/context"
	"food/internal/domain/entity"
	domainerrors "food/internal/domain/errors"
	"food/internal/domain/repository"
	"food/internal/errors"
	"food/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo   repository.FavoriteRepository
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	logger         *slog.Logger
	now            func() time.Time
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo   repository.FavoriteRepository
	UserRepo       repository.UserRepository
	RestaurantRepo repository.RestaurantRepository
	Logger         *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo:   params.FavoriteRepo,
		userRepo:       params.UserRepo,
		restaurantRepo: params.RestaurantRepo,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *favoriteService) List(ctx context.Context) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.FindAll(ctx)

	return favorites, translateRepoError(err, "failed to list favorites")
}

func (srv *favoriteService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Favorite, error) {
	favorite, err := srv.favoriteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find favorite")
	}

	return favorite, nil
}

func (srv *favoriteService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.FindByUser(ctx, userID)

	return favorites, translateRepoError(err, "failed to list favorites by user")
}

func (srv *favoriteService) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.FindByRestaurant(ctx, restaurantID)

	return favorites, translateRepoError(err, "failed to list favorites by restaurant")
}

func (srv *favoriteService) Exists(ctx context.Context, userID, restaurantID uuid.UUID) (bool, error) {
	exists, err := srv.favoriteRepo.ExistsByUserAndRestaurant(ctx, userID, restaurantID)

	return exists, translateRepoError(err, "failed to check favorite")
}

func (srv *favoriteService) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.favoriteRepo.CountByUser(ctx, userID)

	return count, translateRepoError(err, "failed to count favorites by user")
}

func (srv *favoriteService) CountByRestaurant(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	count, err := srv.favoriteRepo.CountByRestaurant(ctx, restaurantID)

	return count, translateRepoError(err, "failed to count favorites by restaurant")
}

func (srv *favoriteService) Create(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.Favorite, error) {
	switch {
	case userID == uuid.Nil:
		return nil, invalid("User id is required")
	case restaurantID == uuid.Nil:
		return nil, invalid("Restaurant id is required")
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return nil, translateRepoError(err, "failed to find user")
	}
	restaurant, err := srv.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find restaurant")
	}
	if !restaurant.Active {
		return nil, domainerrors.ErrRestaurantInactive
	}

	exists, err := srv.favoriteRepo.ExistsByUserAndRestaurant(ctx, userID, restaurantID)
	if err != nil {
		return nil, translateRepoError(err, "failed to check favorite")
	}
	if exists {
		return nil, domainerrors.ErrFavoriteAlreadyExists
	}

	favorite := &entity.Favorite{
		ID:           uuid.New(),
		UserID:       userID,
		RestaurantID: restaurantID,
		AddedAt:      srv.now(),
	}
	if err := srv.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, translateRepoError(err, "failed to create favorite")
	}

	srv.log(ctx).Debug("Favorite added", slog.Any("userID", userID), slog.Any("restaurantID", restaurantID))

	return favorite, nil
}

func (srv *favoriteService) Delete(ctx context.Context, id uuid.UUID) error {
	return translateRepoError(srv.favoriteRepo.Delete(ctx, id), "failed to delete favorite")
}

func (srv *favoriteService) RemoveByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) error {
	favorite, err := srv.favoriteRepo.FindByUserAndRestaurant(ctx, userID, restaurantID)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return domainerrors.ErrFavoriteAbsent
	}
	if err != nil {
		return translateRepoError(err, "failed to find favorite")
	}

	return translateRepoError(srv.favoriteRepo.Delete(ctx, favorite.ID), "failed to delete favorite")
}
