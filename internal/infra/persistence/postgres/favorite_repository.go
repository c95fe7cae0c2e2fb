package postgres

import (
	"context"

	"food/internal/domain/entity"
	domainerrors "food/internal/domain/errors"
	"food/internal/domain/repository"
	"food/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (repo *favoriteRepository) FindAll(ctx context.Context) ([]*entity.Favorite, error) {
	return repo.find(ctx, "failed to list favorites", nil)
}

func (repo *favoriteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Favorite, error) {
	return repo.first(ctx, "failed to find favorite by id", map[string]any{"id": id})
}

func (repo *favoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	return repo.find(ctx, "failed to list favorites by user", map[string]any{"user_id": userID})
}

func (repo *favoriteRepository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Favorite, error) {
	return repo.find(ctx, "failed to list favorites by restaurant", map[string]any{"restaurant_id": restaurantID})
}

func (repo *favoriteRepository) FindByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.Favorite, error) {
	return repo.first(ctx, "failed to find favorite by pair", map[string]any{"user_id": userID, "restaurant_id": restaurantID})
}

func (repo *favoriteRepository) ExistsByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (bool, error) {
	count, err := repo.count(ctx, map[string]any{"user_id": userID, "restaurant_id": restaurantID})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (repo *favoriteRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return repo.count(ctx, map[string]any{"user_id": userID})
}

func (repo *favoriteRepository) CountByRestaurant(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	return repo.count(ctx, map[string]any{"restaurant_id": restaurantID})
}

func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := &model.FavoriteModel{
		ID:           favorite.ID,
		UserID:       favorite.UserID,
		RestaurantID: favorite.RestaurantID,
		AddedAt:      favorite.AddedAt,
	}

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrFavoriteAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	return nil
}

func (repo *favoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FavoriteModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

func (repo *favoriteRepository) first(ctx context.Context, errMsg string, conds map[string]any) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel
	if err := repo.db.WithContext(ctx).Where(conds).First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, errMsg)
	}

	return toFavoriteDomain(&favoriteM), nil
}

func (repo *favoriteRepository) find(ctx context.Context, errMsg string, conds map[string]any) ([]*entity.Favorite, error) {
	query := repo.db.WithContext(ctx)
	if len(conds) > 0 {
		query = query.Where(conds)
	}

	var favorites []*model.FavoriteModel
	if err := query.Order("added_at DESC").Find(&favorites).Error; err != nil {
		return nil, errors.Wrap(err, errMsg)
	}

	result := make([]*entity.Favorite, 0, len(favorites))
	for _, favoriteM := range favorites {
		result = append(result, toFavoriteDomain(favoriteM))
	}

	return result, nil
}

func (repo *favoriteRepository) count(ctx context.Context, conds map[string]any) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.FavoriteModel{}).Where(conds).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count favorites")
	}

	return count, nil
}

// --- Mapper Functions ---

func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	return &entity.Favorite{
		ID:           data.ID,
		UserID:       data.UserID,
		RestaurantID: data.RestaurantID,
		AddedAt:      data.AddedAt,
	}
}
