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

// ratingRepository implements the repository.RatingRepository interface using GORM.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new rating repository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

func (repo *ratingRepository) FindAll(ctx context.Context) ([]*entity.Rating, error) {
	return repo.find(ctx, "failed to list ratings", nil)
}

func (repo *ratingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	var ratingM model.RatingModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&ratingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating by id")
	}

	return toRatingDomain(&ratingM), nil
}

func (repo *ratingRepository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Rating, error) {
	return repo.find(ctx, "failed to list ratings by restaurant", map[string]any{"restaurant_id": restaurantID})
}

func (repo *ratingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Rating, error) {
	return repo.find(ctx, "failed to list ratings by user", map[string]any{"user_id": userID})
}

func (repo *ratingRepository) ExistsByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check rating existence")
	}

	return count > 0, nil
}

// Summary aggregates AVG((food + service + ambience) / 3.0) and COUNT(*) for the restaurant.
func (repo *ratingRepository) Summary(ctx context.Context, restaurantID uuid.UUID) (*entity.RatingSummary, error) {
	var row struct {
		Average float64
		Count   int64
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("COALESCE(AVG((food_score + service_score + ambience_score) / 3.0), 0) AS average, COUNT(*) AS count").
		Where("restaurant_id = ?", restaurantID).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize ratings")
	}

	return &entity.RatingSummary{
		RestaurantID: restaurantID,
		Average:      row.Average,
		Count:        row.Count,
	}, nil
}

func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	if err := repo.db.WithContext(ctx).Create(fromRatingDomain(rating)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRatingAlreadyExists
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating score out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	return nil
}

// Update replaces the scores and the comment of a rating.
func (repo *ratingRepository) Update(ctx context.Context, rating *entity.Rating) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Where("id = ?", rating.ID).
		Updates(map[string]any{
			"food_score":     rating.FoodScore,
			"service_score":  rating.ServiceScore,
			"ambience_score": rating.AmbienceScore,
			"comment":        rating.Comment,
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRatingNotFound
	}

	return nil
}

func (repo *ratingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RatingModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRatingNotFound
	}

	return nil
}

func (repo *ratingRepository) find(ctx context.Context, errMsg string, conds map[string]any) ([]*entity.Rating, error) {
	query := repo.db.WithContext(ctx)
	if len(conds) > 0 {
		query = query.Where(conds)
	}

	var ratings []*model.RatingModel
	if err := query.Order("rated_at DESC").Find(&ratings).Error; err != nil {
		return nil, errors.Wrap(err, errMsg)
	}

	result := make([]*entity.Rating, 0, len(ratings))
	for _, ratingM := range ratings {
		result = append(result, toRatingDomain(ratingM))
	}

	return result, nil
}

// --- Mapper Functions ---

func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:            data.ID,
		UserID:        data.UserID,
		RestaurantID:  data.RestaurantID,
		FoodScore:     data.FoodScore,
		ServiceScore:  data.ServiceScore,
		AmbienceScore: data.AmbienceScore,
		Comment:       data.Comment,
		RatedAt:       data.RatedAt,
	}
}

func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	return &model.RatingModel{
		ID:            data.ID,
		UserID:        data.UserID,
		RestaurantID:  data.RestaurantID,
		FoodScore:     data.FoodScore,
		ServiceScore:  data.ServiceScore,
		AmbienceScore: data.AmbienceScore,
		Comment:       data.Comment,
		RatedAt:       data.RatedAt,
	}
}
