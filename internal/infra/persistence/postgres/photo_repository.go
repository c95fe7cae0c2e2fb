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

// photoRepository implements the repository.PhotoRepository interface using GORM.
type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository creates a new photo repository.
func NewPhotoRepository(db *gorm.DB) repository.PhotoRepository {
	return &photoRepository{db: db}
}

func (repo *photoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error) {
	return repo.first(ctx, "failed to find photo by id", "id = ?", id)
}

func (repo *photoRepository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Photo, error) {
	var photos []*model.PhotoModel
	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("is_cover DESC").
		Order("uploaded_at DESC").
		Find(&photos).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list photos by restaurant")
	}

	result := make([]*entity.Photo, 0, len(photos))
	for _, photoM := range photos {
		result = append(result, toPhotoDomain(photoM))
	}

	return result, nil
}

func (repo *photoRepository) FindCover(ctx context.Context, restaurantID uuid.UUID) (*entity.Photo, error) {
	return repo.first(ctx, "failed to find cover photo", "restaurant_id = ? AND is_cover = ?", restaurantID, true)
}

func (repo *photoRepository) Create(ctx context.Context, photo *entity.Photo) error {
	if err := repo.db.WithContext(ctx).Create(fromPhotoDomain(photo)).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create photo")
	}

	return nil
}

func (repo *photoRepository) Update(ctx context.Context, photo *entity.Photo) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PhotoModel{}).
		Where("id = ?", photo.ID).
		Updates(map[string]any{
			"url":         photo.URL,
			"description": photo.Description,
			"is_cover":    photo.IsCover,
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update photo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPhotoNotFound
	}

	return nil
}

func (repo *photoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PhotoModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete photo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPhotoNotFound
	}

	return nil
}

func (repo *photoRepository) first(ctx context.Context, errMsg string, query string, args ...any) (*entity.Photo, error) {
	var photoM model.PhotoModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&photoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPhotoNotFound
		}

		return nil, errors.Wrap(err, errMsg)
	}

	return toPhotoDomain(&photoM), nil
}

// --- Mapper Functions ---

func toPhotoDomain(data *model.PhotoModel) *entity.Photo {
	return &entity.Photo{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		URL:          data.URL,
		Description:  data.Description,
		IsCover:      data.IsCover,
		UploadedAt:   data.UploadedAt,
	}
}

func fromPhotoDomain(data *entity.Photo) *model.PhotoModel {
	return &model.PhotoModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		URL:          data.URL,
		Description:  data.Description,
		IsCover:      data.IsCover,
		UploadedAt:   data.UploadedAt,
	}
}
