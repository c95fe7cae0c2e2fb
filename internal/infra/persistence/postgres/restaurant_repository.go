package postgres

import (
	"context"
	"strings"
	"time"

	"food/internal/domain/entity"
	domainerrors "food/internal/domain/errors"
	"food/internal/domain/repository"
	"food/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const timeOfDayLayout = "15:04:05"

// restaurantRepository implements the repository.RestaurantRepository interface using GORM.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new restaurant repository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (repo *restaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	return repo.find(ctx, "failed to list restaurants", func(tx *gorm.DB) *gorm.DB { return tx })
}

// FindByID retrieves a restaurant by its unique ID.
func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by id")
	}

	return toRestaurantDomain(&restaurantM), nil
}

func (repo *restaurantRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Restaurant, error) {
	return repo.find(ctx, "failed to list restaurants by owner", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("owner_id = ?", ownerID)
	})
}

func (repo *restaurantRepository) FindActive(ctx context.Context) ([]*entity.Restaurant, error) {
	return repo.find(ctx, "failed to list active restaurants", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("active = ?", true)
	})
}

func (repo *restaurantRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Restaurant, error) {
	return repo.find(ctx, "failed to list restaurants by category", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("LOWER(category) = ?", strings.ToLower(category))
	})
}

// SearchByName matches a case-insensitive substring of the name.
func (repo *restaurantRepository) SearchByName(ctx context.Context, name string) ([]*entity.Restaurant, error) {
	pattern := "%" + escapeLike(strings.ToLower(name)) + "%"

	return repo.find(ctx, "failed to search restaurants by name", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("LOWER(name) LIKE ? ESCAPE '\\'", pattern)
	})
}

// FindByPriceRange returns restaurants whose average price lies in [minPrice, maxPrice].
func (repo *restaurantRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*entity.Restaurant, error) {
	return repo.find(ctx, "failed to list restaurants by price", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("average_price BETWEEN ? AND ?", minPrice, maxPrice)
	})
}

// FindActiveWithLocation returns active restaurants that have both coordinates.
func (repo *restaurantRepository) FindActiveWithLocation(ctx context.Context) ([]*entity.Restaurant, error) {
	return repo.find(ctx, "failed to list located restaurants", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("active = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", true)
	})
}

func (repo *restaurantRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count restaurants by owner")
	}

	return count, nil
}

// Create persists a new restaurant.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM, err := fromRestaurantDomain(restaurant)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	return nil
}

// Update modifies every column of an existing restaurant.
func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM, err := fromRestaurantDomain(restaurant)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", restaurant.ID).
		Select("*").
		Omit("id").
		Updates(restaurantM)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update restaurant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

func (repo *restaurantRepository) find(ctx context.Context, errMsg string, scope func(*gorm.DB) *gorm.DB) ([]*entity.Restaurant, error) {
	var restaurants []*model.RestaurantModel
	if err := repo.db.WithContext(ctx).Scopes(scope).Order("registered_at ASC").Find(&restaurants).Error; err != nil {
		return nil, errors.Wrap(err, errMsg)
	}

	result := make([]*entity.Restaurant, 0, len(restaurants))
	for _, restaurantM := range restaurants {
		result = append(result, toRestaurantDomain(restaurantM))
	}

	return result, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Description:  data.Description,
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Phone:        data.Phone,
		OpensAt:      formatTimeOfDay(data.OpensAt),
		ClosesAt:     formatTimeOfDay(data.ClosesAt),
		AveragePrice: data.AveragePrice,
		Category:     data.Category,
		MenuURL:      data.MenuURL,
		RegisteredAt: data.RegisteredAt,
		Active:       data.Active,
	}
}

func fromRestaurantDomain(data *entity.Restaurant) (*model.RestaurantModel, error) {
	opensAt, err := parseTimeOfDay(data.OpensAt)
	if err != nil {
		return nil, err
	}
	closesAt, err := parseTimeOfDay(data.ClosesAt)
	if err != nil {
		return nil, err
	}

	return &model.RestaurantModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Description:  data.Description,
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Phone:        data.Phone,
		OpensAt:      opensAt,
		ClosesAt:     closesAt,
		AveragePrice: data.AveragePrice,
		Category:     data.Category,
		MenuURL:      data.MenuURL,
		RegisteredAt: data.RegisteredAt,
		Active:       data.Active,
	}, nil
}

func parseTimeOfDay(value string) (*datatypes.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(timeOfDayLayout, value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid time of day %q", value)
	}

	t := datatypes.NewTime(parsed.Hour(), parsed.Minute(), parsed.Second(), 0)

	return &t, nil
}

func formatTimeOfDay(value *datatypes.Time) string {
	if value == nil {
		return ""
	}

	return value.String()
}
