// Package postgres contains the concrete implementation of the persistence layer using GORM.
// The repositories only rely on portable SQL, so they also run on the SQLite driver.
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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindAll returns every user ordered by registration date.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var users []*model.UserModel
	if err := repo.db.WithContext(ctx).Order("registered_at ASC").Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return toUserDomains(users), nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// ExistsByEmail reports whether an account uses the email.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check email existence")
	}

	return count > 0, nil
}

// FindByType returns users of the given type.
func (repo *userRepository) FindByType(ctx context.Context, userType entity.UserType) ([]*entity.User, error) {
	var users []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("user_type = ?", userType.String()).
		Order("registered_at ASC").
		Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users by type")
	}

	return toUserDomains(users), nil
}

// FindActive returns users whose active flag is set.
func (repo *userRepository) FindActive(ctx context.Context) ([]*entity.User, error) {
	var users []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("registered_at ASC").
		Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active users")
	}

	return toUserDomains(users), nil
}

// CountByType counts users of the given type.
func (repo *userRepository) CountByType(ctx context.Context, userType entity.UserType) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_type = ?", userType.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users by type")
	}

	return count, nil
}

// Create persists a new user entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// Update modifies an existing user entity.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", user.ID).Select("*").Omit("id").Updates(userM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		UserType:     entity.UserType(data.UserType),
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Phone:        data.Phone,
		RegisteredAt: data.RegisteredAt,
		Active:       data.Active,
		LastLoginAt:  data.LastLoginAt,
		PushToken:    data.PushToken,
	}
}

func toUserDomains(data []*model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(data))
	for _, userM := range data {
		users = append(users, toUserDomain(userM))
	}

	return users
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		UserType:     data.UserType.String(),
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Phone:        data.Phone,
		RegisteredAt: data.RegisteredAt,
		Active:       data.Active,
		LastLoginAt:  data.LastLoginAt,
		PushToken:    data.PushToken,
	}
}
