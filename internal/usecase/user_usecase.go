// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"food/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create an account.
type CreateUserInput struct {
	Email     string
	Password  string
	UserType  entity.UserType
	FirstName string
	LastName  string
	Phone     string
	Active    *bool // Defaults to true.
}

// UpdateUserInput defines the profile fields a user may change.
type UpdateUserInput struct {
	FirstName string
	LastName  string
	Phone     string
	Active    *bool // Left unchanged when nil.
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	List(ctx context.Context) ([]*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ListByType(ctx context.Context, userType string) ([]*entity.User, error)
	ListActive(ctx context.Context) ([]*entity.User, error)
	CountByType(ctx context.Context, userType string) (int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	Create(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// ToggleStatus flips the active flag and returns the updated user.
	ToggleStatus(ctx context.Context, id uuid.UUID) (*entity.User, error)

	UpdatePushToken(ctx context.Context, id uuid.UUID, token string) (*entity.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, password string) error
}
