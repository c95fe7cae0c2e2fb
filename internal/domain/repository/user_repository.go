// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"food/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when the unique email index rejects a write.
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindAll returns every user ordered by registration date.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their (lower-cased) email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether an account uses the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindByType returns users of the given type.
	FindByType(ctx context.Context, userType entity.UserType) ([]*entity.User, error)

	// FindActive returns users whose active flag is set.
	FindActive(ctx context.Context) ([]*entity.User, error)

	// CountByType counts users of the given type.
	CountByType(ctx context.Context, userType entity.UserType) (int64, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}
