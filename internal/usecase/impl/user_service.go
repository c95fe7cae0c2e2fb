// Package impl contains the implementation of the application's business logic.
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
	"food/internal/domain/service"
	"food/internal/errors"
	"food/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
	now      func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)

	return users, translateRepoError(err, "failed to list users")
}

func (srv *userService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, translateRepoError(err, "failed to find user by email")
	}

	return user, nil
}

func (srv *userService) ListByType(ctx context.Context, userType string) ([]*entity.User, error) {
	parsed, err := parseUserType(userType)
	if err != nil {
		return nil, err
	}

	users, err := srv.userRepo.FindByType(ctx, parsed)

	return users, translateRepoError(err, "failed to list users by type")
}

func (srv *userService) ListActive(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindActive(ctx)

	return users, translateRepoError(err, "failed to list active users")
}

func (srv *userService) CountByType(ctx context.Context, userType string) (int64, error) {
	parsed, err := parseUserType(userType)
	if err != nil {
		return 0, err
	}

	count, err := srv.userRepo.CountByType(ctx, parsed)

	return count, translateRepoError(err, "failed to count users by type")
}

func (srv *userService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	exists, err := srv.userRepo.ExistsByEmail(ctx, normalizeEmail(email))

	return exists, translateRepoError(err, "failed to check email")
}

// Create validates the account fields in order, hashes the password and stores the user.
func (srv *userService) Create(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)

	switch {
	case email == "":
		return nil, invalid("Email is required")
	case !emailPattern.MatchString(email):
		return nil, invalid("Invalid email format")
	}

	exists, err := srv.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, translateRepoError(err, "failed to check email")
	}
	if exists {
		srv.log(ctx).Warn("Email already registered", slog.String("email", email))

		return nil, domainerrors.ErrEmailAlreadyExists
	}

	if len(input.Password) < minPasswordLength {
		return nil, invalid("Password must be at least %d characters", minPasswordLength)
	}
	if err := validatePersonFields(input.FirstName, input.LastName, input.Phone); err != nil {
		return nil, err
	}
	if !input.UserType.IsValid() {
		return nil, invalid("Invalid user type")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		UserType:     input.UserType,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Phone:        input.Phone,
		RegisteredAt: srv.now(),
		Active:       active,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, translateRepoError(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.Any("userID", user.ID), slog.Any("userType", user.UserType))

	return user, nil
}

func (srv *userService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find user")
	}

	if err := validatePersonFields(input.FirstName, input.LastName, input.Phone); err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(input.FirstName)
	user.LastName = strings.TrimSpace(input.LastName)
	user.Phone = input.Phone
	if input.Active != nil {
		user.Active = *input.Active
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, translateRepoError(err, "failed to update user")
	}

	return user, nil
}

func (srv *userService) ToggleStatus(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find user")
	}

	user.Active = !user.Active
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, translateRepoError(err, "failed to update user status")
	}

	srv.log(ctx).Info("User status changed", slog.Any("userID", user.ID), slog.Bool("active", user.Active))

	return user, nil
}

func (srv *userService) UpdatePushToken(ctx context.Context, id uuid.UUID, token string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find user")
	}

	user.PushToken = strings.TrimSpace(token)
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, translateRepoError(err, "failed to update push token")
	}

	return user, nil
}

func (srv *userService) ChangePassword(ctx context.Context, id uuid.UUID, password string) error {
	if len(password) < minPasswordLength {
		return invalid("Password must be at least %d characters", minPasswordLength)
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return translateRepoError(err, "failed to find user")
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("userID", id), slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	user.PasswordHash = hash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return translateRepoError(err, "failed to update password")
	}

	return nil
}

func validatePersonFields(firstName, lastName, phone string) error {
	switch {
	case isBlank(firstName):
		return invalid("First name is required")
	case tooLong(firstName, maxPersonNameLength):
		return invalid("First name must not exceed %d characters", maxPersonNameLength)
	case tooLong(lastName, maxPersonNameLength):
		return invalid("Last name must not exceed %d characters", maxPersonNameLength)
	case !validPhone(phone):
		return invalid("Invalid phone number format")
	}

	return nil
}

func parseUserType(value string) (entity.UserType, error) {
	userType := entity.UserType(strings.ToUpper(strings.TrimSpace(value)))
	if !userType.IsValid() {
		return "", errors.WithStack(invalid("Invalid user type: %s", value))
	}

	return userType, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
