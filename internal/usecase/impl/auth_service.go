package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "food/internal/delivery/context"
	"food/internal/domain/entity"
	domainerrors "food/internal/domain/errors"
	"food/internal/domain/repository"
	"food/internal/domain/service"
	"food/internal/errors"
	"food/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	users        usecase.UserUsecase
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Users        usecase.UserUsecase
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		users:        params.Users,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login never reveals whether the email or the password was wrong.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.LoginResult, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, translateRepoError(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, domainerrors.ErrUserInactive
	}

	now := srv.now()
	user.LastLoginAt = &now
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, translateRepoError(err, "failed to record login")
	}

	token, err := srv.tokenService.GenerateToken(user)
	if err != nil {
		srv.log(ctx).Error("Failed to sign access token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to sign access token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &entity.LoginResult{
		Token: token,
		Type:  entity.TokenTypeBearer,
		Email: user.Email,
		Role:  user.UserType,
	}, nil
}

func (srv *authService) Register(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	active := true
	registration := *input
	registration.Active = &active

	return srv.users.Create(ctx, &registration)
}
