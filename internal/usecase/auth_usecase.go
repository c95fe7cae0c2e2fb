package usecase

import (
	"context"

	"food/internal/domain/entity"
)

// LoginInput defines the credentials of a login attempt.
type LoginInput struct {
	Email    string
	Password string
}

// AuthUsecase authenticates users and issues access tokens.
type AuthUsecase interface {
	// Login verifies the credentials of an active user and issues a bearer token.
	Login(ctx context.Context, input *LoginInput) (*entity.LoginResult, error)

	// Register creates an active account through the user creation rules.
	Register(ctx context.Context, input *CreateUserInput) (*entity.User, error)
}
