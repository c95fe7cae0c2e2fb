package service

import (
	"time"

	"food/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
// UserID mirrors the registered "sub" claim.
type Claims struct {
	UserID uuid.UUID       `json:"-"`
	Email  string          `json:"email"`
	Role   entity.UserType `json:"role"`
	Roles  []string        `json:"roles"`
	jwt.RegisteredClaims
}

// Principal converts the claims into the authenticated caller.
func (c *Claims) Principal() *entity.Principal {
	return &entity.Principal{
		UserID: c.UserID,
		Email:  c.Email,
		Role:   c.Role,
	}
}

// TokenService defines the interface for generating and validating JWTs.
// Validation checks the signature and the expiry only; there is no revocation.
type TokenService interface {
	// GenerateToken creates a signed access token for the user.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetTokenDuration returns the configured access token lifetime.
	GetTokenDuration() time.Duration
}
