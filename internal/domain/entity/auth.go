package entity

import "github.com/google/uuid"

// TokenTypeBearer is the scheme returned to clients alongside access tokens.
const TokenTypeBearer = "Bearer"

// Principal is the authenticated caller derived from an access token.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   UserType
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	Token string   `json:"token"`
	Type  string   `json:"type"`
	Email string   `json:"email"`
	Role  UserType `json:"role"`
}
