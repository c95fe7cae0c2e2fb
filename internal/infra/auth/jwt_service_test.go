package auth

import (
	"testing"
	"time"

	"food/config"
	"food/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{JWT: &config.JWTConfig{Secret: testSecret, Expiration: ttl}})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	user := &entity.User{ID: uuid.New(), Email: "owner@example.com", UserType: entity.UserTypeRestaurantOwner}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, entity.UserTypeRestaurantOwner, claims.Role)
	assert.Equal(t, []string{"RESTAURANT_OWNER"}, claims.Roles)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)

	principal := claims.Principal()
	assert.Equal(t, user.ID, principal.UserID)
	assert.Equal(t, entity.UserTypeRestaurantOwner, principal.Role)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := svc.GenerateToken(&entity.User{ID: uuid.New(), UserType: entity.UserTypeNormal})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	_, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)

	other := newTestJWTService(t, time.Hour)
	other.secret = []byte("another_secret_that_is_also_long_enough")
	foreign, err := other.GenerateToken(&entity.User{ID: uuid.New(), UserType: entity.UserTypeNormal})
	require.NoError(t, err)
	_, err = svc.ValidateToken(foreign)
	assert.Error(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateToken(none)
	assert.Error(t, err)
}

func TestNewJWTService_RejectsWeakConfig(t *testing.T) {
	_, err := NewJWTService(&config.Config{JWT: &config.JWTConfig{Secret: "short", Expiration: time.Hour}})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{JWT: &config.JWTConfig{Secret: testSecret}})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
}
