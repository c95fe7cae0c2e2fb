package impl

import (
	"context"
	"strings"
	"testing"

	"food/internal/domain/entity"
	"food/internal/domain/service"
	"food/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service usecase.UserUsecase
	repos   testRepos
	hasher  service.PasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	repos := newTestRepos(t)
	hasher := newTestHasher()

	return userServiceFixtures{
		service: NewUserService(UserServiceParams{
			UserRepo: repos.users,
			Hasher:   hasher,
			Logger:   newDiscardLogger(),
		}),
		repos:  repos,
		hasher: hasher,
	}
}

func validUserInput() *usecase.CreateUserInput {
	return &usecase.CreateUserInput{
		Email:     "Diner@Example.com",
		Password:  "secret1",
		UserType:  entity.UserTypeNormal,
		FirstName: "Ana",
		LastName:  "López",
		Phone:     "+525512345678",
	}
}

func TestUserService_Create_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user, err := fx.service.Create(ctx, validUserInput())

	require.NoError(t, err)
	assert.Equal(t, "diner@example.com", user.Email)
	assert.True(t, user.Active)
	assert.True(t, fx.hasher.Check("secret1", user.PasswordHash))

	stored, err := fx.repos.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, stored.Email)
	assert.Equal(t, entity.UserTypeNormal, stored.UserType)
}

func TestUserService_Create_ExplicitInactive(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	active := false
	input := validUserInput()
	input.Active = &active

	user, err := fx.service.Create(ctx, input)
	require.NoError(t, err)

	stored, err := fx.repos.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.Create(ctx, validUserInput())
	require.NoError(t, err)

	input := validUserInput()
	input.Email = "DINER@example.com"
	_, err = fx.service.Create(ctx, input)

	requireAppError(t, err, "EMAIL_ALREADY_EXISTS", entity.SeverityWarning)
}

func TestUserService_Create_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.CreateUserInput)
		message string
	}{
		{
			name:    "empty email wins over every other failure",
			mutate:  func(in *usecase.CreateUserInput) { in.Email = " "; in.Password = ""; in.FirstName = "" },
			message: "Email is required",
		},
		{
			name:    "malformed email",
			mutate:  func(in *usecase.CreateUserInput) { in.Email = "not-an-email"; in.Password = "" },
			message: "Invalid email format",
		},
		{
			name:    "short password",
			mutate:  func(in *usecase.CreateUserInput) { in.Password = "12345"; in.FirstName = "" },
			message: "Password must be at least 6 characters",
		},
		{
			name:    "missing first name",
			mutate:  func(in *usecase.CreateUserInput) { in.FirstName = "  "; in.Phone = "abc" },
			message: "First name is required",
		},
		{
			name:    "long first name",
			mutate:  func(in *usecase.CreateUserInput) { in.FirstName = strings.Repeat("a", 101) },
			message: "First name must not exceed 100 characters",
		},
		{
			name:    "long last name",
			mutate:  func(in *usecase.CreateUserInput) { in.LastName = strings.Repeat("ñ", 101) },
			message: "Last name must not exceed 100 characters",
		},
		{
			name:    "bad phone",
			mutate:  func(in *usecase.CreateUserInput) { in.Phone = "555-1234"; in.UserType = "ADMIN" },
			message: "Invalid phone number format",
		},
		{
			name:    "unknown user type",
			mutate:  func(in *usecase.CreateUserInput) { in.UserType = "ADMIN" },
			message: "Invalid user type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			input := validUserInput()
			tt.mutate(input)

			_, err := fx.service.Create(context.Background(), input)

			requireValidationError(t, err, tt.message)
		})
	}
}

func TestUserService_Update(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := fx.repos.seedUser(t, entity.UserTypeNormal)

	active := false
	updated, err := fx.service.Update(ctx, user.ID, &usecase.UpdateUserInput{
		FirstName: "María",
		LastName:  "García",
		Phone:     "5512345678",
		Active:    &active,
	})
	require.NoError(t, err)
	assert.Equal(t, "María", updated.FirstName)

	stored, err := fx.repos.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "García", stored.LastName)
	assert.Equal(t, "5512345678", stored.Phone)
	assert.False(t, stored.Active)
	assert.Equal(t, user.Email, stored.Email)
}

func TestUserService_Update_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Update(context.Background(), uuid.New(), &usecase.UpdateUserInput{FirstName: "Ana"})

	requireAppError(t, err, "USER_NOT_FOUND", entity.SeverityError)
}

func TestUserService_ToggleStatus_TwiceRestoresState(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := fx.repos.seedUser(t, entity.UserTypeNormal)

	first, err := fx.service.ToggleStatus(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, first.Active)

	second, err := fx.service.ToggleStatus(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, second.Active)

	stored, err := fx.repos.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Active, stored.Active)
}

func TestUserService_Lookups(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	diner := fx.repos.seedUser(t, entity.UserTypeNormal)
	fx.repos.seedUser(t, entity.UserTypeRestaurantOwner)
	fx.repos.seedUser(t, entity.UserTypeRestaurantOwner, func(u *entity.User) { u.Active = false })

	owners, err := fx.service.ListByType(ctx, "restaurant_owner")
	require.NoError(t, err)
	assert.Len(t, owners, 2)

	count, err := fx.service.CountByType(ctx, "NORMAL")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	active, err := fx.service.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	found, err := fx.service.GetByEmail(ctx, strings.ToUpper(diner.Email))
	require.NoError(t, err)
	assert.Equal(t, diner.ID, found.ID)

	exists, err := fx.service.ExistsByEmail(ctx, diner.Email)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = fx.service.ListByType(ctx, "ADMIN")
	requireValidationError(t, err, "Invalid user type: ADMIN")

	_, err = fx.service.GetByEmail(ctx, "missing@example.com")
	requireAppError(t, err, "USER_NOT_FOUND", entity.SeverityError)
}

func TestUserService_PushTokenAndPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := fx.repos.seedUser(t, entity.UserTypeNormal)

	updated, err := fx.service.UpdatePushToken(ctx, user.ID, " device-token ")
	require.NoError(t, err)
	assert.Equal(t, "device-token", updated.PushToken)

	err = fx.service.ChangePassword(ctx, user.ID, "short")
	requireValidationError(t, err, "Password must be at least 6 characters")

	require.NoError(t, fx.service.ChangePassword(ctx, user.ID, "new-secret"))

	stored, err := fx.repos.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "device-token", stored.PushToken)
	assert.True(t, fx.hasher.Check("new-secret", stored.PasswordHash))
}
