package user

import (
	"testing"
	"time"

	"github.com/saviored/focuscastle/internal/config"
	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/auth"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"github.com/saviored/focuscastle/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(store *testutil.Store) (domain.UserUseCase, auth.JWTService) {
	jwt := auth.NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	uc := NewUserUseCase(&testutil.UserRepo{S: store}, jwt, logger.NewLogger("test", "error"))
	return uc, jwt
}

func TestRegister(t *testing.T) {
	store := testutil.NewStore()
	uc, jwt := newTestUseCase(store)

	result, err := uc.Register("Student@Example.com ", "password123", "Student")
	require.NoError(t, err)

	assert.Equal(t, "student@example.com", result.User.Email)
	assert.Equal(t, domain.RoleUser, result.User.Role)
	assert.Equal(t, 1, result.User.Level)
	assert.True(t, result.User.IsActive)
	assert.NotEqual(t, "password123", result.User.PasswordHash)

	claims, err := jwt.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "student@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestRegisterValidation(t *testing.T) {
	store := testutil.NewStore()
	uc, _ := newTestUseCase(store)

	_, err := uc.Register("not-an-email", "password123", "Student")
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPStatus)
	assert.Contains(t, appErr.Message, "email")

	_, err = uc.Register("student@example.com", "short", "Student")
	appErr, ok = domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPStatus)
	assert.Contains(t, appErr.Message, "password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := testutil.NewStore()
	uc, _ := newTestUseCase(store)

	_, err := uc.Register("student@example.com", "password123", "Student")
	require.NoError(t, err)

	_, err = uc.Register("STUDENT@example.com", "password456", "Other")
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeEmailAlreadyInUse, appErr.Code)
}

func TestAuthenticate(t *testing.T) {
	store := testutil.NewStore()
	uc, jwt := newTestUseCase(store)

	registered, err := uc.Register("student@example.com", "password123", "Student")
	require.NoError(t, err)

	result, err := uc.Authenticate("student@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, result.User.ID)

	claims, err := jwt.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "student@example.com", claims.Email)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	store := testutil.NewStore()
	uc, _ := newTestUseCase(store)

	_, err := uc.Register("student@example.com", "password123", "Student")
	require.NoError(t, err)

	_, err = uc.Authenticate("student@example.com", "wrong-password")
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	store := testutil.NewStore()
	uc, _ := newTestUseCase(store)

	_, err := uc.Authenticate("nobody@example.com", "password123")
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	store := testutil.NewStore()
	uc, _ := newTestUseCase(store)

	result, err := uc.Register("student@example.com", "password123", "Student")
	require.NoError(t, err)
	result.User.IsActive = false

	_, err = uc.Authenticate("student@example.com", "password123")
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
}

func TestGetUserInfo(t *testing.T) {
	store := testutil.NewStore()
	uc, _ := newTestUseCase(store)

	registered, err := uc.Register("student@example.com", "password123", "Student")
	require.NoError(t, err)

	user, err := uc.GetUserInfo(registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "student@example.com", user.Email)

	_, err = uc.GetUserInfo(9999)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeUserNotFound, appErr.Code)
}
