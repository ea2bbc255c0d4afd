package user

import (
	"strconv"
	"strings"

	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/auth"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase implements domain.UserUseCase
type UserUseCase struct {
	users  domain.UserRepository
	jwt    auth.JWTService
	logger *logger.Logger
}

// NewUserUseCase creates a new user usecase
func NewUserUseCase(users domain.UserRepository, jwt auth.JWTService, logger *logger.Logger) domain.UserUseCase {
	return &UserUseCase{
		users:  users,
		jwt:    jwt,
		logger: logger,
	}
}

// Register creates a new account and signs the user in
func (uc *UserUseCase) Register(email, password, name string) (*domain.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.NewValidationError("email", "must be a valid email address")
	}
	if len(password) < 8 {
		return nil, domain.NewValidationError("password", "must be at least 8 characters")
	}

	existing, err := uc.users.GetByEmail(email)
	if err != nil {
		return nil, domain.NewDatabaseError("get user by email", err)
	}
	if existing != nil {
		return nil, domain.NewAppError(domain.ErrCodeEmailAlreadyInUse, "Email already in use", 409, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewInternalError("Could not hash password", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         domain.RoleUser,
		IsActive:     true,
		Level:        1,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, domain.NewDatabaseError("create user", err)
	}

	token, err := uc.jwt.GenerateToken(strconv.FormatInt(user.ID, 10), user.Email, string(user.Role))
	if err != nil {
		return nil, domain.NewInternalError("Could not issue token", err)
	}

	uc.logger.Info("User registered", zap.Int64("user_id", user.ID), zap.String("email", user.Email))
	return &domain.AuthResult{Token: token, User: user}, nil
}

// Authenticate verifies credentials and issues a token
func (uc *UserUseCase) Authenticate(email, password string) (*domain.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.users.GetByEmail(email)
	if err != nil {
		return nil, domain.NewDatabaseError("get user by email", err)
	}
	if user == nil || !user.IsActive {
		return nil, domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid email or password", 401, nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid email or password", 401, nil)
	}

	token, err := uc.jwt.GenerateToken(strconv.FormatInt(user.ID, 10), user.Email, string(user.Role))
	if err != nil {
		return nil, domain.NewInternalError("Could not issue token", err)
	}

	uc.logger.Info("User authenticated", zap.Int64("user_id", user.ID))
	return &domain.AuthResult{Token: token, User: user}, nil
}

// GetUserInfo returns the user's profile and progression summary
func (uc *UserUseCase) GetUserInfo(userID int64) (*domain.User, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, domain.NewDatabaseError("get user", err)
	}
	if user == nil {
		return nil, domain.NewAppError(domain.ErrCodeUserNotFound, "User not found", 404, nil)
	}
	return user, nil
}
