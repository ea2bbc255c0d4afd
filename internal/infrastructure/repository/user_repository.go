package repository

import (
	"errors"
	"time"

	"github.com/saviored/focuscastle/internal/domain"

	"gorm.io/gorm"
)

// UserRepository implements domain.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id int64) (*domain.User, error) {
	var user domain.User
	result := r.db.Where("id = ?", id).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*domain.User, error) {
	var user domain.User
	result := r.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// Create creates a new user
func (r *UserRepository) Create(user *domain.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

// Update updates an existing user
func (r *UserRepository) Update(user *domain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

// List returns a page of users, newest first
func (r *UserRepository) List(offset, limit int) ([]*domain.User, int64, error) {
	var users []*domain.User
	var total int64
	if err := r.db.Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error
	return users, total, err
}

// ListRanked returns a page of users ordered by the given column
// descending (used by the leaderboards)
func (r *UserRepository) ListRanked(orderBy string, offset, limit int) ([]*domain.User, int64, error) {
	switch orderBy {
	case "total_focus_hours", "experience_points":
	default:
		return nil, 0, errors.New("unsupported ranking column: " + orderBy)
	}

	var users []*domain.User
	var total int64
	if err := r.db.Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order(orderBy + " DESC").Offset(offset).Limit(limit).Find(&users).Error
	return users, total, err
}

// Count returns the total number of users
func (r *UserRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&domain.User{}).Count(&total).Error
	return total, err
}

// CountActive returns the number of active users
func (r *UserRepository) CountActive() (int64, error) {
	var total int64
	err := r.db.Model(&domain.User{}).Where("is_active = ?", true).Count(&total).Error
	return total, err
}

// WithTx returns a repository bound to the given transaction
func (r *UserRepository) WithTx(tx *gorm.DB) domain.UserRepository {
	return &UserRepository{db: tx}
}
