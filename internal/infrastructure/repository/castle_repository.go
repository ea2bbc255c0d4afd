package repository

import (
	"errors"
	"time"

	"github.com/saviored/focuscastle/internal/domain"

	"gorm.io/gorm"
)

// CastleRepository implements domain.CastleRepository
type CastleRepository struct {
	db *gorm.DB
}

// NewCastleRepository creates a new castle repository
func NewCastleRepository(db *gorm.DB) domain.CastleRepository {
	return &CastleRepository{db: db}
}

// GetByUserID retrieves a user's castle
func (r *CastleRepository) GetByUserID(userID int64) (*domain.Castle, error) {
	var castle domain.Castle
	result := r.db.Where("user_id = ?", userID).First(&castle)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &castle, nil
}

// Create creates a new castle
func (r *CastleRepository) Create(castle *domain.Castle) error {
	castle.CreatedAt = time.Now()
	castle.UpdatedAt = time.Now()
	return r.db.Create(castle).Error
}

// Update updates an existing castle
func (r *CastleRepository) Update(castle *domain.Castle) error {
	castle.UpdatedAt = time.Now()
	return r.db.Save(castle).Error
}

// List returns a page of castles, newest first
func (r *CastleRepository) List(offset, limit int) ([]*domain.Castle, int64, error) {
	var castles []*domain.Castle
	var total int64
	if err := r.db.Model(&domain.Castle{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&castles).Error
	return castles, total, err
}

// Count returns the total number of castles
func (r *CastleRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&domain.Castle{}).Count(&total).Error
	return total, err
}

// WithTx returns a repository bound to the given transaction
func (r *CastleRepository) WithTx(tx *gorm.DB) domain.CastleRepository {
	return &CastleRepository{db: tx}
}
