package repository

import (
	"errors"
	"time"

	"github.com/saviored/focuscastle/internal/domain"

	"gorm.io/gorm"
)

// ChestRepository implements domain.ChestRepository
type ChestRepository struct {
	db *gorm.DB
}

// NewChestRepository creates a new treasure chest repository
func NewChestRepository(db *gorm.DB) domain.ChestRepository {
	return &ChestRepository{db: db}
}

// GetCurrentByUserID retrieves the user's most recently created chest
func (r *ChestRepository) GetCurrentByUserID(userID int64) (*domain.TreasureChest, error) {
	var chest domain.TreasureChest
	result := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&chest)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &chest, nil
}

// Create creates a new chest
func (r *ChestRepository) Create(chest *domain.TreasureChest) error {
	chest.CreatedAt = time.Now()
	chest.UpdatedAt = time.Now()
	return r.db.Create(chest).Error
}

// Update updates an existing chest
func (r *ChestRepository) Update(chest *domain.TreasureChest) error {
	chest.UpdatedAt = time.Now()
	return r.db.Save(chest).Error
}

// List returns a page of chests, newest first
func (r *ChestRepository) List(offset, limit int) ([]*domain.TreasureChest, int64, error) {
	var chests []*domain.TreasureChest
	var total int64
	if err := r.db.Model(&domain.TreasureChest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&chests).Error
	return chests, total, err
}

// Count returns the total number of chests
func (r *ChestRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&domain.TreasureChest{}).Count(&total).Error
	return total, err
}

// CountUnlocked returns the number of unlocked chests
func (r *ChestRepository) CountUnlocked() (int64, error) {
	var total int64
	err := r.db.Model(&domain.TreasureChest{}).Where("is_unlocked = ?", true).Count(&total).Error
	return total, err
}

// CountClaimed returns the number of claimed chests
func (r *ChestRepository) CountClaimed() (int64, error) {
	var total int64
	err := r.db.Model(&domain.TreasureChest{}).Where("is_claimed = ?", true).Count(&total).Error
	return total, err
}

// WithTx returns a repository bound to the given transaction
func (r *ChestRepository) WithTx(tx *gorm.DB) domain.ChestRepository {
	return &ChestRepository{db: tx}
}
