package repository

import (
	"errors"
	"time"

	"github.com/saviored/focuscastle/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository implements domain.SettingRepository
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) domain.SettingRepository {
	return &SettingRepository{db: db}
}

// GetByKey retrieves a setting by key
func (r *SettingRepository) GetByKey(key string) (*domain.Setting, error) {
	var setting domain.Setting
	result := r.db.Where("key = ?", key).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &setting, nil
}

// List returns all settings ordered by key
func (r *SettingRepository) List() ([]*domain.Setting, error) {
	var settings []*domain.Setting
	err := r.db.Order("key ASC").Find(&settings).Error
	return settings, err
}

// Upsert creates or updates a setting by key
func (r *SettingRepository) Upsert(setting *domain.Setting) error {
	now := time.Now()
	setting.UpdatedAt = now
	if setting.CreatedAt.IsZero() {
		setting.CreatedAt = now
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "description", "updated_by", "updated_at"}),
	}).Create(setting).Error
}

// WithTx returns a repository bound to the given transaction
func (r *SettingRepository) WithTx(tx *gorm.DB) domain.SettingRepository {
	return &SettingRepository{db: tx}
}
