package repository

import (
	"errors"
	"time"

	"github.com/saviored/focuscastle/internal/domain"

	"gorm.io/gorm"
)

// TemplateRepository implements domain.TemplateRepository
type TemplateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new item template repository
func NewTemplateRepository(db *gorm.DB) domain.TemplateRepository {
	return &TemplateRepository{db: db}
}

// GetByItemID retrieves a catalogue entry by its item id
func (r *TemplateRepository) GetByItemID(itemID string) (*domain.ItemTemplate, error) {
	var template domain.ItemTemplate
	result := r.db.Where("item_id = ?", itemID).First(&template)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &template, nil
}

// GetByItemIDs retrieves the catalogue entries for a set of item ids
func (r *TemplateRepository) GetByItemIDs(itemIDs []string) ([]*domain.ItemTemplate, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var templates []*domain.ItemTemplate
	err := r.db.Where("item_id IN ?", itemIDs).Find(&templates).Error
	return templates, err
}

// List returns catalogue entries, optionally filtered, sorted by name
func (r *TemplateRepository) List(category, rarity string) ([]*domain.ItemTemplate, error) {
	query := r.db.Model(&domain.ItemTemplate{})
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if rarity != "" && rarity != "all" {
		query = query.Where("rarity = ?", rarity)
	}
	var templates []*domain.ItemTemplate
	err := query.Order("name ASC").Find(&templates).Error
	return templates, err
}

// Create creates a catalogue entry (seed/admin use only)
func (r *TemplateRepository) Create(template *domain.ItemTemplate) error {
	template.CreatedAt = time.Now()
	template.UpdatedAt = time.Now()
	return r.db.Create(template).Error
}

// WithTx returns a repository bound to the given transaction
func (r *TemplateRepository) WithTx(tx *gorm.DB) domain.TemplateRepository {
	return &TemplateRepository{db: tx}
}

// UserItemRepository implements domain.UserItemRepository
type UserItemRepository struct {
	db *gorm.DB
}

// NewUserItemRepository creates a new user item repository
func NewUserItemRepository(db *gorm.DB) domain.UserItemRepository {
	return &UserItemRepository{db: db}
}

// GetByUserAndItem retrieves one owned stack
func (r *UserItemRepository) GetByUserAndItem(userID int64, itemID string) (*domain.UserItem, error) {
	var item domain.UserItem
	result := r.db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &item, nil
}

// ListByUserID retrieves all of a user's stacks, newest first
func (r *UserItemRepository) ListByUserID(userID int64) ([]*domain.UserItem, error) {
	var items []*domain.UserItem
	err := r.db.Where("user_id = ?", userID).Order("obtained_at DESC").Find(&items).Error
	return items, err
}

// Create creates a new stack
func (r *UserItemRepository) Create(item *domain.UserItem) error {
	now := time.Now()
	if item.ObtainedAt.IsZero() {
		item.ObtainedAt = now
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	return r.db.Create(item).Error
}

// Update updates an existing stack
func (r *UserItemRepository) Update(item *domain.UserItem) error {
	item.UpdatedAt = time.Now()
	return r.db.Save(item).Error
}

// Delete removes a stack (quantity reached zero)
func (r *UserItemRepository) Delete(item *domain.UserItem) error {
	return r.db.Delete(item).Error
}

// WithTx returns a repository bound to the given transaction
func (r *UserItemRepository) WithTx(tx *gorm.DB) domain.UserItemRepository {
	return &UserItemRepository{db: tx}
}
