package inventory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/lock"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// InventoryUseCase implements domain.InventoryUseCase
type InventoryUseCase struct {
	templates domain.TemplateRepository
	items     domain.UserItemRepository
	txm       domain.TxManager
	locks     *lock.UserLockManager
	logger    *logger.Logger
}

// NewInventoryUseCase creates a new inventory usecase
func NewInventoryUseCase(
	templates domain.TemplateRepository,
	items domain.UserItemRepository,
	txm domain.TxManager,
	locks *lock.UserLockManager,
	logger *logger.Logger,
) domain.InventoryUseCase {
	return &InventoryUseCase{
		templates: templates,
		items:     items,
		txm:       txm,
		locks:     locks,
		logger:    logger,
	}
}

// List returns the caller's stacks joined with their catalogue entries,
// sorted by rarity (highest first) then name. Stacks whose template has
// been retired from the catalogue are skipped.
func (uc *InventoryUseCase) List(userID int64, filter domain.InventoryFilter) ([]*domain.InventoryItem, error) {
	stacks, err := uc.items.ListByUserID(userID)
	if err != nil {
		return nil, domain.NewDatabaseError("list user items", err)
	}

	itemIDs := make([]string, 0, len(stacks))
	for _, s := range stacks {
		itemIDs = append(itemIDs, s.ItemID)
	}
	templates, err := uc.templates.GetByItemIDs(itemIDs)
	if err != nil {
		return nil, domain.NewDatabaseError("list templates", err)
	}
	byID := make(map[string]*domain.ItemTemplate, len(templates))
	for _, t := range templates {
		byID[t.ItemID] = t
	}

	result := make([]*domain.InventoryItem, 0, len(stacks))
	for _, s := range stacks {
		t, ok := byID[s.ItemID]
		if !ok {
			continue
		}
		if filter.Category != "" && string(t.Category) != filter.Category {
			continue
		}
		if filter.Rarity != "" && string(t.Rarity) != filter.Rarity {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(filter.Search)) {
			continue
		}
		result = append(result, joinStack(s, t))
	}

	sort.Slice(result, func(i, j int) bool {
		ri, rj := domain.RarityRank(result[i].Rarity), domain.RarityRank(result[j].Rarity)
		if ri != rj {
			return ri > rj
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// GetItem returns one of the caller's stacks
func (uc *InventoryUseCase) GetItem(userID int64, itemID string) (*domain.InventoryItem, error) {
	stack, err := uc.items.GetByUserAndItem(userID, itemID)
	if err != nil {
		return nil, domain.NewDatabaseError("get user item", err)
	}
	if stack == nil {
		return nil, domain.NewAppError(domain.ErrCodeItemNotFound, "Item not found in inventory", 404, nil)
	}
	template, err := uc.templates.GetByItemID(itemID)
	if err != nil {
		return nil, domain.NewDatabaseError("get template", err)
	}
	if template == nil {
		return nil, domain.NewAppError(domain.ErrCodeItemNotFound, "Item not found in inventory", 404, nil)
	}
	return joinStack(stack, template), nil
}

// UseItem consumes quantity units of a usable item and reports its
// effect. The stack row is deleted once it reaches zero.
func (uc *InventoryUseCase) UseItem(userID int64, itemID string, quantity int64) (*domain.UseItemResult, error) {
	if quantity < 1 {
		quantity = 1
	}

	template, err := uc.templates.GetByItemID(itemID)
	if err != nil {
		return nil, domain.NewDatabaseError("get template", err)
	}
	if template == nil {
		return nil, domain.NewAppError(domain.ErrCodeItemNotFound, "Unknown item", 404, nil)
	}
	if !template.Usable {
		return nil, domain.NewAppError(domain.ErrCodeItemNotUsable, "Item cannot be used", 409, nil)
	}

	var result *domain.UseItemResult
	if err := uc.withUserStack(userID, itemID, quantity, func(stack *domain.UserItem, items domain.UserItemRepository) error {
		now := time.Now()
		stack.LastUsedAt = &now
		if err := uc.deduct(stack, quantity, items); err != nil {
			return err
		}
		result = &domain.UseItemResult{
			Effect:            template.UseEffect,
			RemainingQuantity: stack.Quantity,
		}
		return nil
	}); err != nil {
		return nil, err
	}

	uc.logger.Info("Item used",
		zap.Int64("user_id", userID),
		zap.String("item_id", itemID),
		zap.Int64("quantity", quantity))
	return result, nil
}

// DiscardItem throws away quantity units of a stack
func (uc *InventoryUseCase) DiscardItem(userID int64, itemID string, quantity int64) error {
	if quantity < 1 {
		quantity = 1
	}
	return uc.withUserStack(userID, itemID, quantity, func(stack *domain.UserItem, items domain.UserItemRepository) error {
		return uc.deduct(stack, quantity, items)
	})
}

// ListTemplates returns the item catalogue, optionally filtered
func (uc *InventoryUseCase) ListTemplates(category, rarity string) ([]*domain.ItemTemplate, error) {
	templates, err := uc.templates.List(category, rarity)
	if err != nil {
		return nil, domain.NewDatabaseError("list templates", err)
	}
	return templates, nil
}

// withUserStack runs fn against the caller's stack of itemID under the
// user lock in one transaction, verifying the stack exists and holds at
// least quantity units.
func (uc *InventoryUseCase) withUserStack(userID int64, itemID string, quantity int64, fn func(*domain.UserItem, domain.UserItemRepository) error) error {
	if err := uc.locks.Lock(context.Background(), userID); err != nil {
		return domain.NewInternalError("Could not serialize operation", err)
	}
	defer uc.locks.Unlock(userID)

	return uc.txm.WithinTx(func(r domain.Repositories) error {
		stack, err := r.Items.GetByUserAndItem(userID, itemID)
		if err != nil {
			return domain.NewDatabaseError("get user item", err)
		}
		if stack == nil {
			return domain.NewAppError(domain.ErrCodeItemNotFound, "Item not found in inventory", 404, nil)
		}
		if stack.Quantity < quantity {
			return domain.NewAppError(domain.ErrCodeItemNotEnough, "Not enough items", 409, nil).
				WithDetails("have %d, want %d", stack.Quantity, quantity)
		}
		return fn(stack, r.Items)
	})
}

func (uc *InventoryUseCase) deduct(stack *domain.UserItem, quantity int64, items domain.UserItemRepository) error {
	stack.Quantity -= quantity
	if stack.Quantity <= 0 {
		if err := items.Delete(stack); err != nil {
			return domain.NewDatabaseError("delete user item", err)
		}
		stack.Quantity = 0
		return nil
	}
	if err := items.Update(stack); err != nil {
		return domain.NewDatabaseError("update user item", err)
	}
	return nil
}

func joinStack(s *domain.UserItem, t *domain.ItemTemplate) *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:          s.ID,
		ItemID:      s.ItemID,
		Name:        t.Name,
		Description: t.Description,
		Quantity:    s.Quantity,
		Category:    t.Category,
		Rarity:      t.Rarity,
		IconName:    t.IconName,
		ColorHex:    t.ColorHex,
		Stackable:   t.Stackable,
		MaxStack:    t.MaxStack,
		Usable:      t.Usable,
		ObtainedAt:  s.ObtainedAt,
		LastUsedAt:  s.LastUsedAt,
	}
}
