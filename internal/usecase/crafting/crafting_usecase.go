package crafting

import (
	"context"
	"time"

	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/lock"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// CraftingUseCase implements domain.CraftingUseCase
type CraftingUseCase struct {
	templates domain.TemplateRepository
	items     domain.UserItemRepository
	castles   domain.CastleRepository
	txm       domain.TxManager
	locks     *lock.UserLockManager
	logger    *logger.Logger
}

// NewCraftingUseCase creates a new crafting usecase
func NewCraftingUseCase(
	templates domain.TemplateRepository,
	items domain.UserItemRepository,
	castles domain.CastleRepository,
	txm domain.TxManager,
	locks *lock.UserLockManager,
	logger *logger.Logger,
) domain.CraftingUseCase {
	return &CraftingUseCase{
		templates: templates,
		items:     items,
		castles:   castles,
		txm:       txm,
		locks:     locks,
		logger:    logger,
	}
}

// GetComponents returns everything the caller can craft with: castle
// resource balances plus owned component stacks.
func (uc *CraftingUseCase) GetComponents(userID int64) (*domain.ComponentHoldings, error) {
	holdings := &domain.ComponentHoldings{Materials: []*domain.InventoryItem{}}

	castle, err := uc.castles.GetByUserID(userID)
	if err != nil {
		return nil, domain.NewDatabaseError("get castle", err)
	}
	if castle != nil {
		holdings.Resources = domain.ResourceBalances{
			Coins:  castle.Coins,
			Stones: castle.Stones,
			Wood:   castle.Wood,
		}
	}

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

	for _, s := range stacks {
		t, ok := byID[s.ItemID]
		if !ok || t.Category != domain.CategoryComponent {
			continue
		}
		holdings.Materials = append(holdings.Materials, &domain.InventoryItem{
			ID:       s.ID,
			ItemID:   s.ItemID,
			Name:     t.Name,
			Quantity: s.Quantity,
			Category: t.Category,
			Rarity:   t.Rarity,
			IconName: t.IconName,
			ColorHex: t.ColorHex,
		})
	}
	return holdings, nil
}

// Craft produces quantity batches of an item from its recipe. All
// inputs are verified before anything is deducted; either the entire
// craft commits or nothing changes. Inputs named "coins", "stones" or
// "wood" are charged against the castle, everything else against the
// caller's stacks.
func (uc *CraftingUseCase) Craft(userID int64, itemID string, quantity int64) (*domain.CraftResult, error) {
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
	if !template.CraftingRecipe.IsCraftable() {
		return nil, domain.NewAppError(domain.ErrCodeRecipeNotFound, "Item has no crafting recipe", 409, nil)
	}
	recipe := template.CraftingRecipe

	if err := uc.locks.Lock(context.Background(), userID); err != nil {
		return nil, domain.NewInternalError("Could not serialize operation", err)
	}
	defer uc.locks.Unlock(userID)

	var result *domain.CraftResult
	err = uc.txm.WithinTx(func(r domain.Repositories) error {
		castle, err := r.Castles.GetByUserID(userID)
		if err != nil {
			return domain.NewDatabaseError("get castle", err)
		}
		if castle == nil {
			return domain.NewAppError(domain.ErrCodeCastleNotFound, "Castle not found", 404, nil)
		}

		// Needs are aggregated per input first, so a recipe listing the
		// same component twice is checked against the combined total
		// rather than each line independently.
		needs := map[string]int64{}
		inputs := make([]string, 0, len(recipe.Components))
		for _, c := range recipe.Components {
			if _, seen := needs[c.ItemID]; !seen {
				inputs = append(inputs, c.ItemID)
			}
			needs[c.ItemID] += c.Quantity * quantity
		}

		// Pre-flight: every input must be covered in full before any
		// deduction happens.
		stacks := map[string]*domain.UserItem{}
		for _, inputID := range inputs {
			need := needs[inputID]
			if isResource(inputID) {
				if resourceBalance(castle, inputID) < need {
					return insufficient(inputID, need, resourceBalance(castle, inputID))
				}
				continue
			}
			stack, err := r.Items.GetByUserAndItem(userID, inputID)
			if err != nil {
				return domain.NewDatabaseError("get user item", err)
			}
			have := int64(0)
			if stack != nil {
				have = stack.Quantity
				stacks[inputID] = stack
			}
			if have < need {
				return insufficient(inputID, need, have)
			}
		}

		consumed := make([]domain.ConsumedComponent, 0, len(inputs))
		castleTouched := false
		for _, inputID := range inputs {
			need := needs[inputID]
			if isResource(inputID) {
				spendResource(castle, inputID, need)
				castleTouched = true
			} else {
				stack := stacks[inputID]
				stack.Quantity -= need
				if stack.Quantity <= 0 {
					if err := r.Items.Delete(stack); err != nil {
						return domain.NewDatabaseError("delete user item", err)
					}
				} else if err := r.Items.Update(stack); err != nil {
					return domain.NewDatabaseError("update user item", err)
				}
			}
			consumed = append(consumed, domain.ConsumedComponent{ItemID: inputID, Quantity: need})
		}
		if castleTouched {
			castle.CalculateProgress()
			if err := r.Castles.Update(castle); err != nil {
				return domain.NewDatabaseError("update castle", err)
			}
		}

		produced := recipe.ResultQuantity * quantity
		out, err := r.Items.GetByUserAndItem(userID, itemID)
		if err != nil {
			return domain.NewDatabaseError("get user item", err)
		}
		if out == nil {
			out = &domain.UserItem{
				UserID:     userID,
				ItemID:     itemID,
				Quantity:   produced,
				ObtainedAt: time.Now(),
			}
			if err := r.Items.Create(out); err != nil {
				return domain.NewDatabaseError("create user item", err)
			}
		} else {
			out.Quantity += produced
			if err := r.Items.Update(out); err != nil {
				return domain.NewDatabaseError("update user item", err)
			}
		}

		result = &domain.CraftResult{
			ItemID:             itemID,
			Quantity:           produced,
			TotalQuantity:      out.Quantity,
			ConsumedComponents: consumed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Item crafted",
		zap.Int64("user_id", userID),
		zap.String("item_id", itemID),
		zap.Int64("produced", result.Quantity))
	return result, nil
}

func isResource(itemID string) bool {
	return itemID == "coins" || itemID == "stones" || itemID == "wood"
}

func resourceBalance(c *domain.Castle, itemID string) int64 {
	switch itemID {
	case "coins":
		return c.Coins
	case "stones":
		return c.Stones
	case "wood":
		return c.Wood
	}
	return 0
}

func spendResource(c *domain.Castle, itemID string, amount int64) {
	switch itemID {
	case "coins":
		c.Coins -= amount
	case "stones":
		c.Stones -= amount
	case "wood":
		c.Wood -= amount
	}
}

func insufficient(itemID string, need, have int64) error {
	return domain.NewAppError(domain.ErrCodeInsufficientComponents, "Insufficient components", 409, nil).
		WithDetails("component %s: need %d, have %d", itemID, need, have)
}
