package castle

import (
	"context"

	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/lock"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// CastleUseCase implements domain.CastleUseCase
type CastleUseCase struct {
	castles      domain.CastleRepository
	txm          domain.TxManager
	locks        *lock.UserLockManager
	logger       *logger.Logger
	strictLayout bool
}

// NewCastleUseCase creates a new castle usecase. strictLayout controls
// whether layout submissions placing more items than the user owns are
// rejected or clamped with a warning.
func NewCastleUseCase(
	castles domain.CastleRepository,
	txm domain.TxManager,
	locks *lock.UserLockManager,
	logger *logger.Logger,
	strictLayout bool,
) domain.CastleUseCase {
	return &CastleUseCase{
		castles:      castles,
		txm:          txm,
		locks:        locks,
		logger:       logger,
		strictLayout: strictLayout,
	}
}

// GetOrCreate returns the caller's castle, creating it on first access
func (uc *CastleUseCase) GetOrCreate(userID int64) (*domain.Castle, error) {
	castle, err := uc.castles.GetByUserID(userID)
	if err != nil {
		return nil, domain.NewDatabaseError("get castle", err)
	}
	if castle == nil {
		castle = domain.NewCastle(userID)
		if err := uc.castles.Create(castle); err != nil {
			return nil, domain.NewDatabaseError("create castle", err)
		}
		uc.logger.Info("Castle created", zap.Int64("user_id", userID))
	}
	return castle, nil
}

// GetByUserID returns another user's castle for viewing
func (uc *CastleUseCase) GetByUserID(userID int64) (*domain.Castle, error) {
	castle, err := uc.castles.GetByUserID(userID)
	if err != nil {
		return nil, domain.NewDatabaseError("get castle", err)
	}
	if castle == nil {
		return nil, domain.NewAppError(domain.ErrCodeCastleNotFound, "Castle not found", 404, nil)
	}
	return castle, nil
}

// SpendResources deducts a bundle of resources from the castle. The
// deduction is all-or-nothing: if any single balance falls short the
// whole spend is rejected. An optional item id records a shop purchase
// into the castle's decoration stock.
func (uc *CastleUseCase) SpendResources(userID int64, spend domain.ResourceSpend) (*domain.Castle, error) {
	if spend.Coins < 0 || spend.Wood < 0 || spend.Stones < 0 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidRange, "Spend amounts must not be negative", 400, nil)
	}

	if err := uc.locks.Lock(context.Background(), userID); err != nil {
		return nil, domain.NewInternalError("Could not serialize operation", err)
	}
	defer uc.locks.Unlock(userID)

	var castle *domain.Castle
	err := uc.txm.WithinTx(func(r domain.Repositories) error {
		var err error
		castle, err = r.Castles.GetByUserID(userID)
		if err != nil {
			return domain.NewDatabaseError("get castle", err)
		}
		if castle == nil {
			return domain.NewAppError(domain.ErrCodeCastleNotFound, "Castle not found", 404, nil)
		}

		if castle.Coins < spend.Coins || castle.Wood < spend.Wood || castle.Stones < spend.Stones {
			return domain.NewAppError(domain.ErrCodeInsufficientResources, "Insufficient resources", 409, nil).
				WithDetails("have coins=%d wood=%d stones=%d", castle.Coins, castle.Wood, castle.Stones)
		}

		castle.Coins -= spend.Coins
		castle.Wood -= spend.Wood
		castle.Stones -= spend.Stones
		if spend.ItemID != "" {
			if castle.Inventory == nil {
				castle.Inventory = map[string]int64{}
			}
			castle.Inventory[spend.ItemID]++
		}
		castle.CalculateProgress()
		return wrapUpdate(r.Castles.Update(castle))
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Castle resources spent",
		zap.Int64("user_id", userID),
		zap.Int64("coins", spend.Coins),
		zap.Int64("wood", spend.Wood),
		zap.Int64("stones", spend.Stones),
		zap.String("item_id", spend.ItemID))
	return castle, nil
}

// UpdateLayout replaces the castle layout wholesale and reconciles the
// decoration stock against it. Ownership of an item is the sum of what
// the old layout placed and what the stock holds; whatever the new
// layout does not place goes back to stock. Placing more than owned is
// either rejected (strict mode) or clamped to zero stock with a
// warning.
func (uc *CastleUseCase) UpdateLayout(userID int64, update domain.LayoutUpdate) (*domain.Castle, error) {
	if err := uc.locks.Lock(context.Background(), userID); err != nil {
		return nil, domain.NewInternalError("Could not serialize operation", err)
	}
	defer uc.locks.Unlock(userID)

	var castle *domain.Castle
	err := uc.txm.WithinTx(func(r domain.Repositories) error {
		var err error
		castle, err = r.Castles.GetByUserID(userID)
		if err != nil {
			return domain.NewDatabaseError("get castle", err)
		}
		if castle == nil {
			return domain.NewAppError(domain.ErrCodeCastleNotFound, "Castle not found", 404, nil)
		}

		owned := map[string]int64{}
		for _, p := range castle.Layout {
			owned[p.ItemID]++
		}
		for itemID, qty := range castle.Inventory {
			owned[itemID] += qty
		}

		placed := map[string]int64{}
		for _, p := range update.Layout {
			placed[p.ItemID]++
		}

		inventory := map[string]int64{}
		for itemID, have := range owned {
			remaining := have - placed[itemID]
			if remaining < 0 {
				if uc.strictLayout {
					return domain.NewAppError(domain.ErrCodeLayoutOverflow, "Layout places more items than owned", 409, nil).
						WithDetails("item %s: owned %d, placed %d", itemID, have, placed[itemID])
				}
				uc.logger.Warn("Layout places more items than owned",
					zap.Int64("user_id", userID),
					zap.String("item_id", itemID),
					zap.Int64("owned", have),
					zap.Int64("placed", placed[itemID]))
				remaining = 0
			}
			if remaining > 0 {
				inventory[itemID] = remaining
			}
		}
		if uc.strictLayout {
			for itemID, qty := range placed {
				if owned[itemID] == 0 && qty > 0 {
					return domain.NewAppError(domain.ErrCodeLayoutOverflow, "Layout places items the user does not own", 409, nil).
						WithDetails("item %s: placed %d", itemID, qty)
				}
			}
		}

		castle.Layout = update.Layout
		castle.Inventory = inventory
		if update.Level != nil {
			castle.Level = *update.Level
		}
		if update.ProgressPercentage != nil {
			castle.ProgressPercentage = *update.ProgressPercentage
		} else {
			castle.CalculateProgress()
		}
		return wrapUpdate(r.Castles.Update(castle))
	})
	if err != nil {
		return nil, err
	}
	return castle, nil
}

// LevelUp advances the castle one level, deducting the current level's
// full requirements and scaling the next level's up by 20%. The new
// level is mirrored onto the user's profile in the same transaction.
func (uc *CastleUseCase) LevelUp(userID int64) (*domain.Castle, error) {
	if err := uc.locks.Lock(context.Background(), userID); err != nil {
		return nil, domain.NewInternalError("Could not serialize operation", err)
	}
	defer uc.locks.Unlock(userID)

	var castle *domain.Castle
	err := uc.txm.WithinTx(func(r domain.Repositories) error {
		var err error
		castle, err = r.Castles.GetByUserID(userID)
		if err != nil {
			return domain.NewDatabaseError("get castle", err)
		}
		if castle == nil {
			return domain.NewAppError(domain.ErrCodeCastleNotFound, "Castle not found", 404, nil)
		}
		if !castle.CanLevelUp() {
			return domain.NewAppError(domain.ErrCodeInsufficientResources, "Not enough resources to level up", 409, nil).
				WithDetails("need coins=%d stones=%d wood=%d", castle.LevelRequirements.Coins, castle.LevelRequirements.Stones, castle.LevelRequirements.Wood)
		}
		castle.LevelUp()
		if err := wrapUpdate(r.Castles.Update(castle)); err != nil {
			return err
		}

		user, err := r.Users.GetByID(userID)
		if err != nil {
			return domain.NewDatabaseError("get user", err)
		}
		if user == nil {
			return domain.NewAppError(domain.ErrCodeUserNotFound, "User not found", 404, nil)
		}
		user.Level = castle.Level
		if err := r.Users.Update(user); err != nil {
			return domain.NewDatabaseError("update user", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Castle leveled up",
		zap.Int64("user_id", userID),
		zap.Int("level", castle.Level))
	return castle, nil
}

func wrapUpdate(err error) error {
	if err != nil {
		return domain.NewDatabaseError("update castle", err)
	}
	return nil
}
