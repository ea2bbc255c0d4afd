package chest

import (
	"context"
	"time"

	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/lock"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ChestUseCase implements domain.ChestUseCase.
//
// Chest state is derived, not accumulated: the authoritative signal is
// the user's lifetime focus minutes minus the minutes already claimed.
// The persisted chest row is a projection kept fresh on reads so admin
// listings and the session-completion nudge have something to show.
type ChestUseCase struct {
	settings domain.SettingsProvider
	txm      domain.TxManager
	locks    *lock.UserLockManager
	logger   *logger.Logger
}

// NewChestUseCase creates a new treasure chest usecase
func NewChestUseCase(
	settings domain.SettingsProvider,
	txm domain.TxManager,
	locks *lock.UserLockManager,
	logger *logger.Logger,
) domain.ChestUseCase {
	return &ChestUseCase{
		settings: settings,
		txm:      txm,
		locks:    locks,
		logger:   logger,
	}
}

// GetStatus returns the caller's current chest with its cycle math. A
// fresh chest row is created when none exists or the current one has
// already been claimed. The projection write runs under the user lock
// in one transaction so it cannot interleave with a concurrent claim.
func (uc *ChestUseCase) GetStatus(userID int64) (*domain.ChestStatus, error) {
	if err := uc.locks.Lock(context.Background(), userID); err != nil {
		return nil, domain.NewInternalError("Could not serialize operation", err)
	}
	defer uc.locks.Unlock(userID)

	unlockMinutes := uc.settings.ChestUnlockMinutes()

	var status *domain.ChestStatus
	err := uc.txm.WithinTx(func(r domain.Repositories) error {
		user, err := r.Users.GetByID(userID)
		if err != nil {
			return domain.NewDatabaseError("get user", err)
		}
		if user == nil {
			return domain.NewAppError(domain.ErrCodeUserNotFound, "User not found", 404, nil)
		}

		chest, err := r.Chests.GetCurrentByUserID(userID)
		if err != nil {
			return domain.NewDatabaseError("get chest", err)
		}
		if chest == nil || chest.IsClaimed {
			chest = &domain.TreasureChest{UserID: userID}
			if err := r.Chests.Create(chest); err != nil {
				return domain.NewDatabaseError("create chest", err)
			}
		}

		total, inCycle := cycleMinutes(user)
		status = &domain.ChestStatus{
			Chest:                 chest,
			TotalMinutes:          total,
			MinutesInCurrentCycle: inCycle,
			UnlockMinutes:         unlockMinutes,
		}
		if inCycle < unlockMinutes {
			status.MinutesRemaining = unlockMinutes - inCycle
		}

		progress := int(inCycle * 100 / unlockMinutes)
		if progress > 100 {
			progress = 100
		}
		unlocked := inCycle >= unlockMinutes

		if chest.ProgressPercentage != progress || chest.IsUnlocked != unlocked {
			chest.ProgressPercentage = progress
			chest.IsUnlocked = unlocked
			if unlocked && chest.UnlockedAt == nil {
				now := time.Now()
				chest.UnlockedAt = &now
			}
			if err := r.Chests.Update(chest); err != nil {
				return domain.NewDatabaseError("update chest", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return status, nil
}

// Claim pays out the current chest and starts the next cycle. Claiming
// advances the user's claimed-minutes mark by exactly one unlock
// window, so focus time beyond the window carries into the next chest.
func (uc *ChestUseCase) Claim(userID int64) (*domain.ChestRewards, *domain.TreasureChest, error) {
	if err := uc.locks.Lock(context.Background(), userID); err != nil {
		return nil, nil, domain.NewInternalError("Could not serialize operation", err)
	}
	defer uc.locks.Unlock(userID)

	unlockMinutes := uc.settings.ChestUnlockMinutes()
	rewards := uc.settings.ChestRewards()

	var claimed *domain.TreasureChest

	err := uc.txm.WithinTx(func(r domain.Repositories) error {
		user, err := r.Users.GetByID(userID)
		if err != nil {
			return domain.NewDatabaseError("get user", err)
		}
		if user == nil {
			return domain.NewAppError(domain.ErrCodeUserNotFound, "User not found", 404, nil)
		}

		chest, err := r.Chests.GetCurrentByUserID(userID)
		if err != nil {
			return domain.NewDatabaseError("get chest", err)
		}
		if chest == nil {
			return domain.NewAppError(domain.ErrCodeChestNotFound, "No chest to claim", 404, nil)
		}
		if chest.IsClaimed {
			return domain.NewAppError(domain.ErrCodeChestAlreadyClaimed, "Chest already claimed", 409, nil)
		}

		// A chest already flagged unlocked stays claimable even when the
		// minutes alone do not cover a window yet (the session nudge can
		// push the flag to unlocked ahead of the cycle).
		_, inCycle := cycleMinutes(user)
		if inCycle < unlockMinutes && !chest.IsUnlocked {
			return domain.NewAppError(domain.ErrCodeChestLocked, "Chest is not unlocked yet", 409, nil)
		}

		now := time.Now()
		chest.ProgressPercentage = 100
		chest.IsUnlocked = true
		if chest.UnlockedAt == nil {
			chest.UnlockedAt = &now
		}
		chest.IsClaimed = true
		chest.ClaimedAt = &now
		if err := r.Chests.Update(chest); err != nil {
			return domain.NewDatabaseError("update chest", err)
		}

		user.LastClaimedFocusMinutes += unlockMinutes
		user.TotalCoins += rewards.Coins
		if err := r.Users.Update(user); err != nil {
			return domain.NewDatabaseError("update user", err)
		}

		castle, err := r.Castles.GetByUserID(userID)
		if err != nil {
			return domain.NewDatabaseError("get castle", err)
		}
		if castle == nil {
			castle = domain.NewCastle(userID)
			if err := r.Castles.Create(castle); err != nil {
				return domain.NewDatabaseError("create castle", err)
			}
		}
		castle.Coins += rewards.Coins
		castle.Wood += rewards.Wood
		castle.Stones += rewards.Stones
		castle.CalculateProgress()
		if err := r.Castles.Update(castle); err != nil {
			return domain.NewDatabaseError("update castle", err)
		}

		claimed = chest
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	uc.logger.Info("Treasure chest claimed",
		zap.Int64("user_id", userID),
		zap.Int64("chest_id", claimed.ID),
		zap.Int64("coins", rewards.Coins),
		zap.Int64("wood", rewards.Wood),
		zap.Int64("stones", rewards.Stones))

	return &rewards, claimed, nil
}

// cycleMinutes returns the user's lifetime focus minutes and the
// portion not yet consumed by chest claims.
func cycleMinutes(user *domain.User) (total, inCycle int64) {
	total = int64(user.TotalFocusHours * 60)
	inCycle = total - user.LastClaimedFocusMinutes
	if inCycle < 0 {
		inCycle = 0
	}
	return total, inCycle
}
