package app

import (
	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/auth"
	"github.com/saviored/focuscastle/internal/infrastructure/lock"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"github.com/saviored/focuscastle/internal/usecase/admin"
	"github.com/saviored/focuscastle/internal/usecase/castle"
	"github.com/saviored/focuscastle/internal/usecase/chest"
	"github.com/saviored/focuscastle/internal/usecase/crafting"
	"github.com/saviored/focuscastle/internal/usecase/inventory"
	"github.com/saviored/focuscastle/internal/usecase/leaderboard"
	"github.com/saviored/focuscastle/internal/usecase/session"
	"github.com/saviored/focuscastle/internal/usecase/user"
)

func (a *application) InitUserUseCase(ur domain.UserRepository, jwt auth.JWTService, log *logger.Logger) domain.UserUseCase {
	return user.NewUserUseCase(ur, jwt, log)
}

func (a *application) InitSessionUseCase(
	sr domain.SessionRepository,
	txm domain.TxManager,
	locks *lock.UserLockManager,
	log *logger.Logger,
) domain.SessionUseCase {
	return session.NewSessionUseCase(sr, txm, locks, log)
}

func (a *application) InitChestUseCase(
	sp domain.SettingsProvider,
	txm domain.TxManager,
	locks *lock.UserLockManager,
	log *logger.Logger,
) domain.ChestUseCase {
	return chest.NewChestUseCase(sp, txm, locks, log)
}

func (a *application) InitCastleUseCase(
	cr domain.CastleRepository,
	txm domain.TxManager,
	locks *lock.UserLockManager,
	log *logger.Logger,
) domain.CastleUseCase {
	return castle.NewCastleUseCase(cr, txm, locks, log, a.config.Castle.StrictLayout)
}

func (a *application) InitInventoryUseCase(
	tr domain.TemplateRepository,
	ir domain.UserItemRepository,
	txm domain.TxManager,
	locks *lock.UserLockManager,
	log *logger.Logger,
) domain.InventoryUseCase {
	return inventory.NewInventoryUseCase(tr, ir, txm, locks, log)
}

func (a *application) InitCraftingUseCase(
	tr domain.TemplateRepository,
	ir domain.UserItemRepository,
	cr domain.CastleRepository,
	txm domain.TxManager,
	locks *lock.UserLockManager,
	log *logger.Logger,
) domain.CraftingUseCase {
	return crafting.NewCraftingUseCase(tr, ir, cr, txm, locks, log)
}

func (a *application) InitLeaderboardUseCase(ur domain.UserRepository, log *logger.Logger) domain.LeaderboardUseCase {
	return leaderboard.NewLeaderboardUseCase(ur, log)
}

func (a *application) InitAdminUseCase(
	ur domain.UserRepository,
	sr domain.SessionRepository,
	car domain.CastleRepository,
	chr domain.ChestRepository,
	ser domain.SettingRepository,
	log *logger.Logger,
) domain.AdminUseCase {
	return admin.NewAdminUseCase(ur, sr, car, chr, ser, log)
}
