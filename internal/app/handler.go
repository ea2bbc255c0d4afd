package app

import (
	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/http/handlers"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
)

func (a *application) InitUserHandler(uc domain.UserUseCase, log *logger.Logger) *handlers.UserHandler {
	return handlers.NewUserHandler(uc, log)
}

func (a *application) InitSessionHandler(uc domain.SessionUseCase, log *logger.Logger) *handlers.SessionHandler {
	return handlers.NewSessionHandler(uc, log)
}

func (a *application) InitChestHandler(uc domain.ChestUseCase, log *logger.Logger) *handlers.ChestHandler {
	return handlers.NewChestHandler(uc, log)
}

func (a *application) InitCastleHandler(uc domain.CastleUseCase, log *logger.Logger) *handlers.CastleHandler {
	return handlers.NewCastleHandler(uc, log)
}

func (a *application) InitInventoryHandler(uc domain.InventoryUseCase, log *logger.Logger) *handlers.InventoryHandler {
	return handlers.NewInventoryHandler(uc, log)
}

func (a *application) InitComponentHandler(uc domain.CraftingUseCase, log *logger.Logger) *handlers.ComponentHandler {
	return handlers.NewComponentHandler(uc, log)
}

func (a *application) InitLeaderboardHandler(uc domain.LeaderboardUseCase, log *logger.Logger) *handlers.LeaderboardHandler {
	return handlers.NewLeaderboardHandler(uc, log)
}

func (a *application) InitAdminHandler(uc domain.AdminUseCase, log *logger.Logger) *handlers.AdminHandler {
	return handlers.NewAdminHandler(uc, log)
}
