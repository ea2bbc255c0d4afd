package app

import (
	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewUserRepository(db)
}

func (a *application) InitSessionRepository(db *gorm.DB) domain.SessionRepository {
	return repository.NewSessionRepository(db)
}

func (a *application) InitChestRepository(db *gorm.DB) domain.ChestRepository {
	return repository.NewChestRepository(db)
}

func (a *application) InitCastleRepository(db *gorm.DB) domain.CastleRepository {
	return repository.NewCastleRepository(db)
}

func (a *application) InitTemplateRepository(db *gorm.DB) domain.TemplateRepository {
	return repository.NewTemplateRepository(db)
}

func (a *application) InitUserItemRepository(db *gorm.DB) domain.UserItemRepository {
	return repository.NewUserItemRepository(db)
}

func (a *application) InitSettingRepository(db *gorm.DB) domain.SettingRepository {
	return repository.NewSettingRepository(db)
}

func (a *application) InitTxManager(db *gorm.DB) domain.TxManager {
	return repository.NewTxManager(db)
}
