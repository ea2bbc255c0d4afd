package app

import (
	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"github.com/saviored/focuscastle/internal/infrastructure/settings"
)

func (a *application) InitSettingsProvider(sr domain.SettingRepository, log *logger.Logger) domain.SettingsProvider {
	return settings.NewProvider(sr, log)
}
