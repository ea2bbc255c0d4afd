package settings

import (
	"strconv"

	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Provider implements domain.SettingsProvider over the settings table.
// Values are read per call so admin changes take effect immediately;
// missing or malformed values fall back to the documented defaults.
type Provider struct {
	settings domain.SettingRepository
	logger   *logger.Logger
}

// NewProvider creates a new settings provider
func NewProvider(settings domain.SettingRepository, logger *logger.Logger) domain.SettingsProvider {
	return &Provider{settings: settings, logger: logger}
}

// ChestUnlockMinutes returns the configured chest cycle length.
// A zero interval would make the cycle math divide by zero, so it is
// treated as malformed.
func (p *Provider) ChestUnlockMinutes() int64 {
	minutes := p.intValue(domain.SettingChestUnlockMinutes, domain.DefaultChestUnlockMinutes)
	if minutes <= 0 {
		return domain.DefaultChestUnlockMinutes
	}
	return minutes
}

// ChestRewards returns the configured chest payout
func (p *Provider) ChestRewards() domain.ChestRewards {
	return domain.ChestRewards{
		Coins:  p.intValue(domain.SettingChestRewardCoins, domain.DefaultChestRewardCoins),
		Wood:   p.intValue(domain.SettingChestRewardWood, domain.DefaultChestRewardWood),
		Stones: p.intValue(domain.SettingChestRewardStone, domain.DefaultChestRewardStone),
	}
}

func (p *Provider) intValue(key string, fallback int64) int64 {
	setting, err := p.settings.GetByKey(key)
	if err != nil {
		p.logger.Warn("Failed to read setting, using default",
			zap.String("key", key), zap.Int64("default", fallback), zap.Error(err))
		return fallback
	}
	if setting == nil {
		return fallback
	}
	value, err := strconv.ParseInt(setting.Value, 10, 64)
	if err != nil || value < 0 {
		p.logger.Warn("Malformed setting value, using default",
			zap.String("key", key), zap.String("value", setting.Value), zap.Int64("default", fallback))
		return fallback
	}
	return value
}
