package domain

import (
	"time"

	"gorm.io/gorm"
)

// Setting is an admin-tunable key/value pair read per-request, never
// cached in process.
type Setting struct {
	ID          int64  `json:"-" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Key         string `json:"key" gorm:"uniqueIndex;not null;type:varchar(64)"`
	Value       string `json:"value" gorm:"not null;type:varchar(255)"`
	Description string `json:"description,omitempty" gorm:"type:varchar(255)"`
	UpdatedBy   *int64 `json:"updated_by,omitempty" gorm:"type:bigint"`

	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Setting
func (s Setting) TableName() string {
	return "settings"
}

// Setting keys recognized by the chest cycle engine
const (
	SettingChestUnlockMinutes = "CHEST_UNLOCK_MINUTES"
	SettingChestRewardCoins   = "CHEST_REWARD_COINS"
	SettingChestRewardWood    = "CHEST_REWARD_WOOD"
	SettingChestRewardStone   = "CHEST_REWARD_STONE"
)

// Defaults applied when a setting key is absent
const (
	DefaultChestUnlockMinutes int64 = 60
	DefaultChestRewardCoins   int64 = 150
	DefaultChestRewardWood    int64 = 50
	DefaultChestRewardStone   int64 = 25
)

// SettingRepository defines the interface for setting data
type SettingRepository interface {
	GetByKey(key string) (*Setting, error)
	List() ([]*Setting, error)
	Upsert(setting *Setting) error
	WithTx(tx *gorm.DB) SettingRepository
}

// SettingsProvider is the configuration surface the chest engine
// depends on. Values are fetched per call; missing or malformed keys
// fall back to the defaults above.
type SettingsProvider interface {
	ChestUnlockMinutes() int64
	ChestRewards() ChestRewards
}
