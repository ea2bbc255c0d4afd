package domain

import (
	"time"

	"gorm.io/gorm"
)

// TreasureChest is the recurring time-gated bonus reward. The stored
// progress fields are a projection: GetStatus recomputes them from the
// user's accumulated focus minutes and writes the result back, so the
// row is never trusted as an independent counter.
type TreasureChest struct {
	ID                 int64      `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	UserID             int64      `json:"user_id" gorm:"index;not null;type:bigint"`
	ProgressPercentage int        `json:"progress_percentage" gorm:"not null;default:0"`
	IsUnlocked         bool       `json:"is_unlocked" gorm:"not null;default:false"`
	IsClaimed          bool       `json:"is_claimed" gorm:"not null;default:false"`
	UnlockedAt         *time.Time `json:"unlocked_at,omitempty"`
	ClaimedAt          *time.Time `json:"claimed_at,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for TreasureChest
func (t TreasureChest) TableName() string {
	return "treasure_chests"
}

// ChestStatus is the recomputed unlock state returned to clients
type ChestStatus struct {
	Chest                 *TreasureChest `json:"chest"`
	TotalMinutes          int64          `json:"totalMinutes"`
	MinutesInCurrentCycle int64          `json:"minutesInCurrentCycle"`
	UnlockMinutes         int64          `json:"unlockMinutes"`
	MinutesRemaining      int64          `json:"minutesRemaining"`
}

// ChestRewards is the configured payout of one claim
type ChestRewards struct {
	Coins  int64 `json:"coins"`
	Wood   int64 `json:"wood"`
	Stones int64 `json:"stones"`
}

// ChestStats summarizes chest states for the admin dashboard
type ChestStats struct {
	Total    int64 `json:"total"`
	Unlocked int64 `json:"unlocked"`
	Claimed  int64 `json:"claimed"`
	Locked   int64 `json:"locked"`
}

// ChestRepository defines the interface for treasure chest data.
// GetCurrentByUserID selects the most recently created chest.
type ChestRepository interface {
	GetCurrentByUserID(userID int64) (*TreasureChest, error)
	Create(chest *TreasureChest) error
	Update(chest *TreasureChest) error
	List(offset, limit int) ([]*TreasureChest, int64, error)
	Count() (int64, error)
	CountUnlocked() (int64, error)
	CountClaimed() (int64, error)
	WithTx(tx *gorm.DB) ChestRepository
}

// ChestUseCase defines the interface for the chest cycle engine
type ChestUseCase interface {
	GetStatus(userID int64) (*ChestStatus, error)
	Claim(userID int64) (*ChestRewards, *TreasureChest, error)
}
