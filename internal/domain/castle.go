package domain

import (
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
)

// LevelRequirements is the resource gate for the next castle level
type LevelRequirements struct {
	Coins  int64 `json:"coins"`
	Stones int64 `json:"stones"`
	Wood   int64 `json:"wood"`
}

// Placement is a single building placed on the castle grounds
type Placement struct {
	ItemID   string  `json:"itemId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation int     `json:"rotation,omitempty"`
}

// Castle holds a user's resource balances, cosmetic level and grounds
// layout. One castle per user, created lazily on first access.
type Castle struct {
	ID     int64 `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	UserID int64 `json:"user_id" gorm:"uniqueIndex;not null;type:bigint"`

	Coins  int64 `json:"coins" gorm:"not null;default:0"`
	Stones int64 `json:"stones" gorm:"not null;default:0"`
	Wood   int64 `json:"wood" gorm:"not null;default:0"`

	Level              int               `json:"level" gorm:"not null;default:1"`
	LevelName          string            `json:"level_name" gorm:"type:varchar(64);not null;default:'CASTLE'"`
	ProgressPercentage float64           `json:"progress_percentage" gorm:"type:numeric(5,2);not null;default:0"`
	NextLevel          int               `json:"next_level" gorm:"not null;default:2"`
	CastleImage        string            `json:"castle_image,omitempty" gorm:"type:varchar(512)"`
	LevelRequirements  LevelRequirements `json:"level_requirements" gorm:"serializer:json;type:jsonb;not null"`

	Layout    []Placement      `json:"layout" gorm:"serializer:json;type:jsonb"`
	Inventory map[string]int64 `json:"inventory" gorm:"serializer:json;type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for Castle
func (c Castle) TableName() string {
	return "castles"
}

// DefaultLevelRequirements is the level-1 resource gate
func DefaultLevelRequirements() LevelRequirements {
	return LevelRequirements{Coins: 100, Stones: 50, Wood: 30}
}

// NewCastle builds a fresh level-1 castle for a user
func NewCastle(userID int64) *Castle {
	return &Castle{
		UserID:            userID,
		Level:             1,
		LevelName:         "CASTLE",
		NextLevel:         2,
		LevelRequirements: DefaultLevelRequirements(),
		Inventory:         map[string]int64{},
	}
}

// CalculateProgress recomputes the informational progress percentage:
// the average of each balance measured against its requirement, each
// capped at 100.
func (c *Castle) CalculateProgress() float64 {
	coinProgress := math.Min(float64(c.Coins)/float64(c.LevelRequirements.Coins)*100, 100)
	stoneProgress := math.Min(float64(c.Stones)/float64(c.LevelRequirements.Stones)*100, 100)
	woodProgress := math.Min(float64(c.Wood)/float64(c.LevelRequirements.Wood)*100, 100)
	c.ProgressPercentage = (coinProgress + stoneProgress + woodProgress) / 3
	return c.ProgressPercentage
}

// CanLevelUp reports whether all three balances meet the requirements
func (c *Castle) CanLevelUp() bool {
	return c.Coins >= c.LevelRequirements.Coins &&
		c.Stones >= c.LevelRequirements.Stones &&
		c.Wood >= c.LevelRequirements.Wood
}

// LevelUp deducts exactly the required amounts, advances the level and
// scales each requirement by 1.2 (floored) for the next tier. Callers
// must check CanLevelUp first.
func (c *Castle) LevelUp() {
	req := c.LevelRequirements
	c.Coins -= req.Coins
	c.Stones -= req.Stones
	c.Wood -= req.Wood
	c.Level++
	c.NextLevel = c.Level + 1
	c.LevelName = fmt.Sprintf("LEVEL %d", c.Level)
	c.LevelRequirements = LevelRequirements{
		Coins:  int64(math.Floor(float64(req.Coins) * 1.2)),
		Stones: int64(math.Floor(float64(req.Stones) * 1.2)),
		Wood:   int64(math.Floor(float64(req.Wood) * 1.2)),
	}
	c.ProgressPercentage = 0
}

// CastleRepository defines the interface for castle data
type CastleRepository interface {
	GetByUserID(userID int64) (*Castle, error)
	Create(castle *Castle) error
	Update(castle *Castle) error
	List(offset, limit int) ([]*Castle, int64, error)
	Count() (int64, error)
	WithTx(tx *gorm.DB) CastleRepository
}

// ResourceSpend is a spend-resources request
type ResourceSpend struct {
	Coins  int64
	Wood   int64
	Stones int64
	ItemID string
}

// LayoutUpdate is a full-replace layout reconciliation request. Level
// and ProgressPercentage are optional cosmetic passthroughs.
type LayoutUpdate struct {
	Layout             []Placement
	Level              *int
	ProgressPercentage *float64
}

// CastleUseCase defines the interface for castle economy logic
type CastleUseCase interface {
	GetOrCreate(userID int64) (*Castle, error)
	GetByUserID(userID int64) (*Castle, error)
	SpendResources(userID int64, spend ResourceSpend) (*Castle, error)
	UpdateLayout(userID int64, update LayoutUpdate) (*Castle, error)
	LevelUp(userID int64) (*Castle, error)
}
