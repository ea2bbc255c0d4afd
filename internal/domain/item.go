package domain

import (
	"time"

	"gorm.io/gorm"
)

// ItemCategory classifies catalogue entries
type ItemCategory string

const (
	CategoryCollectible ItemCategory = "collectible"
	CategoryEquipment   ItemCategory = "equipment"
	CategoryConsumable  ItemCategory = "consumable"
	CategoryComponent   ItemCategory = "component"
)

// ItemRarity orders items for inventory display
type ItemRarity string

const (
	RarityCommon    ItemRarity = "common"
	RarityRare      ItemRarity = "rare"
	RarityEpic      ItemRarity = "epic"
	RarityLegendary ItemRarity = "legendary"
)

// RarityRank maps rarity to a sortable weight (legendary highest)
func RarityRank(r ItemRarity) int {
	switch r {
	case RarityLegendary:
		return 4
	case RarityEpic:
		return 3
	case RarityRare:
		return 2
	case RarityCommon:
		return 1
	default:
		return 0
	}
}

// UseEffect describes what happens when a usable item is consumed
type UseEffect struct {
	Type     string  `json:"type,omitempty"`
	Value    float64 `json:"value,omitempty"`
	Duration int     `json:"duration,omitempty"`
}

// EquipmentBonus holds passive modifiers for equipped items
type EquipmentBonus struct {
	XPMultiplier   float64 `json:"xpMultiplier,omitempty"`
	FocusTimeBonus int     `json:"focusTimeBonus,omitempty"`
	CoinMultiplier float64 `json:"coinMultiplier,omitempty"`
}

// RecipeComponent is one input of a crafting recipe. ItemID is either a
// catalogue item id or one of the literal resource names "coins",
// "stones", "wood", which are charged against the castle instead of the
// user's stacks.
type RecipeComponent struct {
	ItemID   string `json:"itemId"`
	Quantity int64  `json:"quantity"`
}

// CraftingRecipe lists the inputs and the output quantity of a craft
type CraftingRecipe struct {
	Components     []RecipeComponent `json:"components"`
	ResultQuantity int64             `json:"resultQuantity"`
}

// IsCraftable reports whether the recipe has any inputs at all
func (r *CraftingRecipe) IsCraftable() bool {
	return r != nil && len(r.Components) > 0
}

// ItemTemplate is a global catalogue entry, read-only at runtime
type ItemTemplate struct {
	ID          int64        `json:"-" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	ItemID      string       `json:"item_id" gorm:"uniqueIndex;not null;type:varchar(64)"`
	Name        string       `json:"name" gorm:"not null;type:varchar(128)"`
	Description string       `json:"description" gorm:"type:text"`
	Category    ItemCategory `json:"category" gorm:"index;not null;type:varchar(16)"`
	Rarity      ItemRarity   `json:"rarity" gorm:"index;not null;type:varchar(16);default:'common'"`
	IconName    string       `json:"icon_name" gorm:"type:varchar(64);default:'star'"`
	ColorHex    string       `json:"color_hex" gorm:"type:varchar(16);default:'#808080'"`
	Stackable   bool         `json:"stackable" gorm:"not null;default:true"`
	MaxStack    int64        `json:"max_stack" gorm:"not null;default:999"`
	Sellable    bool         `json:"sellable" gorm:"not null;default:false"`
	SellPrice   int64        `json:"sell_price" gorm:"not null;default:0"`
	Buyable     bool         `json:"buyable" gorm:"not null;default:false"`
	BuyPrice    int64        `json:"buy_price" gorm:"not null;default:0"`
	Usable      bool         `json:"usable" gorm:"not null;default:false"`

	UseEffect      *UseEffect      `json:"use_effect,omitempty" gorm:"serializer:json;type:jsonb"`
	EquipmentSlot  string          `json:"equipment_slot,omitempty" gorm:"type:varchar(16)"`
	EquipmentBonus *EquipmentBonus `json:"equipment_bonus,omitempty" gorm:"serializer:json;type:jsonb"`
	CraftingRecipe *CraftingRecipe `json:"crafting_recipe,omitempty" gorm:"serializer:json;type:jsonb"`
	ObtainedFrom   string          `json:"obtained_from" gorm:"type:varchar(32);default:'focus_session'"`

	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for ItemTemplate
func (t ItemTemplate) TableName() string {
	return "item_templates"
}

// UserItem is an owned stack of a template, unique per (user, item).
// Rows are deleted when the quantity reaches zero.
type UserItem struct {
	ID         int64      `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	UserID     int64      `json:"user_id" gorm:"uniqueIndex:idx_user_item;not null;type:bigint"`
	ItemID     string     `json:"item_id" gorm:"uniqueIndex:idx_user_item;not null;type:varchar(64)"`
	Quantity   int64      `json:"quantity" gorm:"not null;default:1"`
	ObtainedAt time.Time  `json:"obtained_at" gorm:"not null"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for UserItem
func (i UserItem) TableName() string {
	return "user_items"
}

// TemplateRepository defines the interface for catalogue data
type TemplateRepository interface {
	GetByItemID(itemID string) (*ItemTemplate, error)
	GetByItemIDs(itemIDs []string) ([]*ItemTemplate, error)
	List(category, rarity string) ([]*ItemTemplate, error)
	Create(template *ItemTemplate) error
	WithTx(tx *gorm.DB) TemplateRepository
}

// UserItemRepository defines the interface for owned stacks
type UserItemRepository interface {
	GetByUserAndItem(userID int64, itemID string) (*UserItem, error)
	ListByUserID(userID int64) ([]*UserItem, error)
	Create(item *UserItem) error
	Update(item *UserItem) error
	Delete(item *UserItem) error
	WithTx(tx *gorm.DB) UserItemRepository
}

// InventoryItem is a stack joined with its template for display
type InventoryItem struct {
	ID          int64        `json:"id"`
	ItemID      string       `json:"itemId"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Quantity    int64        `json:"quantity"`
	Category    ItemCategory `json:"category"`
	Rarity      ItemRarity   `json:"rarity"`
	IconName    string       `json:"iconName"`
	ColorHex    string       `json:"colorHex"`
	Stackable   bool         `json:"stackable"`
	MaxStack    int64        `json:"maxStack"`
	Usable      bool         `json:"usable"`
	ObtainedAt  time.Time    `json:"obtainedAt"`
	LastUsedAt  *time.Time   `json:"lastUsedAt,omitempty"`
}

// InventoryFilter narrows an inventory listing
type InventoryFilter struct {
	Category string
	Rarity   string
	Search   string
}

// UseItemResult reports the effect of consuming an item
type UseItemResult struct {
	Effect            *UseEffect `json:"effect,omitempty"`
	RemainingQuantity int64      `json:"remainingQuantity"`
}

// InventoryUseCase defines the interface for owned-stack operations
type InventoryUseCase interface {
	List(userID int64, filter InventoryFilter) ([]*InventoryItem, error)
	GetItem(userID int64, itemID string) (*InventoryItem, error)
	UseItem(userID int64, itemID string, quantity int64) (*UseItemResult, error)
	DiscardItem(userID int64, itemID string, quantity int64) error
	ListTemplates(category, rarity string) ([]*ItemTemplate, error)
}

// ConsumedComponent records one input the crafting engine deducted
type ConsumedComponent struct {
	ItemID   string `json:"itemId"`
	Quantity int64  `json:"quantity"`
}

// CraftResult is the outcome of a successful craft
type CraftResult struct {
	ItemID             string              `json:"itemId"`
	Quantity           int64               `json:"quantity"`
	TotalQuantity      int64               `json:"totalQuantity"`
	ConsumedComponents []ConsumedComponent `json:"consumedComponents"`
}

// ResourceBalances is a snapshot of castle resource balances
type ResourceBalances struct {
	Coins  int64 `json:"coins"`
	Stones int64 `json:"stones"`
	Wood   int64 `json:"wood"`
}

// ComponentHoldings is a user's crafting materials plus castle resources
type ComponentHoldings struct {
	Resources ResourceBalances `json:"resources"`
	Materials []*InventoryItem `json:"materials"`
}

// CraftingUseCase defines the interface for the crafting engine
type CraftingUseCase interface {
	GetComponents(userID int64) (*ComponentHoldings, error)
	Craft(userID int64, itemID string, quantity int64) (*CraftResult, error)
}
