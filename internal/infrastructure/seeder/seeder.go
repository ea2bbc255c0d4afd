package seeder

import (
	"log"

	"github.com/saviored/focuscastle/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Seeder handles database seeding operations
type Seeder struct {
	userRepo     domain.UserRepository
	templateRepo domain.TemplateRepository
	settingRepo  domain.SettingRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(userRepo domain.UserRepository, templateRepo domain.TemplateRepository, settingRepo domain.SettingRepository) *Seeder {
	return &Seeder{
		userRepo:     userRepo,
		templateRepo: templateRepo,
		settingRepo:  settingRepo,
	}
}

// SeedAdmin creates the default admin account if it does not exist
func (s *Seeder) SeedAdmin() error {
	log.Printf("Seeding admin user...")

	existing, err := s.userRepo.GetByEmail("admin@focuscastle.dev")
	if err != nil {
		return err
	}
	if existing != nil {
		log.Printf("Admin user already exists, skipping.")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin-change-me"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		Email:        "admin@focuscastle.dev",
		PasswordHash: string(hash),
		Name:         "Administrator",
		Role:         domain.RoleAdmin,
		IsActive:     true,
		Level:        1,
	}
	if err := s.userRepo.Create(admin); err != nil {
		return err
	}

	log.Printf("Admin user created.")
	return nil
}

// SeedSettings writes the default chest tuning values if absent
func (s *Seeder) SeedSettings() error {
	log.Printf("Seeding settings...")

	defaults := []struct {
		key         string
		value       string
		description string
	}{
		{domain.SettingChestUnlockMinutes, "60", "Focus minutes required to unlock a chest"},
		{domain.SettingChestRewardCoins, "150", "Coins paid out per chest claim"},
		{domain.SettingChestRewardWood, "50", "Wood paid out per chest claim"},
		{domain.SettingChestRewardStone, "25", "Stones paid out per chest claim"},
	}

	for _, d := range defaults {
		existing, err := s.settingRepo.GetByKey(d.key)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := s.settingRepo.Upsert(&domain.Setting{
			Key:         d.key,
			Value:       d.value,
			Description: d.description,
		}); err != nil {
			return err
		}
	}

	log.Printf("Settings seeding completed.")
	return nil
}

// SeedItemTemplates loads the item catalogue. Existing templates are
// left untouched so local edits survive re-seeding.
func (s *Seeder) SeedItemTemplates() error {
	log.Printf("Seeding item templates...")

	for _, t := range catalogue() {
		existing, err := s.templateRepo.GetByItemID(t.ItemID)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := s.templateRepo.Create(t); err != nil {
			return err
		}
	}

	log.Printf("Item template seeding completed.")
	return nil
}

func catalogue() []*domain.ItemTemplate {
	return []*domain.ItemTemplate{
		{
			ItemID:      "wood_plank",
			Name:        "Wood Plank",
			Description: "A sturdy plank milled from castle wood.",
			Category:    domain.CategoryComponent,
			Rarity:      domain.RarityCommon,
			IconName:    "plank",
			ColorHex:    "#8B5A2B",
			Stackable:   true,
			MaxStack:    999,
			CraftingRecipe: &domain.CraftingRecipe{
				Components: []domain.RecipeComponent{
					{ItemID: "wood", Quantity: 5},
				},
				ResultQuantity: 1,
			},
			ObtainedFrom: "crafting",
		},
		{
			ItemID:      "stone_brick",
			Name:        "Stone Brick",
			Description: "Chiseled stone, the backbone of every wall.",
			Category:    domain.CategoryComponent,
			Rarity:      domain.RarityCommon,
			IconName:    "brick",
			ColorHex:    "#9E9E9E",
			Stackable:   true,
			MaxStack:    999,
			CraftingRecipe: &domain.CraftingRecipe{
				Components: []domain.RecipeComponent{
					{ItemID: "stones", Quantity: 4},
				},
				ResultQuantity: 2,
			},
			ObtainedFrom: "crafting",
		},
		{
			ItemID:      "focus_potion",
			Name:        "Focus Potion",
			Description: "Doubles XP from the next focus session.",
			Category:    domain.CategoryConsumable,
			Rarity:      domain.RarityRare,
			IconName:    "potion",
			ColorHex:    "#7C4DFF",
			Stackable:   true,
			MaxStack:    10,
			Usable:      true,
			UseEffect: &domain.UseEffect{
				Type:     "xp_multiplier",
				Value:    2.0,
				Duration: 1,
			},
			CraftingRecipe: &domain.CraftingRecipe{
				Components: []domain.RecipeComponent{
					{ItemID: "coins", Quantity: 100},
					{ItemID: "wood_plank", Quantity: 2},
				},
				ResultQuantity: 1,
			},
			ObtainedFrom: "crafting",
		},
		{
			ItemID:      "stone_tower",
			Name:        "Stone Tower",
			Description: "A decorative watchtower for the castle grounds.",
			Category:    domain.CategoryCollectible,
			Rarity:      domain.RarityEpic,
			IconName:    "tower",
			ColorHex:    "#607D8B",
			Stackable:   true,
			MaxStack:    99,
			Buyable:     true,
			BuyPrice:    250,
			CraftingRecipe: &domain.CraftingRecipe{
				Components: []domain.RecipeComponent{
					{ItemID: "stone_brick", Quantity: 8},
					{ItemID: "wood_plank", Quantity: 4},
					{ItemID: "coins", Quantity: 50},
				},
				ResultQuantity: 1,
			},
			ObtainedFrom: "crafting",
		},
		{
			ItemID:       "golden_banner",
			Name:         "Golden Banner",
			Description:  "A banner awarded to dedicated students.",
			Category:     domain.CategoryCollectible,
			Rarity:       domain.RarityLegendary,
			IconName:     "banner",
			ColorHex:     "#FFD700",
			Stackable:    true,
			MaxStack:     5,
			ObtainedFrom: "focus_session",
		},
		{
			ItemID:        "scholars_ring",
			Name:          "Scholar's Ring",
			Description:   "Worn by those who study late into the night.",
			Category:      domain.CategoryEquipment,
			Rarity:        domain.RarityEpic,
			IconName:      "ring",
			ColorHex:      "#4FC3F7",
			Stackable:     false,
			MaxStack:      1,
			EquipmentSlot: "accessory",
			EquipmentBonus: &domain.EquipmentBonus{
				XPMultiplier: 1.1,
			},
			ObtainedFrom: "chest",
		},
	}
}
