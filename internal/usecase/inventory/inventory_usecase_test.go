package inventory

import (
	"testing"
	"time"

	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/lock"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"github.com/saviored/focuscastle/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(store *testutil.Store) domain.InventoryUseCase {
	log := logger.NewLogger("test", "error")
	return NewInventoryUseCase(
		&testutil.TemplateRepo{S: store},
		&testutil.ItemRepo{S: store},
		store.TxManager(),
		lock.NewUserLockManager(log),
		log,
	)
}

func seedTemplate(store *testutil.Store, template *domain.ItemTemplate) *domain.ItemTemplate {
	if template.Rarity == "" {
		template.Rarity = domain.RarityCommon
	}
	if template.Name == "" {
		template.Name = template.ItemID
	}
	_ = (&testutil.TemplateRepo{S: store}).Create(template)
	return template
}

func seedStack(store *testutil.Store, userID int64, itemID string, quantity int64) *domain.UserItem {
	stack := &domain.UserItem{
		UserID:     userID,
		ItemID:     itemID,
		Quantity:   quantity,
		ObtainedAt: time.Now(),
	}
	_ = (&testutil.ItemRepo{S: store}).Create(stack)
	return stack
}

func TestListJoinsStacksWithCatalogue(t *testing.T) {
	store := testutil.NewStore()
	seedTemplate(store, &domain.ItemTemplate{ItemID: "wood_plank", Name: "Wood Plank", Category: domain.CategoryComponent})
	seedTemplate(store, &domain.ItemTemplate{ItemID: "golden_banner", Name: "Golden Banner", Category: domain.CategoryCollectible, Rarity: domain.RarityLegendary})
	seedStack(store, 1, "wood_plank", 4)
	seedStack(store, 1, "golden_banner", 1)
	seedStack(store, 2, "wood_plank", 9)
	uc := newTestUseCase(store)

	items, err := uc.List(1, domain.InventoryFilter{})
	require.NoError(t, err)

	// Highest rarity first
	require.Len(t, items, 2)
	assert.Equal(t, "golden_banner", items[0].ItemID)
	assert.Equal(t, "Wood Plank", items[1].Name)
	assert.Equal(t, int64(4), items[1].Quantity)
}

func TestListSkipsRetiredTemplates(t *testing.T) {
	store := testutil.NewStore()
	seedStack(store, 1, "retired_item", 3)
	uc := newTestUseCase(store)

	items, err := uc.List(1, domain.InventoryFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListFilters(t *testing.T) {
	store := testutil.NewStore()
	seedTemplate(store, &domain.ItemTemplate{ItemID: "wood_plank", Name: "Wood Plank", Category: domain.CategoryComponent})
	seedTemplate(store, &domain.ItemTemplate{ItemID: "focus_potion", Name: "Focus Potion", Category: domain.CategoryConsumable, Rarity: domain.RarityRare})
	seedStack(store, 1, "wood_plank", 4)
	seedStack(store, 1, "focus_potion", 2)
	uc := newTestUseCase(store)

	items, err := uc.List(1, domain.InventoryFilter{Category: "component"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "wood_plank", items[0].ItemID)

	items, err = uc.List(1, domain.InventoryFilter{Rarity: "rare"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "focus_potion", items[0].ItemID)

	items, err = uc.List(1, domain.InventoryFilter{Search: "potion"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "focus_potion", items[0].ItemID)
}

func TestGetItem(t *testing.T) {
	store := testutil.NewStore()
	seedTemplate(store, &domain.ItemTemplate{ItemID: "wood_plank", Name: "Wood Plank", Category: domain.CategoryComponent})
	seedStack(store, 1, "wood_plank", 4)
	uc := newTestUseCase(store)

	item, err := uc.GetItem(1, "wood_plank")
	require.NoError(t, err)
	assert.Equal(t, "Wood Plank", item.Name)
	assert.Equal(t, int64(4), item.Quantity)

	_, err = uc.GetItem(2, "wood_plank")
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeItemNotFound, appErr.Code)
}

func TestUseItemConsumesAndReportsEffect(t *testing.T) {
	store := testutil.NewStore()
	seedTemplate(store, &domain.ItemTemplate{
		ItemID:    "focus_potion",
		Name:      "Focus Potion",
		Category:  domain.CategoryConsumable,
		Usable:    true,
		UseEffect: &domain.UseEffect{Type: "xp_multiplier", Value: 2.0, Duration: 30},
	})
	stack := seedStack(store, 1, "focus_potion", 3)
	uc := newTestUseCase(store)

	result, err := uc.UseItem(1, "focus_potion", 2)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.RemainingQuantity)
	require.NotNil(t, result.Effect)
	assert.Equal(t, "xp_multiplier", result.Effect.Type)
	assert.NotNil(t, stack.LastUsedAt)
}

func TestUseItemDeletesEmptyStack(t *testing.T) {
	store := testutil.NewStore()
	seedTemplate(store, &domain.ItemTemplate{ItemID: "focus_potion", Usable: true, Category: domain.CategoryConsumable})
	seedStack(store, 1, "focus_potion", 2)
	uc := newTestUseCase(store)

	result, err := uc.UseItem(1, "focus_potion", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.RemainingQuantity)
	assert.NotContains(t, store.Items, "1/focus_potion")
}

func TestUseItemNotUsable(t *testing.T) {
	store := testutil.NewStore()
	seedTemplate(store, &domain.ItemTemplate{ItemID: "wood_plank", Category: domain.CategoryComponent})
	seedStack(store, 1, "wood_plank", 4)
	uc := newTestUseCase(store)

	_, err := uc.UseItem(1, "wood_plank", 1)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeItemNotUsable, appErr.Code)
}

func TestUseItemNotEnough(t *testing.T) {
	store := testutil.NewStore()
	seedTemplate(store, &domain.ItemTemplate{ItemID: "focus_potion", Usable: true, Category: domain.CategoryConsumable})
	stack := seedStack(store, 1, "focus_potion", 1)
	uc := newTestUseCase(store)

	_, err := uc.UseItem(1, "focus_potion", 2)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeItemNotEnough, appErr.Code)
	assert.Equal(t, int64(1), stack.Quantity)
}

func TestDiscardItem(t *testing.T) {
	store := testutil.NewStore()
	seedTemplate(store, &domain.ItemTemplate{ItemID: "wood_plank", Category: domain.CategoryComponent})
	stack := seedStack(store, 1, "wood_plank", 4)
	uc := newTestUseCase(store)

	err := uc.DiscardItem(1, "wood_plank", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stack.Quantity)

	err = uc.DiscardItem(1, "wood_plank", 1)
	require.NoError(t, err)
	assert.NotContains(t, store.Items, "1/wood_plank")
}

func TestListTemplates(t *testing.T) {
	store := testutil.NewStore()
	seedTemplate(store, &domain.ItemTemplate{ItemID: "wood_plank", Category: domain.CategoryComponent})
	seedTemplate(store, &domain.ItemTemplate{ItemID: "focus_potion", Category: domain.CategoryConsumable})
	uc := newTestUseCase(store)

	templates, err := uc.ListTemplates("", "")
	require.NoError(t, err)
	assert.Len(t, templates, 2)

	templates, err = uc.ListTemplates("consumable", "")
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "focus_potion", templates[0].ItemID)
}
