package crafting

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

func newTestUseCase(store *testutil.Store) domain.CraftingUseCase {
	log := logger.NewLogger("test", "error")
	return NewCraftingUseCase(
		&testutil.TemplateRepo{S: store},
		&testutil.ItemRepo{S: store},
		&testutil.CastleRepo{S: store},
		store.TxManager(),
		lock.NewUserLockManager(log),
		log,
	)
}

func seedCastle(store *testutil.Store, userID, coins, wood, stones int64) *domain.Castle {
	castle := domain.NewCastle(userID)
	castle.Coins = coins
	castle.Wood = wood
	castle.Stones = stones
	_ = (&testutil.CastleRepo{S: store}).Create(castle)
	return castle
}

func seedTemplate(store *testutil.Store, itemID string, category domain.ItemCategory, recipe *domain.CraftingRecipe) *domain.ItemTemplate {
	template := &domain.ItemTemplate{
		ItemID:         itemID,
		Name:           itemID,
		Category:       category,
		Rarity:         domain.RarityCommon,
		CraftingRecipe: recipe,
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

func plankRecipe() *domain.CraftingRecipe {
	return &domain.CraftingRecipe{
		Components:     []domain.RecipeComponent{{ItemID: "wood", Quantity: 5}},
		ResultQuantity: 1,
	}
}

func TestCraftFromResources(t *testing.T) {
	store := testutil.NewStore()
	castle := seedCastle(store, 1, 0, 20, 0)
	seedTemplate(store, "wood_plank", domain.CategoryComponent, plankRecipe())
	uc := newTestUseCase(store)

	result, err := uc.Craft(1, "wood_plank", 2)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Quantity)
	assert.Equal(t, int64(2), result.TotalQuantity)
	require.Len(t, result.ConsumedComponents, 1)
	assert.Equal(t, "wood", result.ConsumedComponents[0].ItemID)
	assert.Equal(t, int64(10), result.ConsumedComponents[0].Quantity)

	assert.Equal(t, int64(10), castle.Wood)
	stack := store.Items["1/wood_plank"]
	require.NotNil(t, stack)
	assert.Equal(t, int64(2), stack.Quantity)
}

func TestCraftFromMixedComponents(t *testing.T) {
	store := testutil.NewStore()
	castle := seedCastle(store, 1, 200, 0, 0)
	seedTemplate(store, "wood_plank", domain.CategoryComponent, nil)
	seedTemplate(store, "focus_potion", domain.CategoryConsumable, &domain.CraftingRecipe{
		Components: []domain.RecipeComponent{
			{ItemID: "coins", Quantity: 100},
			{ItemID: "wood_plank", Quantity: 2},
		},
		ResultQuantity: 1,
	})
	seedStack(store, 1, "wood_plank", 2)
	uc := newTestUseCase(store)

	result, err := uc.Craft(1, "focus_potion", 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Quantity)
	assert.Equal(t, int64(100), castle.Coins)
	// The plank stack hit zero and was deleted
	assert.NotContains(t, store.Items, "1/wood_plank")
	assert.Equal(t, int64(1), store.Items["1/focus_potion"].Quantity)
}

func TestCraftStacksOntoExisting(t *testing.T) {
	store := testutil.NewStore()
	seedCastle(store, 1, 0, 10, 0)
	seedTemplate(store, "wood_plank", domain.CategoryComponent, plankRecipe())
	seedStack(store, 1, "wood_plank", 3)
	uc := newTestUseCase(store)

	result, err := uc.Craft(1, "wood_plank", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.TotalQuantity)
}

func TestCraftPreflightLeavesStateUntouched(t *testing.T) {
	store := testutil.NewStore()
	castle := seedCastle(store, 1, 200, 0, 0)
	seedTemplate(store, "wood_plank", domain.CategoryComponent, nil)
	seedTemplate(store, "focus_potion", domain.CategoryConsumable, &domain.CraftingRecipe{
		Components: []domain.RecipeComponent{
			{ItemID: "coins", Quantity: 100},
			{ItemID: "wood_plank", Quantity: 2},
		},
		ResultQuantity: 1,
	})
	seedStack(store, 1, "wood_plank", 1)
	uc := newTestUseCase(store)

	// Coins are covered, planks are not; nothing may be charged
	_, err := uc.Craft(1, "focus_potion", 1)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInsufficientComponents, appErr.Code)

	assert.Equal(t, int64(200), castle.Coins)
	assert.Equal(t, int64(1), store.Items["1/wood_plank"].Quantity)
	assert.NotContains(t, store.Items, "1/focus_potion")
}

func TestCraftAggregatesRepeatedComponents(t *testing.T) {
	store := testutil.NewStore()
	seedCastle(store, 1, 0, 0, 0)
	seedTemplate(store, "wood_plank", domain.CategoryComponent, nil)
	seedTemplate(store, "focus_potion", domain.CategoryConsumable, &domain.CraftingRecipe{
		Components: []domain.RecipeComponent{
			{ItemID: "wood_plank", Quantity: 3},
			{ItemID: "wood_plank", Quantity: 3},
		},
		ResultQuantity: 1,
	})
	seedStack(store, 1, "wood_plank", 4)
	uc := newTestUseCase(store)

	// 3+3 planks are needed in total; 4 on hand must not pass
	_, err := uc.Craft(1, "focus_potion", 1)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInsufficientComponents, appErr.Code)

	assert.Equal(t, int64(4), store.Items["1/wood_plank"].Quantity)
	assert.NotContains(t, store.Items, "1/focus_potion")
}

func TestCraftConsumesRepeatedComponentsOnce(t *testing.T) {
	store := testutil.NewStore()
	seedCastle(store, 1, 0, 0, 0)
	seedTemplate(store, "wood_plank", domain.CategoryComponent, nil)
	seedTemplate(store, "focus_potion", domain.CategoryConsumable, &domain.CraftingRecipe{
		Components: []domain.RecipeComponent{
			{ItemID: "wood_plank", Quantity: 3},
			{ItemID: "wood_plank", Quantity: 3},
		},
		ResultQuantity: 1,
	})
	seedStack(store, 1, "wood_plank", 7)
	uc := newTestUseCase(store)

	result, err := uc.Craft(1, "focus_potion", 1)
	require.NoError(t, err)

	require.Len(t, result.ConsumedComponents, 1)
	assert.Equal(t, "wood_plank", result.ConsumedComponents[0].ItemID)
	assert.Equal(t, int64(6), result.ConsumedComponents[0].Quantity)
	assert.Equal(t, int64(1), store.Items["1/wood_plank"].Quantity)
}

func TestCraftUnknownItem(t *testing.T) {
	store := testutil.NewStore()
	seedCastle(store, 1, 0, 0, 0)
	uc := newTestUseCase(store)

	_, err := uc.Craft(1, "nonexistent", 1)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeItemNotFound, appErr.Code)
}

func TestCraftItemWithoutRecipe(t *testing.T) {
	store := testutil.NewStore()
	seedCastle(store, 1, 0, 0, 0)
	seedTemplate(store, "golden_banner", domain.CategoryCollectible, nil)
	uc := newTestUseCase(store)

	_, err := uc.Craft(1, "golden_banner", 1)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeRecipeNotFound, appErr.Code)
}

func TestCraftDefaultsQuantityToOne(t *testing.T) {
	store := testutil.NewStore()
	seedCastle(store, 1, 0, 5, 0)
	seedTemplate(store, "wood_plank", domain.CategoryComponent, plankRecipe())
	uc := newTestUseCase(store)

	result, err := uc.Craft(1, "wood_plank", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Quantity)
}

func TestGetComponents(t *testing.T) {
	store := testutil.NewStore()
	seedCastle(store, 1, 75, 30, 12)
	seedTemplate(store, "wood_plank", domain.CategoryComponent, nil)
	seedTemplate(store, "focus_potion", domain.CategoryConsumable, nil)
	seedStack(store, 1, "wood_plank", 4)
	seedStack(store, 1, "focus_potion", 2)
	uc := newTestUseCase(store)

	holdings, err := uc.GetComponents(1)
	require.NoError(t, err)

	assert.Equal(t, int64(75), holdings.Resources.Coins)
	assert.Equal(t, int64(30), holdings.Resources.Wood)
	assert.Equal(t, int64(12), holdings.Resources.Stones)

	// Only component-category stacks are listed as materials
	require.Len(t, holdings.Materials, 1)
	assert.Equal(t, "wood_plank", holdings.Materials[0].ItemID)
	assert.Equal(t, int64(4), holdings.Materials[0].Quantity)
}

func TestGetComponentsWithoutCastle(t *testing.T) {
	store := testutil.NewStore()
	uc := newTestUseCase(store)

	holdings, err := uc.GetComponents(1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), holdings.Resources.Coins)
	assert.Empty(t, holdings.Materials)
}
