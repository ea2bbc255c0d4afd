package castle

import (
	"testing"

	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/lock"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"github.com/saviored/focuscastle/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(store *testutil.Store, strict bool) domain.CastleUseCase {
	log := logger.NewLogger("test", "error")
	return NewCastleUseCase(
		&testutil.CastleRepo{S: store},
		store.TxManager(),
		lock.NewUserLockManager(log),
		log,
		strict,
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

func TestGetOrCreateIsLazy(t *testing.T) {
	store := testutil.NewStore()
	uc := newTestUseCase(store, false)

	castle, err := uc.GetOrCreate(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), castle.UserID)
	assert.Equal(t, 1, castle.Level)

	again, err := uc.GetOrCreate(7)
	require.NoError(t, err)
	assert.Equal(t, castle.ID, again.ID)
}

func TestGetByUserIDMissingCastle(t *testing.T) {
	store := testutil.NewStore()
	uc := newTestUseCase(store, false)

	_, err := uc.GetByUserID(7)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeCastleNotFound, appErr.Code)
}

func TestSpendResources(t *testing.T) {
	store := testutil.NewStore()
	seedCastle(store, 1, 100, 40, 20)
	uc := newTestUseCase(store, false)

	castle, err := uc.SpendResources(1, domain.ResourceSpend{Coins: 60, Wood: 10, Stones: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(40), castle.Coins)
	assert.Equal(t, int64(30), castle.Wood)
	assert.Equal(t, int64(15), castle.Stones)
}

func TestSpendResourcesIsAllOrNothing(t *testing.T) {
	store := testutil.NewStore()
	castle := seedCastle(store, 1, 100, 40, 0)
	uc := newTestUseCase(store, false)

	// Coins and wood are covered, stones are not
	_, err := uc.SpendResources(1, domain.ResourceSpend{Coins: 60, Wood: 10, Stones: 5})
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInsufficientResources, appErr.Code)

	assert.Equal(t, int64(100), castle.Coins)
	assert.Equal(t, int64(40), castle.Wood)
}

func TestSpendResourcesRejectsNegative(t *testing.T) {
	store := testutil.NewStore()
	seedCastle(store, 1, 100, 40, 20)
	uc := newTestUseCase(store, false)

	_, err := uc.SpendResources(1, domain.ResourceSpend{Coins: -1})
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidRange, appErr.Code)
}

func TestSpendResourcesRecordsPurchase(t *testing.T) {
	store := testutil.NewStore()
	seedCastle(store, 1, 300, 0, 0)
	uc := newTestUseCase(store, false)

	castle, err := uc.SpendResources(1, domain.ResourceSpend{Coins: 250, ItemID: "stone_tower"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), castle.Inventory["stone_tower"])

	castle, err = uc.SpendResources(1, domain.ResourceSpend{Coins: 50, ItemID: "stone_tower"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), castle.Inventory["stone_tower"])
}

func TestUpdateLayoutReturnsUnplacedToStock(t *testing.T) {
	store := testutil.NewStore()
	castle := seedCastle(store, 1, 0, 0, 0)
	castle.Layout = []domain.Placement{
		{ItemID: "stone_tower", X: 1, Y: 1},
		{ItemID: "stone_tower", X: 2, Y: 2},
		{ItemID: "golden_banner", X: 3, Y: 3},
	}
	castle.Inventory = map[string]int64{"stone_tower": 1}
	uc := newTestUseCase(store, false)

	// Place only one tower; the other two and the banner return to stock
	updated, err := uc.UpdateLayout(1, domain.LayoutUpdate{
		Layout: []domain.Placement{{ItemID: "stone_tower", X: 5, Y: 5}},
	})
	require.NoError(t, err)
	assert.Len(t, updated.Layout, 1)
	assert.Equal(t, int64(2), updated.Inventory["stone_tower"])
	assert.Equal(t, int64(1), updated.Inventory["golden_banner"])
}

func TestUpdateLayoutIsIdempotent(t *testing.T) {
	store := testutil.NewStore()
	castle := seedCastle(store, 1, 0, 0, 0)
	castle.Inventory = map[string]int64{"stone_tower": 2}
	uc := newTestUseCase(store, false)

	layout := domain.LayoutUpdate{
		Layout: []domain.Placement{{ItemID: "stone_tower", X: 5, Y: 5}},
	}

	first, err := uc.UpdateLayout(1, layout)
	require.NoError(t, err)
	second, err := uc.UpdateLayout(1, layout)
	require.NoError(t, err)

	assert.Equal(t, first.Inventory, second.Inventory)
	assert.Equal(t, int64(1), second.Inventory["stone_tower"])
}

func TestUpdateLayoutStrictRejectsOverflow(t *testing.T) {
	store := testutil.NewStore()
	castle := seedCastle(store, 1, 0, 0, 0)
	castle.Inventory = map[string]int64{"stone_tower": 1}
	uc := newTestUseCase(store, true)

	_, err := uc.UpdateLayout(1, domain.LayoutUpdate{
		Layout: []domain.Placement{
			{ItemID: "stone_tower", X: 1, Y: 1},
			{ItemID: "stone_tower", X: 2, Y: 2},
		},
	})
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeLayoutOverflow, appErr.Code)
	assert.Empty(t, castle.Layout)
}

func TestUpdateLayoutStrictRejectsUnownedItem(t *testing.T) {
	store := testutil.NewStore()
	seedCastle(store, 1, 0, 0, 0)
	uc := newTestUseCase(store, true)

	_, err := uc.UpdateLayout(1, domain.LayoutUpdate{
		Layout: []domain.Placement{{ItemID: "golden_banner", X: 1, Y: 1}},
	})
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeLayoutOverflow, appErr.Code)
}

func TestUpdateLayoutPermissiveClampsOverflow(t *testing.T) {
	store := testutil.NewStore()
	castle := seedCastle(store, 1, 0, 0, 0)
	castle.Inventory = map[string]int64{"stone_tower": 1}
	uc := newTestUseCase(store, false)

	updated, err := uc.UpdateLayout(1, domain.LayoutUpdate{
		Layout: []domain.Placement{
			{ItemID: "stone_tower", X: 1, Y: 1},
			{ItemID: "stone_tower", X: 2, Y: 2},
		},
	})
	require.NoError(t, err)
	assert.Len(t, updated.Layout, 2)
	assert.NotContains(t, updated.Inventory, "stone_tower")
}

func TestLevelUp(t *testing.T) {
	store := testutil.NewStore()
	user := &domain.User{Email: "student@example.com", Level: 1, IsActive: true}
	_ = (&testutil.UserRepo{S: store}).Create(user)
	seedCastle(store, user.ID, 120, 60, 60)
	uc := newTestUseCase(store, false)

	castle, err := uc.LevelUp(user.ID)
	require.NoError(t, err)

	// Requirements at level 1 are 100 coins / 50 stones / 30 wood
	assert.Equal(t, 2, castle.Level)
	assert.Equal(t, int64(20), castle.Coins)
	assert.Equal(t, int64(30), castle.Wood)
	assert.Equal(t, int64(10), castle.Stones)
	assert.Equal(t, int64(120), castle.LevelRequirements.Coins)

	// The castle level carries over to the user's profile
	assert.Equal(t, 2, user.Level)
}

func TestLevelUpShortOnResources(t *testing.T) {
	store := testutil.NewStore()
	user := &domain.User{Email: "student@example.com", Level: 1, IsActive: true}
	_ = (&testutil.UserRepo{S: store}).Create(user)
	castle := seedCastle(store, user.ID, 99, 60, 60)
	uc := newTestUseCase(store, false)

	_, err := uc.LevelUp(user.ID)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInsufficientResources, appErr.Code)
	assert.Equal(t, 1, castle.Level)
	assert.Equal(t, 1, user.Level)
}
