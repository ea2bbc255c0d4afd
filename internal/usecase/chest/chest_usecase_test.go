package chest

import (
	"testing"

	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/lock"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"github.com/saviored/focuscastle/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(store *testutil.Store, settings domain.SettingsProvider) domain.ChestUseCase {
	log := logger.NewLogger("test", "error")
	return NewChestUseCase(
		settings,
		store.TxManager(),
		lock.NewUserLockManager(log),
		log,
	)
}

func seedUser(store *testutil.Store, focusHours float64) *domain.User {
	user := &domain.User{
		Email:           "student@example.com",
		Name:            "Student",
		Level:           1,
		IsActive:        true,
		TotalFocusHours: focusHours,
	}
	_ = (&testutil.UserRepo{S: store}).Create(user)
	return user
}

func TestGetStatusCreatesChest(t *testing.T) {
	store := testutil.NewStore()
	user := seedUser(store, 0.5) // 30 minutes
	uc := newTestUseCase(store, &testutil.FixedSettings{})

	status, err := uc.GetStatus(user.ID)

	require.NoError(t, err)
	require.NotNil(t, status.Chest)
	assert.Equal(t, int64(30), status.TotalMinutes)
	assert.Equal(t, int64(30), status.MinutesInCurrentCycle)
	assert.Equal(t, int64(30), status.MinutesRemaining)
	assert.Equal(t, int64(60), status.UnlockMinutes)
	assert.Equal(t, 50, status.Chest.ProgressPercentage)
	assert.False(t, status.Chest.IsUnlocked)
}

func TestGetStatusMarksUnlocked(t *testing.T) {
	store := testutil.NewStore()
	user := seedUser(store, 1.5) // 90 minutes
	uc := newTestUseCase(store, &testutil.FixedSettings{})

	status, err := uc.GetStatus(user.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(0), status.MinutesRemaining)
	assert.Equal(t, 100, status.Chest.ProgressPercentage)
	assert.True(t, status.Chest.IsUnlocked)
	assert.NotNil(t, status.Chest.UnlockedAt)
}

func TestGetStatusReplacesClaimedChest(t *testing.T) {
	store := testutil.NewStore()
	user := seedUser(store, 0)
	claimed := &domain.TreasureChest{UserID: user.ID, IsClaimed: true}
	_ = (&testutil.ChestRepo{S: store}).Create(claimed)
	uc := newTestUseCase(store, &testutil.FixedSettings{})

	status, err := uc.GetStatus(user.ID)

	require.NoError(t, err)
	assert.NotEqual(t, claimed.ID, status.Chest.ID)
	assert.False(t, status.Chest.IsClaimed)
}

func TestClaimPaysOutAndCarriesOverflow(t *testing.T) {
	store := testutil.NewStore()
	user := seedUser(store, 2.5) // 150 minutes focused
	uc := newTestUseCase(store, &testutil.FixedSettings{})

	_, err := uc.GetStatus(user.ID)
	require.NoError(t, err)

	rewards, chest, err := uc.Claim(user.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(150), rewards.Coins)
	assert.Equal(t, int64(50), rewards.Wood)
	assert.Equal(t, int64(25), rewards.Stones)
	assert.True(t, chest.IsClaimed)
	assert.NotNil(t, chest.ClaimedAt)

	// One unlock window is consumed; the 90 extra minutes carry over
	assert.Equal(t, int64(60), user.LastClaimedFocusMinutes)
	assert.Equal(t, int64(150), user.TotalCoins)

	castle := store.Castles[user.ID]
	require.NotNil(t, castle)
	assert.Equal(t, int64(150), castle.Coins)
	assert.Equal(t, int64(50), castle.Wood)
	assert.Equal(t, int64(25), castle.Stones)

	// The next cycle already holds the carried minutes
	status, err := uc.GetStatus(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(90), status.MinutesInCurrentCycle)

	// The carry covers a full window, so the next chest is immediately
	// claimable
	_, _, err = uc.Claim(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(120), user.LastClaimedFocusMinutes)
	assert.Equal(t, int64(300), user.TotalCoins)
}

func TestClaimHonorsUnlockedFlagWithoutMinutes(t *testing.T) {
	store := testutil.NewStore()
	user := seedUser(store, 0)
	chest := &domain.TreasureChest{UserID: user.ID, ProgressPercentage: 100, IsUnlocked: true}
	_ = (&testutil.ChestRepo{S: store}).Create(chest)
	uc := newTestUseCase(store, &testutil.FixedSettings{})

	// No focus minutes backing, but the chest was flagged unlocked by
	// session progress; the claim pays out anyway
	rewards, claimed, err := uc.Claim(user.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(150), rewards.Coins)
	assert.True(t, claimed.IsClaimed)
	assert.Equal(t, int64(60), user.LastClaimedFocusMinutes)
}

func TestClaimLockedChest(t *testing.T) {
	store := testutil.NewStore()
	user := seedUser(store, 0.5)
	uc := newTestUseCase(store, &testutil.FixedSettings{})

	_, err := uc.GetStatus(user.ID)
	require.NoError(t, err)

	_, _, err = uc.Claim(user.ID)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeChestLocked, appErr.Code)
	assert.Equal(t, int64(0), user.TotalCoins)
}

func TestClaimWithoutChest(t *testing.T) {
	store := testutil.NewStore()
	user := seedUser(store, 2)
	uc := newTestUseCase(store, &testutil.FixedSettings{})

	_, _, err := uc.Claim(user.ID)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeChestNotFound, appErr.Code)
}

func TestClaimIsNotRepeatable(t *testing.T) {
	store := testutil.NewStore()
	user := seedUser(store, 2)
	uc := newTestUseCase(store, &testutil.FixedSettings{})

	_, err := uc.GetStatus(user.ID)
	require.NoError(t, err)

	_, _, err = uc.Claim(user.ID)
	require.NoError(t, err)

	_, _, err = uc.Claim(user.ID)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeChestAlreadyClaimed, appErr.Code)
	assert.Equal(t, int64(150), user.TotalCoins)
}

func TestClaimHonorsConfiguredWindow(t *testing.T) {
	store := testutil.NewStore()
	user := seedUser(store, 0.5) // 30 minutes
	settings := &testutil.FixedSettings{
		UnlockMinutes: 25,
		Rewards:       domain.ChestRewards{Coins: 10, Wood: 5, Stones: 1},
	}
	uc := newTestUseCase(store, settings)

	_, err := uc.GetStatus(user.ID)
	require.NoError(t, err)

	rewards, _, err := uc.Claim(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), rewards.Coins)
	assert.Equal(t, int64(25), user.LastClaimedFocusMinutes)
}
