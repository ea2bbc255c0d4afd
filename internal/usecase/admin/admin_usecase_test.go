package admin

import (
	"testing"
	"time"

	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"github.com/saviored/focuscastle/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(store *testutil.Store) domain.AdminUseCase {
	return NewAdminUseCase(
		&testutil.UserRepo{S: store},
		&testutil.SessionRepo{S: store},
		&testutil.CastleRepo{S: store},
		&testutil.ChestRepo{S: store},
		&testutil.SettingRepo{S: store},
		logger.NewLogger("test", "error"),
	)
}

func TestDashboardStats(t *testing.T) {
	store := testutil.NewStore()
	users := &testutil.UserRepo{S: store}
	_ = users.Create(&domain.User{Email: "a@example.com", IsActive: true})
	_ = users.Create(&domain.User{Email: "b@example.com", IsActive: false})

	sessions := &testutil.SessionRepo{S: store}
	_ = sessions.Create(&domain.FocusSession{UserID: 1, IsCompleted: true, TotalSeconds: 5400})
	_ = sessions.Create(&domain.FocusSession{UserID: 1, IsRunning: true})

	_ = (&testutil.CastleRepo{S: store}).Create(domain.NewCastle(1))
	_ = (&testutil.ChestRepo{S: store}).Create(&domain.TreasureChest{UserID: 1})

	uc := newTestUseCase(store)
	stats, err := uc.DashboardStats()
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.ActiveUsers)
	assert.Equal(t, int64(2), stats.TotalFocusSessions)
	assert.Equal(t, int64(1), stats.CompletedSessions)
	assert.InDelta(t, 1.5, stats.TotalFocusHours, 0.0001)
	assert.Equal(t, int64(1), stats.TotalCastles)
	assert.Equal(t, int64(1), stats.TotalTreasureChests)
}

func TestRecentActivity(t *testing.T) {
	store := testutil.NewStore()
	_ = (&testutil.UserRepo{S: store}).Create(&domain.User{Email: "a@example.com", Name: "Alice", IsActive: true})

	end := time.Now()
	sessions := &testutil.SessionRepo{S: store}
	_ = sessions.Create(&domain.FocusSession{UserID: 1, IsCompleted: true, TotalSeconds: 1500, EarnedCoins: 25, EndTime: &end})
	_ = sessions.Create(&domain.FocusSession{UserID: 1, IsRunning: true})

	uc := newTestUseCase(store)
	entries, err := uc.RecentActivity(10)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "Alice", entries[0].User)
	assert.Equal(t, "session_completed", entries[0].Action)
	assert.Equal(t, "25 min focus, 25 coins", entries[0].Details)
}

func TestChestStats(t *testing.T) {
	store := testutil.NewStore()
	chests := &testutil.ChestRepo{S: store}
	_ = chests.Create(&domain.TreasureChest{UserID: 1})
	_ = chests.Create(&domain.TreasureChest{UserID: 2, IsUnlocked: true})
	_ = chests.Create(&domain.TreasureChest{UserID: 3, IsUnlocked: true, IsClaimed: true})

	uc := newTestUseCase(store)
	stats, err := uc.ChestStats()
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Unlocked)
	assert.Equal(t, int64(1), stats.Claimed)
	assert.Equal(t, int64(1), stats.Locked)
}

func TestListUsersNormalizesPaging(t *testing.T) {
	store := testutil.NewStore()
	users := &testutil.UserRepo{S: store}
	for i := 0; i < 3; i++ {
		_ = users.Create(&domain.User{Email: "user@example.com", IsActive: true})
	}

	uc := newTestUseCase(store)
	listed, pagination, err := uc.ListUsers(0, -5)
	require.NoError(t, err)

	assert.Len(t, listed, 3)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 20, pagination.Limit)
}

func TestPutSettingValidatesChestKeys(t *testing.T) {
	store := testutil.NewStore()
	uc := newTestUseCase(store)

	setting, err := uc.PutSetting(domain.SettingChestRewardCoins, " 200 ", "coin payout", 1)
	require.NoError(t, err)
	assert.Equal(t, "200", setting.Value)
	require.NotNil(t, setting.UpdatedBy)
	assert.Equal(t, int64(1), *setting.UpdatedBy)

	_, err = uc.PutSetting(domain.SettingChestRewardCoins, "lots", "", 1)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidFormat, appErr.Code)

	_, err = uc.PutSetting(domain.SettingChestUnlockMinutes, "0", "", 1)
	appErr, ok = domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidRange, appErr.Code)

	_, err = uc.PutSetting("  ", "x", "", 1)
	appErr, ok = domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeRequiredField, appErr.Code)
}

func TestPutSettingUpsertsFreeformKeys(t *testing.T) {
	store := testutil.NewStore()
	uc := newTestUseCase(store)

	_, err := uc.PutSetting("motd", "welcome", "message of the day", 1)
	require.NoError(t, err)

	updated, err := uc.PutSetting("motd", "hello again", "", 2)
	require.NoError(t, err)
	assert.Equal(t, "hello again", updated.Value)

	settings, err := uc.ListSettings()
	require.NoError(t, err)
	assert.Len(t, settings, 1)
}
