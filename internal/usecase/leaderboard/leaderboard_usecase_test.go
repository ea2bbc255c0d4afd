package leaderboard

import (
	"fmt"
	"testing"

	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"github.com/saviored/focuscastle/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(store *testutil.Store) domain.LeaderboardUseCase {
	return NewLeaderboardUseCase(&testutil.UserRepo{S: store}, logger.NewLogger("test", "error"))
}

func seedUsers(store *testutil.Store, n int) []*domain.User {
	repo := &testutil.UserRepo{S: store}
	users := make([]*domain.User, 0, n)
	for i := 1; i <= n; i++ {
		user := &domain.User{
			Email:            fmt.Sprintf("user%d@example.com", i),
			Name:             fmt.Sprintf("User %d", i),
			Level:            1,
			IsActive:         true,
			TotalFocusHours:  float64(i),
			ExperiencePoints: int64((n - i + 1) * 100),
		}
		_ = repo.Create(user)
		users = append(users, user)
	}
	return users
}

func TestGlobalBoardOrdersByFocusHours(t *testing.T) {
	store := testutil.NewStore()
	users := seedUsers(store, 3)
	uc := newTestUseCase(store)

	entries, pagination, err := uc.Entries(domain.LeaderboardGlobal, 1, 20)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, users[2].ID, entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, users[0].ID, entries[2].UserID)
	assert.Equal(t, int64(3), pagination.Total)
}

func TestSchoolBoardOrdersByExperience(t *testing.T) {
	store := testutil.NewStore()
	users := seedUsers(store, 3)
	uc := newTestUseCase(store)

	entries, _, err := uc.Entries(domain.LeaderboardSchool, 1, 20)
	require.NoError(t, err)

	// XP is seeded in reverse of focus hours
	require.Len(t, entries, 3)
	assert.Equal(t, users[0].ID, entries[0].UserID)
}

func TestRanksAreAbsoluteAcrossPages(t *testing.T) {
	store := testutil.NewStore()
	seedUsers(store, 5)
	uc := newTestUseCase(store)

	entries, pagination, err := uc.Entries(domain.LeaderboardGlobal, 2, 2)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, 3, entries[0].Rank)
	assert.Equal(t, 4, entries[1].Rank)
	assert.Equal(t, 3, pagination.Pages)
}

func TestUnknownBoard(t *testing.T) {
	store := testutil.NewStore()
	uc := newTestUseCase(store)

	_, _, err := uc.Entries("galactic", 1, 20)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidFormat, appErr.Code)
}
