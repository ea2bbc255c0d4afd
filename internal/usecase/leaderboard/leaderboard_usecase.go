package leaderboard

import (
	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
)

// LeaderboardUseCase implements domain.LeaderboardUseCase
type LeaderboardUseCase struct {
	users  domain.UserRepository
	logger *logger.Logger
}

// NewLeaderboardUseCase creates a new leaderboard usecase
func NewLeaderboardUseCase(users domain.UserRepository, logger *logger.Logger) domain.LeaderboardUseCase {
	return &LeaderboardUseCase{users: users, logger: logger}
}

// Entries returns one ranked page. The global board orders by lifetime
// focus hours, the school board by experience points. Ranks are
// absolute positions, continuing across pages.
func (uc *LeaderboardUseCase) Entries(board string, page, limit int) ([]*domain.LeaderboardEntry, *domain.Pagination, error) {
	var orderBy string
	switch board {
	case domain.LeaderboardGlobal:
		orderBy = "total_focus_hours"
	case domain.LeaderboardSchool:
		orderBy = "experience_points"
	default:
		return nil, nil, domain.NewAppError(domain.ErrCodeInvalidFormat, "Unknown leaderboard", 400, nil)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	offset := (page - 1) * limit
	users, total, err := uc.users.ListRanked(orderBy, offset, limit)
	if err != nil {
		return nil, nil, domain.NewDatabaseError("list ranked users", err)
	}

	entries := make([]*domain.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, &domain.LeaderboardEntry{
			Rank:          offset + i + 1,
			UserID:        u.ID,
			Name:          u.Name,
			Email:         u.Email,
			Avatar:        u.Avatar,
			Level:         u.Level,
			Coins:         u.TotalCoins,
			ProgressHours: u.TotalFocusHours,
			UpdatedAt:     u.UpdatedAt,
		})
	}
	return entries, domain.NewPagination(page, limit, total), nil
}
