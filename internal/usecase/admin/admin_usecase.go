package admin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// AdminUseCase implements domain.AdminUseCase
type AdminUseCase struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
	castles  domain.CastleRepository
	chests   domain.ChestRepository
	settings domain.SettingRepository
	logger   *logger.Logger
}

// NewAdminUseCase creates a new admin usecase
func NewAdminUseCase(
	users domain.UserRepository,
	sessions domain.SessionRepository,
	castles domain.CastleRepository,
	chests domain.ChestRepository,
	settings domain.SettingRepository,
	logger *logger.Logger,
) domain.AdminUseCase {
	return &AdminUseCase{
		users:    users,
		sessions: sessions,
		castles:  castles,
		chests:   chests,
		settings: settings,
		logger:   logger,
	}
}

// DashboardStats aggregates the platform-wide counters
func (uc *AdminUseCase) DashboardStats() (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}
	var err error

	if stats.TotalUsers, err = uc.users.Count(); err != nil {
		return nil, domain.NewDatabaseError("count users", err)
	}
	if stats.ActiveUsers, err = uc.users.CountActive(); err != nil {
		return nil, domain.NewDatabaseError("count active users", err)
	}
	if stats.TotalFocusSessions, err = uc.sessions.Count(); err != nil {
		return nil, domain.NewDatabaseError("count sessions", err)
	}
	if stats.CompletedSessions, err = uc.sessions.CountCompleted(); err != nil {
		return nil, domain.NewDatabaseError("count completed sessions", err)
	}
	seconds, err := uc.sessions.SumCompletedSeconds()
	if err != nil {
		return nil, domain.NewDatabaseError("sum completed seconds", err)
	}
	stats.TotalFocusHours = float64(seconds) / 3600
	if stats.TotalCastles, err = uc.castles.Count(); err != nil {
		return nil, domain.NewDatabaseError("count castles", err)
	}
	if stats.TotalTreasureChests, err = uc.chests.Count(); err != nil {
		return nil, domain.NewDatabaseError("count chests", err)
	}
	return stats, nil
}

// RecentActivity builds a feed from the latest completed sessions
func (uc *AdminUseCase) RecentActivity(limit int) ([]*domain.ActivityEntry, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	sessions, err := uc.sessions.ListCompleted(limit)
	if err != nil {
		return nil, domain.NewDatabaseError("list completed sessions", err)
	}

	entries := make([]*domain.ActivityEntry, 0, len(sessions))
	names := map[int64]string{}
	for _, s := range sessions {
		name, ok := names[s.UserID]
		if !ok {
			user, err := uc.users.GetByID(s.UserID)
			if err != nil {
				return nil, domain.NewDatabaseError("get user", err)
			}
			name = "unknown"
			if user != nil {
				name = user.Name
			}
			names[s.UserID] = name
		}
		when := s.CreatedAt
		if s.EndTime != nil {
			when = *s.EndTime
		}
		entries = append(entries, &domain.ActivityEntry{
			ID:      s.ID,
			User:    name,
			Action:  "session_completed",
			Details: fmt.Sprintf("%d min focus, %d coins", s.TotalSeconds/60, s.EarnedCoins),
			Time:    when,
		})
	}
	return entries, nil
}

// ListUsers returns a page of all users
func (uc *AdminUseCase) ListUsers(page, limit int) ([]*domain.User, *domain.Pagination, error) {
	page, limit = normalizePage(page, limit)
	users, total, err := uc.users.List((page-1)*limit, limit)
	if err != nil {
		return nil, nil, domain.NewDatabaseError("list users", err)
	}
	return users, domain.NewPagination(page, limit, total), nil
}

// ListSessions returns a page of all focus sessions
func (uc *AdminUseCase) ListSessions(page, limit int) ([]*domain.FocusSession, *domain.Pagination, error) {
	page, limit = normalizePage(page, limit)
	sessions, total, err := uc.sessions.List((page-1)*limit, limit)
	if err != nil {
		return nil, nil, domain.NewDatabaseError("list sessions", err)
	}
	return sessions, domain.NewPagination(page, limit, total), nil
}

// ListCastles returns a page of all castles
func (uc *AdminUseCase) ListCastles(page, limit int) ([]*domain.Castle, *domain.Pagination, error) {
	page, limit = normalizePage(page, limit)
	castles, total, err := uc.castles.List((page-1)*limit, limit)
	if err != nil {
		return nil, nil, domain.NewDatabaseError("list castles", err)
	}
	return castles, domain.NewPagination(page, limit, total), nil
}

// ListChests returns a page of all treasure chests
func (uc *AdminUseCase) ListChests(page, limit int) ([]*domain.TreasureChest, *domain.Pagination, error) {
	page, limit = normalizePage(page, limit)
	chests, total, err := uc.chests.List((page-1)*limit, limit)
	if err != nil {
		return nil, nil, domain.NewDatabaseError("list chests", err)
	}
	return chests, domain.NewPagination(page, limit, total), nil
}

// ChestStats summarizes chest states across all users
func (uc *AdminUseCase) ChestStats() (*domain.ChestStats, error) {
	stats := &domain.ChestStats{}
	var err error
	if stats.Total, err = uc.chests.Count(); err != nil {
		return nil, domain.NewDatabaseError("count chests", err)
	}
	if stats.Unlocked, err = uc.chests.CountUnlocked(); err != nil {
		return nil, domain.NewDatabaseError("count unlocked chests", err)
	}
	if stats.Claimed, err = uc.chests.CountClaimed(); err != nil {
		return nil, domain.NewDatabaseError("count claimed chests", err)
	}
	stats.Locked = stats.Total - stats.Unlocked
	return stats, nil
}

// ListSettings returns all tunable settings
func (uc *AdminUseCase) ListSettings() ([]*domain.Setting, error) {
	settings, err := uc.settings.List()
	if err != nil {
		return nil, domain.NewDatabaseError("list settings", err)
	}
	return settings, nil
}

// PutSetting creates or updates a setting. Numeric keys must carry a
// non-negative integer value.
func (uc *AdminUseCase) PutSetting(key, value, description string, updatedBy int64) (*domain.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Setting key is required", 400, nil)
	}

	switch key {
	case domain.SettingChestUnlockMinutes,
		domain.SettingChestRewardCoins,
		domain.SettingChestRewardWood,
		domain.SettingChestRewardStone:
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil || n < 0 {
			return nil, domain.NewAppError(domain.ErrCodeInvalidFormat, "Setting value must be a non-negative integer", 400, nil)
		}
		if key == domain.SettingChestUnlockMinutes && n < 1 {
			return nil, domain.NewAppError(domain.ErrCodeInvalidRange, "Unlock minutes must be at least 1", 400, nil)
		}
		value = strconv.FormatInt(n, 10)
	}

	setting := &domain.Setting{
		Key:         key,
		Value:       value,
		Description: description,
		UpdatedBy:   &updatedBy,
	}
	if err := uc.settings.Upsert(setting); err != nil {
		return nil, domain.NewDatabaseError("upsert setting", err)
	}

	uc.logger.Info("Setting updated",
		zap.String("key", key),
		zap.String("value", value),
		zap.Int64("updated_by", updatedBy))
	return setting, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
