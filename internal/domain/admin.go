package domain

import "time"

// DashboardStats is the admin panel's aggregate view
type DashboardStats struct {
	TotalUsers         int64   `json:"totalUsers"`
	ActiveUsers        int64   `json:"activeUsers"`
	TotalFocusSessions int64   `json:"totalFocusSessions"`
	CompletedSessions  int64   `json:"completedSessions"`
	TotalFocusHours    float64 `json:"totalFocusHours"`
	TotalCastles       int64   `json:"totalCastles"`
	TotalTreasureChests int64  `json:"totalTreasureChests"`
}

// ActivityEntry is one row of the recent-activity feed
type ActivityEntry struct {
	ID      int64     `json:"id"`
	User    string    `json:"user"`
	Action  string    `json:"action"`
	Details string    `json:"details"`
	Time    time.Time `json:"time"`
}

// LeaderboardEntry is one ranked row of a leaderboard page
type LeaderboardEntry struct {
	Rank          int       `json:"rank"`
	UserID        int64     `json:"userId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Avatar        string    `json:"avatar,omitempty"`
	Level         int       `json:"level"`
	Coins         int64     `json:"coins"`
	ProgressHours float64   `json:"progressHours"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Leaderboard ranking keys
const (
	LeaderboardGlobal = "global" // ranked by total focus hours
	LeaderboardSchool = "school" // ranked by experience points
)

// LeaderboardUseCase serves ranked user pages
type LeaderboardUseCase interface {
	Entries(board string, page, limit int) ([]*LeaderboardEntry, *Pagination, error)
}

// AdminUseCase is the admin panel's read/settings surface
type AdminUseCase interface {
	DashboardStats() (*DashboardStats, error)
	RecentActivity(limit int) ([]*ActivityEntry, error)
	ListUsers(page, limit int) ([]*User, *Pagination, error)
	ListSessions(page, limit int) ([]*FocusSession, *Pagination, error)
	ListCastles(page, limit int) ([]*Castle, *Pagination, error)
	ListChests(page, limit int) ([]*TreasureChest, *Pagination, error)
	ChestStats() (*ChestStats, error)
	ListSettings() ([]*Setting, error)
	PutSetting(key, value, description string, updatedBy int64) (*Setting, error)
}
