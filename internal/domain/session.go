package domain

import (
	"time"

	"gorm.io/gorm"
)

// FocusSession is one timed study attempt. Lifecycle:
// created(running) -> {paused <-> running} -> completed(terminal).
// Completion is the only event that issues rewards.
type FocusSession struct {
	ID              int64      `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	UserID          int64      `json:"user_id" gorm:"index;not null;type:bigint"`
	DurationMinutes int        `json:"duration_minutes" gorm:"not null"`
	StartTime       time.Time  `json:"start_time" gorm:"not null"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	TotalSeconds    int64      `json:"total_seconds" gorm:"not null;default:0"`
	IsRunning       bool       `json:"is_running" gorm:"not null;default:false"`
	IsPaused        bool       `json:"is_paused" gorm:"not null;default:false"`
	FocusLost       bool       `json:"focus_lost" gorm:"not null;default:false"`
	IsCompleted     bool       `json:"is_completed" gorm:"not null;default:false"`

	EarnedCoins  int64 `json:"earned_coins" gorm:"not null;default:0"`
	EarnedStones int64 `json:"earned_stones" gorm:"not null;default:0"`
	EarnedWood   int64 `json:"earned_wood" gorm:"not null;default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for FocusSession
func (s FocusSession) TableName() string {
	return "focus_sessions"
}

// SessionRewards is what a completed session paid out
type SessionRewards struct {
	Coins   int64         `json:"coins"`
	Stones  int64         `json:"stones"`
	Wood    int64         `json:"wood"`
	XP      int64         `json:"xp"`
	LevelUp LevelUpResult `json:"levelUp"`
}

// SessionUpdate is a partial patch of a running session
type SessionUpdate struct {
	TotalSeconds *int64
	IsPaused     *bool
	IsRunning    *bool
	FocusLost    *bool
}

// SessionRepository defines the interface for focus session data
type SessionRepository interface {
	GetByID(id int64) (*FocusSession, error)
	Create(session *FocusSession) error
	Update(session *FocusSession) error
	ListByUserID(userID int64, offset, limit int) ([]*FocusSession, int64, error)
	List(offset, limit int) ([]*FocusSession, int64, error)
	ListCompleted(limit int) ([]*FocusSession, error)
	Count() (int64, error)
	CountCompleted() (int64, error)
	SumCompletedSeconds() (int64, error)
	WithTx(tx *gorm.DB) SessionRepository
}

// SessionUseCase defines the interface for the session state machine
type SessionUseCase interface {
	Start(userID int64, durationMinutes int) (*FocusSession, error)
	Get(userID, sessionID int64) (*FocusSession, error)
	List(userID int64, page, limit int) ([]*FocusSession, *Pagination, error)
	Update(userID, sessionID int64, update SessionUpdate) (*FocusSession, error)
	Complete(userID, sessionID int64, reportedSeconds *int64) (*FocusSession, *SessionRewards, error)
}

// Pagination is the standard list envelope
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination derives the envelope from a total row count
func NewPagination(page, limit int, total int64) *Pagination {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return &Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
