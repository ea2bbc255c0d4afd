package domain

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// UserRole distinguishes regular players from admin panel operators
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User represents a player in the system together with their
// progression summary (level, XP, lifetime counters)
type User struct {
	ID           int64    `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Email        string   `json:"email" gorm:"uniqueIndex;not null;type:varchar(255)"`
	PasswordHash string   `json:"-" gorm:"column:password_hash;type:varchar(128)"`
	Name         string   `json:"name" gorm:"type:varchar(128)"`
	Avatar       string   `json:"avatar,omitempty" gorm:"type:varchar(512)"`
	Role         UserRole `json:"role" gorm:"type:varchar(16);not null;default:'user'"`
	IsActive     bool     `json:"is_active" gorm:"not null;default:true"`

	Level                   int     `json:"level" gorm:"not null;default:1"`
	ExperiencePoints        int64   `json:"experience_points" gorm:"not null;default:0"`
	TotalFocusHours         float64 `json:"total_focus_hours" gorm:"type:numeric(12,4);not null;default:0"`
	TotalCoins              int64   `json:"total_coins" gorm:"not null;default:0"`
	LastClaimedFocusMinutes int64   `json:"last_claimed_focus_minutes" gorm:"not null;default:0"`
	TotalSessions           int64   `json:"total_sessions" gorm:"not null;default:0"`
	CompletedSessions       int64   `json:"completed_sessions" gorm:"not null;default:0"`

	CreatedAt time.Time      `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"not null"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name for User
func (u User) TableName() string {
	return "users"
}

// LevelForXP computes the level a given XP total corresponds to:
// floor(sqrt(xp/100)) + 1, i.e. level 1 at 0 XP, level 2 at 100 XP,
// level 3 at 400 XP, level n at 100*(n-1)^2.
func LevelForXP(xp int64) int {
	if xp <= 0 {
		return 1
	}
	return int(math.Floor(math.Sqrt(float64(xp)/100))) + 1
}

// LevelUpResult reports the outcome of an AddXP call
type LevelUpResult struct {
	NewXP     int64 `json:"newXP"`
	OldLevel  int   `json:"oldLevel"`
	NewLevel  int   `json:"newLevel"`
	LeveledUp bool  `json:"leveledUp"`
}

// AddXP credits experience points and recomputes the level.
// The level is monotonic: the formula can only ever raise it.
func (u *User) AddXP(amount int64) LevelUpResult {
	u.ExperiencePoints += amount
	oldLevel := u.Level
	if computed := LevelForXP(u.ExperiencePoints); computed > u.Level {
		u.Level = computed
	}
	return LevelUpResult{
		NewXP:     u.ExperiencePoints,
		OldLevel:  oldLevel,
		NewLevel:  u.Level,
		LeveledUp: u.Level > oldLevel,
	}
}

// UserRepository defines the interface for user data
type UserRepository interface {
	GetByID(id int64) (*User, error)
	GetByEmail(email string) (*User, error)
	Create(user *User) error
	Update(user *User) error
	List(offset, limit int) ([]*User, int64, error)
	ListRanked(orderBy string, offset, limit int) ([]*User, int64, error)
	Count() (int64, error)
	CountActive() (int64, error)
	WithTx(tx *gorm.DB) UserRepository
}

// AuthResult bundles a token with the authenticated user
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// UserUseCase defines the interface for user business logic
type UserUseCase interface {
	Register(email, password, name string) (*AuthResult, error)
	Authenticate(email, password string) (*AuthResult, error)
	GetUserInfo(userID int64) (*User, error)
}
