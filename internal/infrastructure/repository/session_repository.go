package repository

import (
	"errors"
	"time"

	"github.com/saviored/focuscastle/internal/domain"

	"gorm.io/gorm"
)

// SessionRepository implements domain.SessionRepository
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new focus session repository
func NewSessionRepository(db *gorm.DB) domain.SessionRepository {
	return &SessionRepository{db: db}
}

// GetByID retrieves a session by ID
func (r *SessionRepository) GetByID(id int64) (*domain.FocusSession, error) {
	var session domain.FocusSession
	result := r.db.Where("id = ?", id).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &session, nil
}

// Create creates a new session
func (r *SessionRepository) Create(session *domain.FocusSession) error {
	session.CreatedAt = time.Now()
	session.UpdatedAt = time.Now()
	return r.db.Create(session).Error
}

// Update updates an existing session
func (r *SessionRepository) Update(session *domain.FocusSession) error {
	session.UpdatedAt = time.Now()
	return r.db.Save(session).Error
}

// ListByUserID returns a page of the user's sessions, newest first
func (r *SessionRepository) ListByUserID(userID int64, offset, limit int) ([]*domain.FocusSession, int64, error) {
	var sessions []*domain.FocusSession
	var total int64
	if err := r.db.Model(&domain.FocusSession{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&sessions).Error
	return sessions, total, err
}

// List returns a page of all sessions, newest first
func (r *SessionRepository) List(offset, limit int) ([]*domain.FocusSession, int64, error) {
	var sessions []*domain.FocusSession
	var total int64
	if err := r.db.Model(&domain.FocusSession{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&sessions).Error
	return sessions, total, err
}

// ListCompleted returns the most recent completed sessions
func (r *SessionRepository) ListCompleted(limit int) ([]*domain.FocusSession, error) {
	var sessions []*domain.FocusSession
	err := r.db.Where("is_completed = ?", true).
		Order("created_at DESC").Limit(limit).Find(&sessions).Error
	return sessions, err
}

// Count returns the total number of sessions
func (r *SessionRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&domain.FocusSession{}).Count(&total).Error
	return total, err
}

// CountCompleted returns the number of completed sessions
func (r *SessionRepository) CountCompleted() (int64, error) {
	var total int64
	err := r.db.Model(&domain.FocusSession{}).Where("is_completed = ?", true).Count(&total).Error
	return total, err
}

// SumCompletedSeconds sums totalSeconds across completed sessions
func (r *SessionRepository) SumCompletedSeconds() (int64, error) {
	var sum *int64
	err := r.db.Model(&domain.FocusSession{}).
		Where("is_completed = ?", true).
		Select("SUM(total_seconds)").Scan(&sum).Error
	if err != nil || sum == nil {
		return 0, err
	}
	return *sum, nil
}

// WithTx returns a repository bound to the given transaction
func (r *SessionRepository) WithTx(tx *gorm.DB) domain.SessionRepository {
	return &SessionRepository{db: tx}
}
