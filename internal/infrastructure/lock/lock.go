package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const acquireTimeout = 5 * time.Second

// UserLockManager serializes mutating operations per user. Every
// economy mutation (claim, spend, craft, level-up, session completion)
// takes the owner's lock before opening its database transaction, so
// two racing requests for the same user cannot interleave their
// read-modify-write steps.
type UserLockManager struct {
	locks  sync.Map // map[int64]*sync.Mutex
	logger *logger.Logger
}

// NewUserLockManager creates a new lock manager
func NewUserLockManager(logger *logger.Logger) *UserLockManager {
	return &UserLockManager{logger: logger}
}

// Lock acquires the lock for the given userID with a timeout
func (m *UserLockManager) Lock(ctx context.Context, userID int64) error {
	mu := m.getOrCreateMutex(userID)

	// The goroutine eventually acquires the mutex even when the waiter
	// has already given up; it must release it again in that case, or
	// the user's lock would stay held forever.
	acquired := make(chan struct{})
	abandoned := make(chan struct{})
	go func() {
		mu.Lock()
		select {
		case acquired <- struct{}{}:
		case <-abandoned:
			mu.Unlock()
		}
	}()

	select {
	case <-acquired:
		m.logger.Debug("Acquired user lock", zap.Int64("userID", userID))
		return nil
	case <-ctx.Done():
		close(abandoned)
		m.logger.Error("Failed to acquire user lock: context cancelled", zap.Int64("userID", userID), zap.Error(ctx.Err()))
		return fmt.Errorf("failed to acquire lock for user %d: %w", userID, ctx.Err())
	case <-time.After(acquireTimeout):
		close(abandoned)
		m.logger.Error("Failed to acquire user lock: timeout", zap.Int64("userID", userID), zap.Duration("timeout", acquireTimeout))
		return fmt.Errorf("failed to acquire lock for user %d: timeout", userID)
	}
}

// Unlock releases the lock for the given userID
func (m *UserLockManager) Unlock(userID int64) {
	muInterface, ok := m.locks.Load(userID)
	if !ok {
		m.logger.Warn("No lock found during unlock", zap.Int64("userID", userID))
		return
	}
	muInterface.(*sync.Mutex).Unlock()
	m.logger.Debug("Released user lock", zap.Int64("userID", userID))
}

// TryLock attempts to acquire a lock without blocking
func (m *UserLockManager) TryLock(userID int64) bool {
	return m.getOrCreateMutex(userID).TryLock()
}

func (m *UserLockManager) getOrCreateMutex(userID int64) *sync.Mutex {
	if mu, ok := m.locks.Load(userID); ok {
		return mu.(*sync.Mutex)
	}
	actual, _ := m.locks.LoadOrStore(userID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
