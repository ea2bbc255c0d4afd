package session

import (
	"context"
	"time"

	"github.com/saviored/focuscastle/internal/domain"
	"github.com/saviored/focuscastle/internal/infrastructure/lock"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Chest progress gained per completed session, in percentage points
const chestProgressPerSession = 5

// SessionUseCase implements domain.SessionUseCase
type SessionUseCase struct {
	sessions domain.SessionRepository
	txm      domain.TxManager
	locks    *lock.UserLockManager
	logger   *logger.Logger
}

// NewSessionUseCase creates a new focus session usecase
func NewSessionUseCase(
	sessions domain.SessionRepository,
	txm domain.TxManager,
	locks *lock.UserLockManager,
	logger *logger.Logger,
) domain.SessionUseCase {
	return &SessionUseCase{
		sessions: sessions,
		txm:      txm,
		locks:    locks,
		logger:   logger,
	}
}

// Start creates a new running session
func (uc *SessionUseCase) Start(userID int64, durationMinutes int) (*domain.FocusSession, error) {
	if durationMinutes < 1 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidRange, "Duration must be at least 1 minute", 400, nil)
	}

	session := &domain.FocusSession{
		UserID:          userID,
		DurationMinutes: durationMinutes,
		StartTime:       time.Now(),
		IsRunning:       true,
	}
	if err := uc.sessions.Create(session); err != nil {
		return nil, domain.NewDatabaseError("create session", err)
	}

	uc.logger.Info("Focus session started",
		zap.Int64("user_id", userID),
		zap.Int64("session_id", session.ID),
		zap.Int("duration_minutes", durationMinutes))
	return session, nil
}

// Get retrieves one of the caller's sessions
func (uc *SessionUseCase) Get(userID, sessionID int64) (*domain.FocusSession, error) {
	return uc.getOwned(uc.sessions, userID, sessionID)
}

// List returns a page of the caller's sessions, newest first
func (uc *SessionUseCase) List(userID int64, page, limit int) ([]*domain.FocusSession, *domain.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	sessions, total, err := uc.sessions.ListByUserID(userID, (page-1)*limit, limit)
	if err != nil {
		return nil, nil, domain.NewDatabaseError("list sessions", err)
	}
	return sessions, domain.NewPagination(page, limit, total), nil
}

// Update applies a partial patch to a session. No business rules run
// here; the patch just mirrors the client's timer state.
func (uc *SessionUseCase) Update(userID, sessionID int64, update domain.SessionUpdate) (*domain.FocusSession, error) {
	session, err := uc.getOwned(uc.sessions, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if update.TotalSeconds != nil {
		session.TotalSeconds = *update.TotalSeconds
	}
	if update.IsPaused != nil {
		session.IsPaused = *update.IsPaused
	}
	if update.IsRunning != nil {
		session.IsRunning = *update.IsRunning
	}
	if update.FocusLost != nil {
		session.FocusLost = *update.FocusLost
	}

	if err := uc.sessions.Update(session); err != nil {
		return nil, domain.NewDatabaseError("update session", err)
	}
	return session, nil
}

// Complete finishes a session and issues its rewards. This is the only
// place the economy mints currency and XP. The whole payout runs under
// the user's lock inside one transaction; repeating the call fails with
// a conflict and changes nothing.
func (uc *SessionUseCase) Complete(userID, sessionID int64, reportedSeconds *int64) (*domain.FocusSession, *domain.SessionRewards, error) {
	if err := uc.locks.Lock(context.Background(), userID); err != nil {
		return nil, nil, domain.NewInternalError("Could not serialize operation", err)
	}
	defer uc.locks.Unlock(userID)

	var (
		session *domain.FocusSession
		rewards *domain.SessionRewards
	)

	err := uc.txm.WithinTx(func(r domain.Repositories) error {
		var err error
		session, err = uc.getOwned(r.Sessions, userID, sessionID)
		if err != nil {
			return err
		}
		if session.IsCompleted {
			return domain.NewAppError(domain.ErrCodeSessionAlreadyCompleted, "Session already completed", 409, nil)
		}

		// The reported duration is client-authoritative; the wall-clock
		// delta is logged alongside so inflated reports stay visible.
		finalSeconds := session.TotalSeconds
		if reportedSeconds != nil {
			finalSeconds = *reportedSeconds
		}
		if finalSeconds < 0 {
			return domain.NewAppError(domain.ErrCodeInvalidRange, "Total seconds must not be negative", 400, nil)
		}

		minutes := finalSeconds / 60
		earned := domain.SessionRewards{
			Coins:  minutes,
			Stones: minutes / 2,
			Wood:   minutes,
			XP:     minutes * 10,
		}

		now := time.Now()
		session.IsCompleted = true
		session.IsRunning = false
		session.EndTime = &now
		session.TotalSeconds = finalSeconds
		session.EarnedCoins = earned.Coins
		session.EarnedStones = earned.Stones
		session.EarnedWood = earned.Wood
		if err := r.Sessions.Update(session); err != nil {
			return domain.NewDatabaseError("complete session", err)
		}

		user, err := r.Users.GetByID(userID)
		if err != nil {
			return domain.NewDatabaseError("get user", err)
		}
		if user == nil {
			return domain.NewAppError(domain.ErrCodeUserNotFound, "User not found", 404, nil)
		}

		user.TotalSessions++
		user.CompletedSessions++
		user.TotalFocusHours += float64(minutes) / 60
		user.TotalCoins += earned.Coins
		earned.LevelUp = user.AddXP(earned.XP)
		if err := r.Users.Update(user); err != nil {
			return domain.NewDatabaseError("update user", err)
		}

		castle, err := r.Castles.GetByUserID(userID)
		if err != nil {
			return domain.NewDatabaseError("get castle", err)
		}
		if castle == nil {
			castle = domain.NewCastle(userID)
			if err := r.Castles.Create(castle); err != nil {
				return domain.NewDatabaseError("create castle", err)
			}
		}
		castle.Coins += earned.Coins
		castle.Stones += earned.Stones
		castle.Wood += earned.Wood
		castle.CalculateProgress()
		if err := r.Castles.Update(castle); err != nil {
			return domain.NewDatabaseError("update castle", err)
		}

		if err := uc.nudgeChest(r.Chests, userID, now); err != nil {
			return err
		}

		uc.logger.Info("Focus session completed",
			zap.Int64("user_id", userID),
			zap.Int64("session_id", session.ID),
			zap.Int64("reported_seconds", finalSeconds),
			zap.Duration("wall_clock", now.Sub(session.StartTime)),
			zap.Int64("coins", earned.Coins),
			zap.Int64("stones", earned.Stones),
			zap.Int64("wood", earned.Wood),
			zap.Int64("xp", earned.XP),
			zap.Bool("leveled_up", earned.LevelUp.LeveledUp))

		rewards = &earned
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return session, rewards, nil
}

// nudgeChest advances the current chest's displayed progress by a flat
// amount per completed session, stamping the unlock on the first
// crossing of 100. The authoritative unlock state is still recomputed
// from focus minutes on every status read.
func (uc *SessionUseCase) nudgeChest(chests domain.ChestRepository, userID int64, now time.Time) error {
	chest, err := chests.GetCurrentByUserID(userID)
	if err != nil {
		return domain.NewDatabaseError("get chest", err)
	}
	if chest == nil {
		return nil
	}

	progress := chest.ProgressPercentage + chestProgressPerSession
	if progress > 100 {
		progress = 100
	}
	chest.ProgressPercentage = progress
	if progress >= 100 && !chest.IsUnlocked {
		chest.IsUnlocked = true
		chest.UnlockedAt = &now
	}
	if err := chests.Update(chest); err != nil {
		return domain.NewDatabaseError("update chest", err)
	}
	return nil
}

// getOwned fetches a session and verifies the caller owns it. Sessions
// belonging to other users are reported as not found.
func (uc *SessionUseCase) getOwned(repo domain.SessionRepository, userID, sessionID int64) (*domain.FocusSession, error) {
	session, err := repo.GetByID(sessionID)
	if err != nil {
		return nil, domain.NewDatabaseError("get session", err)
	}
	if session == nil || session.UserID != userID {
		return nil, domain.NewAppError(domain.ErrCodeSessionNotFound, "Session not found", 404, nil)
	}
	return session, nil
}
