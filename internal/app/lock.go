package app

import (
	"github.com/saviored/focuscastle/internal/infrastructure/lock"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
)

func (a *application) InitUserLockManager(log *logger.Logger) *lock.UserLockManager {
	return lock.NewUserLockManager(log)
}
