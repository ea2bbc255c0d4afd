package app

import (
	"github.com/saviored/focuscastle/internal/config"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
