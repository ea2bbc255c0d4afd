package app

import (
	"github.com/saviored/focuscastle/internal/http/middleware"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
