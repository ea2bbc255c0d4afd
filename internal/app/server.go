package app

import (
	"github.com/saviored/focuscastle/internal/http"
	"github.com/saviored/focuscastle/internal/http/handlers"
	"github.com/saviored/focuscastle/internal/http/middleware"
	"github.com/saviored/focuscastle/internal/infrastructure/auth"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	userHandler *handlers.UserHandler,
	sessionHandler *handlers.SessionHandler,
	chestHandler *handlers.ChestHandler,
	castleHandler *handlers.CastleHandler,
	inventoryHandler *handlers.InventoryHandler,
	componentHandler *handlers.ComponentHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	adminHandler *handlers.AdminHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(
		jwtService,
		userHandler,
		sessionHandler,
		chestHandler,
		castleHandler,
		inventoryHandler,
		componentHandler,
		leaderboardHandler,
		adminHandler,
		errorHandler,
		log,
		port,
	)
}
