package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saviored/focuscastle/internal/http/handlers"
	"github.com/saviored/focuscastle/internal/http/middleware"
	"github.com/saviored/focuscastle/internal/infrastructure/auth"
	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router             *gin.Engine
	jwtService         auth.JWTService
	userHandler        *handlers.UserHandler
	sessionHandler     *handlers.SessionHandler
	chestHandler       *handlers.ChestHandler
	castleHandler      *handlers.CastleHandler
	inventoryHandler   *handlers.InventoryHandler
	componentHandler   *handlers.ComponentHandler
	leaderboardHandler *handlers.LeaderboardHandler
	adminHandler       *handlers.AdminHandler
	errorHandler       *middleware.ErrorHandler
	port               string
}

// NewServer creates a new HTTP server
func NewServer(
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
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:             router,
		jwtService:         jwtService,
		userHandler:        userHandler,
		sessionHandler:     sessionHandler,
		chestHandler:       chestHandler,
		castleHandler:      castleHandler,
		inventoryHandler:   inventoryHandler,
		componentHandler:   componentHandler,
		leaderboardHandler: leaderboardHandler,
		adminHandler:       adminHandler,
		errorHandler:       errorHandler,
		port:               port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", s.userHandler.Register)
			authRoutes.POST("/login", s.userHandler.Login)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			userRoutes := protected.Group("/users")
			{
				userRoutes.GET("/me", s.userHandler.GetUserInfo)
			}

			sessionRoutes := protected.Group("/focus-sessions")
			{
				sessionRoutes.POST("", s.sessionHandler.Start)
				sessionRoutes.GET("", s.sessionHandler.List)
				sessionRoutes.GET("/:id", s.sessionHandler.Get)
				sessionRoutes.PUT("/:id", s.sessionHandler.Update)
				sessionRoutes.PUT("/:id/complete", s.sessionHandler.Complete)
			}

			chestRoutes := protected.Group("/treasure-chests")
			{
				chestRoutes.GET("/my-chest", s.chestHandler.GetMyChest)
				chestRoutes.PUT("/claim", s.chestHandler.Claim)
			}

			castleRoutes := protected.Group("/castles")
			{
				castleRoutes.GET("/my-castle", s.castleHandler.GetMyCastle)
				castleRoutes.POST("/spend-resources", s.castleHandler.SpendResources)
				castleRoutes.PUT("/layout", s.castleHandler.UpdateLayout)
				castleRoutes.PUT("/update-layout", s.castleHandler.UpdateLayout)
				castleRoutes.PUT("/level-up", s.castleHandler.LevelUp)
				castleRoutes.GET("/:userId", s.castleHandler.GetCastle)
			}

			inventoryRoutes := protected.Group("/inventory")
			{
				inventoryRoutes.GET("", s.inventoryHandler.List)
				inventoryRoutes.GET("/templates", s.inventoryHandler.ListTemplates)
				inventoryRoutes.GET("/:itemId", s.inventoryHandler.GetItem)
				inventoryRoutes.POST("/:itemId/use", s.inventoryHandler.UseItem)
				inventoryRoutes.DELETE("/:itemId", s.inventoryHandler.DiscardItem)
			}

			componentRoutes := protected.Group("/components")
			{
				componentRoutes.GET("", s.componentHandler.GetComponents)
				componentRoutes.POST("/craft", s.componentHandler.Craft)
			}

			leaderboardRoutes := protected.Group("/leaderboards")
			{
				leaderboardRoutes.GET("/global", s.leaderboardHandler.Global)
				leaderboardRoutes.GET("/school", s.leaderboardHandler.School)
			}

			adminRoutes := protected.Group("/admin")
			adminRoutes.Use(middleware.AdminMiddleware())
			{
				adminRoutes.GET("/dashboard", s.adminHandler.Dashboard)
				adminRoutes.GET("/activity", s.adminHandler.RecentActivity)
				adminRoutes.GET("/users", s.adminHandler.ListUsers)
				adminRoutes.GET("/focus-sessions", s.adminHandler.ListSessions)
				adminRoutes.GET("/castles", s.adminHandler.ListCastles)
				adminRoutes.GET("/treasure-chests", s.adminHandler.ListChests)
				adminRoutes.GET("/treasure-chests/stats", s.adminHandler.ChestStats)
				adminRoutes.GET("/leaderboard/global", s.leaderboardHandler.Global)
				adminRoutes.GET("/leaderboard/school", s.leaderboardHandler.School)
				adminRoutes.GET("/settings", s.adminHandler.ListSettings)
				adminRoutes.PUT("/settings/:key", s.adminHandler.PutSetting)
			}
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
