package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/saviored/focuscastle/internal/config"
	"github.com/saviored/focuscastle/internal/http"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting FocusCastle API...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitDatabase,
			a.InitJWTService,
			a.InitUserLockManager,
			a.InitUserRepository,
			a.InitSessionRepository,
			a.InitChestRepository,
			a.InitCastleRepository,
			a.InitTemplateRepository,
			a.InitUserItemRepository,
			a.InitSettingRepository,
			a.InitTxManager,
			a.InitSettingsProvider,
			a.InitUserUseCase,
			a.InitSessionUseCase,
			a.InitChestUseCase,
			a.InitCastleUseCase,
			a.InitInventoryUseCase,
			a.InitCraftingUseCase,
			a.InitLeaderboardUseCase,
			a.InitAdminUseCase,
			a.InitUserHandler,
			a.InitSessionHandler,
			a.InitChestHandler,
			a.InitCastleHandler,
			a.InitInventoryHandler,
			a.InitComponentHandler,
			a.InitLeaderboardHandler,
			a.InitAdminHandler,
			a.InitErrorHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(func(server *http.Server) {
			go func() {
				if err := server.Start(); err != nil {
					log.Fatalf("HTTP server stopped: %v", err)
				}
			}()
		}),
	)

	app.Run()
}
