// Package main FocusCastle API
//
// FocusCastle is the reward and progression backend of a gamified
// study-tracking platform. Students run focus sessions; completed
// sessions mint coins, stones, wood and experience points that feed a
// castle-building economy with treasure chests, an item inventory and
// a crafting engine.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	_ "github.com/saviored/focuscastle/docs"
	"github.com/saviored/focuscastle/internal/app"
)

// @title FocusCastle API Service
// @version 1.0
// @description FocusCastle is the reward and progression backend of a gamified study-tracking platform.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
