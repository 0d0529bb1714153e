package main

import (
	"timeweave/core/logger"
	"timeweave/core/server"

	_ "timeweave/docs" // Swagger docs
)

// @title TimeWeave API
// @version 1.0
// @description API Backend cho ứng dụng TimeWeave - Sắp xếp lịch họp nhóm thông minh
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@timeweave.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
	}
}
