package admin

import (
	"timeweave/core/database"
	"timeweave/core/middleware"
	"timeweave/modules/admin/controller"
	"timeweave/modules/admin/repository"
	"timeweave/modules/admin/router"
	"timeweave/modules/admin/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewAdminRepository(db)
	svc := service.NewAdminService(repo)
	ctrl := controller.NewAdminController(svc)

	router.NewAdminRouter(ctrl).Setup(e, mw)
}
