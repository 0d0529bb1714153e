package notification

import (
	"timeweave/core/database"
	"timeweave/core/middleware"
	"timeweave/modules/notification/controller"
	"timeweave/modules/notification/repository"
	"timeweave/modules/notification/router"
	"timeweave/modules/notification/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, db database.Database, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(e, mw)

	return svc
}
