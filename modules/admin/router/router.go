package router

import (
	"timeweave/core/middleware"
	"timeweave/modules/admin/controller"

	"github.com/labstack/echo/v4"
)

type AdminRouter struct {
	controller *controller.AdminController
}

func NewAdminRouter(controller *controller.AdminController) *AdminRouter {
	return &AdminRouter{controller: controller}
}

func (r *AdminRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	adminRoutes := v1.Group("/admin", mw.AdminKeyMiddleware())
	adminRoutes.GET("/stats", r.controller.GetStats)
	adminRoutes.GET("/meetings", r.controller.ListMeetings)
}
