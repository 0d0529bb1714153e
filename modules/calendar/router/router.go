package router

import (
	"timeweave/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

type CalendarRouter struct {
	controller *controller.CalendarController
}

func NewCalendarRouter(controller *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{
		controller: controller,
	}
}

// Setup registers the calendar routes. All of them are public: the OAuth
// callback must be reachable by Google, and the rest are keyed by the
// unguessable participant ID.
func (r *CalendarRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	googleRoutes := v1.Group("/public/calendar/google")
	googleRoutes.GET("/connect", r.controller.GoogleConnect)
	googleRoutes.GET("/callback", r.controller.GoogleCallback)

	participantRoutes := v1.Group("/public/participants/:participant_id/calendar")
	participantRoutes.GET("/connections", r.controller.GetConnections)
	participantRoutes.DELETE("/connections/:provider", r.controller.DisconnectCalendar)
	participantRoutes.POST("/import", r.controller.ImportBusy)
}
