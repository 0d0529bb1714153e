package meeting

import (
	"timeweave/core/cache"
	"timeweave/core/database"
	"timeweave/core/middleware"
	"timeweave/core/queue"
	"timeweave/core/storage"
	"timeweave/modules/meeting/controller"
	"timeweave/modules/meeting/repository"
	"timeweave/modules/meeting/router"
	"timeweave/modules/meeting/service"
	notifservice "timeweave/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the meeting module and registers routes. The returned
// service is reused by the calendar module and by the worker that runs the
// email and refresh tasks.
func Init(
	e *echo.Echo,
	db database.Database,
	mw *middleware.Middleware,
	c *cache.Cache,
	q *queue.Queue,
	st *storage.S3Storage,
	notif *notifservice.NotificationService,
	baseURL string,
) service.MeetingServiceInterface {
	repo := repository.NewMeetingRepository(db)
	svc := service.NewMeetingService(repo, c, q, st, notif, baseURL)
	meetingCtrl := controller.NewMeetingController(svc)
	respondCtrl := controller.NewRespondController(svc)
	rtr := router.NewMeetingRouter(meetingCtrl, respondCtrl)

	rtr.Setup(e, mw)

	return svc
}
