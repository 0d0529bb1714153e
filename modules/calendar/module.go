package calendar

import (
	"timeweave/core/cache"
	"timeweave/core/database"
	"timeweave/modules/calendar/controller"
	"timeweave/modules/calendar/repository"
	"timeweave/modules/calendar/router"
	"timeweave/modules/calendar/service"
	meetingRepository "timeweave/modules/meeting/repository"
	meetingService "timeweave/modules/meeting/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, c *cache.Cache, meetingSvc meetingService.MeetingServiceInterface) {
	repo := repository.NewCalendarRepository(db)
	meetingRepo := meetingRepository.NewMeetingRepository(db)
	svc := service.NewCalendarService(repo, meetingRepo, meetingSvc, c)
	ctrl := controller.NewCalendarController(svc)

	router.NewCalendarRouter(ctrl).Setup(e)
}
