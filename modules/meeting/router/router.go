package router

import (
	"timeweave/core/middleware"
	"timeweave/modules/meeting/controller"

	"github.com/labstack/echo/v4"
)

// MeetingRouter handles meeting routes
type MeetingRouter struct {
	MeetingController *controller.MeetingController
	RespondController *controller.RespondController
}

// NewMeetingRouter creates a new router
func NewMeetingRouter(meetingController *controller.MeetingController, respondController *controller.RespondController) *MeetingRouter {
	return &MeetingRouter{
		MeetingController: meetingController,
		RespondController: respondController,
	}
}

// Setup registers meeting routes
func (r *MeetingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	// Share-link surface: no session, the token or participant ID is the
	// credential.
	publicRoutes := v1.Group("/public")
	publicRoutes.POST("/sessions", r.RespondController.CreateSession)
	publicRoutes.GET("/meetings/:id", r.RespondController.GetPublicMeeting)
	publicRoutes.POST("/meetings/:id/participants", r.RespondController.JoinMeeting)
	publicRoutes.GET("/meetings/:id/heatmap", r.RespondController.GetHeatmap)
	publicRoutes.GET("/meetings/:id/suggestions", r.RespondController.GetSuggestions)
	publicRoutes.GET("/meetings/:id/calendar.ics", r.RespondController.ExportICS)
	publicRoutes.PUT("/participants/:participant_id/busy", r.RespondController.SubmitAvailability)
	publicRoutes.GET("/participants/:participant_id/busy", r.RespondController.GetOwnBusyIntervals)

	// Creator surface (all protected)
	privateRoutes := v1.Group("/private")
	meetingRoutes := privateRoutes.Group("/meetings", mw.AuthMiddleware())

	meetingRoutes.POST("", r.MeetingController.CreateMeeting)
	meetingRoutes.GET("", r.MeetingController.ListMeetings)
	meetingRoutes.GET("/:id", r.MeetingController.GetMeeting)
	meetingRoutes.PUT("/:id", r.MeetingController.UpdateMeeting)
	meetingRoutes.DELETE("/:id", r.MeetingController.DeleteMeeting)

	// Lifecycle
	meetingRoutes.POST("/:id/publish", r.MeetingController.PublishMeeting)
	meetingRoutes.POST("/:id/cancel", r.MeetingController.CancelMeeting)
	meetingRoutes.POST("/:id/lock/:slot_id", r.MeetingController.LockSlot)

	// Participants
	meetingRoutes.POST("/:id/participants", r.MeetingController.AddParticipant)
	meetingRoutes.POST("/:id/participants/bulk", r.MeetingController.AddParticipantsBulk)
	meetingRoutes.GET("/:id/participants", r.MeetingController.ListParticipants)
	meetingRoutes.DELETE("/:id/participants/:participant_id", r.MeetingController.RemoveParticipant)
}
