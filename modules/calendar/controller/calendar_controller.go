package controller

import (
	"timeweave/core/controller"
	"timeweave/core/errors"
	"timeweave/core/logger"
	"timeweave/modules/calendar/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CalendarController exposes the Google Calendar connect and import flow.
// Everything is keyed by the unguessable participant ID, same as the
// busy-interval endpoints.
type CalendarController struct {
	controller.BaseController
	CalendarService service.CalendarService
}

// NewCalendarController creates a new controller
func NewCalendarController(svc service.CalendarService) *CalendarController {
	return &CalendarController{
		BaseController: controller.NewBaseController(),
		CalendarService: svc,
	}
}

// GoogleConnect handles GET /public/calendar/google/connect
// @Summary Bắt đầu kết nối Google Calendar
// @Description Trả về URL uỷ quyền Google cho người tham gia
// @Tags Calendar
// @Produce json
// @Param participant_id query string true "ID người tham gia"
// @Success 200 {object} dto.OAuthURLResponse
// @Failure 404 {object} errors.AppError
// @Router /public/calendar/google/connect [get]
func (c *CalendarController) GoogleConnect(ctx echo.Context) error {
	participantID, err := uuid.Parse(ctx.QueryParam("participant_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID", nil)
	}

	result, appErr := c.CalendarService.BuildGoogleConnectURL(ctx.Request().Context(), participantID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GoogleCallback handles GET /public/calendar/google/callback
// @Summary Nhận kết quả uỷ quyền từ Google
// @Description Đổi mã uỷ quyền lấy token và lưu kết nối lịch
// @Tags Calendar
// @Produce json
// @Param code query string true "Mã uỷ quyền"
// @Param state query string true "State chống CSRF"
// @Success 200 {object} dto.CalendarConnectionResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /public/calendar/google/callback [get]
func (c *CalendarController) GoogleCallback(ctx echo.Context) error {
	code := ctx.QueryParam("code")
	state := ctx.QueryParam("state")
	errorParam := ctx.QueryParam("error")

	// Google reports consent denial through the error parameter.
	if errorParam != "" {
		logger.Error("CalendarController:GoogleCallback", "error", errorParam, "description", ctx.QueryParam("error_description"))
		return c.BadRequest(errors.ErrInvalidRequestData, "Google OAuth error: "+errorParam, nil)
	}

	if code == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "Authorization code is required", nil)
	}
	if state == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "State parameter is required", nil)
	}

	result, appErr := c.CalendarService.HandleGoogleCallback(ctx.Request().Context(), code, state)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Đã kết nối Google Calendar")
}

// GetConnections handles GET /public/participants/:participant_id/calendar/connections
// @Summary Danh sách kết nối lịch
// @Description Trả về các kết nối lịch đang hoạt động của người tham gia
// @Tags Calendar
// @Produce json
// @Param participant_id path string true "ID người tham gia"
// @Success 200 {object} dto.CalendarConnectionListResponse
// @Router /public/participants/{participant_id}/calendar/connections [get]
func (c *CalendarController) GetConnections(ctx echo.Context) error {
	participantID, err := uuid.Parse(ctx.Param("participant_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID", nil)
	}

	result, appErr := c.CalendarService.GetConnections(ctx.Request().Context(), participantID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// DisconnectCalendar handles DELETE /public/participants/:participant_id/calendar/connections/:provider
// @Summary Ngắt kết nối lịch
// @Description Ngắt kết nối nhà cung cấp lịch của người tham gia
// @Tags Calendar
// @Produce json
// @Param participant_id path string true "ID người tham gia"
// @Param provider path string true "Nhà cung cấp (google)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.AppError
// @Router /public/participants/{participant_id}/calendar/connections/{provider} [delete]
func (c *CalendarController) DisconnectCalendar(ctx echo.Context) error {
	participantID, err := uuid.Parse(ctx.Param("participant_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID", nil)
	}

	if appErr := c.CalendarService.DisconnectCalendar(ctx.Request().Context(), participantID, ctx.Param("provider")); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Đã ngắt kết nối")
}

// ImportBusy handles POST /public/participants/:participant_id/calendar/import
// @Summary Nhập lịch bận từ Google Calendar
// @Description Lấy các khoảng bận trong phạm vi ngày của cuộc họp và gửi làm phản hồi
// @Tags Calendar
// @Produce json
// @Param participant_id path string true "ID người tham gia"
// @Success 200 {object} dto.ImportBusyResponse
// @Failure 403 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /public/participants/{participant_id}/calendar/import [post]
func (c *CalendarController) ImportBusy(ctx echo.Context) error {
	participantID, err := uuid.Parse(ctx.Param("participant_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID", nil)
	}

	result, appErr := c.CalendarService.ImportBusy(ctx.Request().Context(), participantID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Đã nhập lịch bận")
}
