package controller

import (
	"fmt"
	"net/http"

	"timeweave/core/constants"
	"timeweave/core/controller"
	"timeweave/core/errors"
	"timeweave/core/utils"
	"timeweave/modules/meeting/dto"
	"timeweave/modules/meeting/service"
	"timeweave/modules/meeting/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RespondController handles the public share-link endpoints. Nothing here
// requires a session; the share token or an unguessable participant ID is
// the credential.
type RespondController struct {
	controller.BaseController
	MeetingService service.MeetingServiceInterface
}

// NewRespondController creates a new controller
func NewRespondController(svc service.MeetingServiceInterface) *RespondController {
	return &RespondController{
		BaseController: controller.NewBaseController(),
		MeetingService: svc,
	}
}

// CreateSession handles POST /public/sessions
// @Summary Tạo phiên làm việc
// @Description Cấp token cho người tạo cuộc họp, không cần tài khoản
// @Tags Respond
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest false "Email (tuỳ chọn)"
// @Success 200 {object} dto.SessionResponse
// @Router /public/sessions [post]
func (c *RespondController) CreateSession(ctx echo.Context) error {
	requestData := new(dto.CreateSessionRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	result, appErr := c.MeetingService.CreateSession(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetPublicMeeting handles GET /public/meetings/:id
// @Summary Xem cuộc họp qua liên kết chia sẻ
// @Description Xem thông tin cuộc họp bằng liên kết chia sẻ có token
// @Tags Respond
// @Produce json
// @Param id path string true "Meeting ID"
// @Param t query string true "Share token"
// @Success 200 {object} dto.PublicMeetingResponse
// @Failure 403 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /public/meetings/{id} [get]
func (c *RespondController) GetPublicMeeting(ctx echo.Context) error {
	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	result, appErr := c.MeetingService.GetPublicMeeting(ctx.Request().Context(), meetingID, ctx.QueryParam("t"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// JoinMeeting handles POST /public/meetings/:id/participants
// @Summary Tham gia cuộc họp
// @Description Đăng ký tham gia qua liên kết chia sẻ; bỏ trống email để tham gia ẩn danh
// @Tags Respond
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param t query string true "Share token"
// @Param request body dto.JoinMeetingRequest true "Thông tin người tham gia"
// @Success 200 {object} dto.ParticipantResponse
// @Failure 403 {object} errors.AppError
// @Router /public/meetings/{id}/participants [post]
func (c *RespondController) JoinMeeting(ctx echo.Context) error {
	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	requestData := new(dto.JoinMeetingRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateJoinMeetingRequest(requestData)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	result, appErr := c.MeetingService.JoinMeeting(ctx.Request().Context(), meetingID, ctx.QueryParam("t"), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Đã tham gia cuộc họp")
}

// SubmitAvailability handles PUT /public/participants/:participant_id/busy
// @Summary Gửi lịch bận
// @Description Thay thế toàn bộ khoảng bận của người tham gia và tính lại gợi ý
// @Tags Respond
// @Accept json
// @Produce json
// @Param participant_id path string true "Participant ID"
// @Param request body dto.SubmitAvailabilityRequest true "Danh sách khoảng bận"
// @Success 200 {object} dto.SuggestionsResponse
// @Failure 400 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /public/participants/{participant_id}/busy [put]
func (c *RespondController) SubmitAvailability(ctx echo.Context) error {
	participantID, err := uuid.Parse(ctx.Param("participant_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID")
	}

	requestData := new(dto.SubmitAvailabilityRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateSubmitAvailabilityRequest(requestData)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	result, appErr := c.MeetingService.SubmitAvailability(ctx.Request().Context(), participantID, ctx.RealIP(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Đã ghi nhận lịch bận")
}

// GetOwnBusyIntervals handles GET /public/participants/:participant_id/busy
// @Summary Xem lịch bận đã gửi
// @Description Người tham gia xem lại các khoảng bận của mình
// @Tags Respond
// @Produce json
// @Param participant_id path string true "Participant ID"
// @Success 200 {object} dto.BusyIntervalsResponse
// @Failure 404 {object} errors.AppError
// @Router /public/participants/{participant_id}/busy [get]
func (c *RespondController) GetOwnBusyIntervals(ctx echo.Context) error {
	participantID, err := uuid.Parse(ctx.Param("participant_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID")
	}

	result, appErr := c.MeetingService.GetOwnBusyIntervals(ctx.Request().Context(), participantID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetHeatmap handles GET /public/meetings/:id/heatmap
// @Summary Bản đồ nhiệt
// @Description Lưới khả dụng theo ngày và giờ, chiếu sang múi giờ hiển thị
// @Tags Respond
// @Produce json
// @Param id path string true "Meeting ID"
// @Param timezone query string false "Múi giờ hiển thị (mặc định múi giờ cuộc họp)"
// @Success 200 {object} service.HeatmapGrid
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /public/meetings/{id}/heatmap [get]
func (c *RespondController) GetHeatmap(ctx echo.Context) error {
	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	result, appErr := c.MeetingService.GetHeatmap(ctx.Request().Context(), meetingID, ctx.QueryParam("timezone"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetSuggestions handles GET /public/meetings/:id/suggestions
// @Summary Gợi ý thời gian
// @Description Các khung giờ tốt nhất vượt ngưỡng khả dụng tối thiểu
// @Tags Respond
// @Produce json
// @Param id path string true "Meeting ID"
// @Param limit query int false "Số gợi ý tối đa (mặc định 10)"
// @Param min_pct query number false "Ngưỡng phần trăm khả dụng (mặc định 50)"
// @Success 200 {object} dto.SuggestionsResponse
// @Failure 404 {object} errors.AppError
// @Router /public/meetings/{id}/suggestions [get]
func (c *RespondController) GetSuggestions(ctx echo.Context) error {
	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	limit := utils.ToNumberWithDefault(ctx.QueryParam("limit"), constants.DefaultSuggestionLimit)
	minPct := utils.ToFloatWithDefault(ctx.QueryParam("min_pct"), constants.DefaultMinPercentage)

	result, appErr := c.MeetingService.GetSuggestions(ctx.Request().Context(), meetingID, limit, minPct)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ExportICS handles GET /public/meetings/:id/calendar.ics
// @Summary Tải file lịch
// @Description Tải khung giờ đã chốt dưới dạng file iCalendar
// @Tags Respond
// @Produce text/calendar
// @Param id path string true "Meeting ID"
// @Success 200 {string} string "File iCalendar"
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /public/meetings/{id}/calendar.ics [get]
func (c *RespondController) ExportICS(ctx echo.Context) error {
	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	payload, filename, appErr := c.MeetingService.ExportICS(ctx.Request().Context(), meetingID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Blob(http.StatusOK, "text/calendar; charset=utf-8", payload)
}
