package controller

import (
	"timeweave/core/constants"
	"timeweave/core/controller"
	"timeweave/core/errors"
	"timeweave/core/params"
	"timeweave/core/utils"
	"timeweave/modules/meeting/dto"
	"timeweave/modules/meeting/service"
	"timeweave/modules/meeting/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MeetingController handles the private creator endpoints
type MeetingController struct {
	controller.BaseController
	MeetingService service.MeetingServiceInterface
}

// NewMeetingController creates a new controller
func NewMeetingController(svc service.MeetingServiceInterface) *MeetingController {
	return &MeetingController{
		BaseController: controller.NewBaseController(),
		MeetingService: svc,
	}
}

// getCreatorIDFromContext extracts the creator ID from JWT context
func (c *MeetingController) getCreatorIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims.CreatorID, nil
}

// CreateMeeting handles POST /private/meetings
// @Summary Tạo cuộc họp
// @Description Tạo một cuộc họp mới, tuỳ chọn mời người tham gia và mở nhận phản hồi ngay
// @Tags Meeting
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateMeetingRequest true "Thông tin cuộc họp"
// @Success 200 {object} dto.MeetingResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /private/meetings [post]
func (c *MeetingController) CreateMeeting(ctx echo.Context) error {
	creatorID, err := c.getCreatorIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	requestData := new(dto.CreateMeetingRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateCreateMeetingRequest(requestData)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	result, appErr := c.MeetingService.CreateMeeting(ctx.Request().Context(), creatorID, requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Tạo cuộc họp thành công")
}

// ListMeetings handles GET /private/meetings
// @Summary Danh sách cuộc họp
// @Description Danh sách cuộc họp của người tạo kèm tỉ lệ phản hồi
// @Tags Meeting
// @Security BearerAuth
// @Produce json
// @Param status query string false "Lọc theo trạng thái (draft, active, locked, cancelled)"
// @Param search query string false "Tìm theo tiêu đề"
// @Param page query int false "Trang"
// @Param limit query int false "Số dòng mỗi trang"
// @Success 200 {object} dto.PaginatedMeetingResponse
// @Failure 401 {object} errors.AppError
// @Router /private/meetings [get]
func (c *MeetingController) ListMeetings(ctx echo.Context) error {
	creatorID, err := c.getCreatorIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	queryParams := params.NewQueryParams(ctx)
	status := ctx.QueryParam("status")

	result, appErr := c.MeetingService.ListMeetings(ctx.Request().Context(), creatorID, status, *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetMeeting handles GET /private/meetings/:id
// @Summary Chi tiết cuộc họp
// @Description Xem cấu hình, người tham gia và gợi ý thời gian mới nhất
// @Tags Meeting
// @Security BearerAuth
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} dto.MeetingDetailResponse
// @Failure 404 {object} errors.AppError
// @Router /private/meetings/{id} [get]
func (c *MeetingController) GetMeeting(ctx echo.Context) error {
	creatorID, err := c.getCreatorIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	result, appErr := c.MeetingService.GetMeeting(ctx.Request().Context(), meetingID, creatorID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateMeeting handles PUT /private/meetings/:id
// @Summary Cập nhật cuộc họp
// @Description Cập nhật cấu hình cuộc họp; gợi ý sẽ được tính lại
// @Tags Meeting
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param request body dto.UpdateMeetingRequest true "Thông tin cần cập nhật"
// @Success 200 {object} dto.MeetingResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/meetings/{id} [put]
func (c *MeetingController) UpdateMeeting(ctx echo.Context) error {
	creatorID, err := c.getCreatorIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	requestData := new(dto.UpdateMeetingRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateUpdateMeetingRequest(requestData)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	result, appErr := c.MeetingService.UpdateMeeting(ctx.Request().Context(), meetingID, creatorID, requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Cập nhật cuộc họp thành công")
}

// DeleteMeeting handles DELETE /private/meetings/:id
// @Summary Xoá cuộc họp
// @Description Xoá cuộc họp cùng toàn bộ phản hồi
// @Tags Meeting
// @Security BearerAuth
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /private/meetings/{id} [delete]
func (c *MeetingController) DeleteMeeting(ctx echo.Context) error {
	creatorID, err := c.getCreatorIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	if appErr := c.MeetingService.DeleteMeeting(ctx.Request().Context(), meetingID, creatorID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Xoá cuộc họp thành công")
}

// PublishMeeting handles POST /private/meetings/:id/publish
// @Summary Mở nhận phản hồi
// @Description Chuyển cuộc họp từ nháp sang hoạt động và gửi lời mời
// @Tags Meeting
// @Security BearerAuth
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} dto.MeetingResponse
// @Failure 400 {object} errors.AppError
// @Router /private/meetings/{id}/publish [post]
func (c *MeetingController) PublishMeeting(ctx echo.Context) error {
	creatorID, err := c.getCreatorIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	result, appErr := c.MeetingService.PublishMeeting(ctx.Request().Context(), meetingID, creatorID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Cuộc họp đã mở nhận phản hồi")
}

// CancelMeeting handles POST /private/meetings/:id/cancel
// @Summary Huỷ cuộc họp
// @Description Huỷ cuộc họp đang hoạt động
// @Tags Meeting
// @Security BearerAuth
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} dto.MeetingResponse
// @Failure 400 {object} errors.AppError
// @Router /private/meetings/{id}/cancel [post]
func (c *MeetingController) CancelMeeting(ctx echo.Context) error {
	creatorID, err := c.getCreatorIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	result, appErr := c.MeetingService.CancelMeeting(ctx.Request().Context(), meetingID, creatorID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Đã huỷ cuộc họp")
}

// LockSlot handles POST /private/meetings/:id/lock/:slot_id
// @Summary Chốt thời gian họp
// @Description Chốt một khung giờ, xoá các gợi ý còn lại và thông báo cho người tham gia
// @Tags Meeting
// @Security BearerAuth
// @Produce json
// @Param id path string true "Meeting ID"
// @Param slot_id path string true "Slot ID"
// @Success 200 {object} dto.MeetingDetailResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/meetings/{id}/lock/{slot_id} [post]
func (c *MeetingController) LockSlot(ctx echo.Context) error {
	creatorID, err := c.getCreatorIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	slotID, err := uuid.Parse(ctx.Param("slot_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid slot ID")
	}

	result, appErr := c.MeetingService.LockSlot(ctx.Request().Context(), meetingID, slotID, creatorID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Đã chốt lịch họp")
}

// AddParticipant handles POST /private/meetings/:id/participants
// @Summary Mời người tham gia
// @Description Thêm một người tham gia vào cuộc họp
// @Tags Meeting
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param request body dto.ParticipantInput true "Người tham gia"
// @Success 200 {object} dto.ParticipantResponse
// @Failure 400 {object} errors.AppError
// @Router /private/meetings/{id}/participants [post]
func (c *MeetingController) AddParticipant(ctx echo.Context) error {
	creatorID, err := c.getCreatorIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	requestData := new(dto.ParticipantInput)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateParticipantInput(requestData)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	result, appErr := c.MeetingService.AddParticipant(ctx.Request().Context(), meetingID, creatorID, requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Đã thêm người tham gia")
}

// AddParticipantsBulk handles POST /private/meetings/:id/participants/bulk
// @Summary Mời nhiều người tham gia
// @Description Thêm nhiều người tham gia trong một lần gọi
// @Tags Meeting
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param request body dto.BulkParticipantsRequest true "Danh sách người tham gia"
// @Success 200 {array} dto.ParticipantResponse
// @Failure 400 {object} errors.AppError
// @Router /private/meetings/{id}/participants/bulk [post]
func (c *MeetingController) AddParticipantsBulk(ctx echo.Context) error {
	creatorID, err := c.getCreatorIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	requestData := new(dto.BulkParticipantsRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateBulkParticipantsRequest(requestData)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	result, appErr := c.MeetingService.AddParticipantsBulk(ctx.Request().Context(), meetingID, creatorID, requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Đã thêm người tham gia")
}

// ListParticipants handles GET /private/meetings/:id/participants
// @Summary Danh sách người tham gia
// @Description Danh sách người tham gia của cuộc họp
// @Tags Meeting
// @Security BearerAuth
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {array} dto.ParticipantResponse
// @Failure 404 {object} errors.AppError
// @Router /private/meetings/{id}/participants [get]
func (c *MeetingController) ListParticipants(ctx echo.Context) error {
	creatorID, err := c.getCreatorIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	result, appErr := c.MeetingService.ListParticipants(ctx.Request().Context(), meetingID, creatorID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// RemoveParticipant handles DELETE /private/meetings/:id/participants/:participant_id
// @Summary Xoá người tham gia
// @Description Xoá một người tham gia; gợi ý được tính lại nếu người đó đã phản hồi
// @Tags Meeting
// @Security BearerAuth
// @Produce json
// @Param id path string true "Meeting ID"
// @Param participant_id path string true "Participant ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /private/meetings/{id}/participants/{participant_id} [delete]
func (c *MeetingController) RemoveParticipant(ctx echo.Context) error {
	creatorID, err := c.getCreatorIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	participantID, err := uuid.Parse(ctx.Param("participant_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID")
	}

	if appErr := c.MeetingService.RemoveParticipant(ctx.Request().Context(), meetingID, participantID, creatorID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Đã xoá người tham gia")
}
