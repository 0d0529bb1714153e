package controller

import (
	"timeweave/core/controller"
	"timeweave/core/params"
	"timeweave/modules/admin/service"

	"github.com/labstack/echo/v4"
)

type AdminController struct {
	controller.BaseController
	AdminService service.AdminServiceInterface
}

// NewAdminController creates a new controller
func NewAdminController(svc service.AdminServiceInterface) *AdminController {
	return &AdminController{
		BaseController: controller.NewBaseController(),
		AdminService:   svc,
	}
}

// GetStats handles GET /admin/stats
// @Summary Thống kê hệ thống
// @Description Trả về số liệu tổng hợp toàn hệ thống
// @Tags Admin
// @Produce json
// @Param X-Admin-Key header string true "Khoá quản trị"
// @Success 200 {object} dto.SystemStatsResponse
// @Failure 401 {object} errors.AppError
// @Router /admin/stats [get]
func (c *AdminController) GetStats(ctx echo.Context) error {
	result, appErr := c.AdminService.GetSystemStats(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListMeetings handles GET /admin/meetings
// @Summary Danh sách cuộc họp toàn hệ thống
// @Description Liệt kê cuộc họp của mọi người tạo, có lọc trạng thái và tìm kiếm
// @Tags Admin
// @Produce json
// @Param X-Admin-Key header string true "Khoá quản trị"
// @Param page query int false "Số trang"
// @Param limit query int false "Số lượng mỗi trang"
// @Param search query string false "Tìm theo tiêu đề"
// @Param status query string false "Lọc theo trạng thái"
// @Success 200 {object} dto.PaginatedAdminMeetingResponse
// @Failure 401 {object} errors.AppError
// @Router /admin/meetings [get]
func (c *AdminController) ListMeetings(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)
	status := ctx.QueryParam("status")

	result, appErr := c.AdminService.ListMeetings(ctx.Request().Context(), *queryParams, status)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
