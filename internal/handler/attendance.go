package handler

import (
	"hrms/internal/dto"
	"hrms/internal/pkg/response"
	"hrms/internal/service"
	"hrms/internal/telemetry"
	"hrms/utils/validate"

	cErr "hrms/internal/pkg/error"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	trace             *telemetry.Trace
	attendanceService *service.AttendanceService
}

func NewAttendanceHandler(trace *telemetry.Trace, attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{trace: trace, attendanceService: attendanceService}
}

// CheckIn 當天上班打卡
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	// body 只有備註欄位，空 body 也接受
	var req dto.CheckInDto
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		end(err)
		response.AbortWithError(c, cErr.ValidateErr(validate.ValidationErrorResponse(c, &req, err)))
		return
	}

	res, err := h.attendanceService.MarkCheckIn(ctx, sessionFrom(c), &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// CheckOut 當天下班打卡
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CheckOutDto
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		end(err)
		response.AbortWithError(c, cErr.ValidateErr(validate.ValidationErrorResponse(c, &req, err)))
		return
	}

	res, err := h.attendanceService.MarkCheckOut(ctx, sessionFrom(c), &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// List 出勤紀錄，管理者可帶 employee_id / from / to 篩選
func (h *AttendanceHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID, err := validate.GetIntQuery(c, "employee_id", 0)
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.BadRequestParams("invalid employee_id"))
		return
	}
	from := c.Query("from")
	to := c.Query("to")

	res, err := h.attendanceService.List(ctx, sessionFrom(c), employeeID, from, to)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Update 管理者補登或修正出勤紀錄
func (h *AttendanceHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "attendanceID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateAttendanceDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.attendanceService.Update(ctx, sessionFrom(c), id, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Delete 刪除出勤紀錄
func (h *AttendanceHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "attendanceID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.attendanceService.Delete(ctx, sessionFrom(c), id); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "attendance record deleted successfully")
}
