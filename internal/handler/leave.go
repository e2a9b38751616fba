package handler

import (
	"hrms/internal/core"
	"hrms/internal/dto"
	"hrms/internal/pkg/response"
	"hrms/internal/service"
	"hrms/internal/telemetry"
	"hrms/utils/validate"

	cErr "hrms/internal/pkg/error"

	"github.com/gin-gonic/gin"
)

type LeaveHandler struct {
	trace        *telemetry.Trace
	leaveService *service.LeaveService
}

func NewLeaveHandler(trace *telemetry.Trace, leaveService *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{trace: trace, leaveService: leaveService}
}

// Apply 提出請假申請
func (h *LeaveHandler) Apply(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.ApplyLeaveDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.leaveService.Apply(ctx, sessionFrom(c), &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// List 請假申請列表
func (h *LeaveHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID, err := validate.GetIntQuery(c, "employee_id", 0)
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.BadRequestParams("invalid employee_id"))
		return
	}
	status := core.LeaveStatus(c.Query("status"))

	res, err := h.leaveService.List(ctx, sessionFrom(c), employeeID, status)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Get 取得單筆請假申請
func (h *LeaveHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "leaveID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.leaveService.GetByID(ctx, sessionFrom(c), id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Approve 核准請假
func (h *LeaveHandler) Approve(c *gin.Context) {
	h.decide(c, true)
}

// Reject 駁回請假
func (h *LeaveHandler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *LeaveHandler) decide(c *gin.Context, approve bool) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "leaveID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	// 審核意見可留空
	var req dto.DecideLeaveDto
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		end(err)
		response.AbortWithError(c, cErr.ValidateErr(validate.ValidationErrorResponse(c, &req, err)))
		return
	}

	res, err := h.leaveService.Decide(ctx, sessionFrom(c), id, approve, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Update 修改還在等待審核的申請
func (h *LeaveHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "leaveID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateLeaveDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.leaveService.Update(ctx, sessionFrom(c), id, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Withdraw 撤回等待審核中的申請
func (h *LeaveHandler) Withdraw(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "leaveID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.leaveService.Withdraw(ctx, sessionFrom(c), id); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "leave application withdrawn successfully")
}

// Balance 查詢年度假別餘額
func (h *LeaveHandler) Balance(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.leaveService.Balance(ctx, sessionFrom(c), id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}
