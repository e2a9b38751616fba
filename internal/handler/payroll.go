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

type PayrollHandler struct {
	trace          *telemetry.Trace
	payrollService *service.PayrollService
}

func NewPayrollHandler(trace *telemetry.Trace, payrollService *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{trace: trace, payrollService: payrollService}
}

// Generate 產生單人或全員薪資單
func (h *PayrollHandler) Generate(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.GeneratePayrollDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.payrollService.Generate(ctx, sessionFrom(c), &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// List 薪資單列表，支援 employee_id / period 篩選
func (h *PayrollHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID, err := validate.GetIntQuery(c, "employee_id", 0)
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.BadRequestParams("invalid employee_id"))
		return
	}
	period := c.Query("period")

	res, err := h.payrollService.List(ctx, sessionFrom(c), employeeID, period)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Get 取得單筆薪資單
func (h *PayrollHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "payrollID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.payrollService.GetByID(ctx, sessionFrom(c), id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// MarkPaid 標記薪資單已發放
func (h *PayrollHandler) MarkPaid(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "payrollID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.payrollService.MarkPaid(ctx, sessionFrom(c), id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Delete 刪除薪資單
func (h *PayrollHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "payrollID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.payrollService.Delete(ctx, sessionFrom(c), id); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "payroll record deleted successfully")
}
