package handler

import (
	"hrms/internal/dto"
	"hrms/internal/pkg/response"
	"hrms/internal/service"
	"hrms/internal/telemetry"
	"hrms/utils/validate"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	trace             *telemetry.Trace
	departmentService *service.DepartmentService
}

func NewDepartmentHandler(trace *telemetry.Trace, departmentService *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{trace: trace, departmentService: departmentService}
}

// Create 建立部門
func (h *DepartmentHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateDepartmentDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.departmentService.Create(ctx, sessionFrom(c), &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// List 部門列表（含在職人數）
func (h *DepartmentHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	res, err := h.departmentService.List(ctx, sessionFrom(c))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Get 取得單一部門
func (h *DepartmentHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "departmentID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.departmentService.GetByID(ctx, sessionFrom(c), id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Update 更新部門
func (h *DepartmentHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "departmentID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateDepartmentDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.departmentService.Update(ctx, sessionFrom(c), id, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Delete 刪除部門
func (h *DepartmentHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseIntParam(c, "departmentID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.departmentService.Delete(ctx, sessionFrom(c), id); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "department deleted successfully")
}
