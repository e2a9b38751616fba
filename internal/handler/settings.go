package handler

import (
	"hrms/internal/dto"
	"hrms/internal/pkg/response"
	"hrms/internal/service"
	"hrms/internal/telemetry"
	"hrms/utils/validate"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	trace           *telemetry.Trace
	settingsService *service.SettingsService
}

func NewSettingsHandler(trace *telemetry.Trace, settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{trace: trace, settingsService: settingsService}
}

// Get 取得系統設定
func (h *SettingsHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	res, err := h.settingsService.Get(ctx, sessionFrom(c))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Update 更新系統設定（僅帶到的區塊會變動）
func (h *SettingsHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.UpdateSettingsDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.settingsService.Update(ctx, sessionFrom(c), &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}
