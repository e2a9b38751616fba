package handler

import (
	"hrms/internal/dto"
	"hrms/internal/pkg/response"
	"hrms/internal/service"
	"hrms/internal/telemetry"
	"hrms/utils/validate"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewAuthHandler(trace *telemetry.Trace, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{trace: trace, authService: authService}
}

// Login 帳密登入，成功回 JWT
func (h *AuthHandler) Login(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.LoginDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.authService.Authenticate(ctx, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// ForgotPassword 核對帳號與 email 後發一組臨時密碼
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.ForgotPasswordDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.authService.RequestPasswordReset(ctx, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// ChangePassword 登入者更新自己的密碼
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.ChangePasswordDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.authService.ChangePassword(ctx, sessionFrom(c), &req); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "password changed successfully")
}

// Me 回傳當前登入身份
func (h *AuthHandler) Me(c *gin.Context) {
	_, _, end := h.trace.WithSpan(c)
	defer end(nil)

	response.Success(c, h.authService.Me(sessionFrom(c)))
}
