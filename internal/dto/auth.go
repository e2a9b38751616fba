package dto

import (
	"hrms/internal/core"
	"hrms/internal/pkg/request"
)

// 登入
type LoginDto struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (LoginDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Username.required": "username is required",
		"Password.required": "password is required",
	}
}

type LoginResponseDto struct {
	Token string         `json:"token"`
	User  SessionUserDto `json:"user"`
}

// 目前登入者（/auth/me 與登入回應共用）
type SessionUserDto struct {
	UserID     int       `json:"user_id"`
	Username   string    `json:"username"`
	Role       core.Role `json:"role"`
	EmployeeID *int      `json:"employee_id,omitempty"`
}

// 忘記密碼：使用者名稱 + 在職員工信箱雙重比對
type ForgotPasswordDto struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type ForgotPasswordResponseDto struct {
	TempPassword string `json:"temp_password"`
}

// 修改密碼
type ChangePasswordDto struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}
