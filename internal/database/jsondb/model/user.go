package model

import (
	"time"

	"hrms/internal/core"
)

type User struct {
	UserID       int         `json:"user_id"`       // 使用者唯一識別碼
	Username     string      `json:"username"`      // 登入帳號
	PasswordHash string      `json:"password_hash"` // bcrypt 雜湊
	Role         core.Role   `json:"role"`          // 角色
	EmployeeID   *int        `json:"employee_id"`   // 綁定員工；Admin/HR 可為 null
	Status       core.Status `json:"status"`        // 帳號狀態
	CreatedAt    time.Time   `json:"created_at,omitempty"`
	UpdatedAt    time.Time   `json:"updated_at,omitempty"`
}

func (u *User) GetID() int   { return u.UserID }
func (u *User) SetID(id int) { u.UserID = id }
