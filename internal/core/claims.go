package core

import "github.com/golang-jwt/jwt/v4"

// Session 登入後的身份快照，由 auth middleware 放入 context
type Session struct {
	UserID     int    `json:"user_id"`
	Username   string `json:"username"`
	Role       Role   `json:"role"`
	EmployeeID *int   `json:"employee_id,omitempty"` // Employee 角色必定綁定
}

type Claims struct {
	UserID     int    `json:"user_id"`
	Username   string `json:"username"`
	Role       Role   `json:"role"`
	EmployeeID *int   `json:"employee_id,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Session() *Session {
	return &Session{
		UserID:     c.UserID,
		Username:   c.Username,
		Role:       c.Role,
		EmployeeID: c.EmployeeID,
	}
}

// ContextSessionKey gin context 中存放 *Session 的鍵
const ContextSessionKey = "auth_session"
