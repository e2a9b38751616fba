package handler

import (
	"hrms/internal/core"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
)

// ProviderSet Provider对象集合
var ProviderSet = wire.NewSet(
	NewAuthHandler,
	NewEmployeeHandler,
	NewDepartmentHandler,
	NewAttendanceHandler,
	NewLeaveHandler,
	NewPayrollHandler,
	NewSettingsHandler,
	NewRecruitmentHandler,
	NewHealthHandler,
)

// sessionFrom 取出 auth middleware 放進 context 的登入身份，未登入回 nil
func sessionFrom(c *gin.Context) *core.Session {
	v, exists := c.Get(core.ContextSessionKey)
	if !exists {
		return nil
	}
	session, ok := v.(*core.Session)
	if !ok {
		return nil
	}
	return session
}
