package router

import (
	"hrms/internal/handler"
	"hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

type EmployeeRouter struct {
	employeeHandler *handler.EmployeeHandler
	leaveHandler    *handler.LeaveHandler
}

func NewEmployeeRouter(employeeHandler *handler.EmployeeHandler, leaveHandler *handler.LeaveHandler) *EmployeeRouter {
	return &EmployeeRouter{employeeHandler: employeeHandler, leaveHandler: leaveHandler}
}

func (er *EmployeeRouter) RegisterRoutes(r *gin.RouterGroup, auth *middleware.Auth) {
	g := r.Group("/employees", auth.Handler())
	{
		g.POST("", er.employeeHandler.Create)
		g.GET("", er.employeeHandler.List)
		g.GET("/:employeeID", er.employeeHandler.Get)
		g.PUT("/:employeeID", er.employeeHandler.Update)
		g.DELETE("/:employeeID", er.employeeHandler.Delete)

		// 年度假別餘額掛在員工底下
		g.GET("/:employeeID/leave-balance", er.leaveHandler.Balance)
	}
}
