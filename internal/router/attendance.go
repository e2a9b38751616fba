package router

import (
	"hrms/internal/handler"
	"hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AttendanceRouter struct {
	attendanceHandler *handler.AttendanceHandler
}

func NewAttendanceRouter(attendanceHandler *handler.AttendanceHandler) *AttendanceRouter {
	return &AttendanceRouter{attendanceHandler: attendanceHandler}
}

func (ar *AttendanceRouter) RegisterRoutes(r *gin.RouterGroup, auth *middleware.Auth) {
	g := r.Group("/attendance", auth.Handler())
	{
		g.POST("/check-in", ar.attendanceHandler.CheckIn)
		g.POST("/check-out", ar.attendanceHandler.CheckOut)
		g.GET("", ar.attendanceHandler.List)
		g.PUT("/:attendanceID", ar.attendanceHandler.Update)
		g.DELETE("/:attendanceID", ar.attendanceHandler.Delete)
	}
}
