package router

import (
	"hrms/internal/handler"
	"hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

type LeaveRouter struct {
	leaveHandler *handler.LeaveHandler
}

func NewLeaveRouter(leaveHandler *handler.LeaveHandler) *LeaveRouter {
	return &LeaveRouter{leaveHandler: leaveHandler}
}

func (lr *LeaveRouter) RegisterRoutes(r *gin.RouterGroup, auth *middleware.Auth) {
	g := r.Group("/leaves", auth.Handler())
	{
		g.POST("", lr.leaveHandler.Apply)
		g.GET("", lr.leaveHandler.List)
		g.GET("/:leaveID", lr.leaveHandler.Get)
		g.PUT("/:leaveID", lr.leaveHandler.Update)
		g.DELETE("/:leaveID", lr.leaveHandler.Withdraw)
		g.PATCH("/:leaveID/approve", lr.leaveHandler.Approve)
		g.PATCH("/:leaveID/reject", lr.leaveHandler.Reject)
	}
}
