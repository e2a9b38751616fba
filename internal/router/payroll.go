package router

import (
	"hrms/internal/handler"
	"hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

type PayrollRouter struct {
	payrollHandler *handler.PayrollHandler
}

func NewPayrollRouter(payrollHandler *handler.PayrollHandler) *PayrollRouter {
	return &PayrollRouter{payrollHandler: payrollHandler}
}

func (pr *PayrollRouter) RegisterRoutes(r *gin.RouterGroup, auth *middleware.Auth) {
	g := r.Group("/payrolls", auth.Handler())
	{
		g.POST("/generate", pr.payrollHandler.Generate)
		g.GET("", pr.payrollHandler.List)
		g.GET("/:payrollID", pr.payrollHandler.Get)
		g.PATCH("/:payrollID/mark-paid", pr.payrollHandler.MarkPaid)
		g.DELETE("/:payrollID", pr.payrollHandler.Delete)
	}
}
