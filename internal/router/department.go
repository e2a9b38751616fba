package router

import (
	"hrms/internal/handler"
	"hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

type DepartmentRouter struct {
	departmentHandler *handler.DepartmentHandler
}

func NewDepartmentRouter(departmentHandler *handler.DepartmentHandler) *DepartmentRouter {
	return &DepartmentRouter{departmentHandler: departmentHandler}
}

func (dr *DepartmentRouter) RegisterRoutes(r *gin.RouterGroup, auth *middleware.Auth) {
	g := r.Group("/departments", auth.Handler())
	{
		g.POST("", dr.departmentHandler.Create)
		g.GET("", dr.departmentHandler.List)
		g.GET("/:departmentID", dr.departmentHandler.Get)
		g.PUT("/:departmentID", dr.departmentHandler.Update)
		g.DELETE("/:departmentID", dr.departmentHandler.Delete)
	}
}
