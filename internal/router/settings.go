package router

import (
	"hrms/internal/handler"
	"hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

type SettingsRouter struct {
	settingsHandler *handler.SettingsHandler
}

func NewSettingsRouter(settingsHandler *handler.SettingsHandler) *SettingsRouter {
	return &SettingsRouter{settingsHandler: settingsHandler}
}

func (sr *SettingsRouter) RegisterRoutes(r *gin.RouterGroup, auth *middleware.Auth) {
	g := r.Group("/settings", auth.Handler())
	{
		g.GET("", sr.settingsHandler.Get)
		g.PUT("", sr.settingsHandler.Update)
	}
}
