package router

import (
	"hrms/internal/handler"
	"hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AuthRouter struct {
	authHandler *handler.AuthHandler
}

func NewAuthRouter(authHandler *handler.AuthHandler) *AuthRouter {
	return &AuthRouter{authHandler: authHandler}
}

func (ar *AuthRouter) RegisterRoutes(r *gin.RouterGroup, auth *middleware.Auth) {
	g := r.Group("/auth")
	{
		// 公開端點
		g.POST("/login", ar.authHandler.Login)
		g.POST("/forgot-password", ar.authHandler.ForgotPassword)

		// 需登入
		g.GET("/me", auth.Handler(), ar.authHandler.Me)
		g.POST("/change-password", auth.Handler(), ar.authHandler.ChangePassword)
	}
}
