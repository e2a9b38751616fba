package middleware

import (
	"strings"

	"hrms/internal/core"
	cErr "hrms/internal/pkg/error"
	"hrms/internal/pkg/response"
	"hrms/internal/service"
	"hrms/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Auth struct {
	logger      *zap.Logger
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewAuth(logger *zap.Logger, trace *telemetry.Trace, authService *service.AuthService) *Auth {
	return &Auth{logger: logger, trace: trace, authService: authService}
}

// Handler 驗證 Bearer token，解出 *core.Session 放進 context。
// 掛在這個 middleware 後面的路由保證拿得到非 nil session。
func (m *Auth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanAuthMiddleware))

		header := c.GetHeader("Authorization")
		if header == "" {
			m.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{Status: "missing_token"})
			cause := cErr.Unauthorized("missing bearer token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if tokenString == header || tokenString == "" {
			m.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{Status: "malformed_header"})
			cause := cErr.Unauthorized("authorization header must be `Bearer <token>`")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		session, err := m.authService.ParseToken(tokenString)
		if err != nil {
			m.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{Status: "invalid_token"})
			response.AbortWithError(c, err)
			end(err)
			return
		}

		meta := core.TraceAuthMeta{
			Username: session.Username,
			UserID:   session.UserID,
			Role:     string(session.Role),
			Status:   "success",
		}
		if session.EmployeeID != nil {
			meta.EmployeeID = *session.EmployeeID
		}
		m.trace.ApplyTraceAttributes(span, meta)

		c.Set(core.ContextSessionKey, session)
		end(nil)
		c.Next()
	}
}

// OptionalHandler 有帶 token 就解析，沒帶就放行（公開端點用）。
// token 有帶但無效仍然拒絕，避免「壞 token 當匿名」混淆呼叫端。
func (m *Auth) OptionalHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		m.Handler()(c)
	}
}
