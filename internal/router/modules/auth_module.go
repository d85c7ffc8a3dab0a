package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/procrm-api/internal/container"
	handlers "github.com/oksasatya/procrm-api/internal/interface/http"
	"github.com/oksasatya/procrm-api/internal/interface/middleware"
	"github.com/oksasatya/procrm-api/pkg/helpers"
)

// AuthModule wires login/signup and the protected profile route.
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits; no-ops without Redis
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	signupLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/signup", signupLimiter, m.Handler.Signup)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.GET("/auth/me", m.Handler.Me)
	}
}
