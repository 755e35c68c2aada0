package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/heelmeals/nutritrack/internal/interface/http"
	"github.com/heelmeals/nutritrack/internal/interface/middleware"
)

// AuthModule owns the OAuth entry points and logout. Login and callback live
// at the engine root, outside /api, because Google redirects straight to them.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Engine  *gin.Engine
	Redis   *redis.Client
}

func NewAuthModule(h *handlers.AuthHandler, engine *gin.Engine, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, Engine: engine, Redis: rdb}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimit := middleware.RateLimit(m.Redis, 20, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	m.Engine.GET("/auth/google", loginLimit, m.Handler.Login)
	m.Engine.GET("/auth/google/callback", loginLimit, m.Handler.Callback)

	// Logout is deliberately outside the auth gate: destroying a session you
	// no longer hold a valid token for must still succeed.
	rg.GET("/auth/logout", m.Handler.Logout)
}
