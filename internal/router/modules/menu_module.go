package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/heelmeals/nutritrack/internal/interface/http"
	"github.com/heelmeals/nutritrack/internal/interface/middleware"
	"github.com/heelmeals/nutritrack/internal/infrastructure/session"
)

type MenuModule struct {
	Handler    *handlers.MenuHandler
	Sessions   session.Store
	CookieName string
	Redis      *redis.Client
}

func NewMenuModule(h *handlers.MenuHandler, sessions session.Store, cookieName string, rdb *redis.Client) *MenuModule {
	return &MenuModule{Handler: h, Sessions: sessions, CookieName: cookieName, Redis: rdb}
}

func (m *MenuModule) Register(rg *gin.RouterGroup) {
	auth := middleware.Auth(m.Sessions, m.CookieName)
	limit := middleware.RateLimit(m.Redis, 240, time.Minute, middleware.KeyByUserID(), nil)

	rg.GET("/menu-items", auth, limit, m.Handler.List)
}
