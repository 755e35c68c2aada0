package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/heelmeals/nutritrack/internal/interface/http"
	"github.com/heelmeals/nutritrack/internal/interface/middleware"
	"github.com/heelmeals/nutritrack/internal/infrastructure/session"
)

type NutritionModule struct {
	Handler    *handlers.NutritionHandler
	Sessions   session.Store
	CookieName string
	Redis      *redis.Client
}

func NewNutritionModule(h *handlers.NutritionHandler, sessions session.Store, cookieName string, rdb *redis.Client) *NutritionModule {
	return &NutritionModule{Handler: h, Sessions: sessions, CookieName: cookieName, Redis: rdb}
}

func (m *NutritionModule) Register(rg *gin.RouterGroup) {
	auth := middleware.Auth(m.Sessions, m.CookieName)
	limit := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), nil)

	rg.POST("/nutrition/log", auth, limit, m.Handler.AppendLog)
	rg.GET("/nutrition/logs", auth, limit, m.Handler.ListLogs)
}
