package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/heelmeals/nutritrack/internal/interface/middleware"
)

// DebugModule exposes process counters on /api/debug/vars when enabled.
type DebugModule struct {
	Enabled bool
	Redis   *redis.Client
}

func NewDebugModule(enabled bool, rdb *redis.Client) *DebugModule {
	return &DebugModule{Enabled: enabled, Redis: rdb}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	if !m.Enabled {
		return
	}
	limit := middleware.RateLimit(m.Redis, 30, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", limit, gin.WrapH(expvar.Handler()))
}
