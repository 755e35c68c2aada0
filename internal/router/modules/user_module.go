package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/heelmeals/nutritrack/internal/interface/http"
	"github.com/heelmeals/nutritrack/internal/interface/middleware"
	"github.com/heelmeals/nutritrack/internal/infrastructure/session"
)

// UserModule registers the profile and preferences routes behind the gate.
type UserModule struct {
	Handler    *handlers.UserHandler
	Sessions   session.Store
	CookieName string
	Redis      *redis.Client
}

func NewUserModule(h *handlers.UserHandler, sessions session.Store, cookieName string, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Sessions: sessions, CookieName: cookieName, Redis: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := middleware.Auth(m.Sessions, m.CookieName)
	limit := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), nil)

	rg.GET("/user", auth, limit, m.Handler.GetUser)
	rg.PUT("/user/profile", auth, limit, m.Handler.UpdateProfile)
	rg.POST("/user/avatar", auth, limit, m.Handler.UploadAvatar)
	rg.GET("/preferences", auth, limit, m.Handler.GetPreferences)
	rg.POST("/preferences", auth, limit, m.Handler.SavePreferences)
}
