package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/heelmeals/nutritrack/internal/interface/http"
	"github.com/heelmeals/nutritrack/internal/interface/middleware"
	"github.com/heelmeals/nutritrack/internal/infrastructure/session"
)

type RecommendationModule struct {
	Handler    *handlers.RecommendationHandler
	Sessions   session.Store
	CookieName string
}

func NewRecommendationModule(h *handlers.RecommendationHandler, sessions session.Store, cookieName string) *RecommendationModule {
	return &RecommendationModule{Handler: h, Sessions: sessions, CookieName: cookieName}
}

func (m *RecommendationModule) Register(rg *gin.RouterGroup) {
	auth := middleware.Auth(m.Sessions, m.CookieName)
	rg.GET("/recommendations", auth, m.Handler.Get)
}
