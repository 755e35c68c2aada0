package router

import (
	"github.com/heelmeals/nutritrack/internal/application"
	"github.com/heelmeals/nutritrack/internal/container"
	"github.com/heelmeals/nutritrack/internal/infrastructure/postgres"
	handlers "github.com/heelmeals/nutritrack/internal/interface/http"
	"github.com/heelmeals/nutritrack/internal/router/modules"
	"github.com/heelmeals/nutritrack/pkg/helpers"
)

// InitModules wires repositories, services, and handlers from the container
// singletons and adds every module to the registry.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	rdb := container.GetRedis()
	sessions := container.GetSessions()

	userRepo := postgres.NewUserRepository(pool)
	nutritionRepo := postgres.NewNutritionRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)

	var pub application.WelcomePublisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}
	authSvc := application.NewAuthService(userRepo, pub, cfg.MailSendEnabled, logger)
	userSvc := application.NewUserService(userRepo, container.GetGCS(), cfg.GCSBucket, logger)
	nutritionSvc := application.NewNutritionService(nutritionRepo)
	menuSvc := application.NewMenuService(menuRepo)

	cookies := helpers.NewCookieManager(cfg.SessionCookieName, cfg.CookieDomain, cfg.CookieSecure)
	authHandler := handlers.NewAuthHandler(authSvc, container.GetProvider(), sessions, container.GetState(), cookies, logger, cfg.FrontendURL, cfg.SessionTTL)
	userHandler := handlers.NewUserHandler(userSvc, logger)
	nutritionHandler := handlers.NewNutritionHandler(nutritionSvc, logger)
	menuHandler := handlers.NewMenuHandler(menuSvc, logger)
	recHandler := handlers.NewRecommendationHandler()

	r.Add(modules.NewAuthModule(authHandler, r.Engine, rdb))
	r.Add(modules.NewUserModule(userHandler, sessions, cfg.SessionCookieName, rdb))
	r.Add(modules.NewNutritionModule(nutritionHandler, sessions, cfg.SessionCookieName, rdb))
	r.Add(modules.NewMenuModule(menuHandler, sessions, cfg.SessionCookieName, rdb))
	r.Add(modules.NewRecommendationModule(recHandler, sessions, cfg.SessionCookieName))
	r.Add(modules.NewDebugModule(cfg.DebugMetricsEnabled, rdb))
}
