package container

import (
	"cloud.google.com/go/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/heelmeals/nutritrack/config"
	"github.com/heelmeals/nutritrack/internal/infrastructure/googleauth"
	"github.com/heelmeals/nutritrack/internal/infrastructure/session"
	"github.com/heelmeals/nutritrack/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	gcsClient   *storage.Client

	sessions  session.Store
	provider  googleauth.Provider
	state     *helpers.StateManager
	rabbitPub *helpers.RabbitPublisher
)

func SetConfig(c *config.Config)  { cfg = c }
func GetConfig() *config.Config   { return cfg }
func SetLogger(l *logrus.Logger)  { logger = l }
func GetLogger() *logrus.Logger   { return logger }
func SetPGPool(p *pgxpool.Pool)   { pgPool = p }
func GetPGPool() *pgxpool.Pool    { return pgPool }
func SetRedis(r *redis.Client)    { redisClient = r }
func GetRedis() *redis.Client     { return redisClient }
func SetGCS(s *storage.Client)    { gcsClient = s }
func GetGCS() *storage.Client     { return gcsClient }

func SetSessions(s session.Store)           { sessions = s }
func GetSessions() session.Store            { return sessions }
func SetProvider(p googleauth.Provider)     { provider = p }
func GetProvider() googleauth.Provider      { return provider }
func SetState(m *helpers.StateManager)      { state = m }
func GetState() *helpers.StateManager       { return state }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
