package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/seminar-registration-api/config"
	"github.com/oksasatya/seminar-registration-api/internal/domain/repository"
	"github.com/oksasatya/seminar-registration-api/pkg/helpers"
	"github.com/oksasatya/seminar-registration-api/pkg/session"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client
	store       repository.RegistrationStore
	sessions    session.Store
	tokens      *helpers.TokenManager
)

func SetConfig(c *config.Config)               { cfg = c }
func GetConfig() *config.Config                { return cfg }
func SetLogger(l *logrus.Logger)               { logger = l }
func GetLogger() *logrus.Logger                { return logger }
func SetRedis(r *redis.Client)                 { redisClient = r }
func GetRedis() *redis.Client                  { return redisClient }
func SetStore(s repository.RegistrationStore)  { store = s }
func GetStore() repository.RegistrationStore   { return store }
func SetSessions(s session.Store)              { sessions = s }
func GetSessions() session.Store               { return sessions }
func SetTokens(t *helpers.TokenManager)        { tokens = t }
func GetTokens() *helpers.TokenManager         { return tokens }
