package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/oksasatya/seminar-registration-api/config"
	"github.com/oksasatya/seminar-registration-api/internal/container"
	"github.com/oksasatya/seminar-registration-api/internal/domain/repository"
	"github.com/oksasatya/seminar-registration-api/internal/infrastructure/memstore"
	"github.com/oksasatya/seminar-registration-api/internal/infrastructure/sheetstore"
	"github.com/oksasatya/seminar-registration-api/internal/interface/middleware"
	"github.com/oksasatya/seminar-registration-api/internal/router"
	"github.com/oksasatya/seminar-registration-api/pkg/helpers"
	"github.com/oksasatya/seminar-registration-api/pkg/session"
	"github.com/oksasatya/seminar-registration-api/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// Record store: ephemeral by default, Google Sheets when configured
	var store repository.RegistrationStore
	switch cfg.StorageBackend {
	case "sheets":
		s, err := sheetstore.New(ctx, cfg.SheetID, cfg.SheetsWorksheet, cfg.SheetsCredentialsJSON, cfg.SheetsAPIKey, cfg.SheetsTimeout, logger)
		if err != nil {
			log.Fatalf("failed to init sheets store: %v", err)
		}
		store = s
		logger.WithField("sheet_id", cfg.SheetID).Info("using google sheets store")
	case "memory":
		store = memstore.New()
		logger.Warn("using in-memory store, registrations are lost on restart")
	default:
		log.Fatalf("unknown STORAGE_BACKEND %q (want memory or sheets)", cfg.StorageBackend)
	}

	// Sessions: redis by default, in-memory for local runs
	var sessions session.Store
	if cfg.SessionBackend == "memory" {
		sessions = session.NewMemoryStore()
		logger.Warn("using in-memory sessions, operators are logged out on restart")
	} else {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()
		container.SetRedis(rdb)
		sessions = session.NewRedisStore(rdb)
	}

	secret := cfg.SessionSecret
	if secret == "" {
		if cfg.Env != "development" {
			log.Fatal("SESSION_SECRET must be set outside development")
		}
		secret = uuid.NewString()
		logger.Warn("SESSION_SECRET not set, sessions will not survive a restart")
	}
	tokens := helpers.NewTokenManager(secret, cfg.SessionTTL)

	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		logger.Warn("no admin credentials configured, operator login is disabled")
	}

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetStore(store)
	container.SetSessions(sessions)
	container.SetTokens(tokens)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
