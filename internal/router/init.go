package router

import (
	"github.com/oksasatya/seminar-registration-api/internal/application"
	"github.com/oksasatya/seminar-registration-api/internal/container"
	handlers "github.com/oksasatya/seminar-registration-api/internal/interface/http"
	"github.com/oksasatya/seminar-registration-api/internal/router/modules"
)

func buildRegistrationHandler() *handlers.RegistrationHandler {
	svc := application.NewRegistrationService(container.GetStore(), container.GetLogger())
	return handlers.NewRegistrationHandler(svc, container.GetLogger())
}

func buildAuthHandler() *handlers.AuthHandler {
	cfg := container.GetConfig()
	svc := application.NewAdminService(
		container.GetSessions(),
		container.GetTokens(),
		container.GetLogger(),
		cfg.AdminUsername,
		cfg.AdminPassword,
		cfg.AdminPasswordHash,
		cfg.SessionTTL,
	)
	return handlers.NewAuthHandler(svc, container.GetTokens(), container.GetLogger(), cfg.CookieDomain, cfg.CookieSecure)
}

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	r.Add(modules.NewHealthModule())
	r.Add(modules.NewAuthModule(buildAuthHandler()))
	r.Add(modules.NewRegistrationModule(buildRegistrationHandler(), container.GetSessions(), container.GetTokens()))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
