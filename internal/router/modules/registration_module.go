package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/seminar-registration-api/internal/interface/http"
	"github.com/oksasatya/seminar-registration-api/internal/interface/middleware"
	"github.com/oksasatya/seminar-registration-api/pkg/helpers"
	"github.com/oksasatya/seminar-registration-api/pkg/session"
)

// RegistrationModule wires the public signup endpoint and the auth-gated
// dashboard endpoints.
// Public: POST /api/registrations
// Protected: GET /api/registrations, GET /api/registrations/export
type RegistrationModule struct {
	Handler  *handlers.RegistrationHandler
	Sessions session.Store
	Tokens   *helpers.TokenManager
}

func NewRegistrationModule(h *handlers.RegistrationHandler, sessions session.Store, tokens *helpers.TokenManager) *RegistrationModule {
	return &RegistrationModule{Handler: h, Sessions: sessions, Tokens: tokens}
}

func (m *RegistrationModule) Register(rg *gin.RouterGroup) {
	rg.POST("/registrations", m.Handler.Create)

	admin := rg.Group("/")
	admin.Use(middleware.RequireAuth(m.Sessions, m.Tokens))
	{
		admin.GET("/registrations", m.Handler.List)
		admin.GET("/registrations/export", m.Handler.Export)
	}
}
