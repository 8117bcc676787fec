package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/seminar-registration-api/internal/interface/http"
)

// AuthModule wires the operator session endpoints. All three are public:
// login decides for itself, logout and status are no-ops for anonymous callers.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/login", m.Handler.Login)
	rg.POST("/auth/logout", m.Handler.Logout)
	rg.GET("/auth/status", m.Handler.Status)
}
