package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/seminar-registration-api/internal/container"
)

type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", func(c *gin.Context) {
		cfg := container.GetConfig()
		c.JSON(http.StatusOK, gin.H{"status": "ok", "app": cfg.AppName, "env": cfg.Env})
	})
}
