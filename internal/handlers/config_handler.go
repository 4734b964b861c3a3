package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"back_office/internal/models"
)

// ConfigHandler exposes the runtime settings clients need before they can
// render anything, currently just the display currency.
type ConfigHandler struct {
	config models.AppConfig
}

func NewConfigHandler(config models.AppConfig) *ConfigHandler {
	return &ConfigHandler{config: config}
}

func (h *ConfigHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/config", h.Get)
}

func (h *ConfigHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.config)
}
