package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/driftdns/driftdns/internal/api/models"
)

// GetConfig godoc
// @Summary Get current configuration
// @Description Returns the current server configuration (sensitive fields redacted)
// @Tags config
// @Produce json
// @Success 200 {object} models.ConfigResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /config [get]
func (h *Handler) GetConfig(c *gin.Context) {
	if h.cfg == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "config unavailable"})
		return
	}

	resp := models.ConfigResponse{
		Server: h.cfg.Server,
		Auth: models.AuthConfigResponse{
			Username:           h.cfg.Auth.Username,
			PasswordConfigured: h.cfg.Auth.PasswordHash != "",
		},
		DNS:     h.cfg.DNS,
		Logging: h.cfg.Logging,
	}

	c.JSON(http.StatusOK, resp)
}
