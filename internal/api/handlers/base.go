// Package handlers implements the HTTP endpoint handlers for driftdns.
//
// Update endpoints (dyndns2 protocol, HTTP Basic auth):
//   - GET / - apply an address update
//   - GET /update - apply an address update
//   - GET /nic/update - apply an address update (ddclient default)
//   - GET /v3/update - apply an address update
//
// Management API:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Server statistics (uptime, memory, update counters)
//   - GET /api/v1/config - Current configuration (sensitive values redacted)
//
// Authentication:
//
// Update endpoints require the configured Basic credentials and answer with
// dyndns2 status tokens as plain text. Management endpoints except /health
// support optional API key authentication via the X-API-Key header.
//
// @title driftdns Management API
// @version 1.0
// @description REST API for inspecting the driftdns dynamic DNS service.
//
// @contact.name driftdns
// @contact.url https://github.com/driftdns/driftdns
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"time"

	"github.com/driftdns/driftdns/internal/config"
	"github.com/driftdns/driftdns/internal/dyndns"
)

// Handler contains dependencies for the HTTP handlers.
type Handler struct {
	cfg       *config.Config
	updater   *dyndns.Updater
	stats     *dyndns.Stats
	logger    *slog.Logger
	startTime time.Time
}

// New creates a new Handler around the update pipeline.
func New(cfg *config.Config, updater *dyndns.Updater, stats *dyndns.Stats, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:       cfg,
		updater:   updater,
		stats:     stats,
		logger:    logger,
		startTime: time.Now(),
	}
}
