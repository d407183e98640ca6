package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/driftdns/driftdns/internal/api/handlers"
	"github.com/driftdns/driftdns/internal/api/middleware"
	"github.com/driftdns/driftdns/internal/config"
	"github.com/driftdns/driftdns/internal/dyndns"

	_ "github.com/driftdns/driftdns/internal/api/docs" // swagger docs
)

// updatePaths are the dyndns2 endpoint aliases. ddclient defaults to
// /nic/update; the others exist for other client implementations.
var updatePaths = []string{"/", "/update", "/nic/update", "/v3/update"}

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config, stats *dyndns.Stats) {
	// dyndns2 endpoints, all behind Basic auth and all the same handler.
	basicAuth := middleware.RequireBasicAuth(cfg.Auth.Username, cfg.Auth.PasswordHash, stats)
	for _, path := range updatePaths {
		r.GET(path, basicAuth, h.Update)
	}

	// Prometheus metrics.
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Health stays open for probes.
	api.GET("/health", h.Health)

	// Optional API key protection for the rest.
	protected := api.Group("")
	if cfg != nil && cfg.API.APIKey != "" {
		protected.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}
	protected.GET("/stats", h.Stats)
	protected.GET("/config", h.GetConfig)
}
