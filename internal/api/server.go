// Package api provides the HTTP surface of driftdns: the dyndns2 update
// endpoints and the management REST API, served by one Gin-based HTTP
// server on a single listener.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/driftdns/driftdns/internal/api/handlers"
	"github.com/driftdns/driftdns/internal/api/middleware"
	"github.com/driftdns/driftdns/internal/config"
	"github.com/driftdns/driftdns/internal/dyndns"
)

// Server is the driftdns HTTP server.
//
// Security note: the update endpoints enforce Basic auth, the management
// endpoints only check the optional API key. Do not expose the API to
// untrusted networks without one.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

func New(cfg *config.Config, updater *dyndns.Updater, stats *dyndns.Stats, logger *slog.Logger) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}
	if stats == nil {
		stats = dyndns.NewStats()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.SlogRequestLogger(logger))

	h := handlers.New(cfg, updater, stats, logger)
	RegisterRoutes(engine, h, cfg, stats)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{cfg: cfg, logger: logger, engine: engine, httpServer: httpServer}
}

func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Serve accepts connections on ln. The runner uses this to hand over a
// listener that was opened with SO_REUSEPORT.
func (s *Server) Serve(ln net.Listener) error {
	return s.httpServer.Serve(ln)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
