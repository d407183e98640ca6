// Package server orchestrates the driftdns service lifecycle: provider
// construction, zone verification, the HTTP listener and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/driftdns/driftdns/internal/api"
	"github.com/driftdns/driftdns/internal/config"
	"github.com/driftdns/driftdns/internal/dyndns"
	"github.com/driftdns/driftdns/internal/provider"
	"github.com/driftdns/driftdns/internal/provider/clouddns"
	"github.com/driftdns/driftdns/internal/provider/memory"
)

// Runner orchestrates service startup, zone verification and shutdown.
type Runner struct {
	logger   *slog.Logger
	provider provider.Provider
}

// NewRunner creates a new service runner with the given logger.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logger}
}

// SetProvider injects a DNS provider. If nil, RunWithContext builds one from
// the configuration.
func (r *Runner) SetProvider(p provider.Provider) {
	r.provider = p
}

// Run starts the service with the given configuration.
//
// Service lifecycle:
//  1. Build the DNS provider (Cloud DNS or in-memory)
//  2. Verify the managed zone is reachable
//  3. Start the HTTP server (update endpoints + management API)
//  4. Wait for shutdown signal (SIGINT/SIGTERM)
//  5. Gracefully stop the server with timeout
func (r *Runner) Run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return r.RunWithContext(ctx, cfg)
}

// RunWithContext starts the service and blocks until ctx is canceled or the
// HTTP server fails.
func (r *Runner) RunWithContext(ctx context.Context, cfg *config.Config) error {
	ctx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	p := r.provider
	if p == nil {
		built, err := r.buildProvider(ctx, cfg)
		if err != nil {
			return err
		}
		p = built
		r.provider = p
	}

	// Bad credentials or a missing zone fail startup, not the first update.
	if err := p.VerifyZone(ctx); err != nil {
		return fmt.Errorf("verify zone: %w", err)
	}

	stats := dyndns.NewStats()
	updater := dyndns.New(cfg.DNS.Hostname, cfg.DNS.TTL, p, r.logger, stats)
	srv := api.New(cfg, updater, stats, r.logger)

	ln, err := Listen(ctx, srv.Addr(), cfg.Server.ReusePort)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", srv.Addr(), err)
	}

	r.logStartup(cfg, ln.Addr().String())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	// Wait for shutdown or error
	select {
	case <-ctx.Done():
		// shutdown requested via signal
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			cancelRun()
			return err
		}
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildProvider selects the provider backend from the configuration.
func (r *Runner) buildProvider(ctx context.Context, cfg *config.Config) (provider.Provider, error) {
	switch cfg.DNS.Provider {
	case config.ProviderMemory:
		if r.logger != nil {
			r.logger.Warn("using in-memory provider, records are not persisted")
		}
		return memory.New(), nil
	case config.ProviderCloudDNS:
		return clouddns.New(ctx, clouddns.Config{
			Project:         cfg.DNS.Project,
			Zone:            cfg.DNS.Zone,
			CredentialsFile: cfg.DNS.CredentialsFile,
		}, r.logger)
	default:
		return nil, fmt.Errorf("unknown DNS provider %q", cfg.DNS.Provider)
	}
}

// logStartup logs service configuration at startup.
func (r *Runner) logStartup(cfg *config.Config, addr string) {
	if r.logger != nil {
		r.logger.Info(
			"http listening",
			"addr", addr,
			"provider", cfg.DNS.Provider,
			"zone", cfg.DNS.Zone,
			"hostname", cfg.DNS.Hostname,
			"ttl", cfg.DNS.TTL,
			"reuse_port", cfg.Server.ReusePort,
		)
	}
}
