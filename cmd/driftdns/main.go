package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/driftdns/driftdns/internal/config"
	"github.com/driftdns/driftdns/internal/logging"
	"github.com/driftdns/driftdns/internal/server"
)

func main() {
	var (
		host        = flag.String("host", "", "Override bind host")
		port        = flag.Int("port", 0, "Override bind port")
		dnsProvider = flag.String("provider", "", "Override DNS provider (clouddns or memory)")
		credentials = flag.String("credentials", "", "Override path to the service account key file")
		jsonLogs    = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dnsProvider != "" {
		cfg.DNS.Provider = *dnsProvider
	}
	if *credentials != "" {
		cfg.DNS.CredentialsFile = *credentials
	}
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	// Flags may have changed validated fields.
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Configure(logging.Config{
		Level:            cfg.Logging.Level,
		Structured:       cfg.Logging.Structured,
		StructuredFormat: cfg.Logging.StructuredFormat,
		IncludePID:       cfg.Logging.IncludePID,
		ExtraFields:      cfg.Logging.ExtraFields,
	})
	logger.Info("driftdns starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"provider", cfg.DNS.Provider,
		"zone", cfg.DNS.Zone,
		"hostname", cfg.DNS.Hostname,
	)

	runner := server.NewRunner(logger)
	if err := runner.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
		os.Exit(1)
	}
}
