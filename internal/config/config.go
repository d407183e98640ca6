// Package config loads and validates driftdns configuration.
//
// Everything comes from the environment, read once at process start. The
// resulting Config is immutable for the process lifetime and is passed
// explicitly to consumers; nothing reads ad hoc globals after boot.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/driftdns/driftdns/internal/helpers"
)

// Environment variables. The DYNDNS_/DNS_/GCP_ names are the deployment
// contract shared with the hosted predecessor of this service; DRIFTDNS_
// names tune the service itself.
const (
	EnvUsername   = "DYNDNS_USERNAME"
	EnvPassword   = "DYNDNS_PASSWORD"
	EnvZone       = "DNS_ZONE"
	EnvHostname   = "DNS_HOSTNAME"
	EnvTTL        = "DNS_TTL"
	EnvProject    = "GCP_PROJECT"
	EnvProjectAlt = "PROJECT_ID"
	EnvProvider   = "DNS_PROVIDER"

	EnvHost         = "DRIFTDNS_HOST"
	EnvPort         = "DRIFTDNS_PORT"
	EnvPlatformPort = "PORT"
	EnvCredentials  = "DRIFTDNS_CREDENTIALS"
	EnvAPIKey       = "DRIFTDNS_API_KEY"
	EnvReusePort    = "DRIFTDNS_REUSE_PORT"
	EnvJSONLogs     = "DRIFTDNS_JSON_LOGS"
	EnvLogLevel     = "LOG_LEVEL"
)

// TTL bounds in seconds. Out-of-range values are clamped, not rejected.
const (
	DefaultTTL = 300
	minTTL     = 30
	maxTTL     = 86400
)

// Providers selectable via DNS_PROVIDER.
const (
	ProviderCloudDNS = "clouddns"
	ProviderMemory   = "memory"
)

// Load reads the environment into a Config and validates it.
//
// Missing required variables are collected and reported together, so a fresh
// deployment sees every missing name at once instead of one per restart.
func Load() (*Config, error) {
	cfg := &Config{
		Server:  ServerConfig{Host: "0.0.0.0", Port: 8080},
		DNS:     DNSConfig{Provider: ProviderCloudDNS, TTL: DefaultTTL},
		Logging: LoggingConfig{Level: "INFO"},
	}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}

	cfg.Auth.Username = req(EnvUsername)
	cfg.Auth.PasswordHash = req(EnvPassword)
	cfg.DNS.Zone = req(EnvZone)
	cfg.DNS.Hostname = req(EnvHostname)

	// GCP_PROJECT, with PROJECT_ID as the legacy alias.
	cfg.DNS.Project = strings.TrimSpace(os.Getenv(EnvProject))
	if cfg.DNS.Project == "" {
		cfg.DNS.Project = strings.TrimSpace(os.Getenv(EnvProjectAlt))
	}
	if cfg.DNS.Project == "" {
		missing = append(missing, EnvProject)
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if raw := strings.TrimSpace(os.Getenv(EnvTTL)); raw != "" {
		ttl, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", EnvTTL, raw)
		}
		cfg.DNS.TTL = ttl
	}

	if v := strings.TrimSpace(os.Getenv(EnvProvider)); v != "" {
		cfg.DNS.Provider = strings.ToLower(v)
	}
	cfg.DNS.CredentialsFile = strings.TrimSpace(os.Getenv(EnvCredentials))

	if v := strings.TrimSpace(os.Getenv(EnvHost)); v != "" {
		cfg.Server.Host = v
	}
	// DRIFTDNS_PORT wins over the platform-assigned PORT.
	for _, key := range []string{EnvPort, EnvPlatformPort} {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			continue
		}
		p, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", key, raw)
		}
		cfg.Server.Port = p
		break
	}
	cfg.Server.ReusePort = envBool(os.Getenv(EnvReusePort), false)

	cfg.API.APIKey = strings.TrimSpace(os.Getenv(EnvAPIKey))

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = v
	}
	if envBool(os.Getenv(EnvJSONLogs), false) {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normalizes and checks the configuration.
func (cfg *Config) Validate() error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return errors.New("server port must be 1..65535")
	}

	switch cfg.DNS.Provider {
	case ProviderCloudDNS, ProviderMemory:
	default:
		return fmt.Errorf("unknown DNS provider %q (want %q or %q)", cfg.DNS.Provider, ProviderCloudDNS, ProviderMemory)
	}

	// The allowed hostname is matched without the FQDN trailing dot.
	cfg.DNS.Hostname = strings.TrimSuffix(strings.TrimSpace(cfg.DNS.Hostname), ".")
	if cfg.DNS.Hostname == "" {
		return errors.New("DNS hostname is empty")
	}

	if cfg.DNS.TTL == 0 {
		cfg.DNS.TTL = DefaultTTL
	}
	cfg.DNS.TTL = helpers.ClampInt64(cfg.DNS.TTL, minTTL, maxTTL)

	// A plaintext value here can never verify; every hash contains '$'.
	if !strings.Contains(cfg.Auth.PasswordHash, "$") {
		return errors.New("DYNDNS_PASSWORD must be a password hash (generate one with passhash), not a plaintext password")
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	return nil
}

// envBool interprets common boolean spellings; unknown values fall back to def.
func envBool(raw string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
