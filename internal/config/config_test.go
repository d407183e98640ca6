package config

import (
	"strings"
	"testing"
)

// setRequiredEnv seeds the minimum environment for Load to succeed and
// clears optional knobs that may leak in from the invoking shell.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvUsername, "u")
	t.Setenv(EnvPassword, "pbkdf2:sha256:1000$salt$deadbeef")
	t.Setenv(EnvZone, "example-zone")
	t.Setenv(EnvHostname, "host.example.com")
	t.Setenv(EnvProject, "my-project")

	optional := []string{
		EnvProjectAlt, EnvTTL, EnvProvider, EnvHost, EnvPort, EnvPlatformPort,
		EnvCredentials, EnvAPIKey, EnvReusePort, EnvJSONLogs, EnvLogLevel,
	}
	for _, k := range optional {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.DNS.TTL != 300 {
		t.Errorf("expected default TTL 300, got %d", cfg.DNS.TTL)
	}
	if cfg.DNS.Provider != ProviderCloudDNS {
		t.Errorf("expected provider %q, got %q", ProviderCloudDNS, cfg.DNS.Provider)
	}
	if cfg.DNS.Hostname != "host.example.com" {
		t.Errorf("unexpected hostname %q", cfg.DNS.Hostname)
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("expected level INFO, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Structured {
		t.Error("expected plain logging by default")
	}
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(EnvZone, "")
	t.Setenv(EnvProject, "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing variables")
	}
	msg := err.Error()
	if !strings.Contains(msg, EnvZone) {
		t.Errorf("error should name %s: %v", EnvZone, err)
	}
	if !strings.Contains(msg, EnvProject) {
		t.Errorf("error should name %s: %v", EnvProject, err)
	}
	if strings.Contains(msg, EnvUsername) {
		t.Errorf("error should not name variables that are set: %v", err)
	}
}

func TestLoadProjectAlias(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(EnvProject, "")
	t.Setenv(EnvProjectAlt, "alias-project")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DNS.Project != "alias-project" {
		t.Errorf("expected project from %s, got %q", EnvProjectAlt, cfg.DNS.Project)
	}
}

func TestLoadTTL(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"600", 600},
		{"5", 30},     // clamped up
		{"999999", 86400}, // clamped down
		{"-1", 30},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(EnvTTL, tt.raw)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.DNS.TTL != tt.want {
				t.Errorf("TTL %q: got %d, want %d", tt.raw, cfg.DNS.TTL, tt.want)
			}
		})
	}
}

func TestLoadTTLNotANumber(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(EnvTTL, "five minutes")

	if _, err := Load(); err == nil {
		t.Error("expected error for non-numeric TTL")
	}
}

func TestLoadPortPrecedence(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(EnvPlatformPort, "7000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("expected platform PORT 7000, got %d", cfg.Server.Port)
	}

	t.Setenv(EnvPort, "9000")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected %s to win, got %d", EnvPort, cfg.Server.Port)
	}
}

func TestLoadInvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(EnvPort, "not-a-port")

	if _, err := Load(); err == nil {
		t.Error("expected error for non-numeric port")
	}

	t.Setenv(EnvPort, "70000")
	if _, err := Load(); err == nil {
		t.Error("expected error for out-of-range port")
	}
}

func TestLoadPlaintextPasswordRejected(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(EnvPassword, "hunter2")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for plaintext password")
	}
	if !strings.Contains(err.Error(), "hash") {
		t.Errorf("error should point at hashing: %v", err)
	}
}

func TestLoadHostnameTrailingDot(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(EnvHostname, "host.example.com.")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DNS.Hostname != "host.example.com" {
		t.Errorf("expected trailing dot trimmed, got %q", cfg.DNS.Hostname)
	}
}

func TestLoadLogging(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvJSONLogs, "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("expected level DEBUG, got %s", cfg.Logging.Level)
	}
	if !cfg.Logging.Structured || cfg.Logging.StructuredFormat != "json" {
		t.Errorf("expected structured JSON logging, got %+v", cfg.Logging)
	}
}

func TestLoadProviderSelection(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(EnvProvider, "MEMORY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DNS.Provider != ProviderMemory {
		t.Errorf("expected provider %q, got %q", ProviderMemory, cfg.DNS.Provider)
	}

	t.Setenv(EnvProvider, "route53")
	if _, err := Load(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		raw  string
		def  bool
		want bool
	}{
		{"1", false, true},
		{"true", false, true},
		{"yes", false, true},
		{"y", false, true},
		{"on", false, true},
		{"TRUE", false, true},
		{"0", true, false},
		{"false", true, false},
		{"no", true, false},
		{"n", true, false},
		{"off", true, false},
		{"FALSE", true, false},
		{"invalid", true, true},
		{"invalid", false, false},
		{"", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := envBool(tt.raw, tt.def)
			if got != tt.want {
				t.Errorf("envBool(%q, %v) = %v, want %v", tt.raw, tt.def, got, tt.want)
			}
		})
	}
}
