package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/driftdns/driftdns/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Logger Configuration Tests
// =============================================================================

func TestConfigure_DefaultConfig(t *testing.T) {
	cfg := logging.Config{
		Level: "INFO",
	}

	logger := logging.Configure(cfg)
	require.NotNil(t, logger, "Configure should return a logger")
}

func TestConfigure_AllLogLevels(t *testing.T) {
	levels := []string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR"}

	for _, level := range levels {
		t.Run(level, func(t *testing.T) {
			cfg := logging.Config{Level: level}
			logger := logging.Configure(cfg)
			assert.NotNil(t, logger)
		})
	}
}

func TestConfigure_CaseInsensitiveLevel(t *testing.T) {
	levels := []string{"debug", "Debug", "DEBUG", "DeBuG"}

	for _, level := range levels {
		t.Run(level, func(t *testing.T) {
			cfg := logging.Config{Level: level}
			logger := logging.Configure(cfg)
			assert.NotNil(t, logger)
		})
	}
}

func TestConfigure_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.Config{Level: "INVALID", Output: &buf}
	logger := logging.Configure(cfg)
	require.NotNil(t, logger, "Invalid level should still return a logger")

	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigure_StructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.Config{
		Level:            "INFO",
		Structured:       true,
		StructuredFormat: "json",
		Output:           &buf,
	}

	logger := logging.Configure(cfg)
	require.NotNil(t, logger)

	logger.Info("update applied", "hostname", "host.example.com")
	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(line, "{"), "JSON handler should emit JSON objects: %s", line)
	assert.Contains(t, line, `"hostname":"host.example.com"`)
}

func TestConfigure_StructuredText(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.Config{
		Level:            "INFO",
		Structured:       true,
		StructuredFormat: "text",
		Output:           &buf,
	}

	logger := logging.Configure(cfg)
	require.NotNil(t, logger)

	logger.Info("update applied")
	assert.Contains(t, buf.String(), "msg=")
}

func TestConfigure_WithExtraFields(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.Config{
		Level: "INFO",
		ExtraFields: map[string]string{
			"app": "driftdns",
		},
		Output: &buf,
	}

	logger := logging.Configure(cfg)
	require.NotNil(t, logger)

	logger.Info("starting")
	assert.Contains(t, buf.String(), "app=driftdns")
}

func TestConfigure_WithPID(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.Config{
		Level:      "INFO",
		IncludePID: true,
		Output:     &buf,
	}

	logger := logging.Configure(cfg)
	require.NotNil(t, logger)

	logger.Info("starting")
	assert.Contains(t, buf.String(), "pid=")
}

func TestConfigure_EmptyLevel(t *testing.T) {
	cfg := logging.Config{Level: ""}
	logger := logging.Configure(cfg)
	assert.NotNil(t, logger, "Empty level should default to INFO")
}
