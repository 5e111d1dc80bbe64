package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidYAML(t *testing.T) {
	content := `
server:
  port: 8080
  shutdown_timeout: 5s
log:
  level: debug
  format: json
search:
  min_query_length: 3
rate_limit:
  enabled: false
  whitelist: ["127.0.0.1"]
`
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Search.MinQueryLength)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, []string{"127.0.0.1"}, cfg.RateLimit.Whitelist)

	// Unspecified values keep their defaults
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 600, cfg.RateLimit.DefaultLimit)
	assert.Equal(t, "*", cfg.Server.CORSOrigin)
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(tmpFile, []byte("server: [unclosed"), 0644)
	require.NoError(t, err)

	cfg, err := Load(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestDefault_Valid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"port too low", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"negative shutdown", func(c *Config) { c.Server.ShutdownTimeout = -time.Second }, "shutdown_timeout"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"zero min query length", func(c *Config) { c.Search.MinQueryLength = 0 }, "min_query_length"},
		{"zero rate limit", func(c *Config) { c.RateLimit.DefaultLimit = 0 }, "default_limit"},
		{"zero rate window", func(c *Config) { c.RateLimit.DefaultWindow = 0 }, "default_window"},
		{"missing seed dir", func(c *Config) { c.Dataset.SeedDir = "/nonexistent/seed" }, "seed directory not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_RateLimitDisabledSkipsLimits(t *testing.T) {
	cfg := Default()
	cfg.RateLimit.Enabled = false
	cfg.RateLimit.DefaultLimit = 0

	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ESG_PORT", "9090")
	t.Setenv("ESG_LOG_LEVEL", "warn")
	t.Setenv("DATABASE_URL", "postgres://localhost/esg")
	t.Setenv("ESG_SEARCH_MIN_QUERY_LENGTH", "3")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2,,")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "postgres://localhost/esg", cfg.Database.URL)
	assert.Equal(t, 3, cfg.Search.MinQueryLength)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.DefaultWindow)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.RateLimit.Whitelist)
}

func TestApplyEnv_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("ESG_PORT", "not-a-number")
	t.Setenv("RATE_LIMIT_ENABLED", "maybe")
	t.Setenv("ESG_SHUTDOWN_TIMEOUT", "soon")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
}

func TestParseList(t *testing.T) {
	assert.Nil(t, parseList(""))
	assert.Equal(t, []string{"a", "b"}, parseList(" a ,b, "))
}
