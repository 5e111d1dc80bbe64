// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration. Values are layered:
// defaults, then the YAML file, then environment variables, then CLI flags.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Database  DatabaseConfig  `yaml:"database"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Search    SearchConfig    `yaml:"search"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	CORSOrigin      string        `yaml:"cors_origin"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
	File   string `yaml:"file"`
}

// DatabaseConfig points at an optional PostgreSQL seed source.
// When URL is empty the embedded dataset is served.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// DatasetConfig allows replacing the embedded seed documents with a directory.
type DatasetConfig struct {
	SeedDir string `yaml:"seed_dir"`
}

// SearchConfig holds search endpoint settings.
type SearchConfig struct {
	MinQueryLength int `yaml:"min_query_length"`
}

// RateLimitConfig holds token bucket settings for the API.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"`
	DefaultLimit    int           `yaml:"default_limit"`
	DefaultWindow   time.Duration `yaml:"default_window"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
	Whitelist       []string      `yaml:"whitelist"`
	Blacklist       []string      `yaml:"blacklist"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            5000,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			CORSOrigin:      "*",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Search: SearchConfig{
			MinQueryLength: 1,
		},
		RateLimit: RateLimitConfig{
			Enabled:         true,
			DefaultLimit:    600,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
	}
}

// Load reads a YAML configuration file on top of the defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 1 and 65535")
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("config error: 'server.shutdown_timeout' must be non-negative")
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config error: 'log.format' must be text or json")
	}

	// An empty query is always rejected at the API
	if c.Search.MinQueryLength < 1 {
		return fmt.Errorf("config error: 'search.min_query_length' must be at least 1")
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.DefaultLimit <= 0 {
			return fmt.Errorf("config error: 'rate_limit.default_limit' must be positive")
		}
		if c.RateLimit.DefaultWindow <= 0 {
			return fmt.Errorf("config error: 'rate_limit.default_window' must be positive")
		}
	}

	if c.Dataset.SeedDir != "" {
		if info, err := os.Stat(c.Dataset.SeedDir); err != nil || !info.IsDir() {
			return fmt.Errorf("config error: seed directory not found: %s", c.Dataset.SeedDir)
		}
	}

	return nil
}
