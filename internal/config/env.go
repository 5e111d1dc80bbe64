package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnv overrides configuration values from environment variables.
// Unset or unparsable variables leave the current value untouched.
func (c *Config) ApplyEnv() {
	c.Server.Port = getEnvInt("ESG_PORT", c.Server.Port)
	c.Server.ShutdownTimeout = getEnvDuration("ESG_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	c.Server.CORSOrigin = getEnvString("ESG_CORS_ORIGIN", c.Server.CORSOrigin)

	c.Log.Level = getEnvString("ESG_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnvString("ESG_LOG_FORMAT", c.Log.Format)
	c.Log.File = getEnvString("ESG_LOG_FILE", c.Log.File)

	c.Database.URL = getEnvString("DATABASE_URL", c.Database.URL)
	c.Dataset.SeedDir = getEnvString("ESG_SEED_DIR", c.Dataset.SeedDir)
	c.Search.MinQueryLength = getEnvInt("ESG_SEARCH_MIN_QUERY_LENGTH", c.Search.MinQueryLength)

	c.RateLimit.Enabled = getEnvBool("RATE_LIMIT_ENABLED", c.RateLimit.Enabled)
	c.RateLimit.DefaultLimit = getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", c.RateLimit.DefaultLimit)
	c.RateLimit.DefaultWindow = getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", c.RateLimit.DefaultWindow)
	c.RateLimit.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", c.RateLimit.CleanupInterval)
	if list := parseList(os.Getenv("RATE_LIMIT_WHITELIST")); len(list) > 0 {
		c.RateLimit.Whitelist = list
	}
	if list := parseList(os.Getenv("RATE_LIMIT_BLACKLIST")); len(list) > 0 {
		c.RateLimit.Blacklist = list
	}
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseList parses a comma-separated list, dropping blanks.
func parseList(list string) []string {
	if list == "" {
		return nil
	}

	var result []string
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
