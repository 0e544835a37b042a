package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application, loaded from
// environment variables.
type Config struct {
	Port              string
	AccessLogFile     string
	RateLimit         int
	RateWindowSeconds int
	MetricsEnabled    bool
	MetricsToken      string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		AccessLogFile:     getEnv("ACCESS_LOG", "glowderma-requests.log"),
		RateLimit:         getEnvAsInt("RATE_LIMIT", 15),
		RateWindowSeconds: getEnvAsInt("RATE_WINDOW_SECONDS", 900),
		MetricsEnabled:    getEnvAsBool("METRICS_ENABLED", false),
		MetricsToken:      os.Getenv("METRICS_TOKEN"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if n, err := strconv.Atoi(c.Port); err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid PORT: %s", c.Port)
	}
	if c.RateLimit < 1 {
		return fmt.Errorf("RATE_LIMIT must be positive, got %d", c.RateLimit)
	}
	if c.RateWindowSeconds < 1 {
		return fmt.Errorf("RATE_WINDOW_SECONDS must be positive, got %d", c.RateWindowSeconds)
	}
	if c.AccessLogFile == "" {
		return fmt.Errorf("ACCESS_LOG is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
