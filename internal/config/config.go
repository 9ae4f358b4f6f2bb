// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the HTTP service settings.
type Config struct {
	Host        string
	Port        string
	MaxUploadMB int64
	LogLevel    string
}

// Load reads configuration from environment variables. A .env file in
// the working directory is merged in first when present; missing
// variables fall back to defaults.
func Load() (*Config, error) {
	// Absence of a .env file is the normal case.
	_ = godotenv.Load()

	cfg := &Config{
		Host:        getEnv("RACIBOARD_HOST", "127.0.0.1"),
		Port:        getEnv("RACIBOARD_PORT", "8080"),
		MaxUploadMB: 50,
		LogLevel:    getEnv("RACIBOARD_LOG_LEVEL", "info"),
	}

	if raw := os.Getenv("RACIBOARD_MAX_UPLOAD_MB"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid RACIBOARD_MAX_UPLOAD_MB: %q", raw)
		}
		cfg.MaxUploadMB = n
	}
	return cfg, nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
