package config

import (
	"os"
	"strconv"
	"time"

	"statcheck/domain/htest"
	"statcheck/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Defaults DefaultsConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultsConfig holds defaults pre-filled into the form
type DefaultsConfig struct {
	Alpha float64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Defaults: DefaultsConfig{
			Alpha: htest.DefaultAlpha,
		},
	}

	if alphaStr := os.Getenv("DEFAULT_ALPHA"); alphaStr != "" {
		alpha, err := strconv.ParseFloat(alphaStr, 64)
		if err != nil {
			return nil, errors.ConfigInvalid("DEFAULT_ALPHA must be numeric")
		}
		config.Defaults.Alpha = alpha
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the loaded configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.ConfigInvalid("PORT cannot be empty")
	}
	if c.Defaults.Alpha < htest.MinAlpha || c.Defaults.Alpha > htest.MaxAlpha {
		return errors.ConfigInvalid("DEFAULT_ALPHA out of range")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
