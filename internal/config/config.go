// Package config loads application configuration from environment variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Extract ExtractConfig
	Logging LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// ExtractConfig holds extraction pipeline configuration.
type ExtractConfig struct {
	// Engine selects the default query language: "css" or "xpath".
	Engine string `envconfig:"EXTRACT_ENGINE" default:"css"`
	// Sanitize strips unsafe markup before parsing.
	Sanitize bool `envconfig:"EXTRACT_SANITIZE" default:"false"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
			Host: "0.0.0.0",
		},
		Extract: ExtractConfig{
			Engine:   "css",
			Sanitize: false,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
