// Package config loads application configuration from an optional YAML
// file with environment variable overrides. Environment values always
// win over file values, file values over defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Search   SearchConfig   `yaml:"search"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig configures the HTTP listener and request handling limits.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

// DatabaseConfig configures the embedded SQLite store. An empty path
// selects the per-user default location under the home directory.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// SearchConfig configures rate limiting for the search URL endpoint.
type SearchConfig struct {
	RateLimit  int           `yaml:"rate_limit"`
	RateWindow time.Duration `yaml:"rate_window"`
}

// LoggingConfig configures the structured logger. Format is "json" for
// machine-readable output or "text" for local development.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file and no
// environment overrides are present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			MaxBodyBytes:    1 << 20,
			AllowedOrigins:  []string{"*"},
		},
		Database: DatabaseConfig{},
		Search: SearchConfig{
			RateLimit:  60,
			RateWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration in three layers: defaults, then the
// YAML file at path (skipped when path is empty or the file does not
// exist), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Addr = GetEnvString("SERVER_ADDR", c.Server.Addr)
	c.Server.RequestTimeout = GetEnvDuration("SERVER_REQUEST_TIMEOUT", c.Server.RequestTimeout)
	c.Server.ShutdownTimeout = GetEnvDuration("SERVER_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	c.Server.MaxBodyBytes = int64(GetEnvInt("SERVER_MAX_BODY_BYTES", int(c.Server.MaxBodyBytes)))
	c.Server.AllowedOrigins = GetEnvStringList("CORS_ALLOWED_ORIGINS", c.Server.AllowedOrigins)
	c.Database.Path = GetEnvString("DB_PATH", c.Database.Path)
	c.Search.RateLimit = GetEnvInt("SEARCH_RATE_LIMIT", c.Search.RateLimit)
	c.Search.RateWindow = GetEnvDuration("SEARCH_RATE_WINDOW", c.Search.RateWindow)
	c.Logging.Level = GetEnvString("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = GetEnvString("LOG_FORMAT", c.Logging.Format)
}

// Validate rejects configurations the server cannot safely run with.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("config: server.addr cannot be empty")
	}
	if err := ValidatePositiveDuration(c.Server.RequestTimeout); err != nil {
		return fmt.Errorf("config: server.request_timeout: %w", err)
	}
	if err := ValidatePositiveDuration(c.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("config: server.shutdown_timeout: %w", err)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	if c.Search.RateLimit <= 0 {
		return fmt.Errorf("config: search.rate_limit must be positive, got %d", c.Search.RateLimit)
	}
	if err := ValidatePositiveDuration(c.Search.RateWindow); err != nil {
		return fmt.Errorf("config: search.rate_window: %w", err)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("config: logging.format must be json or text, got %q", c.Logging.Format)
	}
	return nil
}
