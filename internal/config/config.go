package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Resilience ResilienceConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port         string        `env:"SERVER_PORT" envDefault:"8080"`
	Env          string        `env:"SERVER_ENV" envDefault:"development"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
}

// DatabaseConfig holds SurrealDB connection settings
type DatabaseConfig struct {
	Host      string `env:"DB_HOST" envDefault:"localhost"`
	Port      string `env:"DB_PORT" envDefault:"8000"`
	Namespace string `env:"DB_NAMESPACE" envDefault:"worldforge"`
	Database  string `env:"DB_DATABASE" envDefault:"main"`
	User      string `env:"DB_USER" envDefault:"root"`
	Password  string `env:"DB_PASSWORD"`
}

// ResilienceConfig tunes the per-family fault-tolerance policy.
type ResilienceConfig struct {
	FailureRateThreshold float64       `env:"RESILIENCE_FAILURE_RATE" envDefault:"0.5"`
	MinRequests          uint32        `env:"RESILIENCE_MIN_REQUESTS" envDefault:"10"`
	Window               time.Duration `env:"RESILIENCE_WINDOW" envDefault:"10s"`
	OpenTimeout          time.Duration `env:"RESILIENCE_OPEN_TIMEOUT" envDefault:"30s"`
	MaxRetries           uint          `env:"RESILIENCE_MAX_RETRIES" envDefault:"3"`
	RetryInterval        time.Duration `env:"RESILIENCE_RETRY_INTERVAL" envDefault:"100ms"`
	MaxConcurrent        int64         `env:"RESILIENCE_MAX_CONCURRENT" envDefault:"25"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for invalid or missing values.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT must not be empty"))
	}
	switch c.Server.Env {
	case "development", "staging", "production":
	default:
		errs = append(errs, fmt.Errorf("SERVER_ENV must be development, staging, or production (got %q)", c.Server.Env))
	}

	if c.Database.Host == "" {
		errs = append(errs, errors.New("DB_HOST must not be empty"))
	}
	if c.Database.Port == "" {
		errs = append(errs, errors.New("DB_PORT must not be empty"))
	}
	if c.Database.Namespace == "" {
		errs = append(errs, errors.New("DB_NAMESPACE must not be empty"))
	}
	if c.Database.Database == "" {
		errs = append(errs, errors.New("DB_DATABASE must not be empty"))
	}

	if c.Resilience.FailureRateThreshold <= 0 || c.Resilience.FailureRateThreshold > 1 {
		errs = append(errs, fmt.Errorf("RESILIENCE_FAILURE_RATE must be in (0, 1] (got %v)", c.Resilience.FailureRateThreshold))
	}
	if c.Resilience.MaxConcurrent < 1 {
		errs = append(errs, fmt.Errorf("RESILIENCE_MAX_CONCURRENT must be at least 1 (got %d)", c.Resilience.MaxConcurrent))
	}
	if c.Resilience.OpenTimeout <= 0 {
		errs = append(errs, errors.New("RESILIENCE_OPEN_TIMEOUT must be positive"))
	}

	return errors.Join(errs...)
}
