package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	platformconfig "github.com/zedpay/ussd-analytics/internal/platform/config"
)

// Config defines the analytics API configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"ANALYTICS_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN string `yaml:"dsn" env:"ANALYTICS_POSTGRES_DSN"`
	} `yaml:"database"`
	Query struct {
		TimeoutSeconds int `yaml:"timeoutSeconds" env:"ANALYTICS_QUERY_TIMEOUT"`
	} `yaml:"query"`
}

// Load reads configuration via the shared helper and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8080"
	cfg.Query.TimeoutSeconds = 10

	if err := platformconfig.Load(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return nil, errors.New("config: database dsn required")
	}
	return cfg, nil
}

// HTTPAddress returns the listen address in :port form.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// QueryTimeout bounds every aggregate query issued for one request.
func (c *Config) QueryTimeout() time.Duration {
	if c.Query.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Query.TimeoutSeconds) * time.Second
}
