// Package config loads the process configuration from the environment once at
// startup. The resulting value is immutable and passed explicitly to the
// components that need it; nothing reads the environment after Load returns.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	// AppEnv is one of development, production or test.
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	// Port and Host form the listen address.
	Port int    `envconfig:"PORT" default:"8080"`
	Host string `envconfig:"HOST" default:"localhost"`

	// AppOrigin is the single origin allowed by the CORS policy.
	AppOrigin string `envconfig:"APP_ORIGIN" default:"http://localhost:3000"`

	// DatabaseDSN is the store connection string. Absence is fatal at startup.
	DatabaseDSN string `envconfig:"DATABASE_DSN" required:"true"`

	// RunMigrations enables schema auto-migration on startup.
	RunMigrations bool `envconfig:"RUN_MIGRATIONS" default:"false"`

	// RedisAddr is optional; when empty the rate limiter is disabled.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	// RegisterRateLimit allows this many /register calls per client IP per window.
	RegisterRateLimit  int           `envconfig:"REGISTER_RATE_LIMIT" default:"10"`
	RegisterRateWindow time.Duration `envconfig:"REGISTER_RATE_WINDOW" default:"1m"`

	// HTTP server timeouts; the core operation defines no timeout of its own.
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	// envconfig treats a set-but-empty required variable as present.
	if cfg.DatabaseDSN == "" {
		return Config{}, fmt.Errorf("required environment variable DATABASE_DSN is empty")
	}
	switch cfg.AppEnv {
	case "development", "production", "test":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q: must be development, production or test", cfg.AppEnv)
	}
	return cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
