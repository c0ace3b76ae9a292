package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const devSecret = "dev-secret-change-in-production"

// Config holds all process-wide configuration. It is parsed once at startup
// and treated as immutable for the process lifetime.
type Config struct {
	Env         string   `env:"ENV" envDefault:"development"`
	ServerPort  string   `env:"SERVER_PORT" envDefault:"8000"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	Database    Database
	JWT         JWT
	Upstream    Upstream
}

// Database contains PostgreSQL connection parameters.
type Database struct {
	User     string `env:"USER_DB" envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"postgres"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	Name     string `env:"DATABASE" envDefault:"talait"`
}

// DSN builds a postgres connection string from the individual parts.
func (d Database) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// JWT contains token signing parameters.
type JWT struct {
	Secret        string `env:"JWT_SECRET_KEY" envDefault:"dev-secret-change-in-production"`
	Algorithm     string `env:"JWT_ALGORITHM" envDefault:"HS256"`
	ExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"60"`
}

// TTL returns the configured access token lifetime.
func (j JWT) TTL() time.Duration {
	return time.Duration(j.ExpireMinutes) * time.Minute
}

// Upstream contains translation provider parameters. The bearer token is
// required: without it the process cannot serve translate requests at all,
// so its absence is a startup failure rather than a per-call error.
type Upstream struct {
	Token          string `env:"HF_TOKEN,required,notEmpty"`
	TimeoutSeconds int    `env:"HF_TIMEOUT_SECONDS" envDefault:"60"`
}

// Timeout returns the configured upstream HTTP client timeout.
func (u Upstream) Timeout() time.Duration {
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Env == "production" && cfg.JWT.Secret == devSecret {
		return nil, fmt.Errorf("JWT_SECRET_KEY must be set in production environment")
	}

	return &cfg, nil
}
