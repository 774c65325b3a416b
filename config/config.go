package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application settings read from the environment.
type Config struct {
	Env             string        `envconfig:"APP_ENV" default:"development"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	CORSOrigins     string        `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	Database Database
	Session  Session
	Health   Health
}

// Database configures the storage handle.
// DATABASE_URL accepts sqlite://<path>, sqlite://:memory: and postgres:// URLs.
type Database struct {
	URL   string `envconfig:"URL" default:"sqlite://task_hub.db"`
	Debug bool   `envconfig:"DEBUG" default:"false"`
}

// Session configures the HTTP session middleware.
type Session struct {
	RedisAddr  string        `envconfig:"REDIS_ADDR"`
	SecretKey  string        `envconfig:"SECRET_KEY"`
	Expiration time.Duration `envconfig:"EXPIRATION" default:"24h"`
}

// Health configures the outbound connectivity probe.
type Health struct {
	ProbeAddr    string        `envconfig:"PROBE_ADDR" default:"google.com:80"`
	ProbeTimeout time.Duration `envconfig:"PROBE_TIMEOUT" default:"2s"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether APP_ENV is production.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}
