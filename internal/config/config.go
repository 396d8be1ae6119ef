package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joeshaw/envdecode"
)

// Config captures the runtime configuration for the application.
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Session  SessionConfig
}

// AppConfig holds settings shared by every binary.
type AppConfig struct {
	Env          string `env:"APP_ENV,default=development" validate:"oneof=development test production"`
	PublicAPIURL string `env:"PUBLIC_API_URL,default=http://localhost:3000/api" validate:"url"`
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr           string `env:"SERVER_ADDR"`
	MetricsEnabled bool   `env:"METRICS_ENABLED,default=true"`
}

// DatabaseConfig contains the database connection settings. An empty URL
// without UseMock runs the application without a database.
type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL"`
	UseMock         bool          `env:"DATABASE_USE_MOCK,default=false"`
	MaxIdleConns    int           `env:"DATABASE_MAX_IDLE_CONNS,default=5" validate:"gte=0"`
	MaxOpenConns    int           `env:"DATABASE_MAX_OPEN_CONNS,default=20" validate:"gte=0"`
	ConnMaxLifetime time.Duration `env:"DATABASE_CONN_MAX_LIFETIME,default=30m" validate:"gte=0"`
	ConnMaxIdleTime time.Duration `env:"DATABASE_CONN_MAX_IDLE_TIME,default=5m" validate:"gte=0"`
}

// Enabled reports whether a database should be opened at all.
func (c DatabaseConfig) Enabled() bool {
	return c.UseMock || strings.TrimSpace(c.URL) != ""
}

// LoggingConfig selects the minimum log level.
type LoggingConfig struct {
	Level string `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
}

// SessionConfig configures the cookie session that stores the theme
// preference.
type SessionConfig struct {
	Lifetime     time.Duration `env:"SESSION_LIFETIME,default=12h" validate:"gt=0"`
	CookieName   string        `env:"SESSION_COOKIE_NAME,default=atelier_session" validate:"required"`
	CookieDomain string        `env:"SESSION_COOKIE_DOMAIN"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE,default=false"`
}

// Load reads the dotenv files of the working directory, decodes the
// environment and validates the result.
func Load() (Config, error) {
	return LoadDir(".")
}

// LoadDir is Load with the dotenv files looked up in dir.
func LoadDir(dir string) (Config, error) {
	if err := loadDotenv(dir, os.Getenv("APP_ENV")); err != nil {
		return Config{}, err
	}

	cfg := Config{}
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode environment: %w", err)
	}

	cfg.Server.Addr = firstNonEmpty(
		cfg.Server.Addr,
		os.Getenv("ADDR"),
		":8080",
	)

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("server address must not be empty")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: invalid configuration: %w", err)
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
