package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DatabaseURL   string        `koanf:"database_url" validate:"required"`
	HTTPAddr      string        `koanf:"http_addr" validate:"required"`
	LogLevel      string        `koanf:"log_level" validate:"oneof=debug info warn error"`
	Env           string        `koanf:"env" validate:"oneof=dev prod"` // dev|prod
	SentryDSN     string        `koanf:"sentry_dsn"`
	DBTimeout     time.Duration `koanf:"db_timeout" validate:"gt=0"`
	SlowQuery     time.Duration `koanf:"slow_query"`
	StatsInterval time.Duration `koanf:"stats_interval" validate:"gt=0"`
	SeedDemo      bool          `koanf:"seed_demo"` // fill an empty catalogue with demo rows
}

func defaults() Config {
	return Config{
		HTTPAddr:      ":8080",
		LogLevel:      "info",
		Env:           "dev",
		DBTimeout:     5 * time.Second,
		SlowQuery:     200 * time.Millisecond,
		StatsInterval: time.Minute,
	}
}

// Load reads the process environment (.env is loaded by main beforehand).
// Keys are the plain upper-case names, e.g. DATABASE_URL, HTTP_ADDR, DB_TIMEOUT.
func Load() (*Config, error) {
	k := koanf.New(".")
	// empty values keep the default instead of blanking it
	provider := env.ProviderWithValue("", ".", func(key, value string) (string, any) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	})
	if err := k.Load(provider, nil); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Env = strings.ToLower(cfg.Env)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
