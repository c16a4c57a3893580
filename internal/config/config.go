package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"automark/internal/config/configs"
	"automark/internal/core/domain"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Redis     configs.Redis     `envPrefix:"REDIS_"`
	Auth      configs.Auth      `envPrefix:"AUTH_"`
	AI        configs.AI        `envPrefix:"AI_"`
	Execution configs.Execution `envPrefix:"EXECUTION_"`
	Channels  configs.Channels  `envPrefix:"CHANNELS_"`
	Metrics   configs.Metrics   `envPrefix:"METRICS_"`
}

// Load reads configuration from environment variables into a Config. A .env
// file in the working directory is loaded first when present; variables
// already set in the environment win. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values the env parser cannot.
func (c Config) Validate() error {
	switch c.Execution.ActivationPolicy {
	case domain.ActivateAlways, domain.ActivateOnSuccess:
	default:
		return fmt.Errorf("EXECUTION_ACTIVATION_POLICY: unknown policy %q", c.Execution.ActivationPolicy)
	}
	if c.Execution.ChannelTimeout <= 0 {
		return errors.New("EXECUTION_CHANNEL_TIMEOUT must be positive")
	}
	if c.Execution.SyncWindowDays <= 0 {
		return errors.New("EXECUTION_SYNC_WINDOW_DAYS must be positive")
	}
	if p := c.Channels.Email.Provider; p != "" && p != "sendgrid" && p != "mailgun" && p != "smtp" {
		return fmt.Errorf("CHANNELS_EMAIL_PROVIDER: unsupported provider %q", p)
	}
	return nil
}
