package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const minSecretLength = 32

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT       JWTConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Scheduler SchedulerConfig
}

type JWTConfig struct {
	Secret                 string `env:"JWT_SECRET"`
	Issuer                 string `env:"JWT_ISSUER,   default=expense-system"`
	Audience               string `env:"JWT_AUDIENCE, default=expense-system"`
	ExpiryMinutes          int    `env:"JWT_EXPIRY_MINUTES,             default=60"`
	RefreshTokenExpiryDays int    `env:"JWT_REFRESH_TOKEN_EXPIRY_DAYS,  default=7"`
}

type PostgresConfig struct {
	URL string `env:"POSTGRES_URL, default=postgres://localhost:5432/expense_system"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type SchedulerConfig struct {
	Workers  int           `env:"SCHEDULER_WORKERS,  default=4"`
	Interval time.Duration `env:"SCHEDULER_INTERVAL, default=1h"`
}

// AccessTokenTTL returns the configured access-token lifetime.
func (c JWTConfig) AccessTokenTTL() time.Duration {
	return time.Duration(c.ExpiryMinutes) * time.Minute
}

// RefreshTokenTTL returns the configured refresh-token lifetime.
func (c JWTConfig) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenExpiryDays) * 24 * time.Hour
}

// Validate enforces the token-option invariants at startup so a
// misconfigured signing setup can never reach the token generator.
func (c JWTConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("jwt: secret is required")
	}
	if len(c.Secret) < minSecretLength {
		return fmt.Errorf("jwt: secret must be at least %d characters", minSecretLength)
	}
	if c.Issuer == "" {
		return fmt.Errorf("jwt: issuer is required")
	}
	if c.Audience == "" {
		return fmt.Errorf("jwt: audience is required")
	}
	if c.ExpiryMinutes <= 0 {
		return fmt.Errorf("jwt: expiry minutes must be greater than 0")
	}
	if c.RefreshTokenExpiryDays <= 0 {
		return fmt.Errorf("jwt: refresh token expiry days must be greater than 0")
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig
// and validates the token options.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.JWT.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
