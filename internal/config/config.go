package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/mindwave-app/mindwave/internal/service"
)

// Config holds all runtime configuration, sourced from the environment.
// Nothing in here is ever embedded as a compile-time constant; the JWT
// secret in particular must be injected at startup.
type Config struct {
	Port             string        `env:"PORT" envDefault:"8080"`
	DatabasePath     string        `env:"DATABASE_PATH" envDefault:"mindwave.db"`
	JWTSecret        string        `env:"JWT_SECRET,required"`
	CookieSecure     bool          `env:"COOKIE_SECURE" envDefault:"true"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	PBKDF2Iterations int           `env:"PBKDF2_ITERATIONS" envDefault:"100000"`
}

// Load reads configuration from the environment, with an optional .env file
// for local development, and validates it.
func Load() (*Config, error) {
	// A missing .env file is fine outside development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	if cfg.PBKDF2Iterations < service.DefaultPBKDF2Iterations {
		return nil, fmt.Errorf("PBKDF2_ITERATIONS must be at least %d, got %d",
			service.DefaultPBKDF2Iterations, cfg.PBKDF2Iterations)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}

	return cfg, nil
}
