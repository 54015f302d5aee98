// Package config provides environment-driven configuration for the engine.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds everything the engine needs to talk to its collaborators.
type Config struct {
	// DatabaseURL is required by commands that touch the document store.
	DatabaseURL string `env:"DATABASE_URL"`

	// Embedding provider
	GeminiAPIKey   string `env:"GEMINI_API_KEY"`
	EmbeddingModel string `env:"EMBEDDING_MODEL" envDefault:"text-embedding-004"`

	// Optional Redis fit cache; the PostgreSQL store is used when unset.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Matching knobs
	MatchThreshold float64 `env:"MATCH_THRESHOLD" envDefault:"0.72"`

	Debug bool `env:"DEBUG" envDefault:"false"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges that the env tags cannot express.
func (c *Config) Validate() error {
	if c.MatchThreshold < 0 || c.MatchThreshold > 1 {
		return fmt.Errorf("config error: MATCH_THRESHOLD must be in [0,1], got %v", c.MatchThreshold)
	}
	return nil
}
