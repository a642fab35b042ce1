package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime configuration for the gateway.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LLM
	APIKey         string        `env:"OPENROUTER_API_KEY"`
	LLMBaseURL     string        `env:"LLM_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	LLMModel       string        `env:"LLM_MODEL" envDefault:"openai/gpt-3.5-turbo"`
	LLMMaxTokens   int64         `env:"LLM_MAX_TOKENS" envDefault:"1024"`
	LLMTemperature float64       `env:"LLM_TEMPERATURE" envDefault:"0.1"`
	LLMTimeout     time.Duration `env:"LLM_TIMEOUT" envDefault:"0s"` // 0 keeps the transport default

	// Cache
	RedisAddr     string `env:"REDIS_ADDR"` // empty disables caching
	RedisPassword string `env:"REDIS_PASSWORD"`
	CacheTTL      int    `env:"CACHE_TTL" envDefault:"3600"` // seconds

	// Store
	DBURL string `env:"DB_URL"` // empty disables history
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
