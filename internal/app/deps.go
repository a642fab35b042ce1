package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	"career-advisor/internal/cache"
	"career-advisor/internal/career"
	"career-advisor/internal/config"
	"career-advisor/internal/llm"
	"career-advisor/internal/logger"
	"career-advisor/internal/store"
)

// Deps bundles common runtime dependencies for the gateway.
type Deps struct {
	Config  config.Config
	Log     *slog.Logger
	Cache   cache.Cache
	Store   store.Store
	LLM     llm.Client
	Advisor *career.Advisor
}

// Build loads env, config, and shared components.
// Redis and Postgres are optional: when unset or unreachable the no-op versions are used.
func Build(ctx context.Context) (Deps, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Deps{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	st, err := buildStore(ctx, cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize store: %w", err)
	}
	c := buildCache(cfg, log)
	client := buildLLM(cfg, log)

	return Deps{
		Config:  cfg,
		Log:     log,
		Cache:   c,
		Store:   st,
		LLM:     client,
		Advisor: career.NewAdvisor(client, c, st, time.Duration(cfg.CacheTTL)*time.Second, log),
	}, nil
}

// Close releases the cache and store connections.
func (d Deps) Close() error {
	return errors.Join(d.Cache.Close(), d.Store.Close())
}

func buildStore(ctx context.Context, cfg config.Config, log *slog.Logger) (store.Store, error) {
	if cfg.DBURL == "" {
		log.Info("DB_URL not set; analysis history disabled")
		return store.NewNoOpStore(), nil
	}
	db, err := store.NewPostgres(ctx, cfg.DBURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Postgres: %w", err)
	}
	log.Info("using Postgres store")
	return db, nil
}

func buildCache(cfg config.Config, log *slog.Logger) cache.Cache {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set; result cache disabled")
		return cache.NewNoOpCache()
	}
	rc, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Warn("redis unavailable; result cache disabled", "err", err)
		return cache.NewNoOpCache()
	}
	log.Info("using Redis cache", "addr", cfg.RedisAddr, "ttl_seconds", cfg.CacheTTL)
	return rc
}

func buildLLM(cfg config.Config, log *slog.Logger) llm.Client {
	if cfg.APIKey == "" {
		log.Warn("OPENROUTER_API_KEY is not set; every analysis will fall back to empty results")
	}
	log.Info("using OpenAI-compatible LLM client", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModel)
	return llm.NewOpenAIClient(llm.Options{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.LLMBaseURL,
		Model:       cfg.LLMModel,
		MaxTokens:   cfg.LLMMaxTokens,
		Temperature: cfg.LLMTemperature,
		Timeout:     cfg.LLMTimeout,
		Log:         log,
	})
}
