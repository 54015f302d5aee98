package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jonathan/jobmatch/internal/config"
	"github.com/jonathan/jobmatch/internal/db"
	"github.com/jonathan/jobmatch/internal/embedding"
	"github.com/jonathan/jobmatch/internal/fit"
	"github.com/jonathan/jobmatch/internal/observability"
)

// runtime bundles the collaborators every command needs.
type runtime struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *db.DB
	embedder embedding.Embedder
}

func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := observability.NewLogger(false, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &runtime{cfg: cfg, logger: logger, store: store, embedder: embedder}, nil
}

func (r *runtime) close() {
	_ = r.embedder.Close()
	if r.store != nil {
		r.store.Close()
	}
	_ = r.logger.Sync()
}

// newEmbedderRuntime builds a runtime without a database connection, for
// commands that only need the embedding provider.
func newEmbedderRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := observability.NewLogger(false, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
	if err != nil {
		return nil, err
	}

	return &runtime{cfg: cfg, logger: logger, embedder: embedder}, nil
}

// fitStore picks the Redis fit cache when configured, the PostgreSQL one
// otherwise.
func (r *runtime) fitStore() fit.Store {
	if r.cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     r.cfg.RedisAddr,
			Password: r.cfg.RedisPassword,
			DB:       r.cfg.RedisDB,
		})
		return fit.NewRedisStore(client)
	}
	return db.NewFitCache(r.store)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
