package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"automark/internal/adapter/ai"
	"automark/internal/adapter/channel"
	"automark/internal/adapter/lock"
	"automark/internal/adapter/postgres"
	"automark/internal/adapter/usecase"
	"automark/internal/config"
	"automark/internal/core/port"
	"automark/internal/db"
	"automark/internal/metrics"
)

// app holds the wired dependencies shared by the commands.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	pool    *pgxpool.Pool
	redis   *redis.Client
	repo    *postgres.CampaignRepository
	usecase *usecase.CampaignUseCase
}

// newApp connects to the stores and builds the orchestrator. The caller
// must call Close.
func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: logger}
	if cfg.Metrics.Enabled {
		a.metrics = metrics.New()
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	a.pool = pool
	a.repo = postgres.NewCampaignRepository(pool)

	var locker port.Locker = lock.NewLocalLocker()
	client, err := db.NewRedis(ctx, cfg.Redis)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("redis connection: %w", err)
	}
	if client != nil {
		a.redis = client
		locker = lock.NewRedisLocker(client, cfg.Redis.LockTTL, logger)
		logger.Info("using redis campaign locks")
	} else {
		logger.Warn("redis not configured, campaign locks are local to this process")
	}

	hc := channel.NewHTTPClient(cfg.Execution.ChannelTimeout)
	registry := channel.NewRegistry(cfg.Channels, hc, logger)

	var gen port.TextGenerator
	if cfg.AI.GeminiAPIKey != "" {
		g, err := ai.NewGemini(ctx, cfg.AI, channel.NewHTTPClient(cfg.AI.Timeout), "")
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		gen = g
	} else {
		logger.Warn("AI_GEMINI_API_KEY not set, strategies use canned output")
	}
	strategy := ai.NewStrategyService(gen, cfg.AI.Timeout, a.metrics, logger)

	sender := usecase.Sender{Email: cfg.Channels.Email.FromEmail, Name: cfg.Channels.Email.FromName}
	a.usecase = usecase.NewCampaignUseCase(a.repo, registry, strategy, locker, cfg.Execution, sender, a.metrics, logger)
	return a, nil
}

// Close releases the store connections.
func (a *app) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("redis close error", slog.Any("error", err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
