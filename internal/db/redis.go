package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"automark/internal/config/configs"
)

// NewRedis connects to cfg.URL and verifies the connection. It returns a nil
// client without error when no URL is configured.
func NewRedis(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
