package bootstrap

import (
	"context"
	"log/slog"

	"hotel-backoffice/internal/infra/pms"
	"hotel-backoffice/internal/pkg/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var PMSModule = fx.Module("pms",
	fx.Provide(
		NewRedisClient,
		NewPMSCache,
		NewPMSClient,
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// The PMS cache degrades to memory when redis is down, so a
				// failed ping is not fatal at startup.
				logger.Warn("redis unreachable, PMS cache will fall back to memory", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewPMSCache(client *redis.Client, logger *slog.Logger) pms.Cache {
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("using in-memory PMS cache", "error", err)
		return pms.NewMemoryCache()
	}
	return pms.NewRedisCache(client)
}

func NewPMSClient(cfg config.Config, cache pms.Cache) pms.Client {
	return pms.NewHTTPClient(cfg.PMS, cache)
}
