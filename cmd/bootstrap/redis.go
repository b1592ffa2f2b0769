package bootstrap

import (
	"context"
	"log/slog"

	"fablab-billing/internal/infra/cache"
	"fablab-billing/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis returns nil when REDIS_ADDR is unset; the pricing cache is then disabled.
func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	rdb, err := cache.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	if rdb == nil {
		slog.Info("redis not configured, pricing cache disabled")
		return nil, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			slog.Info("closing redis client")
			return rdb.Close()
		},
	})

	return rdb, nil
}
