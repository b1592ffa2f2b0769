package bootstrap

import (
	"fmt"
	"log/slog"

	"fablab-billing/internal/infra/db"
	"fablab-billing/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("postgres %s:%s/%s: %w", cfg.DB.Host, cfg.DB.Port, cfg.DB.DBName, err)
	}

	logger.Info("database pool ready",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns)
	lc.Append(fx.StopHook(cleanup))

	return pool, nil
}
