package components

import (
	"fablab-billing/internal/infra/cache"
	"fablab-billing/internal/infra/readstore"
	sqlc "fablab-billing/internal/infra/sqlc/generated"
	"fablab-billing/internal/infra/uow"
	"fablab-billing/internal/pkg/config"
	"fablab-billing/internal/usecase/commands"
	"fablab-billing/internal/usecase/queries"
	"fablab-billing/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	cacheModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Billing
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BillingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBillingReadStore,
			fx.As(new(queries.BillingReadStore)),
		),
		// Pricing
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PricingViewQueries)),
		),
		fx.Annotate(
			readstore.NewPricingReadStore,
			fx.As(new(queries.PricingReadStore)),
		),
		// Survey
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SurveyViewQueries)),
		),
		fx.Annotate(
			readstore.NewSurveyReadStore,
			fx.As(new(queries.SurveyReadStore)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		NewPricingCache,
		func(pc *cache.PricingCache) queries.PricingCache {
			if pc == nil {
				return nil
			}
			return pc
		},
		func(pc *cache.PricingCache) commands.PricingCacheInvalidator {
			if pc == nil {
				return nil
			}
			return pc
		},
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork builds the write repositories per transaction.
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

// NewPricingCache returns nil without a redis client.
func NewPricingCache(rdb *redis.Client, cfg config.Config) *cache.PricingCache {
	if rdb == nil {
		return nil
	}
	return cache.NewPricingCache(rdb, cfg.Redis.PricingCacheTTL)
}
