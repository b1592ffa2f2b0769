package repository

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/repository/pricing_mock.go -package=repositorymock

import (
	"context"

	"fablab-billing/internal/domain/pricing"
	"fablab-billing/internal/infra"
	sqlc "fablab-billing/internal/infra/sqlc/generated"
	"fablab-billing/internal/pkg/pgconv"
)

type PricingWriteQueries interface {
	UpsertServicePricing(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertServicePricingParams) error
}

type PricingRepository struct {
	queries PricingWriteQueries
	db      sqlc.DBTX
}

func NewPricingRepository(queries PricingWriteQueries, db sqlc.DBTX) *PricingRepository {
	return &PricingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PricingRepository) Upsert(ctx context.Context, tx sqlc.DBTX, rule *pricing.Rule) error {
	params := sqlc.UpsertServicePricingParams{
		ServiceName: rule.ServiceName(),
		CostPerUnit: pgconv.DecimalToNumeric(rule.CostPerUnit()),
		Unit:        rule.Unit().String(),
		UpdatedAt:   pgconv.TimeToPgtype(rule.UpdatedAt()),
	}
	if err := r.queries.UpsertServicePricing(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to upsert service pricing", err)
	}
	return nil
}
