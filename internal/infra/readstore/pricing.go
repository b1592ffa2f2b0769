package readstore

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/readstore/pricing_mock.go -package=readstoremock

import (
	"context"

	"fablab-billing/internal/infra"
	sqlc "fablab-billing/internal/infra/sqlc/generated"
	"fablab-billing/internal/pkg/pgconv"
	"fablab-billing/internal/usecase/queries"
)

type PricingViewQueries interface {
	ListServicePricing(ctx context.Context, db sqlc.DBTX) ([]sqlc.ServicePricing, error)
}

type PricingReadStore struct {
	queries PricingViewQueries
	db      sqlc.DBTX
}

func NewPricingReadStore(queries PricingViewQueries, db sqlc.DBTX) *PricingReadStore {
	return &PricingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PricingReadStore) List(ctx context.Context) ([]queries.PricingRuleView, error) {
	rows, err := r.queries.ListServicePricing(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service pricing", err)
	}

	result := make([]queries.PricingRuleView, len(rows))
	for i, row := range rows {
		result[i] = queries.PricingRuleView{
			ServiceName: row.ServiceName,
			CostPerUnit: pgconv.DecimalFromNumeric(row.CostPerUnit),
			Unit:        row.Unit,
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}
