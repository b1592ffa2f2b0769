package queries

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/queries/pricing_mock.go -package=queriesmock

import (
	"context"
	"log/slog"

	"fablab-billing/internal/domain/billing"
)

type PricingReadStore interface {
	List(ctx context.Context) ([]PricingRuleView, error)
}

// PricingCache is an optional read-through cache in front of the rate card.
type PricingCache interface {
	Get(ctx context.Context) ([]PricingRuleView, bool, error)
	Set(ctx context.Context, rules []PricingRuleView) error
	Invalidate(ctx context.Context) error
}

type PricingQueries interface {
	List(ctx context.Context) ([]PricingRuleView, error)
	RateCard(ctx context.Context) ([]billing.PricingRule, error)
}

type pricingQueriesImpl struct {
	store PricingReadStore
	cache PricingCache
}

// NewPricingQueries accepts a nil cache.
func NewPricingQueries(store PricingReadStore, cache PricingCache) PricingQueries {
	return &pricingQueriesImpl{store: store, cache: cache}
}

func (q *pricingQueriesImpl) List(ctx context.Context) ([]PricingRuleView, error) {
	if q.cache != nil {
		rules, ok, err := q.cache.Get(ctx)
		if err != nil {
			slog.Warn("pricing cache read failed", "error", err.Error())
		} else if ok {
			return rules, nil
		}
	}

	rules, err := q.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if rules == nil {
		rules = []PricingRuleView{}
	}

	if q.cache != nil {
		if err := q.cache.Set(ctx, rules); err != nil {
			slog.Warn("pricing cache write failed", "error", err.Error())
		}
	}
	return rules, nil
}

func (q *pricingQueriesImpl) RateCard(ctx context.Context) ([]billing.PricingRule, error) {
	rules, err := q.List(ctx)
	if err != nil {
		return nil, err
	}
	return RateCardFromViews(rules), nil
}
