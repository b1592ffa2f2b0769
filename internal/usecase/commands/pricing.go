package commands

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/commands/pricing_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strings"

	"fablab-billing/internal/domain/pricing"
	"fablab-billing/internal/domain/user"
	"fablab-billing/internal/pkg/clock"
	"fablab-billing/internal/pkg/errs"
	"fablab-billing/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// PricingCacheInvalidator drops cached rate cards after a change.
type PricingCacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type UpsertPricingRequest struct {
	ServiceName string
	CostPerUnit string
	Unit        string
}

type PricingCommands interface {
	Upsert(ctx context.Context, req UpsertPricingRequest, actor user.Actor) (*pricing.Rule, error)
}

type pricingCommandsImpl struct {
	uow   shared.UnitOfWork
	cache PricingCacheInvalidator
	clock clock.Clock
}

// NewPricingCommands accepts a nil cache.
func NewPricingCommands(uow shared.UnitOfWork, cache PricingCacheInvalidator, clk clock.Clock) PricingCommands {
	return &pricingCommandsImpl{uow: uow, cache: cache, clock: clk}
}

func (uc *pricingCommandsImpl) Upsert(ctx context.Context, req UpsertPricingRequest, actor user.Actor) (*pricing.Rule, error) {
	if !actor.IsAdmin() {
		return nil, ErrPricingForbidden
	}

	cost, err := decimal.NewFromString(strings.TrimSpace(req.CostPerUnit))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "cost per unit"), ErrDomainValidation)
	}
	rule, err := pricing.NewRule(req.ServiceName, cost, req.Unit, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Pricing().Upsert(ctx, tx.DB(), rule)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if uc.cache != nil {
		if cerr := uc.cache.Invalidate(ctx); cerr != nil {
			slog.Warn("failed to invalidate pricing cache", "service", rule.ServiceName(), "error", cerr.Error())
		}
	}
	return rule, nil
}
