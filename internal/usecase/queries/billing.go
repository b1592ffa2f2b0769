package queries

//go:generate mockgen -source=billing.go -destination=../../../tests/mock/queries/billing_mock.go -package=queriesmock

import (
	"context"

	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/domain/user"
	"fablab-billing/internal/infra"
	"fablab-billing/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.ErrReservationNotFound
	ErrReservationAccess   = errs.ErrReservationAccess
)

type BillingReadStore interface {
	FindInputs(ctx context.Context, reservationID uuid.UUID) (*BillingInputsView, error)
}

type BillingQueries interface {
	GetInputs(ctx context.Context, reservationID uuid.UUID, actor user.Actor) (*BillingInputsView, error)
	GetBilling(ctx context.Context, reservationID uuid.UUID, actor user.Actor) (*BillingView, error)
}

type billingQueriesImpl struct {
	store   BillingReadStore
	pricing PricingQueries
	cfg     billing.Config
}

func NewBillingQueries(store BillingReadStore, pricing PricingQueries, cfg billing.Config) BillingQueries {
	return &billingQueriesImpl{store: store, pricing: pricing, cfg: cfg}
}

func (q *billingQueriesImpl) GetInputs(ctx context.Context, reservationID uuid.UUID, actor user.Actor) (*BillingInputsView, error) {
	view, err := q.store.FindInputs(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !actor.CanView(view.Reservation.UserID) {
		return nil, ErrReservationAccess
	}

	rules, err := q.pricing.List(ctx)
	if err != nil {
		return nil, err
	}
	view.Pricing = rules
	return view, nil
}

func (q *billingQueriesImpl) GetBilling(ctx context.Context, reservationID uuid.UUID, actor user.Actor) (*BillingView, error) {
	inputs, err := q.GetInputs(ctx, reservationID, actor)
	if err != nil {
		return nil, err
	}

	return &BillingView{
		ReservationID: inputs.Reservation.ID,
		Status:        inputs.Reservation.Status,
		State:         billing.Recompute(q.cfg, inputs.ToEngine()),
	}, nil
}
