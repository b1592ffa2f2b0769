//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/domain/reservation"
	"fablab-billing/internal/domain/user"
	"fablab-billing/internal/infra"
	"fablab-billing/internal/usecase/queries"
	"fablab-billing/tests/common/builder"
	queriesmock "fablab-billing/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type billingQueriesFixture struct {
	store   *queriesmock.MockBillingReadStore
	pricing *queriesmock.MockPricingQueries
	queries queries.BillingQueries
}

func newBillingQueriesFixture(t *testing.T) billingQueriesFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBillingReadStore(ctrl)
	pricing := queriesmock.NewMockPricingQueries(ctrl)
	return billingQueriesFixture{
		store:   store,
		pricing: pricing,
		queries: queries.NewBillingQueries(store, pricing, billing.DefaultConfig()),
	}
}

func TestBillingQueries_GetInputs(t *testing.T) {
	ctx := context.Background()
	res := builder.NewReservationBuilder()
	owner := user.NewActor(res.UserID, user.RoleUser)
	stranger := user.NewActor(uuid.New(), user.RoleUser)
	staff := user.NewActor(uuid.New(), user.RoleStaff)
	rateCard := []queries.PricingRuleView{builder.PricingView("Laser Cutting", "50", "hour")}

	t.Run("owner and staff see the inputs with the rate card", func(t *testing.T) {
		for _, actor := range []user.Actor{owner, staff} {
			f := newBillingQueriesFixture(t)
			f.store.EXPECT().FindInputs(ctx, res.ID).Return(res.BuildInputsView(), nil)
			f.pricing.EXPECT().List(ctx).Return(rateCard, nil)

			view, err := f.queries.GetInputs(ctx, res.ID, actor)

			require.NoError(t, err)
			assert.Equal(t, rateCard, view.Pricing)
			assert.Len(t, view.Utilizations, 1)
		}
	})

	t.Run("error: other users are refused before pricing is read", func(t *testing.T) {
		f := newBillingQueriesFixture(t)
		f.store.EXPECT().FindInputs(ctx, res.ID).Return(res.BuildInputsView(), nil)
		f.pricing.EXPECT().List(gomock.Any()).Times(0)

		view, err := f.queries.GetInputs(ctx, res.ID, stranger)

		assert.Nil(t, view)
		assert.ErrorIs(t, err, queries.ErrReservationAccess)
	})

	t.Run("error: unknown reservation", func(t *testing.T) {
		f := newBillingQueriesFixture(t)
		f.store.EXPECT().FindInputs(ctx, res.ID).Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := f.queries.GetInputs(ctx, res.ID, owner)

		assert.ErrorIs(t, err, queries.ErrReservationNotFound)
	})

	t.Run("error: store failure passes through", func(t *testing.T) {
		f := newBillingQueriesFixture(t)
		dbErr := infra.WrapRepoErr("failed to list machine utilizations", errors.New("connection reset"))
		f.store.EXPECT().FindInputs(ctx, res.ID).Return(nil, dbErr)

		_, err := f.queries.GetInputs(ctx, res.ID, owner)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: rate card failure", func(t *testing.T) {
		f := newBillingQueriesFixture(t)
		f.store.EXPECT().FindInputs(ctx, res.ID).Return(res.BuildInputsView(), nil)
		f.pricing.EXPECT().List(ctx).Return(nil, errors.New("pricing unavailable"))

		_, err := f.queries.GetInputs(ctx, res.ID, owner)

		assert.EqualError(t, err, "pricing unavailable")
	})
}

func TestBillingQueries_GetBilling(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes with the current rate card", func(t *testing.T) {
		res := builder.NewReservationBuilder()
		f := newBillingQueriesFixture(t)
		f.store.EXPECT().FindInputs(ctx, res.ID).Return(res.BuildInputsView(), nil)
		f.pricing.EXPECT().List(ctx).Return([]queries.PricingRuleView{builder.PricingView("Laser Cutting", "50", "hour")}, nil)

		view, err := f.queries.GetBilling(ctx, res.ID, user.NewActor(res.UserID, user.RoleUser))

		require.NoError(t, err)
		assert.Equal(t, res.ID, view.ReservationID)
		assert.Equal(t, string(reservation.StatusOngoing), view.Status)
		assert.Equal(t, billing.BasisActual, view.State.Basis)
		assert.Equal(t, "₱100.00", view.State.Summary.TotalDisplay)
		assert.True(t, view.State.Reconciliation.HasDiscrepancy)
		assert.True(t, view.State.Banner.Visible)
	})

	t.Run("rules with unknown units fall back to the listed cost", func(t *testing.T) {
		res := builder.NewReservationBuilder()
		f := newBillingQueriesFixture(t)
		f.store.EXPECT().FindInputs(ctx, res.ID).Return(res.BuildInputsView(), nil)
		f.pricing.EXPECT().List(ctx).Return([]queries.PricingRuleView{builder.PricingView("Laser Cutting", "999", "fortnight")}, nil)

		view, err := f.queries.GetBilling(ctx, res.ID, user.NewActor(uuid.New(), user.RoleAdmin))

		require.NoError(t, err)
		require.Len(t, view.State.Lines, 1)
		assert.Equal(t, billing.PriceFromListedCost, view.State.Lines[0].PriceSource)
		assert.Equal(t, "100.00", view.State.Lines[0].AdjustedCost.StringFixed(2))
	})
}
