//go:build unit

package billing_test

import (
	"context"
	"errors"
	"testing"

	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/domain/reservation"
	"fablab-billing/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	calls         int
	reservationID string
	correction    billing.Correction
	err           error
}

func (w *recordingWriter) PersistCorrection(_ context.Context, reservationID string, c billing.Correction) error {
	w.calls++
	w.reservationID = reservationID
	w.correction = c
	return w.err
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	cfg := billing.DefaultConfig()
	canFix := billing.RefreshOptions{CanFix: true}

	t.Run("no discrepancy skips the write", func(t *testing.T) {
		w := &recordingWriter{}
		in := builder.NewBillingInputsBuilder().WithStoredTotal("100.00").Build()

		out := billing.Refresh(ctx, cfg, in, w, canFix)

		assert.Zero(t, w.calls)
		assert.False(t, out.Attempted)
		assert.Equal(t, billing.SyncNotAttempted, out.Remote)
		assert.Equal(t, "Billing recalculated", out.Message)
		assert.False(t, out.Local.Banner.Visible)
	})

	t.Run("discrepancy on actual basis persists rounded operation minutes", func(t *testing.T) {
		w := &recordingWriter{}
		in := builder.NewBillingInputsBuilder().WithStoredTotal("90.00").Build()

		out := billing.Refresh(ctx, cfg, in, w, canFix)

		require.Equal(t, 1, w.calls)
		assert.Equal(t, "res-1", w.reservationID)
		assert.Equal(t, billing.Correction{
			TotalAmount: "100.00",
			Services:    []billing.ServiceMinutes{{ID: "svc-1", Minutes: "120"}},
		}, w.correction)
		assert.True(t, out.Attempted)
		assert.Equal(t, billing.SyncPersisted, out.Remote)
		assert.NoError(t, out.Err)
		assert.Equal(t, "Billing corrected to ₱100.00 based on rounded operation times", out.Message)
	})

	t.Run("discrepancy on booked basis persists rounded booked minutes", func(t *testing.T) {
		w := &recordingWriter{}
		in := builder.NewBillingInputsBuilder().
			WithStatus(reservation.StatusPendingAdminApproval).
			WithServices(builder.Line("svc-1", "Laser Cutting", "Laser Cutter", 45, "")).
			WithStoredTotal("10.00").
			Build()

		out := billing.Refresh(ctx, cfg, in, w, canFix)

		require.Equal(t, 1, w.calls)
		assert.Equal(t, "50.00", w.correction.TotalAmount)
		assert.Equal(t, []billing.ServiceMinutes{{ID: "svc-1", Minutes: "60"}}, w.correction.Services)
		assert.Contains(t, out.Message, "rounded booked times")
	})

	t.Run("failed write keeps the local result", func(t *testing.T) {
		w := &recordingWriter{err: errors.New("connection reset")}
		in := builder.NewBillingInputsBuilder().WithStoredTotal("90.00").Build()

		out := billing.Refresh(ctx, cfg, in, w, canFix)

		assert.Equal(t, 1, w.calls)
		assert.Equal(t, billing.SyncFailed, out.Remote)
		assert.Equal(t, "connection reset", out.ErrorMessage())
		assert.Equal(t, "₱100.00", out.Local.Summary.TotalDisplay)
		assert.True(t, out.Local.Banner.Visible)
		assert.Equal(t, "Recalculated ₱100.00 locally but failed to save: connection reset", out.Message)
	})

	t.Run("write is skipped when it cannot happen", func(t *testing.T) {
		discrepant := builder.NewBillingInputsBuilder().WithStoredTotal("90.00")

		cases := []struct {
			name string
			in   billing.Inputs
			w    *recordingWriter
			opts billing.RefreshOptions
		}{
			{name: "caller cannot fix", in: discrepant.Build(), w: &recordingWriter{}, opts: billing.RefreshOptions{}},
			{name: "unknown reservation", in: builder.NewBillingInputsBuilder().WithStoredTotal("90.00").WithReservationID("  ").Build(), w: &recordingWriter{}, opts: canFix},
			{name: "no stored total", in: builder.NewBillingInputsBuilder().Build(), w: &recordingWriter{}, opts: canFix},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				out := billing.Refresh(ctx, cfg, tc.in, tc.w, tc.opts)
				assert.Zero(t, tc.w.calls)
				assert.Equal(t, billing.SyncNotAttempted, out.Remote)
				assert.Empty(t, out.ErrorMessage())
				assert.Equal(t, "₱100.00", out.Local.Summary.TotalDisplay)
			})
		}
	})

	t.Run("nil writer", func(t *testing.T) {
		in := builder.NewBillingInputsBuilder().WithStoredTotal("90.00").Build()
		out := billing.Refresh(ctx, cfg, in, nil, canFix)
		assert.False(t, out.Attempted)
		assert.True(t, out.Local.Reconciliation.HasDiscrepancy)
	})

	t.Run("writer func adapter", func(t *testing.T) {
		var got billing.Correction
		w := billing.WriterFunc(func(_ context.Context, _ string, c billing.Correction) error {
			got = c
			return nil
		})
		in := builder.NewBillingInputsBuilder().WithStoredTotal("0").Build()

		out := billing.Refresh(ctx, cfg, in, w, canFix)

		assert.Equal(t, billing.SyncPersisted, out.Remote)
		assert.Equal(t, "100.00", got.TotalAmount)
	})
}

func TestRefresh_Idempotent(t *testing.T) {
	cfg := billing.DefaultConfig()
	in := builder.NewBillingInputsBuilder().WithStoredTotal("90.00").Build()

	first := billing.Refresh(context.Background(), cfg, in, nil, billing.RefreshOptions{})
	second := billing.Refresh(context.Background(), cfg, in, nil, billing.RefreshOptions{})

	assert.Equal(t, first.Local.Summary, second.Local.Summary)
	assert.Equal(t, first.Local.Correction(), second.Local.Correction())
}
