//go:build unit

package billing_test

import (
	"testing"

	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/domain/reservation"
	"fablab-billing/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecompute_EndToEnd(t *testing.T) {
	t.Run("ongoing laser cutting bills rounded operation time", func(t *testing.T) {
		in := builder.NewBillingInputsBuilder().WithStoredTotal("90.00").Build()

		state := billing.Recompute(billing.DefaultConfig(), in)

		require.Len(t, state.Lines, 1)
		line := state.Lines[0]
		assert.Equal(t, billing.BasisActual, state.Basis)
		assert.Equal(t, "Laser Cutter", line.MatchedMachine)
		assert.Equal(t, billing.SourceUtilization, line.TimeSource)
		assert.Equal(t, 90, line.ActualMinutes)
		assert.Equal(t, 120, line.RoundedMinutes)
		assert.Equal(t, 120, line.BilledMinutes)
		assert.Equal(t, billing.UnitHour, line.PricingUnit)
		assert.Equal(t, billing.PriceFromRule, line.PriceSource)
		assert.Equal(t, "100.00", line.AdjustedCost.StringFixed(2))

		assert.Equal(t, "₱100.00", state.Summary.TotalDisplay)
		assert.True(t, state.Reconciliation.HasDiscrepancy)
		assert.True(t, state.Banner.Visible)
		assert.Contains(t, state.Banner.Message, "rounded operation times")
		assert.Contains(t, state.Banner.Message, "₱90.00")
	})

	t.Run("approved reservation bills rounded booked time", func(t *testing.T) {
		in := builder.NewBillingInputsBuilder().
			WithStatus(reservation.StatusApproved).
			WithServices(builder.Line("svc-1", "3D Printing", "Prusa MK4", 45, "")).
			WithUtilizations().
			WithPricing(builder.Rule("3D Printing", "5", billing.UnitMinute)).
			WithStoredTotal("100.00").
			Build()

		state := billing.Recompute(billing.DefaultConfig(), in)

		require.Len(t, state.Lines, 1)
		line := state.Lines[0]
		assert.Equal(t, billing.BasisBooked, state.Basis)
		assert.Equal(t, 45, line.BookedMinutes)
		assert.Equal(t, 60, line.RoundedBookedMinutes)
		assert.Equal(t, 60, line.BilledMinutes)
		assert.Equal(t, "300.00", line.AdjustedCost.StringFixed(2))
		assert.True(t, state.Banner.Visible)
		assert.Contains(t, state.Banner.Message, "rounded booked times")
	})

	t.Run("statuses outside the billing lifecycle cost nothing", func(t *testing.T) {
		for _, status := range []reservation.Status{reservation.StatusCancelled, reservation.StatusRejected, "Draft"} {
			in := builder.NewBillingInputsBuilder().WithStatus(status).Build()
			state := billing.Recompute(billing.DefaultConfig(), in)
			assert.Equal(t, billing.BasisNone, state.Basis, status)
			assert.True(t, state.Reconciliation.CalculatedTotal.IsZero(), status)
			assert.Equal(t, 90, state.Lines[0].ActualMinutes, "minutes stay visible for %s", status)
		}
	})

	t.Run("no stored total means no discrepancy", func(t *testing.T) {
		state := billing.Recompute(billing.DefaultConfig(), builder.NewBillingInputsBuilder().Build())
		assert.Nil(t, state.Reconciliation.StoredTotal)
		assert.False(t, state.Reconciliation.HasDiscrepancy)
		assert.False(t, state.Banner.Visible)
	})

	t.Run("empty inputs still produce a result", func(t *testing.T) {
		state := billing.Recompute(billing.DefaultConfig(), billing.Inputs{Status: reservation.StatusOngoing})
		assert.Empty(t, state.Lines)
		assert.Equal(t, "₱0.00", state.Summary.TotalDisplay)
		assert.Equal(t, "0.0", state.Summary.ActualHours)
	})
}

func TestRecompute_Pricing(t *testing.T) {
	cfg := billing.DefaultConfig()

	t.Run("rule lookup is case sensitive and falls back to listed cost", func(t *testing.T) {
		in := builder.NewBillingInputsBuilder().
			WithServices(builder.Line("svc-1", "laser cutting", "Laser Cutter", 60, "80")).
			Build()

		line := billing.Recompute(cfg, in).Lines[0]
		assert.Equal(t, billing.PriceFromListedCost, line.PriceSource)
		assert.Equal(t, billing.UnitHour, line.PricingUnit)
		assert.Equal(t, "160.00", line.AdjustedCost.StringFixed(2))
	})

	t.Run("listed cost uses the configured default unit", func(t *testing.T) {
		perDay := cfg
		perDay.DefaultUnit = billing.UnitDay
		in := builder.NewBillingInputsBuilder().
			WithServices(builder.Line("svc-1", "Sewing", "Juki", 60, "1440")).
			WithUtilizations().
			WithPricing().
			Build()

		line := billing.Recompute(perDay, in).Lines[0]
		assert.Equal(t, billing.UnitDay, line.PricingUnit)
		assert.Equal(t, "60.00", line.AdjustedCost.StringFixed(2))
	})

	t.Run("missing cost uses the default per-minute price", func(t *testing.T) {
		withDefault := cfg
		withDefault.DefaultPricePerMin = decimal.RequireFromString("1.5")
		in := builder.NewBillingInputsBuilder().
			WithServices(builder.Line("svc-1", "Consultation", "Not Specified", 30, "")).
			WithUtilizations().
			WithPricing().
			Build()

		line := billing.Recompute(withDefault, in).Lines[0]
		assert.Equal(t, billing.PriceFromDefault, line.PriceSource)
		assert.Equal(t, billing.UnitMinute, line.PricingUnit)
		assert.Equal(t, "90.00", line.AdjustedCost.StringFixed(2))
	})

	t.Run("missing cost without a default is free", func(t *testing.T) {
		in := builder.NewBillingInputsBuilder().
			WithServices(builder.Line("svc-1", "Consultation", "Not Specified", 30, "")).
			WithPricing().
			Build()

		line := billing.Recompute(cfg, in).Lines[0]
		assert.True(t, line.AdjustedCost.IsZero())
	})

	t.Run("rule with a spelled out unit is normalized", func(t *testing.T) {
		in := builder.NewBillingInputsBuilder().
			WithPricing(builder.Rule("Laser Cutting", "2", "Minutes")).
			Build()

		line := billing.Recompute(cfg, in).Lines[0]
		assert.Equal(t, billing.UnitMinute, line.PricingUnit)
		assert.Equal(t, "240.00", line.AdjustedCost.StringFixed(2))
	})

	t.Run("rate per minute is informational", func(t *testing.T) {
		line := billing.Recompute(cfg, builder.NewBillingInputsBuilder().Build()).Lines[0]
		assert.Equal(t, "0.83", line.RatePerMinute.StringFixed(2))
		assert.Equal(t, "100.00", line.AdjustedCost.StringFixed(2))
	})
}

func TestRecompute_Summary(t *testing.T) {
	in := builder.NewBillingInputsBuilder().
		WithServices(
			builder.Line("svc-1", "Laser Cutting", "Laser Cutter", 60, ""),
			builder.Line("svc-2", "3D Printing", "Prusa MK4", 150, "20"),
		).
		WithUtilizations(
			builder.Utilization("Laser Cutter", "Laser Cutting", builder.Interval("", "09:00", "10:30", "")),
			builder.Utilization("Prusa MK4", "3D Printing", builder.Interval("", "13:00", "15:10", "")),
		).
		Build()

	state := billing.Recompute(billing.DefaultConfig(), in)

	assert.Equal(t, 90+130, state.Summary.TotalActualMinutes)
	assert.Equal(t, 120+180, state.Summary.TotalRoundedMinutes)
	assert.Equal(t, 60+150, state.Summary.TotalBookedMinutes)
	assert.Equal(t, 60+180, state.Summary.TotalRoundedBookedMinutes)
	assert.Equal(t, "3.7", state.Summary.ActualHours)
	assert.Equal(t, "5.0", state.Summary.RoundedHours)
	assert.Equal(t, "3.5", state.Summary.BookedHours)
	assert.Equal(t, "4.0", state.Summary.RoundedBookedHours)
	// 50 × 2h + 20 × 3h
	assert.Equal(t, "₱160.00", state.Summary.TotalDisplay)
}
