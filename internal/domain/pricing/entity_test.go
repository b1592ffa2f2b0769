//go:build unit

package pricing_test

import (
	"strings"
	"testing"
	"time"

	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRule(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		rule, err := pricing.NewRule("  Laser Cutting ", decimal.NewFromInt(50), "hours", now)
		require.NoError(t, err)

		assert.Equal(t, "Laser Cutting", rule.ServiceName())
		assert.Equal(t, billing.UnitHour, rule.Unit())
		assert.Equal(t, now, rule.UpdatedAt())
		assert.Equal(t, billing.PricingRule{
			ServiceName: "Laser Cutting",
			CostPerUnit: decimal.NewFromInt(50),
			Unit:        billing.UnitHour,
		}, rule.ToEngine())
	})

	cases := []struct {
		name  string
		svc   string
		cost  string
		unit  string
		errIs error
	}{
		{name: "free service", svc: "Consultation", cost: "0", unit: "min"},
		{name: "empty name", svc: "  ", cost: "10", unit: "min", errIs: pricing.ErrEmptyServiceName},
		{name: "name too long", svc: strings.Repeat("a", pricing.MaxServiceNameLength+1), cost: "10", unit: "min", errIs: pricing.ErrServiceNameTooLong},
		{name: "negative cost", svc: "Sewing", cost: "-0.01", unit: "hour", errIs: pricing.ErrNegativeCost},
		{name: "unknown unit", svc: "Sewing", cost: "5", unit: "week", errIs: pricing.ErrInvalidUnit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rule, err := pricing.NewRule(tc.svc, decimal.RequireFromString(tc.cost), tc.unit, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, rule)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, rule)
		})
	}
}
