//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/usecase/queries"
	"fablab-billing/tests/common/builder"
	queriesmock "fablab-billing/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPricingQueries_List(t *testing.T) {
	ctx := context.Background()
	stored := []queries.PricingRuleView{
		builder.PricingView("Laser Cutting", "50", "hour"),
		builder.PricingView("3D Printing", "5", "mins"),
	}

	t.Run("cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPricingReadStore(ctrl)
		cache := queriesmock.NewMockPricingCache(ctrl)
		cache.EXPECT().Get(ctx).Return(stored, true, nil)
		store.EXPECT().List(gomock.Any()).Times(0)

		rules, err := queries.NewPricingQueries(store, cache).List(ctx)

		require.NoError(t, err)
		assert.Equal(t, stored, rules)
	})

	t.Run("cache miss reads the store and fills the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPricingReadStore(ctrl)
		cache := queriesmock.NewMockPricingCache(ctrl)
		gomock.InOrder(
			cache.EXPECT().Get(ctx).Return(nil, false, nil),
			store.EXPECT().List(ctx).Return(stored, nil),
			cache.EXPECT().Set(ctx, stored).Return(nil),
		)

		rules, err := queries.NewPricingQueries(store, cache).List(ctx)

		require.NoError(t, err)
		assert.Equal(t, stored, rules)
	})

	t.Run("cache errors degrade to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPricingReadStore(ctrl)
		cache := queriesmock.NewMockPricingCache(ctrl)
		cache.EXPECT().Get(ctx).Return(nil, false, errors.New("redis: connection refused"))
		store.EXPECT().List(ctx).Return(stored, nil)
		cache.EXPECT().Set(ctx, stored).Return(errors.New("redis: connection refused"))

		rules, err := queries.NewPricingQueries(store, cache).List(ctx)

		require.NoError(t, err)
		assert.Len(t, rules, 2)
	})

	t.Run("without a cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPricingReadStore(ctrl)
		store.EXPECT().List(ctx).Return(nil, nil)

		rules, err := queries.NewPricingQueries(store, nil).List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, rules)
		assert.Empty(t, rules)
	})

	t.Run("error: store failure is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPricingReadStore(ctrl)
		cache := queriesmock.NewMockPricingCache(ctrl)
		cache.EXPECT().Get(ctx).Return(nil, false, nil)
		store.EXPECT().List(ctx).Return(nil, errors.New("db down"))
		cache.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

		_, err := queries.NewPricingQueries(store, cache).List(ctx)

		assert.EqualError(t, err, "db down")
	})
}

func TestPricingQueries_RateCard(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockPricingReadStore(ctrl)
	store.EXPECT().List(ctx).Return([]queries.PricingRuleView{
		builder.PricingView("Laser Cutting", "50", "Hours"),
		builder.PricingView("Sewing", "10", "per stitch"),
	}, nil)

	rules, err := queries.NewPricingQueries(store, nil).RateCard(ctx)

	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "Laser Cutting", rules[0].ServiceName)
	assert.Equal(t, billing.UnitHour, rules[0].Unit)
}
