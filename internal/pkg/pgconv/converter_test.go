//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"fablab-billing/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumeric(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		d := decimal.RequireFromString("1250.50")
		got := pgconv.DecimalPtrFromNumeric(pgconv.DecimalToNumeric(d))
		require.NotNil(t, got)
		assert.True(t, d.Equal(*got))
	})

	t.Run("null and nan", func(t *testing.T) {
		assert.Nil(t, pgconv.DecimalPtrFromNumeric(pgtype.Numeric{}))
		assert.Nil(t, pgconv.DecimalPtrFromNumeric(pgtype.Numeric{NaN: true, Valid: true}))
		assert.True(t, pgconv.DecimalFromNumeric(pgtype.Numeric{}).IsZero())
		assert.False(t, pgconv.DecimalPtrToNumeric(nil).Valid)
	})
}

func TestIntAndDate(t *testing.T) {
	assert.Nil(t, pgconv.IntPtrFromPgtype(pgtype.Int4{}))
	v := 90
	got := pgconv.IntPtrFromPgtype(pgconv.IntPtrToPgtype(&v))
	require.NotNil(t, got)
	assert.Equal(t, 90, *got)
	assert.False(t, pgconv.IntPtrToPgtype(nil).Valid)

	date := pgconv.DateToPgtype("2025-03-01")
	require.True(t, date.Valid)
	assert.Equal(t, time.March, date.Time.Month())
	assert.Equal(t, "2025-03-01", pgconv.DateStringFromPgtype(date))
	assert.False(t, pgconv.DateToPgtype("yesterday").Valid)
	assert.Empty(t, pgconv.DateStringFromPgtype(pgtype.Date{}))
}
