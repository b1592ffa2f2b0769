//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fablab-billing/internal/domain/billing"
	"fablab-billing/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a connection and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func decimalText(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}

// CreateReservation inserts the reservation and its service lines in builder order.
func CreateReservation(t *testing.T, db DBLike, b *builder.ReservationBuilder) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO reservations (id, user_id, status, total_amount_due, created_at, updated_at) VALUES ($1, $2, $3, $4::numeric, $5, $6)",
		b.ID, b.UserID, string(b.Status), decimalText(b.TotalAmountDue), b.CreatedAt, b.UpdatedAt)
	require.NoError(t, err)

	for i, s := range b.Services {
		_, err := db.Exec(ctx,
			"INSERT INTO user_services (id, reservation_id, position, service_name, equipment, minutes, cost, billed_minutes) VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8)",
			s.ID, b.ID, i, s.ServiceName, s.EquipmentName, s.BookedMinutes, decimalText(s.ListedCost), s.BilledMinutes)
		require.NoError(t, err)
	}

	return b.ID
}

// CreateUtilization inserts one machine utilization record with its intervals and down times.
func CreateUtilization(t *testing.T, db DBLike, reservationID uuid.UUID, position int, u billing.MachineUtilization) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	id := uuid.New()
	_, err := db.Exec(ctx,
		"INSERT INTO machine_utilizations (id, reservation_id, position, machine, service_name) VALUES ($1, $2, $3, $4, $5)",
		id, reservationID, position, u.MachineName, u.ServiceName)
	require.NoError(t, err)

	for i, ot := range u.OperatingTimes {
		_, err := db.Exec(ctx,
			"INSERT INTO operating_times (utilization_id, position, ot_date, start_time, end_time, operator) VALUES ($1, $2, NULLIF($3::text, '')::date, $4, $5, $6)",
			id, i, ot.Date, ot.StartTime, ot.EndTime, ot.OperatorName)
		require.NoError(t, err)
	}
	for i, dt := range u.DownTimes {
		_, err := db.Exec(ctx,
			"INSERT INTO down_times (utilization_id, position, dt_date, type_of_product, minutes, cause, operator) VALUES ($1, $2, NULLIF($3::text, '')::date, $4, $5, $6, $7)",
			id, i, dt.Date, dt.TypeOfProduct, dt.Minutes, dt.Cause, dt.OperatorName)
		require.NoError(t, err)
	}

	return id
}

func CreatePricingRule(t *testing.T, db DBLike, serviceName, costPerUnit, unit string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO service_pricing (service_name, cost_per_unit, unit) VALUES ($1, $2::numeric, $3)
		 ON CONFLICT (service_name) DO UPDATE SET cost_per_unit = EXCLUDED.cost_per_unit, unit = EXCLUDED.unit`,
		serviceName, costPerUnit, unit)
	require.NoError(t, err)
}

// StoredBilling reads back the stored total and the billed minutes of each line in position order.
func StoredBilling(t *testing.T, db DBLike, reservationID uuid.UUID) (*string, []*int) {
	t.Helper()

	ctx := context.Background()
	var total *string
	err := db.QueryRow(ctx, "SELECT total_amount_due::text FROM reservations WHERE id = $1", reservationID).Scan(&total)
	require.NoError(t, err)

	var count int
	err = db.QueryRow(ctx, "SELECT count(*) FROM user_services WHERE reservation_id = $1", reservationID).Scan(&count)
	require.NoError(t, err)

	billed := make([]*int, count)
	for i := range billed {
		err := db.QueryRow(ctx,
			"SELECT billed_minutes FROM user_services WHERE reservation_id = $1 AND position = $2",
			reservationID, i).Scan(&billed[i])
		require.NoError(t, err)
	}
	return total, billed
}

func CountNotificationJobs(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM notification_jobs WHERE kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// Insert the default rate card
	_, err := pool.Exec(ctx, `
		INSERT INTO service_pricing (service_name, cost_per_unit, unit) VALUES
		    ('Laser Cutting', 50.00, 'hour'),
		    ('3D Printing', 5.00, 'min')
		ON CONFLICT (service_name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
