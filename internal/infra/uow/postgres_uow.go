package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"fablab-billing/internal/domain/reservation"
	"fablab-billing/internal/infra/readstore"
	"fablab-billing/internal/infra/repository"
	sqlc "fablab-billing/internal/infra/sqlc/generated"
	"fablab-billing/internal/pkg/errs"
	"fablab-billing/internal/usecase/queries"
	"fablab-billing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
	errRetriesExhausted  = errs.New("transaction failed after max retries")
)

// retryPolicy covers serialization failures and deadlocks (SQLSTATE 40001, 40P01).
type retryPolicy struct {
	attempts int
	base     time.Duration
}

var defaultRetry = retryPolicy{attempts: 4, base: 100 * time.Millisecond}

// snapshotTxOptions: REPEATABLE READ keeps one snapshot for every statement of the transaction.
var snapshotTxOptions = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

func (p retryPolicy) retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

// backoff doubles per attempt plus up to 20% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q, retry: defaultRetry}
}

// Within runs fn in a ReadCommitted transaction and replays it on retryable conflicts.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := range u.retry.attempts {
		if attempt > 0 {
			wait := u.retry.backoff(attempt - 1)
			slog.Warn("retrying transaction", "attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err.Error())
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		err = u.attempt(ctx, fn)
		if err == nil || !u.retry.retryable(err) {
			return err
		}
	}

	slog.Error("transaction failed after max retries", "attempts", u.retry.attempts, "error", err.Error())
	return errs.Mark(err, errRetriesExhausted)
}

// attempt is split out so the rollback defer runs once per try.
func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// WithinReadOnly gives fn a consistent snapshot across tables.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, snapshotTxOptions)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

// CommandReads reads outside a transaction; multi-table reads open their own snapshot.
func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool, outsideTx: true}
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", err.Error())
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	reservationRepo  shared.ReservationRepository
	pricingRepo      shared.PricingRepository
	surveyRepo       shared.SurveyRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Pricing() shared.PricingRepository {
	if t.pricingRepo == nil {
		t.pricingRepo = repository.NewPricingRepository(t.uow.q, t.dbtx)
	}
	return t.pricingRepo
}

func (t *pgTx) Surveys() shared.SurveyRepository {
	if t.surveyRepo == nil {
		t.surveyRepo = repository.NewSurveyRepository(t.uow.q, t.dbtx)
	}
	return t.surveyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow       *PostgresUoW
	dbtx      sqlc.DBTX
	outsideTx bool

	// Lazy-initialized readstores
	reservationStore *readstore.ReservationReadStore
	billingStore     *readstore.BillingReadStore
}

func (r *commandReads) reservations() *readstore.ReservationReadStore {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}
	return r.reservationStore
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	view, err := r.reservations().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toReservationSnapshot(view), nil
}

func (r *commandReads) ReservationForUpdate(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	view, err := r.reservations().FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	return toReservationSnapshot(view), nil
}

func (r *commandReads) BillingInputs(ctx context.Context, id uuid.UUID) (*shared.BillingSnapshot, error) {
	if !r.outsideTx {
		if r.billingStore == nil {
			r.billingStore = readstore.NewBillingReadStore(r.uow.q, r.dbtx)
		}
		return billingSnapshot(ctx, r.billingStore, id)
	}

	var snapshot *shared.BillingSnapshot
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		snapshot, err = billingSnapshot(ctx, readstore.NewBillingReadStore(r.uow.q, db), id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func billingSnapshot(ctx context.Context, store *readstore.BillingReadStore, id uuid.UUID) (*shared.BillingSnapshot, error) {
	view, err := store.FindInputs(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.BillingSnapshot{
		ReservationID: view.Reservation.ID,
		UserID:        view.Reservation.UserID,
		Inputs:        view.ToEngine(),
	}
	return snapshot, nil
}

func toReservationSnapshot(view *queries.ReservationView) *shared.ReservationSnapshot {
	services := make([]reservation.ServiceLine, len(view.Services))
	for i, s := range view.Services {
		services[i] = reservation.ServiceLine{
			ID:            s.ID,
			ServiceName:   s.ServiceName,
			EquipmentName: s.EquipmentName,
			BookedMinutes: s.BookedMinutes,
			ListedCost:    s.ListedCost,
			BilledMinutes: s.BilledMinutes,
		}
	}

	return &shared.ReservationSnapshot{
		ID:             view.ID,
		UserID:         view.UserID,
		Status:         view.Status,
		TotalAmountDue: view.TotalAmountDue,
		Services:       services,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}
}
