package readstore

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/readstore/reservation_mock.go -package=readstoremock

import (
	"context"

	"fablab-billing/internal/infra"
	sqlc "fablab-billing/internal/infra/sqlc/generated"
	"fablab-billing/internal/pkg/pgconv"
	"fablab-billing/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservation, error)
	GetReservationByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservation, error)
	ListUserServicesByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ListUserServicesByReservationRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return r.withServices(ctx, row)
}

// FindByIDForUpdate must run inside a transaction; the row stays locked until it ends.
func (r *ReservationReadStore) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return r.withServices(ctx, row)
}

func (r *ReservationReadStore) withServices(ctx context.Context, row sqlc.Reservation) (*queries.ReservationView, error) {
	lines, err := r.queries.ListUserServicesByReservation(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation services", err)
	}

	view := rowToReservationView(row)
	view.Services = make([]queries.ServiceLineView, len(lines))
	for i, l := range lines {
		view.Services[i] = rowToServiceLineView(l)
	}
	return view, nil
}

func rowToReservationView(row sqlc.Reservation) *queries.ReservationView {
	return &queries.ReservationView{
		ID:             row.ID,
		UserID:         row.UserID,
		Status:         row.Status,
		TotalAmountDue: pgconv.DecimalPtrFromNumeric(row.TotalAmountDue),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func rowToServiceLineView(row sqlc.ListUserServicesByReservationRow) queries.ServiceLineView {
	return queries.ServiceLineView{
		ID:            row.ID,
		ServiceName:   row.ServiceName,
		EquipmentName: row.Equipment,
		BookedMinutes: pgconv.IntPtrFromPgtype(row.Minutes),
		ListedCost:    pgconv.DecimalPtrFromNumeric(row.Cost),
		BilledMinutes: pgconv.IntPtrFromPgtype(row.BilledMinutes),
	}
}
