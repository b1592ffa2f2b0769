package repository

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation_mock.go -package=repositorymock

import (
	"context"

	"fablab-billing/internal/domain/reservation"
	"fablab-billing/internal/infra"
	sqlc "fablab-billing/internal/infra/sqlc/generated"
	"fablab-billing/internal/pkg/pgconv"
)

type ReservationWriteQueries interface {
	UpdateReservationTotal(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationTotalParams) (int64, error)
	UpdateUserServiceBilledMinutes(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserServiceBilledMinutesParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// UpdateBilling writes the stored total and every billed minutes value the aggregate carries.
func (r *ReservationRepository) UpdateBilling(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservationTotal(ctx, tx, sqlc.UpdateReservationTotalParams{
		ID:             res.ID(),
		TotalAmountDue: pgconv.DecimalPtrToNumeric(res.TotalAmountDue()),
		UpdatedAt:      pgconv.TimeToPgtype(res.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation total", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	for _, line := range res.Services() {
		if line.BilledMinutes == nil {
			continue
		}
		n, err = r.queries.UpdateUserServiceBilledMinutes(ctx, tx, sqlc.UpdateUserServiceBilledMinutesParams{
			ID:            line.ID,
			ReservationID: res.ID(),
			BilledMinutes: pgconv.IntPtrToPgtype(line.BilledMinutes),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to update billed minutes", err)
		}
		if n == 0 {
			return infra.WrapRepoErr("service line not found", nil, infra.KindNotFound)
		}
	}

	return nil
}
