package readstore

//go:generate mockgen -source=billing.go -destination=../../../tests/mock/readstore/billing_mock.go -package=readstoremock

import (
	"context"

	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/infra"
	sqlc "fablab-billing/internal/infra/sqlc/generated"
	"fablab-billing/internal/pkg/pgconv"
	"fablab-billing/internal/usecase/queries"

	"github.com/google/uuid"
)

type UtilizationViewQueries interface {
	ListUtilizationsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ListUtilizationsByReservationRow, error)
	ListOperatingTimesByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ListOperatingTimesByReservationRow, error)
	ListDownTimesByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ListDownTimesByReservationRow, error)
}

type BillingViewQueries interface {
	ReservationViewQueries
	UtilizationViewQueries
}

// BillingReadStore assembles the stored recompute inputs of a reservation. The rate card is
// loaded separately so that it can be cached.
type BillingReadStore struct {
	queries      BillingViewQueries
	db           sqlc.DBTX
	reservations *ReservationReadStore
}

func NewBillingReadStore(queries BillingViewQueries, db sqlc.DBTX) *BillingReadStore {
	return &BillingReadStore{
		queries:      queries,
		db:           db,
		reservations: NewReservationReadStore(queries, db),
	}
}

func (r *BillingReadStore) FindInputs(ctx context.Context, reservationID uuid.UUID) (*queries.BillingInputsView, error) {
	res, err := r.reservations.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	utilizations, err := r.findUtilizations(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	return &queries.BillingInputsView{
		Reservation:  *res,
		Utilizations: utilizations,
		Pricing:      []queries.PricingRuleView{},
	}, nil
}

func (r *BillingReadStore) findUtilizations(ctx context.Context, reservationID uuid.UUID) ([]billing.MachineUtilization, error) {
	rows, err := r.queries.ListUtilizationsByReservation(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list machine utilizations", err)
	}
	operating, err := r.queries.ListOperatingTimesByReservation(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list operating times", err)
	}
	downs, err := r.queries.ListDownTimesByReservation(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list down times", err)
	}

	result := make([]billing.MachineUtilization, len(rows))
	index := make(map[uuid.UUID]int, len(rows))
	for i, row := range rows {
		index[row.ID] = i
		result[i] = billing.MachineUtilization{
			MachineName:    row.Machine,
			ServiceName:    row.ServiceName,
			OperatingTimes: []billing.OperatingTime{},
			DownTimes:      []billing.DownTime{},
		}
	}

	for _, ot := range operating {
		i, ok := index[ot.UtilizationID]
		if !ok {
			continue
		}
		result[i].OperatingTimes = append(result[i].OperatingTimes, billing.OperatingTime{
			Date:         pgconv.DateStringFromPgtype(ot.OtDate),
			StartTime:    ot.StartTime,
			EndTime:      ot.EndTime,
			OperatorName: ot.Operator,
		})
	}
	for _, dt := range downs {
		i, ok := index[dt.UtilizationID]
		if !ok {
			continue
		}
		result[i].DownTimes = append(result[i].DownTimes, billing.DownTime{
			Date:          pgconv.DateStringFromPgtype(dt.DtDate),
			TypeOfProduct: dt.TypeOfProduct,
			Minutes:       int(dt.Minutes),
			Cause:         dt.Cause,
			OperatorName:  dt.Operator,
		})
	}

	return result, nil
}
