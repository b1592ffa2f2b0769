package readstore

//go:generate mockgen -source=survey.go -destination=../../../tests/mock/readstore/survey_mock.go -package=readstoremock

import (
	"context"

	"fablab-billing/internal/infra"
	sqlc "fablab-billing/internal/infra/sqlc/generated"
	"fablab-billing/internal/pkg/pgconv"
	"fablab-billing/internal/usecase/queries"

	"github.com/google/uuid"
)

type SurveyViewQueries interface {
	GetSurveyByReservationID(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) (sqlc.SatisfactionSurvey, error)
}

type SurveyReadStore struct {
	queries SurveyViewQueries
	db      sqlc.DBTX
}

func NewSurveyReadStore(queries SurveyViewQueries, db sqlc.DBTX) *SurveyReadStore {
	return &SurveyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SurveyReadStore) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*queries.SurveyView, error) {
	row, err := r.queries.GetSurveyByReservationID(ctx, r.db, reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("survey not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find survey", err)
	}

	return &queries.SurveyView{
		ID:            row.ID,
		ReservationID: row.ReservationID,
		UserID:        row.UserID,
		Rating:        int(row.Rating),
		Comment:       row.Comment,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
