package repository

//go:generate mockgen -source=survey.go -destination=../../../tests/mock/repository/survey_mock.go -package=repositorymock

import (
	"context"

	"fablab-billing/internal/domain/survey"
	"fablab-billing/internal/infra"
	sqlc "fablab-billing/internal/infra/sqlc/generated"
	"fablab-billing/internal/pkg/pgconv"
)

type SurveyWriteQueries interface {
	CreateSurvey(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSurveyParams) error
}

type SurveyRepository struct {
	queries SurveyWriteQueries
	db      sqlc.DBTX
}

func NewSurveyRepository(queries SurveyWriteQueries, db sqlc.DBTX) *SurveyRepository {
	return &SurveyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SurveyRepository) Create(ctx context.Context, tx sqlc.DBTX, s *survey.Survey) error {
	params := sqlc.CreateSurveyParams{
		ID:            s.ID(),
		ReservationID: s.ReservationID(),
		UserID:        s.UserID(),
		Rating:        int16(s.Rating().Value()), // #nosec G115 -- rating is validated to 1..5
		Comment:       s.Comment().String(),
		CreatedAt:     pgconv.TimeToPgtype(s.CreatedAt()),
	}
	if err := r.queries.CreateSurvey(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create survey", err)
	}
	return nil
}
