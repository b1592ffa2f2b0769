package queries

//go:generate mockgen -source=survey.go -destination=../../../tests/mock/queries/survey_mock.go -package=queriesmock

import (
	"context"

	"fablab-billing/internal/domain/user"
	"fablab-billing/internal/infra"
	"fablab-billing/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSurveyNotFound = errs.ErrSurveyNotFound
	ErrSurveyAccess   = errs.ErrReservationAccess
)

type SurveyReadStore interface {
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*SurveyView, error)
}

type SurveyQueries interface {
	GetByReservation(ctx context.Context, reservationID uuid.UUID, actor user.Actor) (*SurveyView, error)
}

type surveyQueriesImpl struct {
	store SurveyReadStore
}

func NewSurveyQueries(store SurveyReadStore) SurveyQueries {
	return &surveyQueriesImpl{store: store}
}

func (q *surveyQueriesImpl) GetByReservation(ctx context.Context, reservationID uuid.UUID, actor user.Actor) (*SurveyView, error) {
	sv, err := q.store.FindByReservationID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}
	// Surveys are only ever written by the reservation owner.
	if !actor.CanView(sv.UserID) {
		return nil, ErrSurveyAccess
	}
	return sv, nil
}
