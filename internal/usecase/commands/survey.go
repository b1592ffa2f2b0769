package commands

//go:generate mockgen -source=survey.go -destination=../../../tests/mock/commands/survey_mock.go -package=commandsmock

import (
	"context"

	domsurvey "fablab-billing/internal/domain/survey"
	"fablab-billing/internal/domain/user"
	"fablab-billing/internal/infra"
	"fablab-billing/internal/pkg/clock"
	"fablab-billing/internal/pkg/errs"
	"fablab-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitSurveyRequest struct {
	ReservationID uuid.UUID
	Rating        int
	Comment       string
}

type SubmitSurveyResult struct {
	SurveyID uuid.UUID
}

type SurveyCommands interface {
	Submit(ctx context.Context, req SubmitSurveyRequest, actor user.Actor) (*SubmitSurveyResult, error)
}

type surveyCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSurveyCommands(uow shared.UnitOfWork, clk clock.Clock) SurveyCommands {
	return &surveyCommandsImpl{uow: uow, clock: clk}
}

func (uc *surveyCommandsImpl) Submit(ctx context.Context, req SubmitSurveyRequest, actor user.Actor) (*SubmitSurveyResult, error) {
	var created uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReservationByID(ctx, req.ReservationID)
		if derr != nil {
			return derr
		}

		res := snap.ToDomain()
		if !res.IsOwnedBy(actor.ID) {
			return ErrReservationAccess
		}

		sv, derr := domsurvey.NewSurvey(res, actor.ID, req.Rating, req.Comment, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		if derr = tx.Surveys().Create(ctx, tx.DB(), sv); derr != nil {
			return derr
		}
		created = sv.ID()
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrReservationNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrSurveyAlreadyExists
		case errs.Is(err, ErrReservationAccess):
			return nil, ErrReservationAccess
		case errs.Is(err, ErrDomainValidation):
			return nil, err
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return &SubmitSurveyResult{SurveyID: created}, nil
}
