package commands

//go:generate mockgen -source=billing.go -destination=../../../tests/mock/commands/billing_mock.go -package=commandsmock

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/domain/user"
	"fablab-billing/internal/infra"
	"fablab-billing/internal/pkg/clock"
	"fablab-billing/internal/pkg/errs"
	"fablab-billing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const NotificationKindBillingCorrected = "billing.corrected"

// RateCardProvider supplies the current service pricing.
type RateCardProvider interface {
	RateCard(ctx context.Context) ([]billing.PricingRule, error)
}

type RefreshResult struct {
	ReservationID uuid.UUID
	Status        string
	State         billing.DerivedState
	Attempted     bool
	Remote        billing.SyncState
	Message       string
	Error         string
}

type BillingCommands interface {
	Refresh(ctx context.Context, reservationID uuid.UUID, actor user.Actor) (*RefreshResult, error)
	ApplyCorrection(ctx context.Context, reservationID uuid.UUID, correction billing.Correction, actor user.Actor) error
}

type billingCommandsImpl struct {
	uow   shared.UnitOfWork
	rates RateCardProvider
	cfg   billing.Config
	clock clock.Clock
}

func NewBillingCommands(uow shared.UnitOfWork, rates RateCardProvider, cfg billing.Config, clk clock.Clock) BillingCommands {
	return &billingCommandsImpl{uow: uow, rates: rates, cfg: cfg, clock: clk}
}

type billingCorrectedPayload struct {
	ReservationID string                   `json:"reservationId"`
	TotalAmount   string                   `json:"totalAmount"`
	Services      []billing.ServiceMinutes `json:"services"`
	CorrectedBy   string                   `json:"correctedBy"`
}

func (uc *billingCommandsImpl) Refresh(ctx context.Context, reservationID uuid.UUID, actor user.Actor) (*RefreshResult, error) {
	snap, err := uc.uow.CommandReads().BillingInputs(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !actor.CanView(snap.UserID) {
		return nil, ErrReservationAccess
	}

	rules, err := uc.rates.RateCard(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	in := snap.Inputs
	in.Pricing = rules

	opts := billing.RefreshOptions{
		CanFix: actor.IsAdmin() && in.Status.AllowsBillingCorrection(),
	}
	writer := billing.WriterFunc(func(ctx context.Context, _ string, c billing.Correction) error {
		return uc.ApplyCorrection(ctx, reservationID, c, actor)
	})

	out := billing.Refresh(ctx, uc.cfg, in, writer, opts)
	if out.Attempted {
		logArgs := []any{
			slog.String("reservation_id", reservationID.String()),
			slog.String("actor_id", actor.ID.String()),
			slog.String("total", out.Local.Summary.TotalDisplay),
			slog.String("remote", string(out.Remote)),
		}
		if out.Err != nil {
			slog.Warn("billing write-back failed", append(logArgs, slog.String("error", out.ErrorMessage()))...)
		} else {
			slog.Info("billing write-back persisted", logArgs...)
		}
	}

	return &RefreshResult{
		ReservationID: snap.ReservationID,
		Status:        string(in.Status),
		State:         out.Local,
		Attempted:     out.Attempted,
		Remote:        out.Remote,
		Message:       out.Message,
		Error:         out.ErrorMessage(),
	}, nil
}

func (uc *billingCommandsImpl) ApplyCorrection(ctx context.Context, reservationID uuid.UUID, correction billing.Correction, actor user.Actor) error {
	if !actor.IsAdmin() {
		return ErrCorrectionForbidden
	}
	total, minutes, err := parseCorrection(correction)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReservationForUpdate(ctx, reservationID)
		if derr != nil {
			return derr
		}

		now := uc.clock.Now()
		res := snap.ToDomain()
		if derr = res.ApplyBillingCorrection(total, minutes, now); derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		if derr = tx.Reservations().UpdateBilling(ctx, tx.DB(), res); derr != nil {
			return derr
		}

		payload, derr := json.Marshal(billingCorrectedPayload{
			ReservationID: reservationID.String(),
			TotalAmount:   billing.FormatAmount(total),
			Services:      correction.Services,
			CorrectedBy:   actor.ID.String(),
		})
		if derr != nil {
			return derr
		}
		return tx.Notifications().CreateJob(ctx, tx.DB(), NotificationKindBillingCorrected, "reservation:"+reservationID.String(), payload, now)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrReservationNotFound
		case errs.Is(err, ErrDomainValidation):
			return err
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func parseCorrection(c billing.Correction) (decimal.Decimal, map[uuid.UUID]int, error) {
	total, err := decimal.NewFromString(strings.TrimSpace(c.TotalAmount))
	if err != nil || total.IsNegative() {
		return decimal.Zero, nil, errs.Wrap(ErrInvalidCorrection, "total amount must be a non-negative number")
	}
	minutes := make(map[uuid.UUID]int, len(c.Services))
	for _, s := range c.Services {
		id, perr := uuid.Parse(strings.TrimSpace(s.ID))
		if perr != nil {
			return decimal.Zero, nil, errs.Wrap(ErrInvalidCorrection, "invalid service id "+strconv.Quote(s.ID))
		}
		m, perr := strconv.Atoi(strings.TrimSpace(s.Minutes))
		if perr != nil || m < 0 {
			return decimal.Zero, nil, errs.Wrap(ErrInvalidCorrection, "invalid minutes for service "+s.ID)
		}
		minutes[id] = m
	}
	return total, minutes, nil
}
