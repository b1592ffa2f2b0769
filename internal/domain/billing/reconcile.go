package billing

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

type ServiceMinutes struct {
	ID      string `json:"id"`
	Minutes string `json:"minutes"`
}

// Correction is the write-back payload: the recalculated total and the billed minutes per line.
type Correction struct {
	TotalAmount string           `json:"totalAmount"`
	Services    []ServiceMinutes `json:"services"`
}

// Correction builds the payload for the state's billing basis.
func (s DerivedState) Correction() Correction {
	services := make([]ServiceMinutes, 0, len(s.Lines))
	for _, l := range s.Lines {
		services = append(services, ServiceMinutes{
			ID:      l.ID,
			Minutes: strconv.Itoa(l.BilledMinutes),
		})
	}
	return Correction{
		TotalAmount: FormatAmount(s.Reconciliation.CalculatedTotal),
		Services:    services,
	}
}

// Writer persists a correction for a reservation.
type Writer interface {
	PersistCorrection(ctx context.Context, reservationID string, c Correction) error
}

type WriterFunc func(ctx context.Context, reservationID string, c Correction) error

func (f WriterFunc) PersistCorrection(ctx context.Context, reservationID string, c Correction) error {
	return f(ctx, reservationID, c)
}

// SyncState describes the remote copy after a refresh.
type SyncState string

const (
	SyncNotAttempted SyncState = "not_attempted"
	SyncPersisted    SyncState = "persisted"
	SyncFailed       SyncState = "failed"
)

type RefreshOptions struct {
	CanFix bool
}

// RefreshOutcome pairs the locally computed state, which is always authoritative for display,
// with the result of the best-effort remote sync.
type RefreshOutcome struct {
	Local     DerivedState
	Remote    SyncState
	Attempted bool
	Message   string
	Err       error
}

func (o RefreshOutcome) ErrorMessage() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// Refresh recomputes the state and, when a discrepancy exists, the caller may fix it and a
// reservation id is known, writes the correction through w. A failed write is reported in the
// outcome and never discards the local result.
func Refresh(ctx context.Context, cfg Config, in Inputs, w Writer, opts RefreshOptions) RefreshOutcome {
	local := Recompute(cfg, in)
	out := RefreshOutcome{
		Local:  local,
		Remote: SyncNotAttempted,
	}

	reservationID := strings.TrimSpace(in.ReservationID)
	if !local.Reconciliation.HasDiscrepancy || !opts.CanFix || reservationID == "" || w == nil {
		out.Message = "Billing recalculated"
		return out
	}

	out.Attempted = true
	if err := w.PersistCorrection(ctx, reservationID, local.Correction()); err != nil {
		out.Remote = SyncFailed
		out.Err = err
		out.Message = fmt.Sprintf("Recalculated %s locally but failed to save: %s",
			local.Summary.TotalDisplay, err.Error())
		return out
	}

	out.Remote = SyncPersisted
	out.Message = fmt.Sprintf("Billing corrected to %s based on %s",
		local.Summary.TotalDisplay, basisPhrase(local.Basis))
	return out
}
