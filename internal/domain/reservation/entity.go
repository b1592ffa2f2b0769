package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus        = errors.New("invalid reservation status")
	ErrCorrectionNotAllowed = errors.New("billing correction not allowed for reservation status")
	ErrNegativeTotal        = errors.New("total amount cannot be negative")
	ErrNegativeMinutes      = errors.New("billed minutes cannot be negative")
	ErrUnknownServiceLine   = errors.New("service line does not belong to reservation")
)

type ServiceLine struct {
	ID            uuid.UUID
	ServiceName   string
	EquipmentName string
	BookedMinutes *int
	ListedCost    *decimal.Decimal
	BilledMinutes *int
}

type Reservation struct {
	id             uuid.UUID
	userID         uuid.UUID
	status         Status
	totalAmountDue *decimal.Decimal
	services       []ServiceLine
	createdAt      time.Time
	updatedAt      time.Time
}

func ReconstructReservation(
	id, userID uuid.UUID,
	status Status,
	totalAmountDue *decimal.Decimal,
	services []ServiceLine,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:             id,
		userID:         userID,
		status:         status,
		totalAmountDue: totalAmountDue,
		services:       services,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ApplyBillingCorrection replaces the stored total and the billed minutes of the given lines.
// Lines that are not mentioned keep their previous billed minutes.
func (r *Reservation) ApplyBillingCorrection(total decimal.Decimal, minutes map[uuid.UUID]int, now time.Time) error {
	if !r.status.AllowsBillingCorrection() {
		return ErrCorrectionNotAllowed
	}
	if total.IsNegative() {
		return ErrNegativeTotal
	}

	index := make(map[uuid.UUID]int, len(r.services))
	for i, s := range r.services {
		index[s.ID] = i
	}
	for id, m := range minutes {
		if m < 0 {
			return ErrNegativeMinutes
		}
		if _, ok := index[id]; !ok {
			return ErrUnknownServiceLine
		}
	}

	for id, m := range minutes {
		billed := m
		r.services[index[id]].BilledMinutes = &billed
	}
	rounded := total.Round(2)
	r.totalAmountDue = &rounded
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) ID() uuid.UUID                    { return r.id }
func (r *Reservation) UserID() uuid.UUID                { return r.userID }
func (r *Reservation) Status() Status                   { return r.status }
func (r *Reservation) TotalAmountDue() *decimal.Decimal { return r.totalAmountDue }
func (r *Reservation) Services() []ServiceLine          { return r.services }
func (r *Reservation) CreatedAt() time.Time             { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time             { return r.updatedAt }
