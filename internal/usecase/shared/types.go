package shared

import (
	"time"

	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Minimal snapshot for command read operations
type ReservationSnapshot struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Status         string
	TotalAmountDue *decimal.Decimal
	Services       []reservation.ServiceLine
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ToDomain rebuilds the aggregate. Unknown statuses are kept verbatim so that
// billing treats them as outside the lifecycle.
func (s *ReservationSnapshot) ToDomain() *reservation.Reservation {
	services := make([]reservation.ServiceLine, len(s.Services))
	copy(services, s.Services)
	return reservation.ReconstructReservation(s.ID, s.UserID, reservation.Status(s.Status), s.TotalAmountDue, services, s.CreatedAt, s.UpdatedAt)
}

// BillingSnapshot carries the recompute inputs of one reservation, without the rate card.
type BillingSnapshot struct {
	ReservationID uuid.UUID
	UserID        uuid.UUID
	Inputs        billing.Inputs
}
