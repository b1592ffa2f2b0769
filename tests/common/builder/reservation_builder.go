//go:build unit || e2e

package builder

import (
	"time"

	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/domain/reservation"
	"fablab-billing/internal/usecase/queries"
	"fablab-billing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Status         reservation.Status
	TotalAmountDue *decimal.Decimal
	Services       []reservation.ServiceLine
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	booked := 60
	listed := decimal.NewFromInt(50)
	total := decimal.RequireFromString("90.00")
	return &ReservationBuilder{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		Status:         reservation.StatusOngoing,
		TotalAmountDue: &total,
		Services: []reservation.ServiceLine{
			{
				ID:            uuid.New(),
				ServiceName:   "Laser Cutting",
				EquipmentName: "Laser Cutter",
				BookedMinutes: &booked,
				ListedCost:    &listed,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) WithoutTotal() *ReservationBuilder {
	b.TotalAmountDue = nil
	return b
}

func (b *ReservationBuilder) WithoutServices() *ReservationBuilder {
	b.Services = nil
	return b
}

func (b *ReservationBuilder) AddService(line reservation.ServiceLine) *ReservationBuilder {
	if line.ID == uuid.Nil {
		line.ID = uuid.New()
	}
	b.Services = append(b.Services, line)
	return b
}

func (b *ReservationBuilder) ServiceIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(b.Services))
	for i, s := range b.Services {
		ids[i] = s.ID
	}
	return ids
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	services := make([]reservation.ServiceLine, len(b.Services))
	copy(services, b.Services)
	return reservation.ReconstructReservation(b.ID, b.UserID, b.Status, b.TotalAmountDue, services, b.CreatedAt, b.UpdatedAt)
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	services := make([]reservation.ServiceLine, len(b.Services))
	copy(services, b.Services)
	return &shared.ReservationSnapshot{
		ID:             b.ID,
		UserID:         b.UserID,
		Status:         string(b.Status),
		TotalAmountDue: b.TotalAmountDue,
		Services:       services,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildView() queries.ReservationView {
	lines := make([]queries.ServiceLineView, len(b.Services))
	for i, s := range b.Services {
		lines[i] = queries.ServiceLineView{
			ID:            s.ID,
			ServiceName:   s.ServiceName,
			EquipmentName: s.EquipmentName,
			BookedMinutes: s.BookedMinutes,
			ListedCost:    s.ListedCost,
			BilledMinutes: s.BilledMinutes,
		}
	}
	return queries.ReservationView{
		ID:             b.ID,
		UserID:         b.UserID,
		Status:         string(b.Status),
		TotalAmountDue: b.TotalAmountDue,
		Services:       lines,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// BuildInputsView pairs the reservation with a 90 minute laser cutting session unless
// utilizations are given.
func (b *ReservationBuilder) BuildInputsView(utilizations ...billing.MachineUtilization) *queries.BillingInputsView {
	if utilizations == nil {
		utilizations = []billing.MachineUtilization{
			Utilization("Laser Cutter", "Laser Cutting", Interval("2025-03-01", "09:00", "10:30", "Ana")),
		}
	}
	return &queries.BillingInputsView{
		Reservation:  b.BuildView(),
		Utilizations: utilizations,
		Pricing:      []queries.PricingRuleView{},
	}
}

func (b *ReservationBuilder) BuildBillingSnapshot(utilizations ...billing.MachineUtilization) *shared.BillingSnapshot {
	return &shared.BillingSnapshot{
		ReservationID: b.ID,
		UserID:        b.UserID,
		Inputs:        b.BuildInputsView(utilizations...).ToEngine(),
	}
}

func PricingView(service, cost, unit string) queries.PricingRuleView {
	return queries.PricingRuleView{
		ServiceName: service,
		CostPerUnit: decimal.RequireFromString(cost),
		Unit:        unit,
		UpdatedAt:   time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}
