//go:build unit || e2e

package builder

import (
	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/domain/reservation"

	"github.com/shopspring/decimal"
)

// BillingInputsBuilder starts from an ongoing laser-cutting reservation with 90 logged minutes.
type BillingInputsBuilder struct {
	ReservationID string
	Status        reservation.Status
	Services      []billing.ServiceLine
	Utilizations  []billing.MachineUtilization
	Pricing       []billing.PricingRule
	StoredTotal   *decimal.Decimal
}

func NewBillingInputsBuilder() *BillingInputsBuilder {
	return &BillingInputsBuilder{
		ReservationID: "res-1",
		Status:        reservation.StatusOngoing,
		Services: []billing.ServiceLine{
			Line("svc-1", "Laser Cutting", "Laser Cutter", 60, ""),
		},
		Utilizations: []billing.MachineUtilization{
			Utilization("Laser Cutter", "Laser Cutting",
				Interval("", "09:00", "09:40", "Ana"),
				Interval("", "10:00", "10:50", "Ana"),
			),
		},
		Pricing: []billing.PricingRule{
			Rule("Laser Cutting", "50", billing.UnitHour),
		},
	}
}

func (b *BillingInputsBuilder) With(mutate func(*BillingInputsBuilder)) *BillingInputsBuilder {
	mutate(b)
	return b
}

func (b *BillingInputsBuilder) WithStatus(s reservation.Status) *BillingInputsBuilder {
	b.Status = s
	return b
}

func (b *BillingInputsBuilder) WithReservationID(id string) *BillingInputsBuilder {
	b.ReservationID = id
	return b
}

func (b *BillingInputsBuilder) WithServices(lines ...billing.ServiceLine) *BillingInputsBuilder {
	b.Services = lines
	return b
}

func (b *BillingInputsBuilder) WithUtilizations(us ...billing.MachineUtilization) *BillingInputsBuilder {
	b.Utilizations = us
	return b
}

func (b *BillingInputsBuilder) WithPricing(rules ...billing.PricingRule) *BillingInputsBuilder {
	b.Pricing = rules
	return b
}

func (b *BillingInputsBuilder) WithStoredTotal(amount string) *BillingInputsBuilder {
	d := decimal.RequireFromString(amount)
	b.StoredTotal = &d
	return b
}

func (b *BillingInputsBuilder) Build() billing.Inputs {
	return billing.Inputs{
		ReservationID: b.ReservationID,
		Status:        b.Status,
		Services:      append([]billing.ServiceLine(nil), b.Services...),
		Utilizations:  append([]billing.MachineUtilization(nil), b.Utilizations...),
		Pricing:       append([]billing.PricingRule(nil), b.Pricing...),
		StoredTotal:   b.StoredTotal,
	}
}

// Line builds a service line. booked < 0 leaves booked minutes unset; an empty listed cost leaves it null.
func Line(id, service, equipment string, booked int, listed string) billing.ServiceLine {
	l := billing.ServiceLine{
		ID:            id,
		ServiceName:   service,
		EquipmentName: equipment,
	}
	if booked >= 0 {
		m := booked
		l.BookedMinutes = &m
	}
	if listed != "" {
		d := decimal.RequireFromString(listed)
		l.ListedCost = &d
	}
	return l
}

func Utilization(machine, service string, times ...billing.OperatingTime) billing.MachineUtilization {
	return billing.MachineUtilization{
		MachineName:    machine,
		ServiceName:    service,
		OperatingTimes: times,
	}
}

func Interval(date, start, end, operator string) billing.OperatingTime {
	return billing.OperatingTime{
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		OperatorName: operator,
	}
}

func Rule(service, cost string, unit billing.Unit) billing.PricingRule {
	return billing.PricingRule{
		ServiceName: service,
		CostPerUnit: decimal.RequireFromString(cost),
		Unit:        unit,
	}
}
