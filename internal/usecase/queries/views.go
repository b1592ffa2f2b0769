package queries

import (
	"time"

	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type ServiceLineView struct {
	ID            uuid.UUID        `json:"id"`
	ServiceName   string           `json:"service_name"`
	EquipmentName string           `json:"equipment_name"`
	BookedMinutes *int             `json:"booked_minutes,omitempty"`
	ListedCost    *decimal.Decimal `json:"listed_cost,omitempty"`
	BilledMinutes *int             `json:"billed_minutes,omitempty"`
}

type ReservationView struct {
	ID             uuid.UUID         `json:"id"`
	UserID         uuid.UUID         `json:"user_id"`
	Status         string            `json:"status"`
	TotalAmountDue *decimal.Decimal  `json:"total_amount_due,omitempty"`
	Services       []ServiceLineView `json:"services"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type PricingRuleView struct {
	ServiceName string          `json:"service_name"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	Unit        string          `json:"unit"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BillingInputsView is everything stored for one reservation that a recompute reads.
type BillingInputsView struct {
	Reservation  ReservationView              `json:"reservation"`
	Utilizations []billing.MachineUtilization `json:"utilizations"`
	Pricing      []PricingRuleView            `json:"pricing"`
}

// ToEngine maps the stored inputs onto the billing engine's input document.
func (v *BillingInputsView) ToEngine() billing.Inputs {
	services := make([]billing.ServiceLine, len(v.Reservation.Services))
	for i, s := range v.Reservation.Services {
		services[i] = billing.ServiceLine{
			ID:            s.ID.String(),
			ServiceName:   s.ServiceName,
			EquipmentName: s.EquipmentName,
			BookedMinutes: s.BookedMinutes,
			ListedCost:    s.ListedCost,
		}
	}

	utilizations := v.Utilizations
	if utilizations == nil {
		utilizations = []billing.MachineUtilization{}
	}

	return billing.Inputs{
		ReservationID: v.Reservation.ID.String(),
		Status:        reservation.Status(v.Reservation.Status),
		Services:      services,
		Utilizations:  utilizations,
		Pricing:       RateCardFromViews(v.Pricing),
		StoredTotal:   v.Reservation.TotalAmountDue,
	}
}

// RateCardFromViews drops rules whose unit is not a recognised billing unit.
func RateCardFromViews(views []PricingRuleView) []billing.PricingRule {
	rules := make([]billing.PricingRule, 0, len(views))
	for _, p := range views {
		unit, ok := billing.ParseUnit(p.Unit)
		if !ok {
			continue
		}
		rules = append(rules, billing.PricingRule{
			ServiceName: p.ServiceName,
			CostPerUnit: p.CostPerUnit,
			Unit:        unit,
		})
	}
	return rules
}

type BillingView struct {
	ReservationID uuid.UUID            `json:"reservation_id"`
	Status        string               `json:"status"`
	State         billing.DerivedState `json:"state"`
}

type SurveyView struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	UserID        uuid.UUID `json:"user_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}
