package pricing

import (
	"errors"
	"strings"
	"time"

	"fablab-billing/internal/domain/billing"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyServiceName   = errors.New("service name cannot be empty")
	ErrServiceNameTooLong = errors.New("service name is too long (max 255 characters)")
	ErrNegativeCost       = errors.New("cost per unit cannot be negative")
	ErrInvalidUnit        = errors.New("unit must be one of min, hour, day")
)

const MaxServiceNameLength = 255

// Rule is the price of one service per billing unit.
type Rule struct {
	serviceName string
	costPerUnit decimal.Decimal
	unit        billing.Unit
	updatedAt   time.Time
}

func NewRule(serviceName string, costPerUnit decimal.Decimal, unit string, now time.Time) (*Rule, error) {
	name, err := validateServiceName(serviceName)
	if err != nil {
		return nil, err
	}
	if costPerUnit.IsNegative() {
		return nil, ErrNegativeCost
	}
	u, ok := billing.ParseUnit(unit)
	if !ok {
		return nil, ErrInvalidUnit
	}

	return &Rule{
		serviceName: name,
		costPerUnit: costPerUnit,
		unit:        u,
		updatedAt:   now,
	}, nil
}

func ReconstructRule(serviceName string, costPerUnit decimal.Decimal, unit billing.Unit, updatedAt time.Time) *Rule {
	return &Rule{
		serviceName: serviceName,
		costPerUnit: costPerUnit,
		unit:        unit,
		updatedAt:   updatedAt,
	}
}

// ToEngine converts the rule into the rate card entry used by billing.Recompute.
func (r *Rule) ToEngine() billing.PricingRule {
	return billing.PricingRule{
		ServiceName: r.serviceName,
		CostPerUnit: r.costPerUnit,
		Unit:        r.unit,
	}
}

func validateServiceName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyServiceName
	}
	if len(name) > MaxServiceNameLength {
		return "", ErrServiceNameTooLong
	}
	return name, nil
}

func (r *Rule) ServiceName() string          { return r.serviceName }
func (r *Rule) CostPerUnit() decimal.Decimal { return r.costPerUnit }
func (r *Rule) Unit() billing.Unit           { return r.unit }
func (r *Rule) UpdatedAt() time.Time         { return r.updatedAt }
