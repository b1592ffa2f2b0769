package billing

import (
	"github.com/shopspring/decimal"
)

// RoundUp rounds minutes up to the next whole hour. Non-positive input bills nothing.
func (c Config) RoundUp(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	unit := c.minutesPerHour()
	return ((minutes + unit - 1) / unit) * unit
}

// RoundUp applies the default hourly rounding.
func RoundUp(minutes int) int {
	return DefaultConfig().RoundUp(minutes)
}

type price struct {
	rate   decimal.Decimal
	unit   Unit
	source PriceSource
}

// RateCard indexes pricing rules by exact, case-sensitive service name.
type RateCard map[string]PricingRule

func NewRateCard(rules []PricingRule) RateCard {
	card := make(RateCard, len(rules))
	for _, r := range rules {
		if _, exists := card[r.ServiceName]; exists {
			continue
		}
		card[r.ServiceName] = r
	}
	return card
}

func (c Config) resolvePrice(line ServiceLine, card RateCard) price {
	if rule, ok := card[line.ServiceName]; ok {
		unit := rule.Unit
		if !unit.IsValid() {
			if parsed, ok := ParseUnit(string(unit)); ok {
				unit = parsed
			} else {
				unit = c.defaultUnit()
			}
		}
		return price{rate: rule.CostPerUnit, unit: unit, source: PriceFromRule}
	}
	if line.ListedCost != nil {
		return price{rate: *line.ListedCost, unit: c.defaultUnit(), source: PriceFromListedCost}
	}
	return price{rate: c.DefaultPricePerMin, unit: UnitMinute, source: PriceFromDefault}
}

// Cost prices a rounded duration: rate × rounded / unitMinutes(unit).
func (c Config) Cost(rate decimal.Decimal, unit Unit, roundedMinutes int) decimal.Decimal {
	if roundedMinutes <= 0 {
		return decimal.Zero
	}
	return rate.Mul(decimal.NewFromInt(int64(roundedMinutes))).
		Div(decimal.NewFromInt(int64(c.UnitMinutes(unit))))
}

// RatePerMinute is shown next to a line for reference and never feeds the cost.
func (c Config) RatePerMinute(rate decimal.Decimal, unit Unit) decimal.Decimal {
	return rate.Div(decimal.NewFromInt(int64(c.UnitMinutes(unit))))
}
