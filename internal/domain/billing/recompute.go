package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Recompute derives the full billing state from its inputs. It has no side effects and
// always returns a complete result: missing or malformed fields count as zero.
func Recompute(cfg Config, in Inputs) DerivedState {
	basis := BasisFor(in.Status)
	card := NewRateCard(in.Pricing)
	m := newMatcher(in.Utilizations)

	lines := make([]AdjustedLine, 0, len(in.Services))
	total := decimal.Zero
	for _, svc := range in.Services {
		line := cfg.adjust(svc, basis, card, m)
		total = total.Add(line.AdjustedCost)
		lines = append(lines, line)
	}

	rec := Reconciliation{
		CalculatedTotal: total,
		StoredTotal:     in.StoredTotal,
		HasDiscrepancy:  HasDiscrepancy(total, in.StoredTotal),
	}

	return DerivedState{
		Basis:          basis,
		Lines:          lines,
		Reconciliation: rec,
		Summary:        summarize(lines, total),
		Banner:         bannerFor(basis, rec),
	}
}

func (c Config) adjust(svc ServiceLine, basis Basis, card RateCard, m *matcher) AdjustedLine {
	booked := 0
	if svc.BookedMinutes != nil && *svc.BookedMinutes > 0 {
		booked = *svc.BookedMinutes
	}

	line := AdjustedLine{
		ID:            svc.ID,
		ServiceName:   svc.ServiceName,
		EquipmentName: svc.EquipmentName,
		ListedCost:    svc.ListedCost,
		BookedMinutes: booked,
		TimeSource:    SourceNone,
	}

	if idx := m.match(svc); idx >= 0 {
		rec := m.records[idx]
		line.MatchedMachine = rec.MachineName
		line.TimeSource = SourceUtilization
		line.ActualMinutes = OperatingMinutes(rec)
		line.DownTimeMinutes = DownTimeMinutes(rec)
	} else if n, ok := MinutesFromDisplayText(svc.ServiceName, svc.EquipmentName); ok {
		line.TimeSource = SourceDisplayText
		line.ActualMinutes = n
	} else if booked > 0 {
		line.TimeSource = SourceBooked
		line.ActualMinutes = booked
	}

	line.RoundedMinutes = c.RoundUp(line.ActualMinutes)
	line.RoundedBookedMinutes = c.RoundUp(booked)
	if basis == BasisActual {
		line.BilledMinutes = line.RoundedMinutes
	} else {
		line.BilledMinutes = line.RoundedBookedMinutes
	}

	p := c.resolvePrice(svc, card)
	line.RatePerUnit = p.rate
	line.PricingUnit = p.unit
	line.PriceSource = p.source
	line.RatePerMinute = c.RatePerMinute(p.rate, p.unit)
	line.AdjustedCost = decimal.Zero
	if basis != BasisNone {
		line.AdjustedCost = c.Cost(p.rate, p.unit, line.BilledMinutes)
	}
	return line
}

func summarize(lines []AdjustedLine, total decimal.Decimal) Summary {
	var s Summary
	for _, l := range lines {
		s.TotalActualMinutes += nonNegative(l.ActualMinutes)
		s.TotalRoundedMinutes += nonNegative(l.RoundedMinutes)
		s.TotalBookedMinutes += nonNegative(l.BookedMinutes)
		s.TotalRoundedBookedMinutes += nonNegative(l.RoundedBookedMinutes)
	}
	s.ActualHours = FormatHours(s.TotalActualMinutes)
	s.RoundedHours = FormatHours(s.TotalRoundedMinutes)
	s.BookedHours = FormatHours(s.TotalBookedMinutes)
	s.RoundedBookedHours = FormatHours(s.TotalRoundedBookedMinutes)
	s.TotalDisplay = FormatCurrency(total)
	return s
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func bannerFor(basis Basis, rec Reconciliation) Banner {
	if !rec.HasDiscrepancy || rec.StoredTotal == nil {
		return Banner{}
	}
	return Banner{
		Visible: true,
		Message: fmt.Sprintf("Total recalculated from %s: %s (stored %s)",
			basisPhrase(basis), FormatCurrency(rec.CalculatedTotal), FormatCurrency(*rec.StoredTotal)),
	}
}

func basisPhrase(basis Basis) string {
	if basis == BasisActual {
		return "rounded operation times"
	}
	return "rounded booked times"
}
