package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/handler/dto/response"
)

func stateReport(in billing.Inputs, state billing.DerivedState) response.BillingResponse {
	return response.FromDerivedState(in.ReservationID, string(in.Status), state)
}

func refreshReport(in billing.Inputs, o billing.RefreshOutcome) response.RefreshResponse {
	return response.RefreshResponse{
		BillingResponse: stateReport(in, o.Local),
		Attempted:       o.Attempted,
		Remote:          string(o.Remote),
		Message:         o.Message,
		Error:           o.ErrorMessage(),
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printState(w io.Writer, in billing.Inputs, state billing.DerivedState) {
	if in.ReservationID != "" {
		fmt.Fprintf(w, "Reservation: %s\n", in.ReservationID)
	}
	fmt.Fprintf(w, "Status:      %s (billed on %s time)\n\n", in.Status, state.Basis)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SERVICE\tMACHINE\tSOURCE\tACTUAL\tROUNDED\tBOOKED\tBILLED\tRATE\tCOST")
	for _, l := range state.Lines {
		machine := l.MatchedMachine
		if machine == "" {
			machine = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s/%s\t%s\n",
			l.ServiceName, machine, l.TimeSource,
			l.ActualMinutes, l.RoundedMinutes, l.BookedMinutes, l.BilledMinutes,
			billing.FormatRate(l.RatePerUnit), l.PricingUnit,
			billing.FormatCurrency(l.AdjustedCost))
	}
	_ = tw.Flush()

	s := state.Summary
	fmt.Fprintf(w, "\nActual:  %s h (rounded %s h)\n", s.ActualHours, s.RoundedHours)
	fmt.Fprintf(w, "Booked:  %s h (rounded %s h)\n", s.BookedHours, s.RoundedBookedHours)
	fmt.Fprintf(w, "Total:   %s\n", s.TotalDisplay)

	rec := state.Reconciliation
	if rec.StoredTotal != nil {
		fmt.Fprintf(w, "Stored:  %s\n", billing.FormatCurrency(*rec.StoredTotal))
	}
	if state.Banner.Visible {
		fmt.Fprintf(w, "\n! %s\n", state.Banner.Message)
	}
}
