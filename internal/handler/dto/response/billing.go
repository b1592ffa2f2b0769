package response

import (
	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/usecase/commands"
	"fablab-billing/internal/usecase/queries"
)

type BillingLineResponse struct {
	ID                   string  `json:"id"`
	ServiceName          string  `json:"serviceName"`
	EquipmentName        string  `json:"equipmentName"`
	ListedCost           *string `json:"listedCost"`
	MatchedMachine       string  `json:"matchedMachine"`
	TimeSource           string  `json:"timeSource"`
	ActualMinutes        int     `json:"actualMinutes"`
	DownTimeMinutes      int     `json:"downTimeMinutes"`
	RoundedMinutes       int     `json:"roundedMinutes"`
	BookedMinutes        int     `json:"bookedMinutes"`
	RoundedBookedMinutes int     `json:"roundedBookedMinutes"`
	BilledMinutes        int     `json:"billedMinutes"`
	RatePerUnit          string  `json:"ratePerUnit"`
	PricingUnit          string  `json:"pricingUnit"`
	PriceSource          string  `json:"priceSource"`
	RatePerMinute        string  `json:"ratePerMinute"`
	AdjustedCost         string  `json:"adjustedCost"`
}

type ReconciliationResponse struct {
	CalculatedTotal string  `json:"calculatedTotal"`
	StoredTotal     *string `json:"storedTotal"`
	HasDiscrepancy  bool    `json:"hasDiscrepancy"`
}

type SummaryResponse struct {
	TotalActualMinutes        int    `json:"totalActualMinutes"`
	TotalRoundedMinutes       int    `json:"totalRoundedMinutes"`
	TotalBookedMinutes        int    `json:"totalBookedMinutes"`
	TotalRoundedBookedMinutes int    `json:"totalRoundedBookedMinutes"`
	ActualHours               string `json:"actualHours"`
	RoundedHours              string `json:"roundedHours"`
	BookedHours               string `json:"bookedHours"`
	RoundedBookedHours        string `json:"roundedBookedHours"`
	TotalDisplay              string `json:"totalDisplay"`
}

type BannerResponse struct {
	Visible bool   `json:"visible"`
	Message string `json:"message"`
}

type BillingResponse struct {
	ReservationID  string                 `json:"reservationId"`
	Status         string                 `json:"status"`
	Basis          string                 `json:"basis"`
	Lines          []BillingLineResponse  `json:"lines"`
	Reconciliation ReconciliationResponse `json:"reconciliation"`
	Summary        SummaryResponse        `json:"summary"`
	Banner         BannerResponse         `json:"banner"`
}

type RefreshResponse struct {
	BillingResponse
	Attempted bool   `json:"attempted"`
	Remote    string `json:"remote"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
}

func FromDerivedState(reservationID, status string, state billing.DerivedState) BillingResponse {
	res := BillingResponse{
		ReservationID: reservationID,
		Status:        status,
		Lines:         []BillingLineResponse{},
	}
	copyInto(&res, &state)
	if res.Lines == nil {
		res.Lines = []BillingLineResponse{}
	}
	// rates keep sub-centavo precision; amounts stay at two decimals
	for i, l := range state.Lines {
		res.Lines[i].RatePerUnit = billing.FormatRate(l.RatePerUnit)
		res.Lines[i].RatePerMinute = billing.FormatRate(l.RatePerMinute)
		if l.ListedCost != nil {
			listed := billing.FormatRate(*l.ListedCost)
			res.Lines[i].ListedCost = &listed
		}
	}
	return res
}

func FromBillingView(v *queries.BillingView) BillingResponse {
	return FromDerivedState(v.ReservationID.String(), v.Status, v.State)
}

func FromRefreshResult(r *commands.RefreshResult) RefreshResponse {
	return RefreshResponse{
		BillingResponse: FromDerivedState(r.ReservationID.String(), r.Status, r.State),
		Attempted:       r.Attempted,
		Remote:          string(r.Remote),
		Message:         r.Message,
		Error:           r.Error,
	}
}

// FromBillingInputsView renders the stored inputs in the engine's own input document shape,
// so that offline tools can decode the body straight into billing.Inputs.
func FromBillingInputsView(v *queries.BillingInputsView) billing.Inputs {
	return v.ToEngine()
}
