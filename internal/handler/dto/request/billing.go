package request

import (
	"fablab-billing/internal/domain/billing"
)

type ServiceMinutesRequest struct {
	ID      string `json:"id" binding:"required"`
	Minutes string `json:"minutes" binding:"required"`
}

// CorrectionRequest is the body of an admin billing write-back. Amounts and minutes travel as
// strings so that clients never round them through floats.
type CorrectionRequest struct {
	TotalAmount string                  `json:"totalAmount" binding:"required"`
	Services    []ServiceMinutesRequest `json:"services" binding:"required,dive"`
}

func (r *CorrectionRequest) ToCorrection() billing.Correction {
	services := make([]billing.ServiceMinutes, len(r.Services))
	for i, s := range r.Services {
		services[i] = billing.ServiceMinutes{ID: s.ID, Minutes: s.Minutes}
	}
	return billing.Correction{TotalAmount: r.TotalAmount, Services: services}
}
