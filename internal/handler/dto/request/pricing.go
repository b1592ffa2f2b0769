package request

import "fablab-billing/internal/usecase/commands"

type UpsertPricingRequest struct {
	ServiceName string `json:"serviceName" binding:"required"`
	CostPerUnit string `json:"costPerUnit" binding:"required"`
	Unit        string `json:"unit" binding:"required"`
}

func (r *UpsertPricingRequest) ToCommand() commands.UpsertPricingRequest {
	return commands.UpsertPricingRequest{
		ServiceName: r.ServiceName,
		CostPerUnit: r.CostPerUnit,
		Unit:        r.Unit,
	}
}
