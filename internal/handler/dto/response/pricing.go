package response

import (
	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/domain/pricing"
	"fablab-billing/internal/usecase/queries"
)

type PricingRuleResponse struct {
	ServiceName string `json:"serviceName"`
	CostPerUnit string `json:"costPerUnit"`
	Unit        string `json:"unit"`
	UpdatedAt   int64  `json:"updatedAt"`
}

func FromPricingViews(views []queries.PricingRuleView) []PricingRuleResponse {
	res := make([]PricingRuleResponse, 0, len(views))
	copyInto(&res, &views)
	for i, v := range views {
		res[i].CostPerUnit = billing.FormatRate(v.CostPerUnit)
	}
	return res
}

func FromPricingRule(r *pricing.Rule) PricingRuleResponse {
	return PricingRuleResponse{
		ServiceName: r.ServiceName(),
		CostPerUnit: billing.FormatRate(r.CostPerUnit()),
		Unit:        r.Unit().String(),
		UpdatedAt:   r.UpdatedAt().Unix(),
	}
}
