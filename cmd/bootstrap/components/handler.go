package components

import (
	"fablab-billing/internal/handler"
	"fablab-billing/internal/handler/api"
	"fablab-billing/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBillingHandler,
		api.NewPricingHandler,
		api.NewSurveyHandler,
		middleware.NewAuthMiddleware,
		func(b *api.BillingHandler, p *api.PricingHandler, s *api.SurveyHandler) handler.Handlers {
			return handler.Handlers{Billing: b, Pricing: p, Survey: s}
		},
	),
	fx.Invoke(handler.NewRouter),
)
