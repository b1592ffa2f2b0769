package bootstrap

import (
	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBillingConfig,
	),
)

// NewBillingConfig exposes the engine settings derived from BILLING_* variables.
func NewBillingConfig(cfg config.Config) billing.Config {
	return cfg.Billing.ToEngine()
}
