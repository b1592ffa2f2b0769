package components

import (
	"fablab-billing/internal/pkg/clock"
	"fablab-billing/internal/usecase"
	"fablab-billing/internal/usecase/commands"
	"fablab-billing/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		// The rate card for write-backs comes through the cached pricing queries.
		func(q queries.PricingQueries) commands.RateCardProvider {
			return q
		},
		commands.NewBillingCommands,
		commands.NewPricingCommands,
		commands.NewSurveyCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPricingQueries,
		queries.NewBillingQueries,
		queries.NewSurveyQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
