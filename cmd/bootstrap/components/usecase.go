package components

import (
	"keyshop/internal/pkg/clock"
	"keyshop/internal/pkg/config"
	"keyshop/internal/usecase"
	"keyshop/internal/usecase/commands"
	"keyshop/internal/usecase/queries"

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
	func(cfg config.Config) config.InventoryConfig {
		return cfg.Inventory
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartCommands,
		commands.NewFulfillmentCommands,
		commands.NewInventoryCommands,
		func(ic commands.InventoryCommands) commands.CodeAllocator {
			return ic
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCartQueries,
		queries.NewOrderQueries,
		queries.NewInventoryQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
