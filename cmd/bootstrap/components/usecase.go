package components

import (
	"care-booking/internal/usecase"
	"care-booking/internal/usecase/commands"
	"care-booking/internal/usecase/flow"
	"care-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseCommandsModule,
	usecaseFlowModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSlotAvailabilityChecker,
		commands.NewQuotaLedger,
		commands.NewSpecialistAssigner,
		commands.NewBookingCommitter,
	),
)

var usecaseFlowModule = fx.Module("usecase/flow",
	fx.Provide(
		flow.NewSlotCatalog,
		flow.NewFactory,
		flow.NewService,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewQuotaQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
