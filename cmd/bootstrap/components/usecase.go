package components

import (
	"brewpoints/internal/pkg/clock"
	"brewpoints/internal/usecase"
	"brewpoints/internal/usecase/commands"
	"brewpoints/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewAuthUseCase,
	func(a usecase.AuthUseCase) usecase.TokenValidator {
		return a
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProductQueries,
		queries.NewOrderQueries,
		queries.NewLoyaltyQueries,
		queries.NewNotificationQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPurchaseUseCase,
		commands.NewProductUseCase,
		commands.NewNotificationUseCase,
		commands.NewReconcileUseCase,
	),
)
