package components

import (
	"activity-booking/internal/domain/voucher"
	"activity-booking/internal/pkg/clock"
	"activity-booking/internal/pkg/config"
	"activity-booking/internal/usecase/commands"
	"activity-booking/internal/usecase/queries"
	"activity-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		voucher.NewRandomCodeGenerator,
		fx.As(new(voucher.CodeGenerator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewHoldUseCase,
		commands.NewCartUseCase,
		commands.NewOrderUseCase,
		commands.NewSettlementUseCase,
		commands.NewResourceUseCase,
		NewNotificationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewCartQueries,
		queries.NewOrderQueries,
		queries.NewVoucherQueries,
	),
)

func NewNotificationUseCase(uow shared.UnitOfWork, notifier commands.Notifier, cfg config.SchedulerConfig, clk clock.Clock) commands.NotificationCommands {
	return commands.NewNotificationUseCase(uow, notifier, cfg.OutboxBatchSize, clk)
}
