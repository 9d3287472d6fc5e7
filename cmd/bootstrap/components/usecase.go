package components

import (
	"gym-booking/internal/infra/mail"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/usecase"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewAdminBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewEventQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// MaintenanceModule backs the scheduled jobs, which run without the HTTP stack.
var MaintenanceModule = fx.Module("usecase/maintenance",
	fx.Provide(
		fx.Annotate(
			func(m *mail.Mailer) *mail.Mailer { return m },
			fx.As(new(commands.ReminderSender)),
		),
		func(cfg config.Config) config.RetentionConfig { return cfg.Retention },
		commands.NewMaintenanceCommands,
	),
)
