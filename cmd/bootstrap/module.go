package bootstrap

import (
	"gym-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// InfraModule is everything but the HTTP surface; the maintenance jobs start from it.
var InfraModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	MetricsModule,
	MailModule,
	components.PersistenceModule,
)

var Module = fx.Options(
	InfraModule,
	JWTModule,
	BroadcastModule,
	AMQPModule,
	NotifyModule,
	components.UseCaseModule,
	components.HandlerModule,
)
