package bootstrap

import (
	"gym-booking/internal/infra/metrics"
	"gym-booking/internal/infra/uow"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/notify"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(uow.RetryObserver)),
			fx.As(new(commands.BookingMetrics)),
			fx.As(new(notify.FailureRecorder)),
		),
	),
)
