package bootstrap

import (
	"context"
	"log/slog"

	"gym-booking/internal/infra/eventbus"
	"gym-booking/internal/infra/mail"
	"gym-booking/internal/infra/metrics"
	"gym-booking/internal/usecase/notify"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewDispatcher,
	),
)

func NewDispatcher(
	lc fx.Lifecycle,
	broadcaster notify.Broadcaster,
	mailer *mail.Mailer,
	audit *eventbus.Publisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) notify.Dispatcher {
	opts := []notify.Option{notify.WithFailureRecorder(m)}
	if mailer.Enabled() {
		opts = append(opts, notify.WithMailer(mailer))
	}
	if audit != nil {
		opts = append(opts, notify.WithAudit(audit))
	}
	fanout := notify.NewFanout(broadcaster, logger, opts...)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			fanout.Wait()
			return nil
		},
	})
	return fanout
}
