package bootstrap

import (
	"context"
	"log/slog"

	"gym-booking/internal/domain/calendar"
	"gym-booking/internal/infra/mail"
	"gym-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		NewMailer,
	),
)

func NewMailer(lc fx.Lifecycle, cfg config.Config, cal *calendar.Calendar, logger *slog.Logger) *mail.Mailer {
	m := mail.NewMailer(cfg.Mail, cal.Location(), logger)
	if !m.Enabled() {
		logger.Info("smtp not configured, mail delivery disabled")
		return m
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				m.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			// Close lets Run drain what is already queued.
			m.Close()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			cancel()
			return nil
		},
	})
	return m
}
