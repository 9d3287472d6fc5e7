package bootstrap

import (
	"context"
	"log/slog"

	"gym-booking/internal/infra/eventbus"
	"gym-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		NewAuditPublisher,
	),
)

// NewAuditPublisher returns nil when AMQP_URL is unset; the dispatcher then skips the audit target.
func NewAuditPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*eventbus.Publisher, error) {
	if cfg.AMQP.URL == "" {
		logger.Info("amqp not configured, booking audit stream disabled")
		return nil, nil
	}

	p, err := eventbus.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p, nil
}
