package bootstrap

import (
	"context"
	"log/slog"

	"gym-booking/internal/infra/broadcast"
	"gym-booking/internal/infra/metrics"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/usecase/notify"

	"go.uber.org/fx"
)

var BroadcastModule = fx.Module("broadcast",
	fx.Provide(
		NewHub,
		NewUpgrader,
		NewBroadcaster,
	),
)

func NewHub(lc fx.Lifecycle, logger *slog.Logger, m *metrics.Metrics) *broadcast.Hub {
	hub := broadcast.NewHub(logger, broadcast.WithClientCountObserver(m.SetLiveClients))

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go hub.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return hub
}

func NewUpgrader(cfg config.Config, logger *slog.Logger) *broadcast.Upgrader {
	return broadcast.NewUpgrader(logger, cfg.CORS.AllowOrigins)
}

// NewBroadcaster publishes through Redis when configured so every instance's hub sees the
// same frames; otherwise frames go straight to this process's hub.
func NewBroadcaster(lc fx.Lifecycle, cfg config.Config, hub *broadcast.Hub, logger *slog.Logger) (notify.Broadcaster, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("redis not configured, broadcasting to local clients only")
		return broadcast.NewLocalBroadcaster(hub), nil
	}

	client, err := broadcast.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	relay := broadcast.NewRelay(client, hub, logger, notify.ChannelBookings, notify.ChannelCalendar)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := relay.Run(ctx); err != nil {
					logger.Error("redis relay stopped", "error", err.Error())
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return client.Close()
		},
	})
	return broadcast.NewRedisBroadcaster(client), nil
}
