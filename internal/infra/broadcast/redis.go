package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"gym-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// ChannelPrefix namespaces pub/sub channels so several deployments can share one Redis.
const ChannelPrefix = "gym-booking:"

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// Encode builds the frame shared by every broadcaster and the live feed.
func Encode(channel, event string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s/%s payload: %w", channel, event, err)
	}
	return json.Marshal(Message{Channel: channel, Event: event, Payload: raw})
}

type redisPublisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisBroadcaster publishes frames so every API instance can relay them to its own hub.
type RedisBroadcaster struct {
	client redisPublisher
}

func NewRedisBroadcaster(client redisPublisher) *RedisBroadcaster {
	return &RedisBroadcaster{client: client}
}

func (b *RedisBroadcaster) Publish(ctx context.Context, channel, event string, payload any) error {
	frame, err := Encode(channel, event, payload)
	if err != nil {
		return err
	}
	if err := b.client.Publish(ctx, ChannelPrefix+channel, frame).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", channel, err)
	}
	return nil
}

// LocalBroadcaster hands frames straight to the in-process hub when Redis is not configured.
type LocalBroadcaster struct {
	hub *Hub
}

func NewLocalBroadcaster(hub *Hub) *LocalBroadcaster {
	return &LocalBroadcaster{hub: hub}
}

func (b *LocalBroadcaster) Publish(_ context.Context, channel, event string, payload any) error {
	frame, err := Encode(channel, event, payload)
	if err != nil {
		return err
	}
	b.hub.Broadcast(frame)
	return nil
}

// Relay forwards frames published on Redis to the local hub.
type Relay struct {
	client   *redis.Client
	hub      *Hub
	channels []string
	logger   *slog.Logger
}

func NewRelay(client *redis.Client, hub *Hub, logger *slog.Logger, channels ...string) *Relay {
	names := make([]string, len(channels))
	for i, ch := range channels {
		names[i] = ChannelPrefix + ch
	}
	return &Relay{client: client, hub: hub, channels: names, logger: logger}
}

// Run blocks until ctx is cancelled or the subscription breaks.
func (r *Relay) Run(ctx context.Context) error {
	sub := r.client.Subscribe(ctx, r.channels...)
	defer func() {
		if err := sub.Close(); err != nil {
			r.logger.Warn("failed to close redis subscription", "error", err.Error())
		}
	}()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe: %w", err)
	}
	r.logger.Info("relaying redis broadcasts", "channels", r.channels)

	msgs := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			r.hub.Broadcast([]byte(msg.Payload))
		}
	}
}
