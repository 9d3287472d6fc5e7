package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gym-booking/internal/domain/event"

	"github.com/google/uuid"
)

const (
	ChannelBookings = "bookings"
	ChannelCalendar = "calendar"
	EventRefresh    = "refresh"

	TargetBroadcast = "broadcast"
	TargetMail      = "mail"
	TargetAudit     = "audit"

	DefaultTimeout = 10 * time.Second
)

// Notification is the ephemeral description of a booking change, derived from an event and its user.
type Notification struct {
	ID         uuid.UUID  `json:"id"`
	Type       event.Type `json:"type"`
	UserID     uuid.UUID  `json:"user_id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	StartsAt   time.Time  `json:"starts_at"`
	OccurredAt time.Time  `json:"occurred_at"`
}

type RefreshPayload struct {
	StartsAt []time.Time `json:"starts_at"`
}

type Broadcaster interface {
	Publish(ctx context.Context, channel, event string, payload any) error
}

type Mailer interface {
	SendBookingNotice(ctx context.Context, n Notification) error
}

type AuditPublisher interface {
	PublishBookingEvent(ctx context.Context, n Notification) error
}

type FailureRecorder interface {
	NotificationFailed(target string)
}

// Dispatcher is called after commit. It never reports failures to the caller.
type Dispatcher interface {
	BookingChanged(ctx context.Context, n Notification)
	CalendarChanged(ctx context.Context, startsAt []time.Time)
}

type Fanout struct {
	broadcaster Broadcaster
	mailer      Mailer
	audit       AuditPublisher
	failures    FailureRecorder
	logger      *slog.Logger
	timeout     time.Duration

	wg sync.WaitGroup
}

type Option func(*Fanout)

func WithMailer(m Mailer) Option {
	return func(f *Fanout) { f.mailer = m }
}

func WithAudit(a AuditPublisher) Option {
	return func(f *Fanout) { f.audit = a }
}

func WithFailureRecorder(r FailureRecorder) Option {
	return func(f *Fanout) { f.failures = r }
}

func WithTimeout(d time.Duration) Option {
	return func(f *Fanout) { f.timeout = d }
}

func NewFanout(broadcaster Broadcaster, logger *slog.Logger, opts ...Option) *Fanout {
	f := &Fanout{
		broadcaster: broadcaster,
		logger:      logger,
		timeout:     DefaultTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Fanout) BookingChanged(ctx context.Context, n Notification) {
	f.detach(ctx, func(ctx context.Context) {
		f.deliver(ctx, TargetBroadcast, n, func(ctx context.Context) error {
			return f.broadcaster.Publish(ctx, ChannelBookings, n.Type.BroadcastName(), n)
		})
		f.deliver(ctx, TargetBroadcast, n, func(ctx context.Context) error {
			return f.broadcaster.Publish(ctx, ChannelCalendar, EventRefresh, RefreshPayload{StartsAt: []time.Time{n.StartsAt}})
		})
		if f.mailer != nil {
			f.deliver(ctx, TargetMail, n, func(ctx context.Context) error {
				return f.mailer.SendBookingNotice(ctx, n)
			})
		}
		if f.audit != nil {
			f.deliver(ctx, TargetAudit, n, func(ctx context.Context) error {
				return f.audit.PublishBookingEvent(ctx, n)
			})
		}
	})
}

// CalendarChanged signals slot changes that carry no booking event, such as disabling a slot.
func (f *Fanout) CalendarChanged(ctx context.Context, startsAt []time.Time) {
	f.detach(ctx, func(ctx context.Context) {
		err := f.broadcaster.Publish(ctx, ChannelCalendar, EventRefresh, RefreshPayload{StartsAt: startsAt})
		if err != nil {
			f.fail(TargetBroadcast)
			f.logger.Warn("calendar refresh broadcast failed", "slots", len(startsAt), "error", err.Error())
		}
	})
}

// Wait blocks until every in-flight delivery has finished.
func (f *Fanout) Wait() {
	f.wg.Wait()
}

func (f *Fanout) detach(ctx context.Context, fn func(ctx context.Context)) {
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.timeout)
		defer cancel()
		fn(ctx)
	}()
}

func (f *Fanout) deliver(ctx context.Context, target string, n Notification, fn func(ctx context.Context) error) {
	if err := fn(ctx); err != nil {
		f.fail(target)
		f.logger.Warn("booking notification failed",
			"target", target,
			"event_id", n.ID,
			"type", n.Type,
			"starts_at", n.StartsAt,
			"error", err.Error())
	}
}

func (f *Fanout) fail(target string) {
	if f.failures != nil {
		f.failures.NotificationFailed(target)
	}
}
