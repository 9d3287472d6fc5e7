//go:build unit

package notify_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"gym-booking/internal/domain/event"
	"gym-booking/internal/usecase/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	channel string
	event   string
	payload any
}

type recordingBroadcaster struct {
	mu   sync.Mutex
	sent []published
	err  error
}

func (r *recordingBroadcaster) Publish(_ context.Context, channel, ev string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, published{channel: channel, event: ev, payload: payload})
	return r.err
}

type recordingMailer struct {
	mu    sync.Mutex
	sent  []notify.Notification
	err   error
	block bool
}

func (r *recordingMailer) SendBookingNotice(ctx context.Context, n notify.Notification) error {
	if r.block {
		<-ctx.Done()
		return ctx.Err()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return r.err
}

type recordingAudit struct {
	mu   sync.Mutex
	sent []notify.Notification
}

func (r *recordingAudit) PublishBookingEvent(_ context.Context, n notify.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return nil
}

type countingRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func (c *countingRecorder) NotificationFailed(target string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = map[string]int{}
	}
	c.counts[target]++
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleNotification(typ event.Type) notify.Notification {
	return notify.Notification{
		ID:         uuid.New(),
		Type:       typ,
		UserID:     uuid.New(),
		FirstName:  "Mario",
		LastName:   "Rossi",
		StartsAt:   time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		OccurredAt: time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC),
	}
}

func TestFanout_BookingChanged(t *testing.T) {
	t.Run("fans out to every target", func(t *testing.T) {
		b := &recordingBroadcaster{}
		m := &recordingMailer{}
		a := &recordingAudit{}
		f := notify.NewFanout(b, discardLogger(), notify.WithMailer(m), notify.WithAudit(a))

		n := sampleNotification(event.TypeCreated)
		f.BookingChanged(context.Background(), n)
		f.Wait()

		require.Len(t, b.sent, 2)
		assert.Equal(t, notify.ChannelBookings, b.sent[0].channel)
		assert.Equal(t, "created", b.sent[0].event)
		assert.Equal(t, n, b.sent[0].payload)
		assert.Equal(t, notify.ChannelCalendar, b.sent[1].channel)
		assert.Equal(t, notify.EventRefresh, b.sent[1].event)
		assert.Equal(t, notify.RefreshPayload{StartsAt: []time.Time{n.StartsAt}}, b.sent[1].payload)
		assert.Equal(t, []notify.Notification{n}, m.sent)
		assert.Equal(t, []notify.Notification{n}, a.sent)
	})

	t.Run("deleted bookings use the deleted event name", func(t *testing.T) {
		b := &recordingBroadcaster{}
		f := notify.NewFanout(b, discardLogger())

		f.BookingChanged(context.Background(), sampleNotification(event.TypeDeleted))
		f.Wait()

		require.NotEmpty(t, b.sent)
		assert.Equal(t, "deleted", b.sent[0].event)
	})

	t.Run("failures are counted and do not stop other targets", func(t *testing.T) {
		b := &recordingBroadcaster{err: errors.New("redis down")}
		m := &recordingMailer{err: errors.New("smtp down")}
		a := &recordingAudit{}
		rec := &countingRecorder{}
		f := notify.NewFanout(b, discardLogger(),
			notify.WithMailer(m), notify.WithAudit(a), notify.WithFailureRecorder(rec))

		f.BookingChanged(context.Background(), sampleNotification(event.TypeCreated))
		f.Wait()

		assert.Equal(t, 2, rec.counts[notify.TargetBroadcast])
		assert.Equal(t, 1, rec.counts[notify.TargetMail])
		assert.Len(t, a.sent, 1)
	})

	t.Run("survives caller cancellation and honours its own timeout", func(t *testing.T) {
		b := &recordingBroadcaster{}
		m := &recordingMailer{block: true}
		rec := &countingRecorder{}
		f := notify.NewFanout(b, discardLogger(),
			notify.WithMailer(m), notify.WithFailureRecorder(rec), notify.WithTimeout(50*time.Millisecond))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		f.BookingChanged(ctx, sampleNotification(event.TypeCreated))
		f.Wait()

		assert.Len(t, b.sent, 2)
		assert.Equal(t, 1, rec.counts[notify.TargetMail])
	})
}

func TestFanout_CalendarChanged(t *testing.T) {
	b := &recordingBroadcaster{}
	f := notify.NewFanout(b, discardLogger())
	starts := []time.Time{time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}

	f.CalendarChanged(context.Background(), starts)
	f.Wait()

	require.Len(t, b.sent, 1)
	assert.Equal(t, notify.ChannelCalendar, b.sent[0].channel)
	assert.Equal(t, notify.RefreshPayload{StartsAt: starts}, b.sent[0].payload)
}
