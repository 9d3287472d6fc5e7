//go:build unit

package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gym-booking/internal/domain/event"
	"gym-booking/internal/usecase/notify"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange = exchange
	f.key = key
	f.msg = msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublisher_PublishBookingEvent(t *testing.T) {
	n := notify.Notification{
		ID:         uuid.New(),
		Type:       event.TypeCreated,
		UserID:     uuid.New(),
		FirstName:  "Mario",
		LastName:   "Rossi",
		StartsAt:   time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		OccurredAt: time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC),
	}

	t.Run("persistent json message on the booking routing key", func(t *testing.T) {
		ch := &fakeChannel{}
		p := newPublisherWithChannel(ch, "booking.events")

		require.NoError(t, p.PublishBookingEvent(context.Background(), n))

		assert.Equal(t, "booking.events", ch.exchange)
		assert.Equal(t, "booking.created", ch.key)
		assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
		assert.Equal(t, n.ID.String(), ch.msg.MessageId)
		assert.Equal(t, "application/json", ch.msg.ContentType)

		var decoded notify.Notification
		require.NoError(t, json.Unmarshal(ch.msg.Body, &decoded))
		assert.Equal(t, n.ID, decoded.ID)
		assert.True(t, n.StartsAt.Equal(decoded.StartsAt))
	})

	t.Run("wraps broker errors", func(t *testing.T) {
		ch := &fakeChannel{err: errors.New("channel closed")}
		p := newPublisherWithChannel(ch, "booking.events")

		n.Type = event.TypeDeleted
		err := p.PublishBookingEvent(context.Background(), n)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "booking.deleted")
	})

	t.Run("close releases the channel", func(t *testing.T) {
		ch := &fakeChannel{}
		p := newPublisherWithChannel(ch, "booking.events")

		require.NoError(t, p.Close())
		assert.True(t, ch.closed)
	})
}
