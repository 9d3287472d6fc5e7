//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gym-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRefundable(t *testing.T) {
	startsAt := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "five hours ahead", now: startsAt.Add(-5 * time.Hour), want: true},
		{name: "one minute over the window", now: startsAt.Add(-3*time.Hour - time.Minute), want: true},
		{name: "one second over the window", now: startsAt.Add(-3*time.Hour - time.Second), want: true},
		{name: "exactly three hours", now: startsAt.Add(-3 * time.Hour), want: false},
		{name: "two hours ahead", now: startsAt.Add(-2 * time.Hour), want: false},
		{name: "already started", now: startsAt.Add(time.Minute), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.IsRefundable(startsAt, tt.now))
		})
	}
}

func TestSplitHourly(t *testing.T) {
	from := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	t.Run("three hour range", func(t *testing.T) {
		starts, err := booking.SplitHourly(from, from.Add(3*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, []time.Time{from, from.Add(time.Hour), from.Add(2 * time.Hour)}, starts)
	})

	t.Run("single hour", func(t *testing.T) {
		starts, err := booking.SplitHourly(from, from.Add(time.Hour))
		require.NoError(t, err)
		assert.Len(t, starts, 1)
	})

	t.Run("empty range", func(t *testing.T) {
		_, err := booking.SplitHourly(from, from)
		assert.ErrorIs(t, err, booking.ErrInvalidRange)
	})

	t.Run("reversed range", func(t *testing.T) {
		_, err := booking.SplitHourly(from, from.Add(-time.Hour))
		assert.ErrorIs(t, err, booking.ErrInvalidRange)
	})
}

func TestNewBooking(t *testing.T) {
	userID := uuid.New()
	startsAt := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	now := startsAt.Add(-24 * time.Hour)

	b := booking.NewBooking(userID, startsAt, now)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, userID, b.UserID())
	assert.Equal(t, startsAt, b.StartsAt())
	assert.Equal(t, now, b.CreatedAt())
}
