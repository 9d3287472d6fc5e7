package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// RefundWindow is how far ahead a cancellation must happen to give the access back.
const RefundWindow = 3 * time.Hour

var ErrInvalidRange = errors.New("range start must be before its end")

type Booking struct {
	id        uuid.UUID
	userID    uuid.UUID
	startsAt  time.Time
	createdAt time.Time
}

func NewBooking(userID uuid.UUID, startsAt, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		userID:    userID,
		startsAt:  startsAt,
		createdAt: now,
	}
}

func ReconstructBooking(id, userID uuid.UUID, startsAt, createdAt time.Time) *Booking {
	return &Booking{id: id, userID: userID, startsAt: startsAt, createdAt: createdAt}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) StartsAt() time.Time  { return b.startsAt }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// IsRefundable is true only when strictly more than RefundWindow remains.
func IsRefundable(startsAt, now time.Time) bool {
	return startsAt.Sub(now) > RefundWindow
}

// SplitHourly cuts [from, to) into one-hour slice starts.
func SplitHourly(from, to time.Time) ([]time.Time, error) {
	if !from.Before(to) {
		return nil, ErrInvalidRange
	}
	var starts []time.Time
	for t := from; t.Before(to); t = t.Add(time.Hour) {
		starts = append(starts, t)
	}
	return starts, nil
}
