package queries

import (
	"context"
	"time"

	"gym-booking/internal/domain/calendar"
	"gym-booking/internal/domain/slot"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// GetAvailableSlots lists the instants the user may still book, ascending.
	GetAvailableSlots(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
	GetCurrent(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	GetByInterval(ctx context.Context, f IntervalFilter) ([]*IntervalBookingView, error)
}

type SlotReadStore interface {
	FindExcludedStarts(ctx context.Context, f ExclusionFilter) ([]time.Time, error)
}

type BookingReadStore interface {
	FindUpcomingByUser(ctx context.Context, userID uuid.UUID, from time.Time) ([]*BookingView, error)
	FindByInterval(ctx context.Context, f IntervalFilter) ([]*IntervalBookingView, error)
	FindReminders(ctx context.Context, from, to time.Time) ([]*ReminderView, error)
}

type bookingQueriesImpl struct {
	users    UserReadStore
	slots    SlotReadStore
	bookings BookingReadStore
	calendar *calendar.Calendar
	clock    clock.Clock
}

func NewBookingQueries(
	users UserReadStore,
	slots SlotReadStore,
	bookings BookingReadStore,
	cal *calendar.Calendar,
	clk clock.Clock,
) BookingQueries {
	return &bookingQueriesImpl{
		users:    users,
		slots:    slots,
		bookings: bookings,
		calendar: cal,
		clock:    clk,
	}
}

func (q *bookingQueriesImpl) GetAvailableSlots(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	u, err := findUser(ctx, q.users, userID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	if err := u.Domain().CanBook(now); err != nil {
		return nil, errs.Mark(err, errs.ErrSubscriptionInactive)
	}

	horizon := q.calendar.HorizonAt(now)
	candidates := q.calendar.BookableSlots(horizon)
	if len(candidates) == 0 {
		return []time.Time{}, nil
	}

	excluded, err := q.slots.FindExcludedStarts(ctx, ExclusionFilter{
		UserID:    userID,
		Threshold: slot.Threshold(u.Domain().SubType()),
		From:      horizon.Start,
		To:        horizon.End,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	skip := make(map[int64]struct{}, len(excluded))
	for _, t := range excluded {
		skip[t.Unix()] = struct{}{}
	}

	available := make([]time.Time, 0, len(candidates))
	for _, t := range candidates {
		if _, ok := skip[t.Unix()]; !ok {
			available = append(available, t)
		}
	}
	return available, nil
}

func (q *bookingQueriesImpl) GetCurrent(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	views, err := q.bookings.FindUpcomingByUser(ctx, userID, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *bookingQueriesImpl) GetByInterval(ctx context.Context, f IntervalFilter) ([]*IntervalBookingView, error) {
	if f.To.Before(f.From) {
		return nil, errs.ErrInvalidTimeRange
	}

	views, err := q.bookings.FindByInterval(ctx, f)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
