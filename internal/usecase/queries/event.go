package queries

import (
	"context"
	"time"

	"gym-booking/internal/domain/calendar"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/errs"
)

type EventQueries interface {
	// GetLatest lists this week's events, newest first.
	GetLatest(ctx context.Context) ([]*EventView, error)
}

type EventReadStore interface {
	FindSince(ctx context.Context, since time.Time) ([]*EventView, error)
}

type eventQueriesImpl struct {
	readStore EventReadStore
	calendar  *calendar.Calendar
	clock     clock.Clock
}

func NewEventQueries(readStore EventReadStore, cal *calendar.Calendar, clk clock.Clock) EventQueries {
	return &eventQueriesImpl{
		readStore: readStore,
		calendar:  cal,
		clock:     clk,
	}
}

func (q *eventQueriesImpl) GetLatest(ctx context.Context) ([]*EventView, error) {
	since := q.calendar.StartOfWeek(q.clock.Now())
	views, err := q.readStore.FindSince(ctx, since)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
