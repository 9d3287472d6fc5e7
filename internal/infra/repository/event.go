package repository

import (
	"context"
	"time"

	"gym-booking/internal/domain/event"
	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type EventWriteQueries interface {
	CreateEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEventParams) (sqlc.Events, error)
	DeleteEventsBefore(ctx context.Context, db sqlc.DBTX, occurredAt pgtype.Timestamptz) (int64, error)
}

type EventRepository struct {
	queries EventWriteQueries
}

func NewEventRepository(queries EventWriteQueries) *EventRepository {
	return &EventRepository{
		queries: queries,
	}
}

func (r *EventRepository) Create(ctx context.Context, tx sqlc.DBTX, e *event.Event) error {
	_, err := r.queries.CreateEvent(ctx, tx, sqlc.CreateEventParams{
		ID:         e.ID(),
		Type:       string(e.Type()),
		StartsAt:   pgconv.TimeToPgtype(e.StartsAt()),
		UserID:     e.UserID(),
		OccurredAt: pgconv.TimeToPgtype(e.OccurredAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append event", err)
	}
	return nil
}

func (r *EventRepository) DeleteBefore(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) (int64, error) {
	n, err := r.queries.DeleteEventsBefore(ctx, tx, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge old events", err)
	}
	return n, nil
}
