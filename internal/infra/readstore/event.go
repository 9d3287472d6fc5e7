package readstore

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/pgconv"
	"gym-booking/internal/usecase/queries"
)

type EventReadQueries interface {
	ListEventsSince(ctx context.Context, db sqlc.DBTX, occurredAt pgtype.Timestamptz) ([]sqlc.ListEventsSinceRow, error)
}

type EventReadStore struct {
	queries EventReadQueries
	db      sqlc.DBTX
}

func NewEventReadStore(queries EventReadQueries, db sqlc.DBTX) *EventReadStore {
	return &EventReadStore{
		queries: queries,
		db:      db,
	}
}

// FindSince returns events newest first.
func (r *EventReadStore) FindSince(ctx context.Context, since time.Time) ([]*queries.EventView, error) {
	rows, err := r.queries.ListEventsSince(ctx, r.db, pgconv.TimeToPgtype(since))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}

	views := make([]*queries.EventView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.EventView{
			ID:         row.ID,
			Type:       row.Type,
			StartsAt:   pgconv.TimeFromPgtype(row.StartsAt),
			UserID:     row.UserID,
			FirstName:  row.FirstName,
			LastName:   row.LastName,
			OccurredAt: pgconv.TimeFromPgtype(row.OccurredAt),
		})
	}
	return views, nil
}
