package readstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"gym-booking/internal/domain/slot"
	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/pgconv"
	"gym-booking/internal/pkg/psqlbuilder"
	"gym-booking/internal/usecase/queries"
)

type SlotReadQueries interface {
	FindSlot(ctx context.Context, db sqlc.DBTX, startsAt pgtype.Timestamptz) (sqlc.Slots, error)
}

type SlotReadStore struct {
	queries SlotReadQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotReadQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByStart never reports not-found: a missing row is an empty slot.
func (r *SlotReadStore) FindByStart(ctx context.Context, startsAt time.Time) (*slot.Slot, error) {
	row, err := r.queries.FindSlot(ctx, r.db, pgconv.TimeToPgtype(startsAt))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return slot.Empty(startsAt), nil
		}
		return nil, infra.WrapRepoErr("failed to find slot", err)
	}
	return slot.Reconstruct(pgconv.TimeFromPgtype(row.StartsAt), int(row.PeopleCount), row.Disabled), nil
}

// FindExcludedStarts lists the starts in [From, To) that are disabled, already at the
// caller's threshold, or already booked by the caller.
func (r *SlotReadStore) FindExcludedStarts(ctx context.Context, f queries.ExclusionFilter) ([]time.Time, error) {
	query, args, err := buildExclusionQuery(f)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build exclusion query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query excluded slots", err)
	}

	starts, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan excluded slots", err)
	}
	return starts, nil
}

func buildExclusionQuery(f queries.ExclusionFilter) (string, []any, error) {
	return psqlbuilder.Select("s.starts_at").
		From("slots s").
		Where(sq.GtOrEq{"s.starts_at": f.From}).
		Where(sq.Lt{"s.starts_at": f.To}).
		Where(sq.Or{
			sq.Eq{"s.disabled": true},
			sq.GtOrEq{"s.people_count": f.Threshold},
			sq.Expr("EXISTS (SELECT 1 FROM bookings b WHERE b.starts_at = s.starts_at AND b.user_id = ?)", f.UserID),
		}).
		OrderBy("s.starts_at").
		ToSql()
}
