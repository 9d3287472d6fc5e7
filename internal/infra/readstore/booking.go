package readstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/pgconv"
	"gym-booking/internal/pkg/psqlbuilder"
	"gym-booking/internal/usecase/queries"
)

type BookingReadQueries interface {
	ListUpcomingBookingsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingBookingsByUserParams) ([]sqlc.ListUpcomingBookingsByUserRow, error)
	ListBookingsWithUsersBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsWithUsersBetweenParams) ([]sqlc.ListBookingsWithUsersBetweenRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindUpcomingByUser(ctx context.Context, userID uuid.UUID, from time.Time) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListUpcomingBookingsByUser(ctx, r.db, sqlc.ListUpcomingBookingsByUserParams{
		UserID:   userID,
		StartsAt: pgconv.TimeToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming bookings", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.BookingView{
			ID:        row.ID,
			StartsAt:  pgconv.TimeFromPgtype(row.StartsAt),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

// FindReminders lists bookings with from <= starts_at < to together with their owner.
func (r *BookingReadStore) FindReminders(ctx context.Context, from, to time.Time) ([]*queries.ReminderView, error) {
	rows, err := r.queries.ListBookingsWithUsersBetween(ctx, r.db, sqlc.ListBookingsWithUsersBetweenParams{
		FromAt: pgconv.TimeToPgtype(from),
		ToAt:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for reminders", err)
	}

	views := make([]*queries.ReminderView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.ReminderView{
			BookingID: row.ID,
			StartsAt:  pgconv.TimeFromPgtype(row.StartsAt),
			UserID:    row.UserID,
			Email:     row.Email,
			FirstName: row.FirstName,
			LastName:  row.LastName,
		})
	}
	return views, nil
}

func (r *BookingReadStore) FindByInterval(ctx context.Context, f queries.IntervalFilter) ([]*queries.IntervalBookingView, error) {
	query, args, err := buildIntervalQuery(f)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build interval query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings by interval", err)
	}

	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.IntervalBookingView, error) {
		var v queries.IntervalBookingView
		err := row.Scan(
			&v.ID,
			&v.StartsAt,
			&v.UserID,
			&v.Email,
			&v.FirstName,
			&v.LastName,
			&v.SubType,
			&v.PeopleCount,
			&v.SlotDisabled,
		)
		return &v, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan bookings by interval", err)
	}
	return views, nil
}

func buildIntervalQuery(f queries.IntervalFilter) (string, []any, error) {
	qb := psqlbuilder.Select(
		"b.id",
		"b.starts_at",
		"u.id",
		"u.email",
		"u.first_name",
		"u.last_name",
		"u.sub_type",
		"s.people_count",
		"s.disabled",
	).
		From("bookings b").
		Join("users u ON u.id = b.user_id").
		Join("slots s ON s.starts_at = b.starts_at").
		Where(sq.GtOrEq{"b.starts_at": f.From}).
		Where(sq.LtOrEq{"b.starts_at": f.To})

	if f.UserID != nil {
		qb = qb.Where(sq.Eq{"b.user_id": *f.UserID})
	}

	return qb.OrderBy("b.starts_at", "u.last_name", "u.first_name").ToSql()
}
