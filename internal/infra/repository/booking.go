package repository

import (
	"context"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/pgconv"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	DeleteUserBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteUserBookingParams) (pgtype.Timestamptz, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.DeleteBookingRow, error)
	DeleteMemberBookingsAt(ctx context.Context, db sqlc.DBTX, startsAt pgtype.Timestamptz) ([]sqlc.DeleteMemberBookingsAtRow, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	id, err := r.queries.CreateBooking(ctx, tx, sqlc.CreateBookingParams{
		ID:        b.ID(),
		UserID:    b.UserID(),
		StartsAt:  pgconv.TimeToPgtype(b.StartsAt()),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
	})
	if err != nil {
		switch {
		case pgconv.IsUniqueViolation(err):
			return uuid.Nil, infra.WrapRepoErr("booking already exists for slot", err, infra.KindDuplicateKey)
		case pgconv.IsForeignKeyViolation(err):
			return uuid.Nil, infra.WrapRepoErr("booking references missing user or slot", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

// DeleteOwned only matches a booking of userID at exactly startsAt.
func (r *BookingRepository) DeleteOwned(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID, startsAt time.Time) error {
	_, err := r.queries.DeleteUserBooking(ctx, tx, sqlc.DeleteUserBookingParams{
		ID:       id,
		UserID:   userID,
		StartsAt: pgconv.TimeToPgtype(startsAt),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*shared.DeletedBooking, error) {
	row, err := r.queries.DeleteBooking(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to delete booking", err)
	}
	return &shared.DeletedBooking{
		UserID:   row.UserID,
		StartsAt: pgconv.TimeFromPgtype(row.StartsAt),
	}, nil
}

// DeleteMembersAt removes every non-admin booking on the slot at startsAt.
func (r *BookingRepository) DeleteMembersAt(ctx context.Context, tx sqlc.DBTX, startsAt time.Time) ([]*shared.DeletedBooking, error) {
	rows, err := r.queries.DeleteMemberBookingsAt(ctx, tx, pgconv.TimeToPgtype(startsAt))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete member bookings", err)
	}

	removed := make([]*shared.DeletedBooking, 0, len(rows))
	for _, row := range rows {
		removed = append(removed, &shared.DeletedBooking{
			ID:       row.ID,
			UserID:   row.UserID,
			StartsAt: pgconv.TimeFromPgtype(row.StartsAt),
		})
	}
	return removed, nil
}
