package repository

import (
	"context"
	"time"

	"gym-booking/internal/domain/slot"
	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type SlotWriteQueries interface {
	UpsertSlotIncrement(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSlotIncrementParams) (sqlc.Slots, error)
	DecrementSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementSlotParams) (int64, error)
	SetSlotDisabled(ctx context.Context, db sqlc.DBTX, arg sqlc.SetSlotDisabledParams) (sqlc.Slots, error)
	DeleteDisabledSlot(ctx context.Context, db sqlc.DBTX, startsAt pgtype.Timestamptz) (int64, error)
	DeleteSlotsBefore(ctx context.Context, db sqlc.DBTX, startsAt pgtype.Timestamptz) (int64, error)
}

// SlotRepository is the capacity ledger. It is only meant to run inside a unit of work.
type SlotRepository struct {
	queries SlotWriteQueries
}

func NewSlotRepository(queries SlotWriteQueries) *SlotRepository {
	return &SlotRepository{
		queries: queries,
	}
}

func (r *SlotRepository) UpsertIncrement(ctx context.Context, tx sqlc.DBTX, startsAt time.Time, weight int, disabled bool) (*slot.Slot, error) {
	row, err := r.queries.UpsertSlotIncrement(ctx, tx, sqlc.UpsertSlotIncrementParams{
		StartsAt:    pgconv.TimeToPgtype(startsAt),
		PeopleCount: int32(weight), // #nosec G115 -- weight is 1 or 2
		Disabled:    disabled,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert slot", err)
	}
	return toDomainSlot(row), nil
}

func (r *SlotRepository) Decrement(ctx context.Context, tx sqlc.DBTX, startsAt time.Time, weight int) error {
	n, err := r.queries.DecrementSlot(ctx, tx, sqlc.DecrementSlotParams{
		Weight:   int32(weight), // #nosec G115 -- weight is 1 or 2
		StartsAt: pgconv.TimeToPgtype(startsAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to decrement slot", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SlotRepository) SetDisabled(ctx context.Context, tx sqlc.DBTX, startsAt time.Time, disabled bool) (*slot.Slot, error) {
	row, err := r.queries.SetSlotDisabled(ctx, tx, sqlc.SetSlotDisabledParams{
		StartsAt: pgconv.TimeToPgtype(startsAt),
		Disabled: disabled,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to set slot disabled flag", err)
	}
	return toDomainSlot(row), nil
}

// DeleteDisabled removes a disabled slot row. Member bookings on it make the delete a no-op
// reported as KindConditionFailed; admin placeholders go with the row.
func (r *SlotRepository) DeleteDisabled(ctx context.Context, tx sqlc.DBTX, startsAt time.Time) error {
	n, err := r.queries.DeleteDisabledSlot(ctx, tx, pgconv.TimeToPgtype(startsAt))
	if err != nil {
		return infra.WrapRepoErr("failed to delete disabled slot", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("slot is enabled or still booked", nil, infra.KindConditionFailed)
	}
	return nil
}

func (r *SlotRepository) DeleteBefore(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) (int64, error) {
	n, err := r.queries.DeleteSlotsBefore(ctx, tx, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge old slots", err)
	}
	return n, nil
}

func toDomainSlot(row sqlc.Slots) *slot.Slot {
	return slot.Reconstruct(pgconv.TimeFromPgtype(row.StartsAt), int(row.PeopleCount), row.Disabled)
}
