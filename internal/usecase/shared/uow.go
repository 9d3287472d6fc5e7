package shared

import (
	"context"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/event"
	"gym-booking/internal/domain/slot"
	sqlc "gym-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only snapshot for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Slots() SlotRepository
	Bookings() BookingRepository
	Events() EventRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	// SlotByStart returns an empty slot when no row exists yet.
	SlotByStart(ctx context.Context, startsAt time.Time) (*slot.Slot, error)
}

type UserRepository interface {
	// ConsumeAccess fails with KindConditionFailed when no access is left.
	ConsumeAccess(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	AdjustAccesses(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, delta int) error
}

type SlotRepository interface {
	UpsertIncrement(ctx context.Context, tx sqlc.DBTX, startsAt time.Time, weight int, disabled bool) (*slot.Slot, error)
	Decrement(ctx context.Context, tx sqlc.DBTX, startsAt time.Time, weight int) error
	SetDisabled(ctx context.Context, tx sqlc.DBTX, startsAt time.Time, disabled bool) (*slot.Slot, error)
	// DeleteDisabled fails with KindConditionFailed unless the slot is disabled and has no member bookings.
	DeleteDisabled(ctx context.Context, tx sqlc.DBTX, startsAt time.Time) error
	DeleteBefore(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	DeleteOwned(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID, startsAt time.Time) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*DeletedBooking, error)
	DeleteMembersAt(ctx context.Context, tx sqlc.DBTX, startsAt time.Time) ([]*DeletedBooking, error)
}

type EventRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, e *event.Event) error
	DeleteBefore(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) (int64, error)
}
