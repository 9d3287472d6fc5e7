package commands

import (
	"context"
	"log/slog"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/calendar"
	"gym-booking/internal/domain/event"
	"gym-booking/internal/domain/slot"
	"gym-booking/internal/infra"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/notify"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingResult struct {
	ID       uuid.UUID
	StartsAt time.Time
}

type DeleteResult struct {
	Refunded bool
}

type BookingCommands interface {
	Create(ctx context.Context, userID uuid.UUID, startsAt time.Time) (*BookingResult, error)
	// Delete cancels one of the caller's bookings. The access is refunded only when the slot
	// starts more than booking.RefundWindow from now.
	Delete(ctx context.Context, userID, bookingID uuid.UUID, startsAt time.Time) (*DeleteResult, error)
}

type bookingCommandsImpl struct {
	uow        shared.UnitOfWork
	calendar   *calendar.Calendar
	dispatcher notify.Dispatcher
	metrics    BookingMetrics
	clock      clock.Clock
	logger     *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	cal *calendar.Calendar,
	dispatcher notify.Dispatcher,
	metrics BookingMetrics,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:        uow,
		calendar:   cal,
		dispatcher: dispatcher,
		metrics:    metrics,
		clock:      clk,
		logger:     logger,
	}
}

func (b *bookingCommandsImpl) Create(ctx context.Context, userID uuid.UUID, startsAt time.Time) (*BookingResult, error) {
	res, err := b.create(ctx, userID, startsAt)
	if err != nil {
		b.reject(err)
		return nil, err
	}
	return res, nil
}

func (b *bookingCommandsImpl) create(ctx context.Context, userID uuid.UUID, startsAt time.Time) (*BookingResult, error) {
	now := b.clock.Now()
	if err := b.checkOffered(startsAt, now); err != nil {
		return nil, err
	}

	var (
		snapshot *shared.UserSnapshot
		current  *slot.Slot
	)
	err := b.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		var err error
		snapshot, err = loadUser(ctx, reads, userID)
		if err != nil {
			return err
		}
		if err := snapshot.Domain().CanBook(now); err != nil {
			return errs.Mark(err, errs.ErrSubscriptionInactive)
		}

		current, err = reads.SlotByStart(ctx, startsAt)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return markSlotErr(current.CanAccept(snapshot.SubType))
	})
	if err != nil {
		return nil, err
	}

	b.logger.Debug("booking checks passed",
		"user_id", userID,
		"starts_at", startsAt,
		"slot_state", current.State())

	newBooking := booking.NewBooking(userID, startsAt, now)
	created := event.NewEvent(event.TypeCreated, startsAt, userID, now)
	weight := slot.OccupancyWeight(snapshot.SubType)

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().ConsumeAccess(ctx, tx.DB(), userID); err != nil {
			if infra.IsKind(err, infra.KindConditionFailed) {
				return errs.Mark(err, errs.ErrSubscriptionInactive)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		updated, err := tx.Slots().UpsertIncrement(ctx, tx.DB(), startsAt, weight, false)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		// Concurrent bookings may have filled the slot between the check and the upsert.
		if updated.Disabled() {
			return errs.ErrSlotDisabled
		}
		if updated.PeopleCount() > slot.Capacity {
			return errs.ErrSlotFull
		}

		if _, err := tx.Bookings().Create(ctx, tx.DB(), newBooking); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDuplicateBooking)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Events().Create(ctx, tx.DB(), created); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.metrics.BookingCreated(ActorUser)
	b.dispatcher.BookingChanged(ctx, toNotification(created, snapshot))

	return &BookingResult{ID: newBooking.ID(), StartsAt: startsAt}, nil
}

func (b *bookingCommandsImpl) Delete(ctx context.Context, userID, bookingID uuid.UUID, startsAt time.Time) (*DeleteResult, error) {
	res, err := b.delete(ctx, userID, bookingID, startsAt)
	if err != nil {
		b.reject(err)
		return nil, err
	}
	return res, nil
}

func (b *bookingCommandsImpl) delete(ctx context.Context, userID, bookingID uuid.UUID, startsAt time.Time) (*DeleteResult, error) {
	now := b.clock.Now()
	refundable := booking.IsRefundable(startsAt, now)

	snapshot, err := loadUser(ctx, b.uow.CommandReads(), userID)
	if err != nil {
		return nil, err
	}

	deleted := event.NewEvent(event.TypeDeleted, startsAt, userID, now)
	weight := slot.OccupancyWeight(snapshot.SubType)

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().DeleteOwned(ctx, tx.DB(), bookingID, userID, startsAt); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Slots().Decrement(ctx, tx.DB(), startsAt, weight); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if refundable {
			if err := tx.Users().AdjustAccesses(ctx, tx.DB(), userID, 1); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		if err := tx.Events().Create(ctx, tx.DB(), deleted); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.metrics.BookingDeleted(ActorUser, refundable)
	b.dispatcher.BookingChanged(ctx, toNotification(deleted, snapshot))

	return &DeleteResult{Refunded: refundable}, nil
}

// checkOffered rejects instants the availability resolver would never offer.
func (b *bookingCommandsImpl) checkOffered(startsAt, now time.Time) error {
	if !b.calendar.IsHourAligned(startsAt) || !b.calendar.IsBookable(startsAt) {
		return errs.ErrSlotNotBookable
	}
	h := b.calendar.HorizonAt(now)
	if startsAt.Before(h.Start) || !startsAt.Before(h.End) {
		return errs.ErrSlotNotBookable
	}
	return nil
}

func (b *bookingCommandsImpl) reject(err error) {
	if kind := errs.KindOf(err); kind != errs.KindInternal {
		b.metrics.BookingRejected(string(kind))
	}
}

func loadUser(ctx context.Context, reads shared.CommandReads, userID uuid.UUID) (*shared.UserSnapshot, error) {
	snapshot, err := reads.UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snapshot, nil
}

func markSlotErr(err error) error {
	switch {
	case errs.Is(err, slot.ErrSlotDisabled):
		return errs.Mark(err, errs.ErrSlotDisabled)
	case errs.Is(err, slot.ErrSlotFull):
		return errs.Mark(err, errs.ErrSlotFull)
	default:
		return err
	}
}

func toNotification(e *event.Event, u *shared.UserSnapshot) notify.Notification {
	return notify.Notification{
		ID:         e.ID(),
		Type:       e.Type(),
		UserID:     e.UserID(),
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		StartsAt:   e.StartsAt(),
		OccurredAt: e.OccurredAt(),
	}
}
