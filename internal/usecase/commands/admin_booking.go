package commands

import (
	"context"
	"log/slog"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/calendar"
	"gym-booking/internal/domain/event"
	"gym-booking/internal/domain/slot"
	"gym-booking/internal/domain/user"
	"gym-booking/internal/infra"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/notify"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// AdminCreateInput books [From, To) hour by hour. Without UserID the bookings belong to the admin.
type AdminCreateInput struct {
	From    time.Time
	To      time.Time
	UserID  *uuid.UUID
	SubType *user.SubType
	Disable bool
}

type AdminCreateResult struct {
	BookingIDs []uuid.UUID
	StartsAt   []time.Time
}

// AdminDeleteInput removes a booking, or the whole slot row when IsDisabled marks a disabled placeholder.
// The slot row is only removed while disabled and free of member bookings.
type AdminDeleteInput struct {
	BookingID    uuid.UUID
	StartsAt     time.Time
	RefundAccess bool
	IsDisabled   bool
	UserID       *uuid.UUID
	UserSubType  *user.SubType
}

type SlotToggleInput struct {
	StartsAt time.Time
	Disabled bool
	// CancelBookings confirms that member bookings on the slot are cancelled and refunded.
	CancelBookings bool
}

type SlotToggleResult struct {
	Slot      *slot.Slot
	Cancelled int
}

type AdminBookingCommands interface {
	AdminCreate(ctx context.Context, adminID uuid.UUID, in AdminCreateInput) (*AdminCreateResult, error)
	AdminDelete(ctx context.Context, adminID uuid.UUID, in AdminDeleteInput) error
	// SetSlotDisabled flips the disabled flag and records the toggle. Disabling a slot that
	// still has member bookings fails with ErrSlotHasBookings unless CancelBookings is set.
	SetSlotDisabled(ctx context.Context, adminID uuid.UUID, in SlotToggleInput) (*SlotToggleResult, error)
}

type adminBookingCommandsImpl struct {
	uow        shared.UnitOfWork
	calendar   *calendar.Calendar
	dispatcher notify.Dispatcher
	metrics    BookingMetrics
	clock      clock.Clock
	logger     *slog.Logger
}

func NewAdminBookingCommands(
	uow shared.UnitOfWork,
	cal *calendar.Calendar,
	dispatcher notify.Dispatcher,
	metrics BookingMetrics,
	clk clock.Clock,
	logger *slog.Logger,
) AdminBookingCommands {
	return &adminBookingCommandsImpl{
		uow:        uow,
		calendar:   cal,
		dispatcher: dispatcher,
		metrics:    metrics,
		clock:      clk,
		logger:     logger,
	}
}

func (a *adminBookingCommandsImpl) AdminCreate(ctx context.Context, adminID uuid.UUID, in AdminCreateInput) (*AdminCreateResult, error) {
	starts, err := booking.SplitHourly(in.From, in.To)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeRange)
	}

	targetID := adminID
	if in.UserID != nil {
		targetID = *in.UserID
	}
	target, err := loadUser(ctx, a.uow.CommandReads(), targetID)
	if err != nil {
		return nil, err
	}

	subType := target.SubType
	if in.SubType != nil {
		subType = *in.SubType
	}
	weight := slot.OccupancyWeight(subType)
	// Disabling only blocks the calendar; it never charges anyone.
	charge := !in.Disable && in.UserID != nil

	now := a.clock.Now()
	bookings := make([]*booking.Booking, len(starts))
	events := make([]*event.Event, 0, len(starts))
	for i, t := range starts {
		bookings[i] = booking.NewBooking(targetID, t, now)
		if !in.Disable {
			events = append(events, event.NewEvent(event.TypeCreated, t, targetID, now))
		}
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, b := range bookings {
			if _, err := tx.Slots().UpsertIncrement(ctx, tx.DB(), b.StartsAt(), weight, in.Disable); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if _, err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
				switch {
				case infra.IsKind(err, infra.KindDuplicateKey):
					return errs.Mark(err, errs.ErrDuplicateBooking)
				case infra.IsKind(err, infra.KindForeignKeyViolated):
					return errs.Mark(err, errs.ErrUserNotFound)
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		if charge {
			if err := tx.Users().AdjustAccesses(ctx, tx.DB(), targetID, -len(bookings)); err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, errs.ErrUserNotFound)
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		for _, e := range events {
			if err := tx.Events().Create(ctx, tx.DB(), e); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info("admin created bookings",
		"admin_id", adminID,
		"user_id", targetID,
		"slots", len(starts),
		"disabled", in.Disable,
		"charged", charge)

	result := &AdminCreateResult{
		BookingIDs: make([]uuid.UUID, len(bookings)),
		StartsAt:   starts,
	}
	for i, b := range bookings {
		result.BookingIDs[i] = b.ID()
	}

	if in.Disable {
		a.dispatcher.CalendarChanged(ctx, starts)
		return result, nil
	}
	for _, e := range events {
		a.metrics.BookingCreated(ActorAdmin)
		a.dispatcher.BookingChanged(ctx, toNotification(e, target))
	}
	return result, nil
}

func (a *adminBookingCommandsImpl) AdminDelete(ctx context.Context, adminID uuid.UUID, in AdminDeleteInput) error {
	if in.IsDisabled {
		return a.deleteDisabledSlot(ctx, adminID, in.StartsAt)
	}

	now := a.clock.Now()
	var (
		owner   *shared.UserSnapshot
		deleted *event.Event
	)
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, err := tx.Bookings().Delete(ctx, tx.DB(), in.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if in.UserID != nil && *in.UserID != removed.UserID {
			return errs.ErrBookingNotFound
		}

		owner, err = loadUser(ctx, tx.Reads(), removed.UserID)
		if err != nil {
			return err
		}

		subType := owner.SubType
		if in.UserSubType != nil {
			subType = *in.UserSubType
		}
		if err := tx.Slots().Decrement(ctx, tx.DB(), removed.StartsAt, slot.OccupancyWeight(subType)); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if in.RefundAccess {
			if err := tx.Users().AdjustAccesses(ctx, tx.DB(), removed.UserID, 1); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		deleted = event.NewEvent(event.TypeDeleted, removed.StartsAt, removed.UserID, now)
		if err := tx.Events().Create(ctx, tx.DB(), deleted); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.logger.Info("admin deleted booking",
		"admin_id", adminID,
		"booking_id", in.BookingID,
		"user_id", owner.ID,
		"refunded", in.RefundAccess)

	a.metrics.BookingDeleted(ActorAdmin, in.RefundAccess)
	a.dispatcher.BookingChanged(ctx, toNotification(deleted, owner))
	return nil
}

// deleteDisabledSlot drops a disabled slot row together with any admin placeholders on it.
// Member bookings must be cancelled first through SetSlotDisabled.
func (a *adminBookingCommandsImpl) deleteDisabledSlot(ctx context.Context, adminID uuid.UUID, startsAt time.Time) error {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().SlotByStart(ctx, startsAt)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !current.Disabled() {
			return errs.ErrSlotNotDisabled
		}

		if err := tx.Slots().DeleteDisabled(ctx, tx.DB(), startsAt); err != nil {
			if infra.IsKind(err, infra.KindConditionFailed) {
				return errs.Mark(err, errs.ErrSlotHasBookings)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.logger.Info("admin removed disabled slot", "admin_id", adminID, "starts_at", startsAt)
	a.dispatcher.CalendarChanged(ctx, []time.Time{startsAt})
	return nil
}

func (a *adminBookingCommandsImpl) SetSlotDisabled(ctx context.Context, adminID uuid.UUID, in SlotToggleInput) (*SlotToggleResult, error) {
	if !a.calendar.IsHourAligned(in.StartsAt) {
		return nil, errs.ErrSlotNotBookable
	}

	now := a.clock.Now()
	var (
		updated   *slot.Slot
		cancelled []notify.Notification
	)
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cancelled = cancelled[:0]
		if in.Disabled {
			removed, err := tx.Bookings().DeleteMembersAt(ctx, tx.DB(), in.StartsAt)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if len(removed) > 0 && !in.CancelBookings {
				return errs.ErrSlotHasBookings
			}
			for _, r := range removed {
				n, err := a.cancelForDisable(ctx, tx, r, now)
				if err != nil {
					return err
				}
				cancelled = append(cancelled, n)
			}
		}

		var err error
		updated, err = tx.Slots().SetDisabled(ctx, tx.DB(), in.StartsAt, in.Disabled)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		toggled := event.NewEvent(event.SlotToggle(in.Disabled), in.StartsAt, adminID, now)
		if err := tx.Events().Create(ctx, tx.DB(), toggled); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info("admin toggled slot",
		"admin_id", adminID,
		"starts_at", in.StartsAt,
		"disabled", in.Disabled,
		"cancelled", len(cancelled))

	for _, n := range cancelled {
		a.metrics.BookingDeleted(ActorAdmin, true)
		a.dispatcher.BookingChanged(ctx, n)
	}
	a.dispatcher.CalendarChanged(ctx, []time.Time{in.StartsAt})
	return &SlotToggleResult{Slot: updated, Cancelled: len(cancelled)}, nil
}

// cancelForDisable releases the seat of a booking removed by a slot disable.
// The access is refunded regardless of the refund window.
func (a *adminBookingCommandsImpl) cancelForDisable(ctx context.Context, tx shared.Tx, removed *shared.DeletedBooking, now time.Time) (notify.Notification, error) {
	owner, err := loadUser(ctx, tx.Reads(), removed.UserID)
	if err != nil {
		return notify.Notification{}, err
	}

	weight := slot.OccupancyWeight(owner.SubType)
	if err := tx.Slots().Decrement(ctx, tx.DB(), removed.StartsAt, weight); err != nil {
		return notify.Notification{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Users().AdjustAccesses(ctx, tx.DB(), removed.UserID, 1); err != nil {
		return notify.Notification{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	deleted := event.NewEvent(event.TypeDeleted, removed.StartsAt, removed.UserID, now)
	if err := tx.Events().Create(ctx, tx.DB(), deleted); err != nil {
		return notify.Notification{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return toNotification(deleted, owner), nil
}
