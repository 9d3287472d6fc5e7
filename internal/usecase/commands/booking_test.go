//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/calendar"
	"gym-booking/internal/domain/event"
	"gym-booking/internal/domain/slot"
	"gym-booking/internal/domain/user"
	"gym-booking/internal/infra"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/notify"
	"gym-booking/internal/usecase/shared"
	commandsmock "gym-booking/tests/mock/commands"
	notifymock "gym-booking/tests/mock/notify"
	sharedmock "gym-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var studio = time.FixedZone("CET", 3600)

// txMocks bundles the write-side mocks shared by every command suite.
type txMocks struct {
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	reads      *sharedmock.MockCommandReads
	users      *sharedmock.MockUserRepository
	slots      *sharedmock.MockSlotRepository
	bookings   *sharedmock.MockBookingRepository
	events     *sharedmock.MockEventRepository
	dispatcher *notifymock.MockDispatcher
	metrics    *commandsmock.MockBookingMetrics
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:        sharedmock.NewMockUnitOfWork(ctrl),
		tx:         sharedmock.NewMockTx(ctrl),
		reads:      sharedmock.NewMockCommandReads(ctrl),
		users:      sharedmock.NewMockUserRepository(ctrl),
		slots:      sharedmock.NewMockSlotRepository(ctrl),
		bookings:   sharedmock.NewMockBookingRepository(ctrl),
		events:     sharedmock.NewMockEventRepository(ctrl),
		dispatcher: notifymock.NewMockDispatcher(ctrl),
		metrics:    commandsmock.NewMockBookingMetrics(ctrl),
	}

	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().Slots().Return(m.slots).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Events().Return(m.events).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.CommandReads) error) error {
			return fn(ctx, m.reads)
		}).AnyTimes()
	return m
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func snapshotOf(subType user.SubType, accesses int, expiresAt time.Time) *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:                uuid.New(),
		Email:             "member@example.com",
		FirstName:         "Giulia",
		LastName:          "Bianchi",
		Role:              user.RoleUser,
		SubType:           subType,
		RemainingAccesses: accesses,
		ExpiresAt:         expiresAt,
	}
}

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	m        *txMocks
	clock    *clock.MockClock
	commands commands.BookingCommands

	now      time.Time
	startsAt time.Time
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)

	// Wednesday before the slot; the horizon already reaches into April.
	s.now = time.Date(2024, 2, 28, 10, 0, 0, 0, studio)
	s.startsAt = time.Date(2024, 3, 4, 9, 0, 0, 0, studio)
	s.clock = clock.NewMockClock(s.now)

	s.commands = commands.NewBookingCommands(
		s.m.uow,
		calendar.New(studio),
		s.m.dispatcher,
		s.m.metrics,
		s.clock,
		discardLogger(),
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) expectSlot(peopleCount int, disabled bool) {
	s.m.reads.EXPECT().SlotByStart(gomock.Any(), s.startsAt).
		Return(slot.Reconstruct(s.startsAt, peopleCount, disabled), nil)
}

func (s *BookingCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	expiry := time.Date(2024, 12, 31, 0, 0, 0, 0, studio)

	s.Run("success: shared user books an empty slot", func() {
		member := snapshotOf(user.SubTypeShared, 10, expiry)
		s.m.reads.EXPECT().UserByID(gomock.Any(), member.ID).Return(member, nil)
		s.expectSlot(0, false)

		gomock.InOrder(
			s.m.users.EXPECT().ConsumeAccess(gomock.Any(), nil, member.ID).Return(nil),
			s.m.slots.EXPECT().UpsertIncrement(gomock.Any(), nil, s.startsAt, 1, false).
				Return(slot.Reconstruct(s.startsAt, 1, false), nil),
			s.m.bookings.EXPECT().Create(gomock.Any(), nil, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) (uuid.UUID, error) {
					s.Equal(member.ID, b.UserID())
					s.True(s.startsAt.Equal(b.StartsAt()))
					return b.ID(), nil
				}),
			s.m.events.EXPECT().Create(gomock.Any(), nil, gomock.Any()).Return(nil),
		)
		s.m.metrics.EXPECT().BookingCreated(commands.ActorUser)

		var sent notify.Notification
		s.m.dispatcher.EXPECT().BookingChanged(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, n notify.Notification) { sent = n })

		res, err := s.commands.Create(ctx, member.ID, s.startsAt)

		s.Require().NoError(err)
		s.True(s.startsAt.Equal(res.StartsAt))
		s.NotEqual(uuid.Nil, res.ID)
		s.Equal(event.TypeCreated, sent.Type)
		s.Equal(member.ID, sent.UserID)
		s.Equal("Giulia", sent.FirstName)
	})

	s.Run("success: second shared user fills the slot", func() {
		member := snapshotOf(user.SubTypeShared, 3, expiry)
		s.m.reads.EXPECT().UserByID(gomock.Any(), member.ID).Return(member, nil)
		s.expectSlot(1, false)
		s.m.users.EXPECT().ConsumeAccess(gomock.Any(), nil, member.ID).Return(nil)
		s.m.slots.EXPECT().UpsertIncrement(gomock.Any(), nil, s.startsAt, 1, false).
			Return(slot.Reconstruct(s.startsAt, 2, false), nil)
		s.m.bookings.EXPECT().Create(gomock.Any(), nil, gomock.Any()).Return(uuid.New(), nil)
		s.m.events.EXPECT().Create(gomock.Any(), nil, gomock.Any()).Return(nil)
		s.m.metrics.EXPECT().BookingCreated(commands.ActorUser)
		s.m.dispatcher.EXPECT().BookingChanged(gomock.Any(), gomock.Any())

		_, err := s.commands.Create(ctx, member.ID, s.startsAt)
		s.NoError(err)
	})

	s.Run("error: third shared user is rejected before any write", func() {
		member := snapshotOf(user.SubTypeShared, 3, expiry)
		s.m.reads.EXPECT().UserByID(gomock.Any(), member.ID).Return(member, nil)
		s.expectSlot(2, false)
		s.m.metrics.EXPECT().BookingRejected(string(errs.KindConflict))

		_, err := s.commands.Create(ctx, member.ID, s.startsAt)
		s.True(errs.Is(err, errs.ErrSlotFull))
	})

	s.Run("error: single user needs the whole slot", func() {
		member := snapshotOf(user.SubTypeSingle, 3, expiry)
		s.m.reads.EXPECT().UserByID(gomock.Any(), member.ID).Return(member, nil)
		s.expectSlot(1, false)
		s.m.metrics.EXPECT().BookingRejected(string(errs.KindConflict))

		_, err := s.commands.Create(ctx, member.ID, s.startsAt)
		s.True(errs.Is(err, errs.ErrSlotFull))
	})

	s.Run("error: disabled slot", func() {
		member := snapshotOf(user.SubTypeShared, 3, expiry)
		s.m.reads.EXPECT().UserByID(gomock.Any(), member.ID).Return(member, nil)
		s.expectSlot(0, true)
		s.m.metrics.EXPECT().BookingRejected(string(errs.KindBadRequest))

		_, err := s.commands.Create(ctx, member.ID, s.startsAt)
		s.True(errs.Is(err, errs.ErrSlotDisabled))
	})

	s.Run("error: concurrent booking overfills the slot after the check", func() {
		member := snapshotOf(user.SubTypeShared, 3, expiry)
		s.m.reads.EXPECT().UserByID(gomock.Any(), member.ID).Return(member, nil)
		s.expectSlot(1, false)
		s.m.users.EXPECT().ConsumeAccess(gomock.Any(), nil, member.ID).Return(nil)
		s.m.slots.EXPECT().UpsertIncrement(gomock.Any(), nil, s.startsAt, 1, false).
			Return(slot.Reconstruct(s.startsAt, 3, false), nil)
		s.m.metrics.EXPECT().BookingRejected(string(errs.KindConflict))

		_, err := s.commands.Create(ctx, member.ID, s.startsAt)
		s.True(errs.Is(err, errs.ErrSlotFull))
	})

	s.Run("error: no accesses left", func() {
		member := snapshotOf(user.SubTypeShared, 0, expiry)
		s.m.reads.EXPECT().UserByID(gomock.Any(), member.ID).Return(member, nil)
		s.m.metrics.EXPECT().BookingRejected(string(errs.KindUnauthorized))

		_, err := s.commands.Create(ctx, member.ID, s.startsAt)
		s.True(errs.Is(err, errs.ErrSubscriptionInactive))
	})

	s.Run("error: subscription expiring exactly now", func() {
		member := snapshotOf(user.SubTypeShared, 5, s.now)
		s.m.reads.EXPECT().UserByID(gomock.Any(), member.ID).Return(member, nil)
		s.m.metrics.EXPECT().BookingRejected(string(errs.KindUnauthorized))

		_, err := s.commands.Create(ctx, member.ID, s.startsAt)
		s.True(errs.Is(err, errs.ErrSubscriptionInactive))
	})

	s.Run("error: last access consumed by a concurrent booking", func() {
		member := snapshotOf(user.SubTypeShared, 1, expiry)
		s.m.reads.EXPECT().UserByID(gomock.Any(), member.ID).Return(member, nil)
		s.expectSlot(0, false)
		s.m.users.EXPECT().ConsumeAccess(gomock.Any(), nil, member.ID).
			Return(infra.WrapRepoErr("no access left", nil, infra.KindConditionFailed))
		s.m.metrics.EXPECT().BookingRejected(string(errs.KindUnauthorized))

		_, err := s.commands.Create(ctx, member.ID, s.startsAt)
		s.True(errs.Is(err, errs.ErrSubscriptionInactive))
	})

	s.Run("error: user already booked this slot", func() {
		member := snapshotOf(user.SubTypeShared, 3, expiry)
		s.m.reads.EXPECT().UserByID(gomock.Any(), member.ID).Return(member, nil)
		s.expectSlot(1, false)
		s.m.users.EXPECT().ConsumeAccess(gomock.Any(), nil, member.ID).Return(nil)
		s.m.slots.EXPECT().UpsertIncrement(gomock.Any(), nil, s.startsAt, 1, false).
			Return(slot.Reconstruct(s.startsAt, 2, false), nil)
		s.m.bookings.EXPECT().Create(gomock.Any(), nil, gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("booking exists", nil, infra.KindDuplicateKey))
		s.m.metrics.EXPECT().BookingRejected(string(errs.KindConflict))

		_, err := s.commands.Create(ctx, member.ID, s.startsAt)
		s.True(errs.Is(err, errs.ErrDuplicateBooking))
	})

	s.Run("error: instants the calendar never offers", func() {
		cases := []struct {
			name     string
			startsAt time.Time
		}{
			{name: "not hour aligned", startsAt: s.startsAt.Add(30 * time.Minute)},
			{name: "sunday", startsAt: time.Date(2024, 3, 3, 9, 0, 0, 0, studio)},
			{name: "after closing", startsAt: time.Date(2024, 3, 4, 22, 0, 0, 0, studio)},
			{name: "before the horizon", startsAt: time.Date(2024, 2, 28, 15, 0, 0, 0, studio)},
			{name: "past the horizon", startsAt: time.Date(2024, 4, 2, 9, 0, 0, 0, studio)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.m.metrics.EXPECT().BookingRejected(string(errs.KindBadRequest))

				_, err := s.commands.Create(ctx, uuid.New(), tc.startsAt)
				s.True(errs.Is(err, errs.ErrSlotNotBookable))
			})
		}
	})

	s.Run("error: unknown user", func() {
		id := uuid.New()
		s.m.reads.EXPECT().UserByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))
		s.m.metrics.EXPECT().BookingRejected(string(errs.KindNotFound))

		_, err := s.commands.Create(ctx, id, s.startsAt)
		s.True(errs.Is(err, errs.ErrUserNotFound))
	})

	s.Run("error: store failure stays internal", func() {
		id := uuid.New()
		s.m.reads.EXPECT().UserByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("connection reset", errs.New("boom")))

		_, err := s.commands.Create(ctx, id, s.startsAt)
		s.Equal(errs.KindInternal, errs.KindOf(err))
	})
}

func (s *BookingCommandsTestSuite) TestDelete() {
	ctx := context.Background()
	member := snapshotOf(user.SubTypeSingle, 4, time.Date(2024, 12, 31, 0, 0, 0, 0, studio))
	bookingID := uuid.New()

	s.Run("success: refunds when more than three hours remain", func() {
		s.m.reads.EXPECT().UserByID(gomock.Any(), member.ID).Return(member, nil)
		gomock.InOrder(
			s.m.bookings.EXPECT().DeleteOwned(gomock.Any(), nil, bookingID, member.ID, s.startsAt).Return(nil),
			s.m.slots.EXPECT().Decrement(gomock.Any(), nil, s.startsAt, slot.Capacity).Return(nil),
			s.m.users.EXPECT().AdjustAccesses(gomock.Any(), nil, member.ID, 1).Return(nil),
			s.m.events.EXPECT().Create(gomock.Any(), nil, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, e *event.Event) error {
					s.Equal(event.TypeDeleted, e.Type())
					return nil
				}),
		)
		s.m.metrics.EXPECT().BookingDeleted(commands.ActorUser, true)
		s.m.dispatcher.EXPECT().BookingChanged(gomock.Any(), gomock.Any())

		res, err := s.commands.Delete(ctx, member.ID, bookingID, s.startsAt)

		s.Require().NoError(err)
		s.True(res.Refunded)
	})

	s.Run("success: no refund at exactly three hours", func() {
		s.clock.Set(s.startsAt.Add(-booking.RefundWindow))
		defer s.clock.Set(s.now)

		s.m.reads.EXPECT().UserByID(gomock.Any(), member.ID).Return(member, nil)
		s.m.bookings.EXPECT().DeleteOwned(gomock.Any(), nil, bookingID, member.ID, s.startsAt).Return(nil)
		s.m.slots.EXPECT().Decrement(gomock.Any(), nil, s.startsAt, slot.Capacity).Return(nil)
		s.m.events.EXPECT().Create(gomock.Any(), nil, gomock.Any()).Return(nil)
		s.m.metrics.EXPECT().BookingDeleted(commands.ActorUser, false)
		s.m.dispatcher.EXPECT().BookingChanged(gomock.Any(), gomock.Any())

		res, err := s.commands.Delete(ctx, member.ID, bookingID, s.startsAt)

		s.Require().NoError(err)
		s.False(res.Refunded)
	})

	s.Run("error: booking owned by someone else", func() {
		s.m.reads.EXPECT().UserByID(gomock.Any(), member.ID).Return(member, nil)
		s.m.bookings.EXPECT().DeleteOwned(gomock.Any(), nil, bookingID, member.ID, s.startsAt).
			Return(infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))
		s.m.metrics.EXPECT().BookingRejected(string(errs.KindNotFound))

		_, err := s.commands.Delete(ctx, member.ID, bookingID, s.startsAt)
		s.True(errs.Is(err, errs.ErrBookingNotFound))
	})
}
