//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gym-booking/internal/domain/calendar"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"
	commandsmock "gym-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MaintenanceCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	m         *txMocks
	reminders *commandsmock.MockReminderReadStore
	sender    *commandsmock.MockReminderSender
	commands  commands.MaintenanceCommands
	now       time.Time
}

func (s *MaintenanceCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.reminders = commandsmock.NewMockReminderReadStore(s.ctrl)
	s.sender = commandsmock.NewMockReminderSender(s.ctrl)
	s.now = time.Date(2024, 3, 4, 20, 0, 0, 0, studio)

	s.commands = commands.NewMaintenanceCommands(
		s.m.uow,
		s.reminders,
		s.sender,
		calendar.New(studio),
		config.RetentionConfig{SlotMaxAge: 90 * 24 * time.Hour, EventMaxAge: 30 * 24 * time.Hour},
		clock.NewMockClock(s.now),
		discardLogger(),
	)
}

func (s *MaintenanceCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMaintenanceCommandsSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceCommandsTestSuite))
}

func (s *MaintenanceCommandsTestSuite) TestSendReminders() {
	ctx := context.Background()
	dayStart := time.Date(2024, 3, 5, 0, 0, 0, 0, studio)
	dayEnd := time.Date(2024, 3, 6, 0, 0, 0, 0, studio)

	s.Run("success: queues one reminder per booking and skips failures", func() {
		upcoming := []*queries.ReminderView{
			{BookingID: uuid.New(), StartsAt: dayStart.Add(9 * time.Hour), Email: "a@example.com"},
			{BookingID: uuid.New(), StartsAt: dayStart.Add(10 * time.Hour), Email: "b@example.com"},
		}
		s.reminders.EXPECT().FindReminders(gomock.Any(), dayStart, dayEnd).Return(upcoming, nil)
		s.sender.EXPECT().SendReminder(gomock.Any(), upcoming[0]).Return(nil)
		s.sender.EXPECT().SendReminder(gomock.Any(), upcoming[1]).Return(errs.New("queue full"))

		report, err := s.commands.SendReminders(ctx)

		s.Require().NoError(err)
		s.Equal(2, report.Found)
		s.Equal(1, report.Queued)
	})

	s.Run("error: read failure", func() {
		s.reminders.EXPECT().FindReminders(gomock.Any(), dayStart, dayEnd).Return(nil, errs.New("timeout"))

		_, err := s.commands.SendReminders(ctx)
		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func (s *MaintenanceCommandsTestSuite) TestPurgeExpired() {
	ctx := context.Background()

	s.Run("success: applies both retention windows", func() {
		s.m.slots.EXPECT().DeleteBefore(gomock.Any(), nil, s.now.Add(-90*24*time.Hour)).Return(int64(12), nil)
		s.m.events.EXPECT().DeleteBefore(gomock.Any(), nil, s.now.Add(-30*24*time.Hour)).Return(int64(40), nil)

		report, err := s.commands.PurgeExpired(ctx)

		s.Require().NoError(err)
		s.Equal(int64(12), report.Slots)
		s.Equal(int64(40), report.Events)
	})

	s.Run("error: slot purge failure stops the run", func() {
		s.m.slots.EXPECT().DeleteBefore(gomock.Any(), nil, gomock.Any()).Return(int64(0), errs.New("lock timeout"))

		_, err := s.commands.PurgeExpired(ctx)
		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
