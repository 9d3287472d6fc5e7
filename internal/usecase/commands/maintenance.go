package commands

import (
	"context"
	"log/slog"

	"gym-booking/internal/domain/calendar"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/shared"
)

type ReminderReport struct {
	Found  int
	Queued int
}

type PurgeReport struct {
	Slots  int64
	Events int64
}

type MaintenanceCommands interface {
	// SendReminders queues one reminder per booking starting tomorrow (studio time).
	SendReminders(ctx context.Context) (*ReminderReport, error)
	// PurgeExpired drops slots (with their bookings) and events older than the retention windows.
	PurgeExpired(ctx context.Context) (*PurgeReport, error)
}

type maintenanceCommandsImpl struct {
	uow       shared.UnitOfWork
	reminders ReminderReadStore
	sender    ReminderSender
	calendar  *calendar.Calendar
	retention config.RetentionConfig
	clock     clock.Clock
	logger    *slog.Logger
}

func NewMaintenanceCommands(
	uow shared.UnitOfWork,
	reminders ReminderReadStore,
	sender ReminderSender,
	cal *calendar.Calendar,
	retention config.RetentionConfig,
	clk clock.Clock,
	logger *slog.Logger,
) MaintenanceCommands {
	return &maintenanceCommandsImpl{
		uow:       uow,
		reminders: reminders,
		sender:    sender,
		calendar:  cal,
		retention: retention,
		clock:     clk,
		logger:    logger,
	}
}

func (m *maintenanceCommandsImpl) SendReminders(ctx context.Context) (*ReminderReport, error) {
	from, to := m.calendar.DayBounds(m.clock.Now().AddDate(0, 0, 1))

	upcoming, err := m.reminders.FindReminders(ctx, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	report := &ReminderReport{Found: len(upcoming)}
	for _, r := range upcoming {
		if err := m.sender.SendReminder(ctx, r); err != nil {
			m.logger.Warn("failed to queue reminder",
				"booking_id", r.BookingID,
				"user_id", r.UserID,
				"error", err.Error())
			continue
		}
		report.Queued++
	}

	m.logger.Info("reminders queued", "day", from.Format("2006-01-02"), "found", report.Found, "queued", report.Queued)
	return report, nil
}

func (m *maintenanceCommandsImpl) PurgeExpired(ctx context.Context) (*PurgeReport, error) {
	now := m.clock.Now()
	slotCutoff := now.Add(-m.retention.SlotMaxAge)
	eventCutoff := now.Add(-m.retention.EventMaxAge)

	report := &PurgeReport{}
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if report.Slots, err = tx.Slots().DeleteBefore(ctx, tx.DB(), slotCutoff); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if report.Events, err = tx.Events().DeleteBefore(ctx, tx.DB(), eventCutoff); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.logger.Info("expired data purged",
		"slots", report.Slots,
		"slot_cutoff", slotCutoff,
		"events", report.Events,
		"event_cutoff", eventCutoff)
	return report, nil
}
