package commands

import (
	"context"
	"time"

	"gym-booking/internal/usecase/queries"
)

const (
	ActorUser  = "user"
	ActorAdmin = "admin"
)

// BookingMetrics counts booking outcomes; implemented by the prometheus collector.
type BookingMetrics interface {
	BookingCreated(actor string)
	BookingDeleted(actor string, refunded bool)
	BookingRejected(kind string)
}

type ReminderSender interface {
	SendReminder(ctx context.Context, r *queries.ReminderView) error
}

type ReminderReadStore interface {
	FindReminders(ctx context.Context, from, to time.Time) ([]*queries.ReminderView, error)
}
