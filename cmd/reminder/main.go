// Command reminder queues an email for every booking starting tomorrow.
// It is meant to run once a day from cron or a scheduled container.
package main

import (
	"context"
	"os"

	"gym-booking/cmd/bootstrap"
	"gym-booking/internal/usecase/commands"
)

func main() {
	os.Exit(bootstrap.RunJob("reminder", func(ctx context.Context, m commands.MaintenanceCommands) error {
		_, err := m.SendReminders(ctx)
		return err
	}))
}
