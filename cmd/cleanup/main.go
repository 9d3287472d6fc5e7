// Command cleanup deletes slots, bookings and events past their retention window.
package main

import (
	"context"
	"os"

	"gym-booking/cmd/bootstrap"
	"gym-booking/internal/usecase/commands"
)

func main() {
	os.Exit(bootstrap.RunJob("cleanup", func(ctx context.Context, m commands.MaintenanceCommands) error {
		_, err := m.PurgeExpired(ctx)
		return err
	}))
}
