package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"gym-booking/cmd/bootstrap/components"
	"gym-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

// JobModule wires the one-shot maintenance commands on top of the infrastructure.
var JobModule = fx.Options(
	InfraModule,
	components.MaintenanceModule,
	fx.NopLogger,
)

const jobTimeout = 5 * time.Minute

// RunJob starts the app, runs job once and stops the app so queued work drains.
func RunJob(name string, job func(ctx context.Context, m commands.MaintenanceCommands) error) int {
	var (
		maintenance commands.MaintenanceCommands
		logger      *slog.Logger
	)
	app := fx.New(
		JobModule,
		fx.Populate(&maintenance, &logger),
	)
	if err := app.Err(); err != nil {
		slog.Error("failed to build job", "job", name, "error", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		logger.Error("failed to start job", "job", name, "error", err)
		return 1
	}

	code := 0
	if err := job(ctx, maintenance); err != nil {
		logger.Error("job failed", "job", name, "error", err)
		code = 1
	}

	if err := app.Stop(ctx); err != nil {
		logger.Error("failed to stop job cleanly", "job", name, "error", err)
	}
	return code
}
