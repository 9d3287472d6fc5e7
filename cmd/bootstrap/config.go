package bootstrap

import (
	"gym-booking/internal/domain/calendar"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		clock.NewRealClock,
		NewCalendar,
	),
)

func NewCalendar(cfg config.Config) (*calendar.Calendar, error) {
	loc, err := cfg.Studio.LoadLocation()
	if err != nil {
		return nil, err
	}
	return calendar.New(loc), nil
}
