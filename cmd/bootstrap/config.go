package bootstrap

import (
	"care-booking/internal/pkg/clock"
	"care-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		newBookingClock,
	),
)

// booking timestamps and "today" are read on the platform's wall clock
func newBookingClock(cfg config.Config) clock.Clock {
	return clock.NewZoned(clock.NewRealClock(), cfg.Booking.Location())
}
