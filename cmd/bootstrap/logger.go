package bootstrap

import (
	"log/slog"
	"os"

	"care-booking/internal/handler/middleware"
	"care-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := slog.New(middleware.NewLogHandler(os.Stdout, cfg.Log))
	slog.SetDefault(logger)
	return logger
}
