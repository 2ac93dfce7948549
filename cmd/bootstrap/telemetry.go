package bootstrap

import (
	"context"
	"log/slog"

	"care-booking/internal/pkg/config"
	"care-booking/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(SetupTelemetry),
)

func SetupTelemetry(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}
	if cfg.Telemetry.Endpoint != "" {
		slog.Info("Tracing enabled", "endpoint", cfg.Telemetry.Endpoint)
	}
	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}
