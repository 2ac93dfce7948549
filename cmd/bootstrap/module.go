package bootstrap

import (
	"care-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	JWTModule,
	StorageModule,
	NotifyModule,
	components.UseCaseModule,
	components.HandlerModule,
)
