package bootstrap

import (
	"context"
	"log/slog"

	"care-booking/internal/infra/notify"
	"care-booking/internal/pkg/config"
	"care-booking/internal/usecase/commands"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		fx.Annotate(
			notify.NewLogDeliverer,
			fx.As(new(notify.Deliverer)),
		),
		NewDispatcher,
	),
)

func NewDispatcher(lc fx.Lifecycle, cfg config.Config, deliverer notify.Deliverer) commands.NotificationDispatcher {
	if cfg.Notify.Mode == config.NotifyModeInline {
		slog.Info("Notifications are delivered inline")
		return notify.NewInlineDispatcher(deliverer)
	}

	opt := notify.RedisOpt(cfg.Redis)
	client := asynq.NewClient(opt)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	if cfg.Notify.WorkerEnabled {
		worker := notify.NewWorker(opt, deliverer, cfg)
		lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				slog.Info("Notification worker starting", "concurrency", cfg.Notify.Concurrency)
				return worker.Start()
			},
			OnStop: func(_ context.Context) error {
				worker.Shutdown()
				return nil
			},
		})
	}

	return notify.NewQueueDispatcher(client, cfg)
}
