package notify

import (
	"context"
	"log/slog"

	"care-booking/internal/pkg/config"
	"care-booking/internal/pkg/errs"

	"github.com/hibiken/asynq"
)

// Worker consumes notification tasks in process.
type Worker struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	deliverer Deliverer
}

func NewWorker(redisOpt asynq.RedisConnOpt, deliverer Deliverer, cfg config.Config) *Worker {
	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.Notify.Concurrency,
		Queues: map[string]int{
			cfg.Notify.HighPriorityQ:  6,
			cfg.Notify.NormalPriority: 3,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			retried, _ := asynq.GetRetryCount(ctx)
			maxRetry, _ := asynq.GetMaxRetry(ctx)
			slog.WarnContext(ctx, "notification task failed",
				"type", task.Type(),
				"retry", retried,
				"max_retry", maxRetry,
				"error", err.Error())
		}),
	})

	w := &Worker{server: server, mux: asynq.NewServeMux(), deliverer: deliverer}
	w.mux.HandleFunc(TypeBookingNotify, w.HandleNotify)
	return w
}

func (w *Worker) Start() error {
	return w.server.Start(w.mux)
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func (w *Worker) HandleNotify(ctx context.Context, task *asynq.Task) error {
	ev, err := ParseNotifyTask(task)
	if err != nil {
		// a payload that cannot decode will never succeed
		return errs.Wrapf(asynq.SkipRetry, "decode notification: %v", err)
	}
	return deliver(ctx, w.deliverer, ev)
}
