package notify

import (
	"context"
	"errors"
	"log/slog"

	"care-booking/internal/pkg/config"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase/commands"

	"github.com/hibiken/asynq"
)

// Enqueuer is the part of *asynq.Client the dispatcher uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueDispatcher hands events to the asynq queue; high priority events go
// to their own queue so a backlog of routine mail cannot delay them.
type QueueDispatcher struct {
	client   Enqueuer
	high     string
	normal   string
	maxRetry int
}

func NewQueueDispatcher(client Enqueuer, cfg config.Config) *QueueDispatcher {
	return &QueueDispatcher{
		client:   client,
		high:     cfg.Notify.HighPriorityQ,
		normal:   cfg.Notify.NormalPriority,
		maxRetry: cfg.Notify.MaxRetry,
	}
}

func (d *QueueDispatcher) Notify(ctx context.Context, ev commands.NotificationEvent) error {
	task, err := NewNotifyTask(ev)
	if err != nil {
		return errs.Wrap(err, "encode notification")
	}

	queue := d.normal
	if ev.Priority == commands.PriorityHigh {
		queue = d.high
	}

	info, err := d.client.EnqueueContext(ctx, task,
		asynq.Queue(queue),
		asynq.MaxRetry(d.maxRetry),
		asynq.TaskID(taskID(ev)),
	)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return errs.Wrapf(err, "enqueue %s notification", ev.Kind)
	}

	slog.DebugContext(ctx, "notification enqueued",
		"task_id", info.ID,
		"queue", info.Queue,
		"booking_id", ev.BookingID,
		"kind", ev.Kind)
	return nil
}

// InlineDispatcher delivers synchronously. Used when no queue is configured.
type InlineDispatcher struct {
	deliverer Deliverer
}

func NewInlineDispatcher(deliverer Deliverer) *InlineDispatcher {
	return &InlineDispatcher{deliverer: deliverer}
}

func (d *InlineDispatcher) Notify(ctx context.Context, ev commands.NotificationEvent) error {
	return deliver(ctx, d.deliverer, ev)
}
