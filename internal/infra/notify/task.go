package notify

import (
	"encoding/json"
	"fmt"

	"care-booking/internal/pkg/config"
	"care-booking/internal/usecase/commands"

	"github.com/hibiken/asynq"
)

const TypeBookingNotify = "booking:notify"

func NewNotifyTask(ev commands.NotificationEvent) (*asynq.Task, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingNotify, payload), nil
}

func ParseNotifyTask(task *asynq.Task) (commands.NotificationEvent, error) {
	var ev commands.NotificationEvent
	if err := json.Unmarshal(task.Payload(), &ev); err != nil {
		return commands.NotificationEvent{}, err
	}
	return ev, nil
}

// taskID makes a re-enqueue of the same event a no-op.
func taskID(ev commands.NotificationEvent) string {
	return fmt.Sprintf("%s:%s:%s:%d", ev.BookingID, ev.Kind, ev.RecipientID, ev.OccurredAt.UnixNano())
}

func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.QueueDB,
	}
}
