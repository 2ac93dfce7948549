package notify

import (
	"context"
	"log/slog"

	"care-booking/internal/pkg/metrics"
	"care-booking/internal/usecase/commands"
)

// Deliverer pushes one event to the recipient's channels (email, push,
// in-app). The channels themselves live outside this service.
type Deliverer interface {
	Deliver(ctx context.Context, ev commands.NotificationEvent) error
}

// LogDeliverer records deliveries in the log.
type LogDeliverer struct{}

func NewLogDeliverer() *LogDeliverer {
	return &LogDeliverer{}
}

func (LogDeliverer) Deliver(ctx context.Context, ev commands.NotificationEvent) error {
	slog.InfoContext(ctx, "notification delivered",
		"booking_id", ev.BookingID,
		"kind", ev.Kind,
		"recipient_id", ev.RecipientID,
		"recipient_role", ev.RecipientRole,
		"priority", ev.Priority,
		"date", ev.Date,
		"start", ev.Start)
	return nil
}

func deliver(ctx context.Context, d Deliverer, ev commands.NotificationEvent) error {
	if err := d.Deliver(ctx, ev); err != nil {
		return err
	}
	metrics.NotificationsDelivered.WithLabelValues(string(ev.Kind)).Inc()
	return nil
}
