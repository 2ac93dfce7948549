package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commands

import (
	"context"
	"time"

	"care-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotificationCreated     NotificationKind = "created"
	NotificationRescheduled NotificationKind = "rescheduled"
	NotificationReassigned  NotificationKind = "reassigned"
)

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

type RecipientRole string

const (
	RecipientRequester  RecipientRole = "requester"
	RecipientSpecialist RecipientRole = "specialist"
)

// NotificationEvent is the fire-and-forget message emitted after a booking
// write has committed.
type NotificationEvent struct {
	BookingID     uuid.UUID         `json:"booking_id"`
	Kind          NotificationKind  `json:"kind"`
	RecipientID   uuid.UUID         `json:"recipient_id"`
	RecipientRole RecipientRole     `json:"recipient_role"`
	Priority      Priority          `json:"priority"`
	Pillar        booking.Pillar    `json:"pillar"`
	Date          booking.Date      `json:"date"`
	Start         booking.ClockTime `json:"start"`
	OccurredAt    time.Time         `json:"occurred_at"`
}

// NotificationDispatcher hands events to the delivery channels. Delivery
// outcome never affects the booking.
type NotificationDispatcher interface {
	Notify(ctx context.Context, event NotificationEvent) error
}
