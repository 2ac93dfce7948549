package commands

//go:generate mockgen -source=committer.go -destination=../../../tests/mock/commands/committer_mock.go -package=commands

import (
	"context"
	"log/slog"
	"time"

	"care-booking/internal/domain/booking"
	"care-booking/internal/infra"
	"care-booking/internal/pkg/clock"
	"care-booking/internal/pkg/config"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/pkg/metrics"
	"care-booking/internal/pkg/telemetry"
	"care-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	modeCreate     = "create"
	modeReschedule = "reschedule"
)

// BookingCommitter turns a complete draft into a persisted booking. Slot
// and quota are re-validated inside the write transaction.
type BookingCommitter interface {
	Commit(ctx context.Context, draft *booking.Draft) (*booking.Booking, error)
}

type bookingCommitter struct {
	uow           shared.UnitOfWork
	dispatcher    NotificationDispatcher
	clock         clock.Clock
	sessionLength time.Duration
}

func NewBookingCommitter(uow shared.UnitOfWork, dispatcher NotificationDispatcher, clk clock.Clock, cfg config.Config) BookingCommitter {
	return &bookingCommitter{
		uow:           uow,
		dispatcher:    dispatcher,
		clock:         clk,
		sessionLength: cfg.Booking.SessionDuration,
	}
}

func (c *bookingCommitter) Commit(ctx context.Context, draft *booking.Draft) (result *booking.Booking, err error) {
	mode := modeCreate
	if draft.IsReschedule() {
		mode = modeReschedule
	}

	ctx, span := telemetry.Tracer().Start(ctx, "booking.commit", trace.WithAttributes(
		attribute.String("booking.mode", mode),
		attribute.String("booking.draft_id", draft.ID.String()),
	))
	started := time.Now()
	defer func() {
		metrics.CommitsTotal.WithLabelValues(mode, commitOutcome(err)).Inc()
		metrics.CommitDuration.WithLabelValues(mode).Observe(time.Since(started).Seconds())
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, commitOutcome(err))
		}
		span.End()
	}()

	if missing := draft.MissingFields(); len(missing) > 0 {
		slog.ErrorContext(ctx, "commit called with incomplete draft", "draft_id", draft.ID, "missing", missing)
		return nil, &IncompleteDraftError{Missing: missing}
	}
	slot, _ := draft.Slot()

	var (
		committed *booking.Booking
		events    []NotificationEvent
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		if draft.IsReschedule() {
			committed, events, txErr = c.reschedule(ctx, tx, draft, slot)
		} else {
			committed, events, txErr = c.create(ctx, tx, draft, slot)
		}
		return txErr
	})
	if err != nil {
		return nil, normalizeCommitErr(err)
	}

	span.SetAttributes(attribute.String("booking.id", committed.ID().String()))
	c.dispatch(ctx, events)
	return committed, nil
}

func (c *bookingCommitter) create(ctx context.Context, tx shared.Tx, draft *booking.Draft, slot booking.Slot) (*booking.Booking, []NotificationEvent, error) {
	reads := tx.Reads()

	taken, err := slotTaken(ctx, reads, slot, nil)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrPersistenceFailure)
	}
	if taken {
		return nil, nil, &SlotUnavailableError{Slot: slot}
	}

	if err := ledgerOn(reads).AssertSufficient(ctx, draft.Requester.UserID, draft.QuotaSource); err != nil {
		if !errs.Is(err, ErrNoQuotaAccount) {
			return nil, nil, err
		}
		slog.DebugContext(ctx, "requester has no quota account, booking is not quota-gated", "requester_id", draft.Requester.UserID)
	}

	now := c.clock.Now()
	b, err := booking.NewBooking(draft, c.sessionLength, now)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrIncompleteDraft)
	}

	if err := tx.Bookings().Insert(ctx, b); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, nil, &SlotUnavailableError{Slot: slot}
		}
		return nil, nil, errs.Mark(err, ErrPersistenceFailure)
	}

	events := []NotificationEvent{
		newEvent(b, NotificationCreated, b.SpecialistID(), RecipientSpecialist, PriorityNormal, now),
		newEvent(b, NotificationCreated, b.RequesterID(), RecipientRequester, PriorityNormal, now),
	}
	return b, events, nil
}

func (c *bookingCommitter) reschedule(ctx context.Context, tx shared.Tx, draft *booking.Draft, slot booking.Slot) (*booking.Booking, []NotificationEvent, error) {
	reads := tx.Reads()

	existing, err := reads.BookingByID(ctx, *draft.RescheduleOf)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, nil, errs.Mark(err, ErrPersistenceFailure)
	}

	taken, err := slotTaken(ctx, reads, slot, draft.RescheduleOf)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrPersistenceFailure)
	}
	if taken {
		return nil, nil, &SlotUnavailableError{Slot: slot}
	}

	now := c.clock.Now()
	previousSpecialist := existing.SpecialistID()
	if err := existing.Reschedule(slot.SpecialistID, slot.Date, slot.Start, c.sessionLength, now); err != nil {
		return nil, nil, errs.Mark(err, ErrNotReschedulable)
	}

	if err := tx.Bookings().UpdateForReschedule(ctx, existing); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, nil, &SlotUnavailableError{Slot: slot}
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, nil, errs.Mark(err, ErrPersistenceFailure)
	}

	events := []NotificationEvent{
		newEvent(existing, NotificationRescheduled, existing.SpecialistID(), RecipientSpecialist, PriorityHigh, now),
		newEvent(existing, NotificationRescheduled, existing.RequesterID(), RecipientRequester, PriorityNormal, now),
	}
	if previousSpecialist != existing.SpecialistID() {
		events = append(events, newEvent(existing, NotificationReassigned, previousSpecialist, RecipientSpecialist, PriorityHigh, now))
	}
	return existing, events, nil
}

// dispatch runs after the write committed; failures are reported, never returned.
func (c *bookingCommitter) dispatch(ctx context.Context, events []NotificationEvent) {
	ctx = context.WithoutCancel(ctx)
	for _, ev := range events {
		if err := c.dispatcher.Notify(ctx, ev); err != nil {
			metrics.NotificationsTotal.WithLabelValues(string(ev.Kind), "failed").Inc()
			slog.WarnContext(ctx, "notification dispatch failed",
				"booking_id", ev.BookingID,
				"kind", ev.Kind,
				"recipient_id", ev.RecipientID,
				"error", errs.Mark(err, ErrNotificationFailure).Error())
			continue
		}
		metrics.NotificationsTotal.WithLabelValues(string(ev.Kind), "sent").Inc()
	}
}

func newEvent(b *booking.Booking, kind NotificationKind, recipient uuid.UUID, role RecipientRole, priority Priority, now time.Time) NotificationEvent {
	return NotificationEvent{
		BookingID:     b.ID(),
		Kind:          kind,
		RecipientID:   recipient,
		RecipientRole: role,
		Priority:      priority,
		Pillar:        b.Pillar(),
		Date:          b.Date(),
		Start:         b.Start(),
		OccurredAt:    now,
	}
}

func normalizeCommitErr(err error) error {
	for _, known := range []error{
		ErrSlotUnavailable, ErrQuotaExhausted, ErrIncompleteDraft,
		ErrBookingNotFound, ErrNotReschedulable, ErrPersistenceFailure,
	} {
		if errs.Is(err, known) {
			return err
		}
	}
	return errs.Mark(err, ErrPersistenceFailure)
}

func commitOutcome(err error) string {
	switch {
	case err == nil:
		return "committed"
	case errs.Is(err, ErrSlotUnavailable):
		return "slot_unavailable"
	case errs.Is(err, ErrQuotaExhausted):
		return "quota_exhausted"
	case errs.Is(err, ErrIncompleteDraft):
		return "incomplete_draft"
	case errs.Is(err, ErrBookingNotFound), errs.Is(err, ErrNotReschedulable):
		return "rejected"
	default:
		return "persistence_failure"
	}
}
