package commands

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/commands/availability_mock.go -package=commands

import (
	"context"

	"care-booking/internal/domain/booking"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// SlotAvailabilityChecker answers whether a specialist's slot is free. The
// answer is advisory; the committer re-checks inside its transaction.
type SlotAvailabilityChecker interface {
	IsAvailable(ctx context.Context, specialistID uuid.UUID, date booking.Date, start booking.ClockTime) (bool, error)
}

type slotAvailabilityChecker struct {
	uow shared.UnitOfWork
}

func NewSlotAvailabilityChecker(uow shared.UnitOfWork) SlotAvailabilityChecker {
	return &slotAvailabilityChecker{uow: uow}
}

func (c *slotAvailabilityChecker) IsAvailable(ctx context.Context, specialistID uuid.UUID, date booking.Date, start booking.ClockTime) (bool, error) {
	slot := booking.Slot{SpecialistID: specialistID, Date: date, Start: start}
	taken, err := slotTaken(ctx, c.uow.CommandReads(), slot, nil)
	if err != nil {
		return false, errs.Mark(err, ErrPersistenceFailure)
	}
	return !taken, nil
}

// slotTaken ignores the booking being rescheduled so it can keep its own slot.
func slotTaken(ctx context.Context, reads shared.CommandReads, slot booking.Slot, exclude *uuid.UUID) (bool, error) {
	existing, err := reads.ActiveBookingsAt(ctx, slot.SpecialistID, slot.Date)
	if err != nil {
		return false, err
	}
	for _, b := range existing {
		if !b.Status.HoldsSlot() || b.Start != slot.Start {
			continue
		}
		if exclude != nil && b.ID == *exclude {
			continue
		}
		return true, nil
	}
	return false, nil
}
