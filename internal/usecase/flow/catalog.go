package flow

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/flow/catalog_mock.go -package=flow

import (
	"context"

	"care-booking/internal/domain/booking"
	"care-booking/internal/infra"
	"care-booking/internal/pkg/config"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase/commands"
	"care-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// SlotCatalog knows which start times a specialist publishes. Specialists
// without their own schedule use the configured default times.
type SlotCatalog interface {
	Publishes(ctx context.Context, specialistID uuid.UUID, start booking.ClockTime) (bool, error)
}

type slotCatalog struct {
	uow      shared.UnitOfWork
	defaults []booking.ClockTime
}

func NewSlotCatalog(uow shared.UnitOfWork, cfg config.Config) (SlotCatalog, error) {
	defaults := make([]booking.ClockTime, 0, len(cfg.Booking.SlotTimes))
	for _, raw := range cfg.Booking.SlotTimes {
		t, err := booking.ParseClockTime(raw)
		if err != nil {
			return nil, errs.Wrapf(err, "BOOKING_SLOT_TIMES entry %q", raw)
		}
		defaults = append(defaults, t)
	}
	return &slotCatalog{uow: uow, defaults: defaults}, nil
}

func (c *slotCatalog) Publishes(ctx context.Context, specialistID uuid.UUID, start booking.ClockTime) (bool, error) {
	profile, err := c.uow.CommandReads().SpecialistByID(ctx, specialistID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, errs.Mark(err, commands.ErrPersistenceFailure)
	}
	return profile.IsActive() && profile.Publishes(start, c.defaults), nil
}
