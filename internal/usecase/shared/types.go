package shared

import (
	"care-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Minimal snapshot for slot checks
type BookingSnapshot struct {
	ID           uuid.UUID
	SpecialistID uuid.UUID
	Date         booking.Date
	Start        booking.ClockTime
	Status       booking.Status
}

func (s BookingSnapshot) Slot() booking.Slot {
	return booking.Slot{SpecialistID: s.SpecialistID, Date: s.Date, Start: s.Start}
}
