package commands

import (
	"fmt"

	"care-booking/internal/domain/booking"
	"care-booking/internal/pkg/errs"
)

var (
	ErrNoProviderAvailable = errs.New("no provider available")
	ErrSlotUnavailable     = errs.New("slot unavailable")
	ErrQuotaExhausted      = errs.New("quota exhausted")
	ErrIncompleteDraft     = errs.New("incomplete draft")
	ErrPersistenceFailure  = errs.New("persistence failure")
	ErrNotificationFailure = errs.New("notification failure")
	ErrNoQuotaAccount      = errs.New("no quota account")
	ErrBookingNotFound     = errs.New("booking not found")
	ErrNotReschedulable    = errs.New("booking cannot be rescheduled")
)

type NoProviderAvailableError struct {
	Pillar booking.Pillar
}

func (e *NoProviderAvailableError) Error() string {
	return fmt.Sprintf("no active specialist serves %s", e.Pillar)
}

func (e *NoProviderAvailableError) Is(target error) bool {
	return target == ErrNoProviderAvailable
}

type SlotUnavailableError struct {
	Slot booking.Slot
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("slot %s is already booked", e.Slot)
}

func (e *SlotUnavailableError) Is(target error) bool {
	return target == ErrSlotUnavailable
}

type QuotaExhaustedError struct {
	Source    booking.QuotaSource
	Remaining int
}

func (e *QuotaExhaustedError) Error() string {
	return fmt.Sprintf("%s quota exhausted (remaining %d)", e.Source, e.Remaining)
}

func (e *QuotaExhaustedError) Is(target error) bool {
	return target == ErrQuotaExhausted
}

type IncompleteDraftError struct {
	Missing []string
}

func (e *IncompleteDraftError) Error() string {
	return fmt.Sprintf("draft is missing %v", e.Missing)
}

func (e *IncompleteDraftError) Is(target error) bool {
	return target == ErrIncompleteDraft
}
