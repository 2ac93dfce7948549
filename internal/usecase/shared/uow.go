package shared

import (
	"context"

	"care-booking/internal/domain/booking"
	"care-booking/internal/domain/quota"
	"care-booking/internal/domain/specialist"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Reads() CommandReads
}

type CommandReads interface {
	// ActiveBookingsAt returns non-cancelled bookings of a specialist on a date.
	ActiveBookingsAt(ctx context.Context, specialistID uuid.UUID, date booking.Date) ([]BookingSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	QuotaAccount(ctx context.Context, requesterID uuid.UUID) (*quota.Account, error)
	ActiveSpecialists(ctx context.Context) ([]*specialist.Profile, error)
	SpecialistByID(ctx context.Context, id uuid.UUID) (*specialist.Profile, error)
}

type BookingRepository interface {
	Insert(ctx context.Context, b *booking.Booking) error
	UpdateForReschedule(ctx context.Context, b *booking.Booking) error
}
