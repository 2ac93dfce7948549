package repository

import (
	"context"

	"care-booking/internal/domain/booking"
	"care-booking/internal/infra"
	"care-booking/internal/infra/converter"
	"care-booking/internal/infra/db"
)

type BookingWriteQueries interface {
	InsertBooking(ctx context.Context, dbtx db.DBTX, arg db.InsertBookingParams) error
	RescheduleBooking(ctx context.Context, dbtx db.DBTX, arg db.RescheduleBookingParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      db.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      dbtx,
	}
}

// Insert relies on the partial unique index for the final slot check; a
// violation comes back as KindDuplicateKey.
func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.InsertBooking(ctx, r.db, converter.BookingToInsertParams(b)); err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateForReschedule(ctx context.Context, b *booking.Booking) error {
	affected, err := r.queries.RescheduleBooking(ctx, r.db, converter.BookingToRescheduleParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found or no longer movable", nil, infra.KindNotFound)
	}
	return nil
}
