package readstore

import (
	"context"

	"care-booking/internal/domain/booking"
	"care-booking/internal/infra"
	"care-booking/internal/infra/converter"
	"care-booking/internal/infra/db"
	"care-booking/internal/pkg/pgconv"
	"care-booking/internal/usecase/queries"
	"care-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (db.BookingRow, error)
	ListBookingsByRequesterFirstPage(ctx context.Context, dbtx db.DBTX, requesterID uuid.UUID, limit int32) ([]db.BookingRow, error)
	ListBookingsByRequesterKeyset(ctx context.Context, dbtx db.DBTX, arg db.ListBookingsByRequesterKeysetParams) ([]db.BookingRow, error)
	ListActiveBookingsAt(ctx context.Context, dbtx db.DBTX, specialistID uuid.UUID, date pgtype.Date) ([]db.BookingSlotRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      db.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      dbtx,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.getRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.BookingViewFromRow(row), nil
}

func (r *BookingReadStore) FindByRequester(ctx context.Context, requesterID uuid.UUID, after *queries.Position, limit int32) ([]*queries.BookingView, error) {
	var (
		rows []db.BookingRow
		err  error
	)
	if after == nil {
		rows, err = r.queries.ListBookingsByRequesterFirstPage(ctx, r.db, requesterID, limit)
	} else {
		rows, err = r.queries.ListBookingsByRequesterKeyset(ctx, r.db, db.ListBookingsByRequesterKeysetParams{
			RequesterID: requesterID,
			AfterAt:     pgconv.TimeToPgtype(after.CreatedAt),
			AfterID:     after.ID,
			Limit:       limit,
		})
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by requester", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = converter.BookingViewFromRow(row)
	}
	return result, nil
}

// Booking loads the aggregate for a write path.
func (r *BookingReadStore) Booking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.getRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingReadStore) ActiveAt(ctx context.Context, specialistID uuid.UUID, date booking.Date) ([]shared.BookingSnapshot, error) {
	rows, err := r.queries.ListActiveBookingsAt(ctx, r.db, specialistID, converter.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for slot check", err)
	}
	snapshots := make([]shared.BookingSnapshot, len(rows))
	for i, row := range rows {
		snapshots[i] = converter.SnapshotFromSlotRow(row)
	}
	return snapshots, nil
}

func (r *BookingReadStore) getRow(ctx context.Context, id uuid.UUID) (db.BookingRow, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return db.BookingRow{}, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return db.BookingRow{}, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return row, nil
}
