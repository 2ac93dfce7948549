package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Queries holds the SQL used by the repositories and read stores. Every
// method takes the DBTX to run on so the same statements work inside and
// outside a transaction.
type Queries struct{}

func New() *Queries {
	return &Queries{}
}

type BookingRow struct {
	ID                  uuid.UUID
	RequesterID         uuid.UUID
	CompanyID           pgtype.UUID
	SpecialistID        uuid.UUID
	SpecialistName      string
	Pillar              string
	Topics              []string
	Notes               string
	Modality            string
	SessionDate         pgtype.Date
	StartTime           pgtype.Time
	EndTime             pgtype.Time
	Status              string
	QuotaSource         string
	AssessmentSessionID pgtype.UUID
	RescheduledFrom     pgtype.Date
	RescheduledAt       pgtype.Timestamptz
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

type BookingSlotRow struct {
	ID           uuid.UUID
	SpecialistID uuid.UUID
	SessionDate  pgtype.Date
	StartTime    pgtype.Time
	Status       string
}

type SpecialistRow struct {
	ID          uuid.UUID
	DisplayName string
	Specialties []string
	SlotTimes   []string
	Active      bool
}

type QuotaAccountRow struct {
	RequesterID       uuid.UUID
	CompanyAllocated  int32
	CompanyUsed       int32
	PersonalAllocated int32
	PersonalUsed      int32
}

const bookingColumns = `
	b.id, b.requester_id, b.company_id, b.specialist_id, COALESCE(s.display_name, ''),
	b.pillar, b.topics, b.notes, b.modality, b.session_date, b.start_time, b.end_time,
	b.status, b.quota_source, b.assessment_session_id, b.rescheduled_from, b.rescheduled_at,
	b.created_at, b.updated_at`

const getBookingByID = `
SELECT` + bookingColumns + `
FROM bookings b
LEFT JOIN specialists s ON s.id = b.specialist_id
WHERE b.id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingRow, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByID, id))
}

const listBookingsByRequesterFirstPage = `
SELECT` + bookingColumns + `
FROM bookings b
LEFT JOIN specialists s ON s.id = b.specialist_id
WHERE b.requester_id = $1
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2`

func (q *Queries) ListBookingsByRequesterFirstPage(ctx context.Context, db DBTX, requesterID uuid.UUID, limit int32) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listBookingsByRequesterFirstPage, requesterID, limit)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

type ListBookingsByRequesterKeysetParams struct {
	RequesterID uuid.UUID
	AfterAt     pgtype.Timestamptz
	AfterID     uuid.UUID
	Limit       int32
}

const listBookingsByRequesterKeyset = `
SELECT` + bookingColumns + `
FROM bookings b
LEFT JOIN specialists s ON s.id = b.specialist_id
WHERE b.requester_id = $1
  AND (b.created_at, b.id) < ($2, $3)
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4`

func (q *Queries) ListBookingsByRequesterKeyset(ctx context.Context, db DBTX, arg ListBookingsByRequesterKeysetParams) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listBookingsByRequesterKeyset, arg.RequesterID, arg.AfterAt, arg.AfterID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

const listActiveBookingsAt = `
SELECT id, specialist_id, session_date, start_time, status
FROM bookings
WHERE specialist_id = $1
  AND session_date = $2
  AND status <> 'cancelled'
ORDER BY start_time`

func (q *Queries) ListActiveBookingsAt(ctx context.Context, db DBTX, specialistID uuid.UUID, date pgtype.Date) ([]BookingSlotRow, error) {
	rows, err := db.Query(ctx, listActiveBookingsAt, specialistID, date)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (BookingSlotRow, error) {
		var r BookingSlotRow
		err := row.Scan(&r.ID, &r.SpecialistID, &r.SessionDate, &r.StartTime, &r.Status)
		return r, err
	})
}

type InsertBookingParams struct {
	ID                  uuid.UUID
	RequesterID         uuid.UUID
	CompanyID           pgtype.UUID
	SpecialistID        uuid.UUID
	Pillar              string
	Topics              []string
	Notes               string
	Modality            string
	SessionDate         pgtype.Date
	StartTime           pgtype.Time
	EndTime             pgtype.Time
	Status              string
	QuotaSource         string
	AssessmentSessionID pgtype.UUID
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

const insertBooking = `
INSERT INTO bookings (
	id, requester_id, company_id, specialist_id, pillar, topics, notes, modality,
	session_date, start_time, end_time, status, quota_source, assessment_session_id,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) error {
	_, err := db.Exec(ctx, insertBooking,
		arg.ID, arg.RequesterID, arg.CompanyID, arg.SpecialistID, arg.Pillar, arg.Topics, arg.Notes, arg.Modality,
		arg.SessionDate, arg.StartTime, arg.EndTime, arg.Status, arg.QuotaSource, arg.AssessmentSessionID,
		arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

type RescheduleBookingParams struct {
	ID              uuid.UUID
	SpecialistID    uuid.UUID
	SessionDate     pgtype.Date
	StartTime       pgtype.Time
	EndTime         pgtype.Time
	Status          string
	RescheduledFrom pgtype.Date
	RescheduledAt   pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

const rescheduleBooking = `
UPDATE bookings
SET specialist_id = $2,
    session_date = $3,
    start_time = $4,
    end_time = $5,
    status = $6,
    rescheduled_from = $7,
    rescheduled_at = $8,
    updated_at = $9
WHERE id = $1
  AND status NOT IN ('cancelled', 'completed')`

// RescheduleBooking returns the number of rows moved; zero means the
// booking is gone or no longer movable.
func (q *Queries) RescheduleBooking(ctx context.Context, db DBTX, arg RescheduleBookingParams) (int64, error) {
	tag, err := db.Exec(ctx, rescheduleBooking,
		arg.ID, arg.SpecialistID, arg.SessionDate, arg.StartTime, arg.EndTime,
		arg.Status, arg.RescheduledFrom, arg.RescheduledAt, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getQuotaAccount = `
SELECT requester_id, company_allocated, company_used, personal_allocated, personal_used
FROM quota_accounts
WHERE requester_id = $1`

func (q *Queries) GetQuotaAccount(ctx context.Context, db DBTX, requesterID uuid.UUID) (QuotaAccountRow, error) {
	var r QuotaAccountRow
	err := db.QueryRow(ctx, getQuotaAccount, requesterID).Scan(
		&r.RequesterID, &r.CompanyAllocated, &r.CompanyUsed, &r.PersonalAllocated, &r.PersonalUsed,
	)
	return r, err
}

const specialistColumns = `id, display_name, specialties, slot_times, active`

const listActiveSpecialists = `
SELECT ` + specialistColumns + `
FROM specialists
WHERE active
ORDER BY display_name, id`

func (q *Queries) ListActiveSpecialists(ctx context.Context, db DBTX) ([]SpecialistRow, error) {
	rows, err := db.Query(ctx, listActiveSpecialists)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (SpecialistRow, error) {
		return scanSpecialist(row)
	})
}

const getSpecialistByID = `
SELECT ` + specialistColumns + `
FROM specialists
WHERE id = $1`

func (q *Queries) GetSpecialistByID(ctx context.Context, db DBTX, id uuid.UUID) (SpecialistRow, error) {
	return scanSpecialist(db.QueryRow(ctx, getSpecialistByID, id))
}

func scanBooking(row pgx.Row) (BookingRow, error) {
	var r BookingRow
	err := row.Scan(
		&r.ID, &r.RequesterID, &r.CompanyID, &r.SpecialistID, &r.SpecialistName,
		&r.Pillar, &r.Topics, &r.Notes, &r.Modality, &r.SessionDate, &r.StartTime, &r.EndTime,
		&r.Status, &r.QuotaSource, &r.AssessmentSessionID, &r.RescheduledFrom, &r.RescheduledAt,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func collectBookings(rows pgx.Rows) ([]BookingRow, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (BookingRow, error) {
		return scanBooking(row)
	})
}

func scanSpecialist(row pgx.Row) (SpecialistRow, error) {
	var r SpecialistRow
	err := row.Scan(&r.ID, &r.DisplayName, &r.Specialties, &r.SlotTimes, &r.Active)
	return r, err
}
