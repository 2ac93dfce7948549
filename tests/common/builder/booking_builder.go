//go:build unit || e2e

package builder

import (
	"time"

	"care-booking/internal/domain/booking"
	"care-booking/internal/infra/converter"
	"care-booking/internal/infra/db"
	"care-booking/internal/pkg/pgconv"
	"care-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReferenceDate is the Monday most booking tests schedule on.
var ReferenceDate = booking.Date{Year: 2025, Month: time.November, Day: 10}

type BookingBuilder struct {
	ID             uuid.UUID
	RequesterID    uuid.UUID
	CompanyID      *uuid.UUID
	SpecialistID   uuid.UUID
	SpecialistName string
	Pillar         booking.Pillar
	Topics         []string
	Notes          string
	Modality       booking.Modality
	Date           booking.Date
	Start          booking.ClockTime
	SessionLength  time.Duration
	Status         booking.Status
	QuotaSource    booking.QuotaSource
	CreatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	companyID := uuid.New()
	return &BookingBuilder{
		ID:             uuid.New(),
		RequesterID:    uuid.New(),
		CompanyID:      &companyID,
		SpecialistID:   uuid.New(),
		SpecialistName: "Ana Duarte",
		Pillar:         booking.PillarMentalHealth,
		Topics:         []string{"anxiety"},
		Notes:          "first session",
		Modality:       booking.ModalityVirtual,
		Date:           ReferenceDate,
		Start:          booking.MustClockTime("10:00"),
		SessionLength:  60 * time.Minute,
		Status:         booking.StatusScheduled,
		QuotaSource:    booking.QuotaCompany,
		CreatedAt:      time.Date(2025, time.November, 3, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	end, err := b.Start.Add(b.SessionLength)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:           b.ID,
		RequesterID:  b.RequesterID,
		CompanyID:    b.CompanyID,
		SpecialistID: b.SpecialistID,
		Pillar:       b.Pillar,
		Topics:       b.Topics,
		Notes:        b.Notes,
		Modality:     b.Modality,
		Date:         b.Date,
		Start:        b.Start,
		End:          end,
		Status:       b.Status,
		QuotaSource:  b.QuotaSource,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	})
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	view := converter.BookingToView(b.BuildDomain())
	view.SpecialistName = b.SpecialistName
	return view
}

func (b *BookingBuilder) BuildRow() db.BookingRow {
	bk := b.BuildDomain()
	return db.BookingRow{
		ID:             bk.ID(),
		RequesterID:    bk.RequesterID(),
		CompanyID:      pgconv.UUIDPtrToPgtype(bk.CompanyID()),
		SpecialistID:   bk.SpecialistID(),
		SpecialistName: b.SpecialistName,
		Pillar:         bk.Pillar().String(),
		Topics:         bk.Topics(),
		Notes:          bk.Notes(),
		Modality:       string(bk.Modality()),
		SessionDate:    converter.DateToPgtype(bk.Date()),
		StartTime:      converter.ClockTimeToPgtype(bk.Start()),
		EndTime:        converter.ClockTimeToPgtype(bk.End()),
		Status:         bk.Status().String(),
		QuotaSource:    bk.QuotaSource().String(),
		CreatedAt:      pgconv.TimeToPgtype(bk.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(bk.UpdatedAt()),
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithRequesterID(id uuid.UUID) *BookingBuilder {
	b.RequesterID = id
	return b
}

func (b *BookingBuilder) WithSpecialistID(id uuid.UUID) *BookingBuilder {
	b.SpecialistID = id
	return b
}

func (b *BookingBuilder) WithSlot(date booking.Date, start string) *BookingBuilder {
	b.Date = date
	b.Start = booking.MustClockTime(start)
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = booking.StatusCancelled
	return b
}

func (b *BookingBuilder) AsCompleted() *BookingBuilder {
	b.Status = booking.StatusCompleted
	return b
}
