package converter

import (
	"care-booking/internal/domain/booking"
	"care-booking/internal/domain/quota"
	"care-booking/internal/domain/specialist"
	"care-booking/internal/infra/db"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/pkg/pgconv"
	"care-booking/internal/usecase/queries"
	"care-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

func DateToPgtype(d booking.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Year, d.Month, d.Day)
}

func DateFromPgtype(pd pgtype.Date) (booking.Date, bool) {
	y, m, d, ok := pgconv.DateFromPgtype(pd)
	return booking.Date{Year: y, Month: m, Day: d}, ok
}

func ClockTimeToPgtype(t booking.ClockTime) pgtype.Time {
	return pgconv.MinutesToPgtime(int(t))
}

func ClockTimeFromPgtype(pt pgtype.Time) booking.ClockTime {
	return booking.ClockTime(pgconv.MinutesFromPgtime(pt))
}

func BookingToInsertParams(b *booking.Booking) db.InsertBookingParams {
	return db.InsertBookingParams{
		ID:                  b.ID(),
		RequesterID:         b.RequesterID(),
		CompanyID:           pgconv.UUIDPtrToPgtype(b.CompanyID()),
		SpecialistID:        b.SpecialistID(),
		Pillar:              b.Pillar().String(),
		Topics:              nonNil(b.Topics()),
		Notes:               b.Notes(),
		Modality:            string(b.Modality()),
		SessionDate:         DateToPgtype(b.Date()),
		StartTime:           ClockTimeToPgtype(b.Start()),
		EndTime:             ClockTimeToPgtype(b.End()),
		Status:              b.Status().String(),
		QuotaSource:         b.QuotaSource().String(),
		AssessmentSessionID: pgconv.UUIDPtrToPgtype(b.AssessmentSessionID()),
		CreatedAt:           pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:           pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToRescheduleParams(b *booking.Booking) db.RescheduleBookingParams {
	params := db.RescheduleBookingParams{
		ID:            b.ID(),
		SpecialistID:  b.SpecialistID(),
		SessionDate:   DateToPgtype(b.Date()),
		StartTime:     ClockTimeToPgtype(b.Start()),
		EndTime:       ClockTimeToPgtype(b.End()),
		Status:        b.Status().String(),
		RescheduledAt: pgconv.TimePtrToPgtype(b.RescheduledAt()),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}
	if from := b.RescheduledFrom(); from != nil {
		params.RescheduledFrom = DateToPgtype(*from)
	}
	return params
}

func BookingFromRow(row db.BookingRow) *booking.Booking {
	date, _ := DateFromPgtype(row.SessionDate)
	var rescheduledFrom *booking.Date
	if from, ok := DateFromPgtype(row.RescheduledFrom); ok {
		rescheduledFrom = &from
	}
	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:                  row.ID,
		RequesterID:         row.RequesterID,
		CompanyID:           pgconv.UUIDPtrFromPgtype(row.CompanyID),
		SpecialistID:        row.SpecialistID,
		Pillar:              booking.Pillar(row.Pillar),
		Topics:              row.Topics,
		Notes:               row.Notes,
		Modality:            booking.Modality(row.Modality),
		Date:                date,
		Start:               ClockTimeFromPgtype(row.StartTime),
		End:                 ClockTimeFromPgtype(row.EndTime),
		Status:              booking.Status(row.Status),
		QuotaSource:         booking.QuotaSource(row.QuotaSource),
		AssessmentSessionID: pgconv.UUIDPtrFromPgtype(row.AssessmentSessionID),
		RescheduledFrom:     rescheduledFrom,
		RescheduledAt:       pgconv.TimePtrFromPgtype(row.RescheduledAt),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func BookingViewFromRow(row db.BookingRow) *queries.BookingView {
	view := BookingToView(BookingFromRow(row))
	view.SpecialistName = row.SpecialistName
	return view
}

// BookingToView renders a booking; SpecialistName is left to the caller.
func BookingToView(b *booking.Booking) *queries.BookingView {
	view := &queries.BookingView{
		ID:                  b.ID(),
		RequesterID:         b.RequesterID(),
		CompanyID:           b.CompanyID(),
		SpecialistID:        b.SpecialistID(),
		Pillar:              b.Pillar().String(),
		Topics:              nonNil(b.Topics()),
		Notes:               b.Notes(),
		Modality:            string(b.Modality()),
		Date:                b.Date().String(),
		StartTime:           b.Start().String(),
		EndTime:             b.End().String(),
		Status:              b.Status().String(),
		QuotaSource:         b.QuotaSource().String(),
		AssessmentSessionID: b.AssessmentSessionID(),
		RescheduledAt:       b.RescheduledAt(),
		CreatedAt:           b.CreatedAt(),
		UpdatedAt:           b.UpdatedAt(),
	}
	if from := b.RescheduledFrom(); from != nil {
		s := from.String()
		view.RescheduledFrom = &s
	}
	return view
}

func SnapshotFromSlotRow(row db.BookingSlotRow) shared.BookingSnapshot {
	date, _ := DateFromPgtype(row.SessionDate)
	return shared.BookingSnapshot{
		ID:           row.ID,
		SpecialistID: row.SpecialistID,
		Date:         date,
		Start:        ClockTimeFromPgtype(row.StartTime),
		Status:       booking.Status(row.Status),
	}
}

func SpecialistFromRow(row db.SpecialistRow) (*specialist.Profile, error) {
	times := make([]booking.ClockTime, 0, len(row.SlotTimes))
	for _, raw := range row.SlotTimes {
		t, err := booking.ParseClockTime(raw)
		if err != nil {
			return nil, errs.Wrapf(err, "specialist %s slot time %q", row.ID, raw)
		}
		times = append(times, t)
	}
	return specialist.NewProfile(row.ID, row.DisplayName, row.Specialties, times, row.Active)
}

func QuotaAccountFromRow(row db.QuotaAccountRow) (*quota.Account, error) {
	return quota.NewAccount(
		row.RequesterID,
		int(row.CompanyAllocated), int(row.CompanyUsed),
		int(row.PersonalAllocated), int(row.PersonalUsed),
	)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
