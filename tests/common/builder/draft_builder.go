//go:build unit || e2e

package builder

import (
	"time"

	"care-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// DraftBuilder produces drafts already parked at a given step. Fields a
// step has not reached yet stay empty.
type DraftBuilder struct {
	RequesterID  uuid.UUID
	CompanyID    *uuid.UUID
	Pillar       booking.Pillar
	Topics       []string
	Notes        string
	SpecialistID uuid.UUID
	Date         booking.Date
	Start        booking.ClockTime
	QuotaSource  booking.QuotaSource
	Step         booking.Step
	RescheduleOf *uuid.UUID
	Now          time.Time
}

func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		RequesterID:  uuid.New(),
		Pillar:       booking.PillarMentalHealth,
		Topics:       []string{"sleep"},
		SpecialistID: uuid.New(),
		Date:         ReferenceDate,
		Start:        booking.MustClockTime("10:00"),
		QuotaSource:  booking.QuotaCompany,
		Step:         booking.StepConfirmation,
		Now:          time.Date(2025, time.November, 3, 9, 0, 0, 0, time.UTC),
	}
}

func (d *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(d)
	return d
}

func (d *DraftBuilder) Build() *booking.Draft {
	draft := booking.NewDraft(booking.Requester{UserID: d.RequesterID, CompanyID: d.CompanyID}, 60*time.Minute, d.Now)
	draft.Step = d.Step
	draft.QuotaSource = d.QuotaSource
	draft.RescheduleOf = d.RescheduleOf

	if d.Step == booking.StepPillarSelection {
		return draft
	}
	draft.Pillar = d.Pillar
	draft.Topics = booking.NormalizeTopics(d.Topics)
	draft.Notes = d.Notes
	if d.Step == booking.StepAssessmentOrChoice {
		return draft
	}
	draft.Path = booking.PathHuman
	if d.Step == booking.StepAssessment {
		draft.Path = booking.PathAssisted
		return draft
	}
	specialistID := d.SpecialistID
	draft.SpecialistID = &specialistID
	if d.Step == booking.StepProviderAssignment || d.Step == booking.StepDateTimeSelection {
		return draft
	}
	date, start := d.Date, d.Start
	draft.Date = &date
	draft.StartTime = &start
	return draft
}

func (d *DraftBuilder) AtStep(step booking.Step) *DraftBuilder {
	d.Step = step
	return d
}

func (d *DraftBuilder) WithRequesterID(id uuid.UUID) *DraftBuilder {
	d.RequesterID = id
	return d
}

func (d *DraftBuilder) WithSpecialistID(id uuid.UUID) *DraftBuilder {
	d.SpecialistID = id
	return d
}

func (d *DraftBuilder) WithSlot(date booking.Date, start string) *DraftBuilder {
	d.Date = date
	d.Start = booking.MustClockTime(start)
	return d
}

func (d *DraftBuilder) WithQuotaSource(source booking.QuotaSource) *DraftBuilder {
	d.QuotaSource = source
	return d
}

func (d *DraftBuilder) Rescheduling(bookingID uuid.UUID) *DraftBuilder {
	d.RescheduleOf = &bookingID
	return d
}
