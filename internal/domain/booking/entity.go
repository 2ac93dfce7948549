package booking

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPillar        = errors.New("invalid pillar")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidClockTime     = errors.New("invalid time of day")
	ErrInvalidTimeSlot      = errors.New("invalid time slot")
	ErrInvalidModality      = errors.New("invalid modality")
	ErrInvalidQuotaSource   = errors.New("invalid quota source")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrMissingRequester     = errors.New("requester is required")
	ErrMissingSpecialist    = errors.New("specialist is required")
	ErrNotReschedulable     = errors.New("booking can no longer be rescheduled")
	ErrInvalidSessionLength = errors.New("session duration must be positive")
)

type Booking struct {
	id                  uuid.UUID
	requesterID         uuid.UUID
	companyID           *uuid.UUID
	specialistID        uuid.UUID
	pillar              Pillar
	topics              []string
	notes               string
	modality            Modality
	date                Date
	start               ClockTime
	end                 ClockTime
	status              Status
	quotaSource         QuotaSource
	assessmentSessionID *uuid.UUID
	rescheduledFrom     *Date
	rescheduledAt       *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

// NewBooking builds a scheduled booking from a complete draft. The end time
// is always derived from the configured session length.
func NewBooking(d *Draft, sessionLength time.Duration, now time.Time) (*Booking, error) {
	if d.Requester.UserID == uuid.Nil {
		return nil, ErrMissingRequester
	}
	if d.SpecialistID == nil || *d.SpecialistID == uuid.Nil {
		return nil, ErrMissingSpecialist
	}
	if !d.Pillar.IsValid() {
		return nil, ErrInvalidPillar
	}
	if d.Date == nil || d.StartTime == nil {
		return nil, ErrInvalidTimeSlot
	}
	if !d.Modality.IsValid() {
		return nil, ErrInvalidModality
	}
	if !d.QuotaSource.IsValid() {
		return nil, ErrInvalidQuotaSource
	}
	end, err := endOf(*d.StartTime, sessionLength)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:                  uuid.New(),
		requesterID:         d.Requester.UserID,
		companyID:           d.Requester.CompanyID,
		specialistID:        *d.SpecialistID,
		pillar:              d.Pillar,
		topics:              NormalizeTopics(d.Topics),
		notes:               strings.TrimSpace(d.Notes),
		modality:            d.Modality,
		date:                *d.Date,
		start:               *d.StartTime,
		end:                 end,
		status:              StatusScheduled,
		quotaSource:         d.QuotaSource,
		assessmentSessionID: d.AssessmentSessionID,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

type ReconstructParams struct {
	ID                  uuid.UUID
	RequesterID         uuid.UUID
	CompanyID           *uuid.UUID
	SpecialistID        uuid.UUID
	Pillar              Pillar
	Topics              []string
	Notes               string
	Modality            Modality
	Date                Date
	Start               ClockTime
	End                 ClockTime
	Status              Status
	QuotaSource         QuotaSource
	AssessmentSessionID *uuid.UUID
	RescheduledFrom     *Date
	RescheduledAt       *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func ReconstructBooking(p ReconstructParams) *Booking {
	return &Booking{
		id:                  p.ID,
		requesterID:         p.RequesterID,
		companyID:           p.CompanyID,
		specialistID:        p.SpecialistID,
		pillar:              p.Pillar,
		topics:              slices.Clone(p.Topics),
		notes:               p.Notes,
		modality:            p.Modality,
		date:                p.Date,
		start:               p.Start,
		end:                 p.End,
		status:              p.Status,
		quotaSource:         p.QuotaSource,
		assessmentSessionID: p.AssessmentSessionID,
		rescheduledFrom:     p.RescheduledFrom,
		rescheduledAt:       p.RescheduledAt,
		createdAt:           p.CreatedAt,
		updatedAt:           p.UpdatedAt,
	}
}

// Reschedule moves the booking in place and leaves it awaiting the
// specialist's confirmation. Identity, requester and quota source are kept.
func (b *Booking) Reschedule(specialistID uuid.UUID, date Date, start ClockTime, sessionLength time.Duration, now time.Time) error {
	if b.status == StatusCancelled || b.status == StatusCompleted {
		return ErrNotReschedulable
	}
	if specialistID == uuid.Nil {
		return ErrMissingSpecialist
	}
	end, err := endOf(start, sessionLength)
	if err != nil {
		return err
	}

	prior := b.date
	b.rescheduledFrom = &prior
	b.rescheduledAt = &now
	b.specialistID = specialistID
	b.date = date
	b.start = start
	b.end = end
	b.status = StatusPendingConfirmation
	b.updatedAt = now
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status.HoldsSlot()
}

func (b *Booking) Slot() Slot {
	return Slot{SpecialistID: b.specialistID, Date: b.date, Start: b.start}
}

func (b *Booking) ID() uuid.UUID                   { return b.id }
func (b *Booking) RequesterID() uuid.UUID          { return b.requesterID }
func (b *Booking) CompanyID() *uuid.UUID           { return b.companyID }
func (b *Booking) SpecialistID() uuid.UUID         { return b.specialistID }
func (b *Booking) Pillar() Pillar                  { return b.pillar }
func (b *Booking) Topics() []string                { return slices.Clone(b.topics) }
func (b *Booking) Notes() string                   { return b.notes }
func (b *Booking) Modality() Modality              { return b.modality }
func (b *Booking) Date() Date                      { return b.date }
func (b *Booking) Start() ClockTime                { return b.start }
func (b *Booking) End() ClockTime                  { return b.end }
func (b *Booking) Status() Status                  { return b.status }
func (b *Booking) QuotaSource() QuotaSource        { return b.quotaSource }
func (b *Booking) AssessmentSessionID() *uuid.UUID { return b.assessmentSessionID }
func (b *Booking) RescheduledFrom() *Date          { return b.rescheduledFrom }
func (b *Booking) RescheduledAt() *time.Time       { return b.rescheduledAt }
func (b *Booking) CreatedAt() time.Time            { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time            { return b.updatedAt }

func endOf(start ClockTime, sessionLength time.Duration) (ClockTime, error) {
	if sessionLength <= 0 {
		return 0, ErrInvalidSessionLength
	}
	return start.Add(sessionLength)
}

// NormalizeTopics trims, drops blanks and duplicates, and sorts so topic
// sets compare equal regardless of input order.
func NormalizeTopics(topics []string) []string {
	out := make([]string, 0, len(topics))
	seen := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}
