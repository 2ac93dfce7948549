package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type Step string

const (
	StepPillarSelection    Step = "pillar_selection"
	StepAssessmentOrChoice Step = "assessment_or_choice"
	StepAssessment         Step = "assessment"
	StepProviderAssignment Step = "provider_assignment"
	StepDateTimeSelection  Step = "datetime_selection"
	StepConfirmation       Step = "confirmation"
	StepCommitted          Step = "committed"
	StepAbandoned          Step = "abandoned"
)

func (s Step) String() string {
	return string(s)
}

func (s Step) IsTerminal() bool {
	return s == StepCommitted || s == StepAbandoned
}

type Requester struct {
	UserID    uuid.UUID  `json:"user_id"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
}

// Draft is the in-progress booking carried between flow steps. It is a
// plain value so it can be stored between requests.
type Draft struct {
	ID                  uuid.UUID      `json:"id"`
	Step                Step           `json:"step"`
	Requester           Requester      `json:"requester"`
	Pillar              Pillar         `json:"pillar,omitempty"`
	Topics              []string       `json:"topics,omitempty"`
	Notes               string         `json:"notes,omitempty"`
	Path                ResolutionPath `json:"path,omitempty"`
	SpecialistID        *uuid.UUID     `json:"specialist_id,omitempty"`
	AssessmentSessionID *uuid.UUID     `json:"assessment_session_id,omitempty"`
	Date                *Date          `json:"date,omitempty"`
	StartTime           *ClockTime     `json:"start_time,omitempty"`
	DurationMinutes     int            `json:"duration_minutes"`
	Modality            Modality       `json:"modality"`
	QuotaSource         QuotaSource    `json:"quota_source"`
	RescheduleOf        *uuid.UUID     `json:"reschedule_of,omitempty"`
	Revision            int            `json:"revision"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

func NewDraft(requester Requester, sessionLength time.Duration, now time.Time) *Draft {
	return &Draft{
		ID:              uuid.New(),
		Step:            StepPillarSelection,
		Requester:       requester,
		DurationMinutes: int(sessionLength / time.Minute),
		Modality:        ModalityVirtual,
		QuotaSource:     QuotaCompany,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// NewRescheduleDraft copies what a reschedule keeps from an existing
// booking and leaves date and time open.
func NewRescheduleDraft(existing *Booking, sessionLength time.Duration, now time.Time) *Draft {
	specialistID := existing.SpecialistID()
	bookingID := existing.ID()
	return &Draft{
		ID:   uuid.New(),
		Step: StepDateTimeSelection,
		Requester: Requester{
			UserID:    existing.RequesterID(),
			CompanyID: existing.CompanyID(),
		},
		Pillar:              existing.Pillar(),
		Topics:              existing.Topics(),
		Notes:               existing.Notes(),
		Path:                PathHuman,
		SpecialistID:        &specialistID,
		AssessmentSessionID: existing.AssessmentSessionID(),
		DurationMinutes:     int(sessionLength / time.Minute),
		Modality:            existing.Modality(),
		QuotaSource:         existing.QuotaSource(),
		RescheduleOf:        &bookingID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func (d *Draft) IsReschedule() bool {
	return d.RescheduleOf != nil
}

func (d *Draft) Slot() (Slot, bool) {
	if d.SpecialistID == nil || d.Date == nil || d.StartTime == nil {
		return Slot{}, false
	}
	return Slot{SpecialistID: *d.SpecialistID, Date: *d.Date, Start: *d.StartTime}, true
}

// MissingFields lists what must be present before the draft can be committed.
func (d *Draft) MissingFields() []string {
	var missing []string
	if d.Requester.UserID == uuid.Nil {
		missing = append(missing, "requester")
	}
	if !d.Pillar.IsValid() {
		missing = append(missing, "pillar")
	}
	if d.SpecialistID == nil {
		missing = append(missing, "specialist_id")
	}
	if d.Date == nil {
		missing = append(missing, "date")
	}
	if d.StartTime == nil {
		missing = append(missing, "start_time")
	}
	return missing
}

func (d *Draft) ClearDateTime() {
	d.Date = nil
	d.StartTime = nil
}

func (d *Draft) Clone() *Draft {
	out := &Draft{}
	if err := copier.CopyWithOption(out, d, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds, which cannot happen for Draft to Draft
		panic(err)
	}
	// time.Time is immutable and has no exported fields to deep copy.
	out.CreatedAt, out.UpdatedAt = d.CreatedAt, d.UpdatedAt
	return out
}
