package response

import (
	"time"

	"care-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type DraftResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Step                string     `json:"step"`
	RequesterID         uuid.UUID  `json:"requester_id"`
	Pillar              string     `json:"pillar,omitempty"`
	Topics              []string   `json:"topics"`
	Notes               string     `json:"notes,omitempty"`
	Path                string     `json:"path,omitempty"`
	SpecialistID        *uuid.UUID `json:"specialist_id,omitempty"`
	AssessmentSessionID *uuid.UUID `json:"assessment_session_id,omitempty"`
	Date                *string    `json:"date,omitempty"`
	StartTime           *string    `json:"start_time,omitempty"`
	DurationMinutes     int        `json:"duration_minutes"`
	Modality            string     `json:"modality,omitempty"`
	QuotaSource         string     `json:"quota_source,omitempty"`
	RescheduleOf        *uuid.UUID `json:"reschedule_of,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func FromDraft(d *booking.Draft) *DraftResponse {
	res := &DraftResponse{
		ID:                  d.ID,
		Step:                d.Step.String(),
		RequesterID:         d.Requester.UserID,
		Pillar:              string(d.Pillar),
		Topics:              d.Topics,
		Notes:               d.Notes,
		Path:                string(d.Path),
		SpecialistID:        d.SpecialistID,
		AssessmentSessionID: d.AssessmentSessionID,
		DurationMinutes:     d.DurationMinutes,
		Modality:            string(d.Modality),
		QuotaSource:         string(d.QuotaSource),
		RescheduleOf:        d.RescheduleOf,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
	if res.Topics == nil {
		res.Topics = []string{}
	}
	if d.Date != nil {
		s := d.Date.String()
		res.Date = &s
	}
	if d.StartTime != nil {
		s := d.StartTime.String()
		res.StartTime = &s
	}
	return res
}
