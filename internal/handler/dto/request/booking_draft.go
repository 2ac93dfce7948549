package request

import (
	"care-booking/internal/domain/booking"
	"care-booking/internal/usecase/flow"

	"github.com/google/uuid"
)

type SelectPillarRequest struct {
	Pillar string `json:"pillar" binding:"required,pillar"`
}

// UpdateDetailsRequest patches a draft; absent fields keep their value and
// an empty topics list clears the topics.
type UpdateDetailsRequest struct {
	Topics      []string `json:"topics" binding:"omitempty,max=20,dive,min=1,max=64"`
	Notes       *string  `json:"notes" binding:"omitempty,max=2000"`
	Modality    *string  `json:"modality" binding:"omitempty,oneof=virtual phone"`
	QuotaSource *string  `json:"quota_source" binding:"omitempty,oneof=company personal"`
}

func (r *UpdateDetailsRequest) ToDetails() flow.Details {
	var d flow.Details
	if r.Topics != nil {
		topics := r.Topics
		d.Topics = &topics
	}
	d.Notes = r.Notes
	if r.Modality != nil {
		m := booking.Modality(*r.Modality)
		d.Modality = &m
	}
	if r.QuotaSource != nil {
		q := booking.QuotaSource(*r.QuotaSource)
		d.QuotaSource = &q
	}
	return d
}

type CompleteAssessmentRequest struct {
	SessionID uuid.UUID `json:"session_id" binding:"required"`
	Topics    []string  `json:"topics" binding:"omitempty,max=20,dive,min=1,max=64"`
	Notes     string    `json:"notes" binding:"max=2000"`
}

func (r *CompleteAssessmentRequest) ToResult() flow.AssessmentResult {
	return flow.AssessmentResult{
		SessionID: r.SessionID,
		Topics:    r.Topics,
		Notes:     r.Notes,
	}
}

type SelectDateTimeRequest struct {
	Date      string `json:"date" binding:"required,isodate"`
	StartTime string `json:"start_time" binding:"required,hhmm"`
}

// Parse is safe once binding succeeded.
func (r *SelectDateTimeRequest) Parse() (booking.Date, booking.ClockTime, error) {
	date, err := booking.ParseDate(r.Date)
	if err != nil {
		return booking.Date{}, 0, err
	}
	start, err := booking.ParseClockTime(r.StartTime)
	if err != nil {
		return booking.Date{}, 0, err
	}
	return date, start, nil
}
