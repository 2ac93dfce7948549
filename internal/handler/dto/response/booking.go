package response

import (
	"time"

	"care-booking/internal/domain/booking"
	"care-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                  uuid.UUID  `json:"id"`
	RequesterID         uuid.UUID  `json:"requester_id"`
	SpecialistID        uuid.UUID  `json:"specialist_id"`
	SpecialistName      string     `json:"specialist_name,omitempty"`
	Pillar              string     `json:"pillar"`
	Topics              []string   `json:"topics"`
	Notes               string     `json:"notes,omitempty"`
	Modality            string     `json:"modality"`
	Date                string     `json:"date"`
	StartTime           string     `json:"start_time"`
	EndTime             string     `json:"end_time"`
	Status              string     `json:"status"`
	QuotaSource         string     `json:"quota_source"`
	AssessmentSessionID *uuid.UUID `json:"assessment_session_id,omitempty"`
	RescheduledFrom     *string    `json:"rescheduled_from,omitempty"`
	RescheduledAt       *time.Time `json:"rescheduled_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor *string            `json:"next_cursor,omitempty"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	res := &BookingResponse{
		ID:                  b.ID(),
		RequesterID:         b.RequesterID(),
		SpecialistID:        b.SpecialistID(),
		Pillar:              b.Pillar().String(),
		Topics:              b.Topics(),
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
	if res.Topics == nil {
		res.Topics = []string{}
	}
	if from := b.RescheduledFrom(); from != nil {
		s := from.String()
		res.RescheduledFrom = &s
	}
	return res
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{
		ID:                  v.ID,
		RequesterID:         v.RequesterID,
		SpecialistID:        v.SpecialistID,
		SpecialistName:      v.SpecialistName,
		Pillar:              v.Pillar,
		Topics:              v.Topics,
		Notes:               v.Notes,
		Modality:            v.Modality,
		Date:                v.Date,
		StartTime:           v.StartTime,
		EndTime:             v.EndTime,
		Status:              v.Status,
		QuotaSource:         v.QuotaSource,
		AssessmentSessionID: v.AssessmentSessionID,
		RescheduledFrom:     v.RescheduledFrom,
		RescheduledAt:       v.RescheduledAt,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
	if res.Topics == nil {
		res.Topics = []string{}
	}
	return res
}

func FromBookingViews(views []*queries.BookingView, next *queries.Cursor) *BookingListResponse {
	items := make([]*BookingResponse, len(views))
	for i, v := range views {
		items[i] = FromBookingView(v)
	}
	res := &BookingListResponse{Items: items}
	if next != nil && next.After != "" {
		after := next.After
		res.NextCursor = &after
	}
	return res
}
