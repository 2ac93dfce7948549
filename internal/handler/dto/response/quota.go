package response

import (
	"care-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuotaResponse struct {
	RequesterID       uuid.UUID `json:"requester_id"`
	CompanyRemaining  int       `json:"company_remaining"`
	PersonalRemaining int       `json:"personal_remaining"`
	CompanyLow        bool      `json:"company_low"`
	PersonalLow       bool      `json:"personal_low"`
	LowThreshold      int       `json:"low_threshold"`
}

func FromQuotaView(v *queries.QuotaView) *QuotaResponse {
	return &QuotaResponse{
		RequesterID:       v.RequesterID,
		CompanyRemaining:  v.CompanyRemaining,
		PersonalRemaining: v.PersonalRemaining,
		CompanyLow:        v.CompanyLow,
		PersonalLow:       v.PersonalLow,
		LowThreshold:      v.LowThreshold,
	}
}
