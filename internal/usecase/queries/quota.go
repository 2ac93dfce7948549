package queries

//go:generate mockgen -source=quota.go -destination=../../../tests/mock/queries/quota_mock.go -package=queries

import (
	"context"

	"care-booking/internal/domain/booking"
	"care-booking/internal/domain/user"
	"care-booking/internal/pkg/config"
	"care-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type QuotaView struct {
	RequesterID       uuid.UUID `json:"requester_id"`
	CompanyRemaining  int       `json:"company_remaining"`
	PersonalRemaining int       `json:"personal_remaining"`
	CompanyLow        bool      `json:"company_low"`
	PersonalLow       bool      `json:"personal_low"`
	LowThreshold      int       `json:"low_threshold"`
}

type QuotaQueries interface {
	Get(ctx context.Context, actor user.Principal) (*QuotaView, error)
}

type quotaQueriesImpl struct {
	ledger    commands.QuotaLedger
	threshold int
}

func NewQuotaQueries(ledger commands.QuotaLedger, cfg config.Config) QuotaQueries {
	return &quotaQueriesImpl{ledger: ledger, threshold: cfg.Booking.LowQuotaThreshold}
}

func (q *quotaQueriesImpl) Get(ctx context.Context, actor user.Principal) (*QuotaView, error) {
	balance, err := q.ledger.Remaining(ctx, actor.ID())
	if err != nil {
		return nil, err
	}
	return &QuotaView{
		RequesterID:       actor.ID(),
		CompanyRemaining:  balance.Company,
		PersonalRemaining: balance.Personal,
		CompanyLow:        balance.IsLow(booking.QuotaCompany, q.threshold),
		PersonalLow:       balance.IsLow(booking.QuotaPersonal, q.threshold),
		LowThreshold:      q.threshold,
	}, nil
}
