package commands

//go:generate mockgen -source=quota.go -destination=../../../tests/mock/commands/quota_mock.go -package=commands

import (
	"context"

	"care-booking/internal/domain/booking"
	"care-booking/internal/domain/quota"
	"care-booking/internal/infra"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// QuotaLedger reads session balances. It never writes: consumption is
// recorded outside this service.
type QuotaLedger interface {
	Remaining(ctx context.Context, requesterID uuid.UUID) (quota.Balance, error)
	AssertSufficient(ctx context.Context, requesterID uuid.UUID, source booking.QuotaSource) error
}

type quotaLedger struct {
	reads func() shared.CommandReads
}

func NewQuotaLedger(uow shared.UnitOfWork) QuotaLedger {
	return &quotaLedger{reads: uow.CommandReads}
}

// ledgerOn reads balances through an open transaction.
func ledgerOn(reads shared.CommandReads) QuotaLedger {
	return &quotaLedger{reads: func() shared.CommandReads { return reads }}
}

func (l *quotaLedger) Remaining(ctx context.Context, requesterID uuid.UUID) (quota.Balance, error) {
	account, err := loadAccount(ctx, l.reads(), requesterID)
	if err != nil {
		return quota.Balance{}, err
	}
	return account.Balance(), nil
}

func (l *quotaLedger) AssertSufficient(ctx context.Context, requesterID uuid.UUID, source booking.QuotaSource) error {
	account, err := loadAccount(ctx, l.reads(), requesterID)
	if err != nil {
		return err
	}
	return assertSufficient(account, source)
}

func loadAccount(ctx context.Context, reads shared.CommandReads, requesterID uuid.UUID) (*quota.Account, error) {
	account, err := reads.QuotaAccount(ctx, requesterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNoQuotaAccount)
		}
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}
	return account, nil
}

func assertSufficient(account *quota.Account, source booking.QuotaSource) error {
	if err := account.AssertSufficient(source); err != nil {
		return &QuotaExhaustedError{Source: source, Remaining: account.Balance().Of(source)}
	}
	return nil
}
