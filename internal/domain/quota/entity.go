package quota

import (
	"errors"

	"care-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrNegativeAllocation = errors.New("quota allocation cannot be negative")
	ErrExhausted          = errors.New("session quota exhausted")
)

// DefaultLowThreshold is the remaining count at or below which callers warn.
const DefaultLowThreshold = 2

// Account holds a requester's session entitlements. used may exceed
// allocated; remaining is clamped at zero.
type Account struct {
	requesterID       uuid.UUID
	companyAllocated  int
	companyUsed       int
	personalAllocated int
	personalUsed      int
}

func NewAccount(requesterID uuid.UUID, companyAllocated, companyUsed, personalAllocated, personalUsed int) (*Account, error) {
	if companyAllocated < 0 || companyUsed < 0 || personalAllocated < 0 || personalUsed < 0 {
		return nil, ErrNegativeAllocation
	}
	return &Account{
		requesterID:       requesterID,
		companyAllocated:  companyAllocated,
		companyUsed:       companyUsed,
		personalAllocated: personalAllocated,
		personalUsed:      personalUsed,
	}, nil
}

func (a *Account) RequesterID() uuid.UUID { return a.requesterID }
func (a *Account) CompanyAllocated() int  { return a.companyAllocated }
func (a *Account) CompanyUsed() int       { return a.companyUsed }
func (a *Account) PersonalAllocated() int { return a.personalAllocated }
func (a *Account) PersonalUsed() int      { return a.personalUsed }

func (a *Account) Balance() Balance {
	return Balance{
		Company:  clamp(a.companyAllocated - a.companyUsed),
		Personal: clamp(a.personalAllocated - a.personalUsed),
	}
}

func (a *Account) AssertSufficient(source booking.QuotaSource) error {
	if a.Balance().Of(source) <= 0 {
		return ErrExhausted
	}
	return nil
}

type Balance struct {
	Company  int
	Personal int
}

func (b Balance) Of(source booking.QuotaSource) int {
	if source == booking.QuotaPersonal {
		return b.Personal
	}
	return b.Company
}

// IsLow is advisory and never blocks a booking.
func (b Balance) IsLow(source booking.QuotaSource, threshold int) bool {
	return b.Of(source) <= threshold
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
