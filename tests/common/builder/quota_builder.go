//go:build unit || e2e

package builder

import (
	"care-booking/internal/domain/quota"
	"care-booking/internal/infra/db"

	"github.com/google/uuid"
)

type QuotaBuilder struct {
	RequesterID       uuid.UUID
	CompanyAllocated  int
	CompanyUsed       int
	PersonalAllocated int
	PersonalUsed      int
}

func NewQuotaBuilder() *QuotaBuilder {
	return &QuotaBuilder{
		RequesterID:      uuid.New(),
		CompanyAllocated: 10,
		CompanyUsed:      3,
	}
}

func (q *QuotaBuilder) BuildDomain() *quota.Account {
	a, err := quota.NewAccount(q.RequesterID, q.CompanyAllocated, q.CompanyUsed, q.PersonalAllocated, q.PersonalUsed)
	if err != nil {
		panic(err)
	}
	return a
}

func (q *QuotaBuilder) BuildRow() db.QuotaAccountRow {
	return db.QuotaAccountRow{
		RequesterID:       q.RequesterID,
		CompanyAllocated:  int32(q.CompanyAllocated),
		CompanyUsed:       int32(q.CompanyUsed),
		PersonalAllocated: int32(q.PersonalAllocated),
		PersonalUsed:      int32(q.PersonalUsed),
	}
}

func (q *QuotaBuilder) WithRequesterID(id uuid.UUID) *QuotaBuilder {
	q.RequesterID = id
	return q
}

func (q *QuotaBuilder) WithCompany(allocated, used int) *QuotaBuilder {
	q.CompanyAllocated, q.CompanyUsed = allocated, used
	return q
}

func (q *QuotaBuilder) WithPersonal(allocated, used int) *QuotaBuilder {
	q.PersonalAllocated, q.PersonalUsed = allocated, used
	return q
}
