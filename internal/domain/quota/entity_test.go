//go:build unit

package quota_test

import (
	"testing"

	"care-booking/internal/domain/booking"
	"care-booking/internal/domain/quota"
	"care-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	_, err := quota.NewAccount(uuid.New(), 5, -1, 0, 0)
	require.ErrorIs(t, err, quota.ErrNegativeAllocation)

	a, err := quota.NewAccount(uuid.New(), 5, 7, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, a.CompanyUsed())
}

func TestBalance(t *testing.T) {
	cases := []struct {
		name     string
		account  *quota.Account
		expected quota.Balance
	}{
		{
			name:     "company only",
			account:  builder.NewQuotaBuilder().WithCompany(10, 3).BuildDomain(),
			expected: quota.Balance{Company: 7, Personal: 0},
		},
		{
			name:     "both sources",
			account:  builder.NewQuotaBuilder().WithCompany(4, 4).WithPersonal(2, 0).BuildDomain(),
			expected: quota.Balance{Company: 0, Personal: 2},
		},
		{
			name:     "overused clamps at zero",
			account:  builder.NewQuotaBuilder().WithCompany(2, 5).WithPersonal(1, 3).BuildDomain(),
			expected: quota.Balance{Company: 0, Personal: 0},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, c.account.Balance())
		})
	}
}

func TestAssertSufficient(t *testing.T) {
	t.Run("nothing left on the selected source", func(t *testing.T) {
		a := builder.NewQuotaBuilder().WithCompany(0, 0).WithPersonal(3, 0).BuildDomain()
		require.ErrorIs(t, a.AssertSufficient(booking.QuotaCompany), quota.ErrExhausted)
		require.NoError(t, a.AssertSufficient(booking.QuotaPersonal))
	})

	t.Run("overdrawn account", func(t *testing.T) {
		a := builder.NewQuotaBuilder().WithCompany(1, 4).BuildDomain()
		require.ErrorIs(t, a.AssertSufficient(booking.QuotaCompany), quota.ErrExhausted)
	})

	t.Run("one session left", func(t *testing.T) {
		a := builder.NewQuotaBuilder().WithCompany(5, 4).BuildDomain()
		require.NoError(t, a.AssertSufficient(booking.QuotaCompany))
	})
}

func TestBalanceIsLow(t *testing.T) {
	b := quota.Balance{Company: 3, Personal: 2}

	assert.False(t, b.IsLow(booking.QuotaCompany, quota.DefaultLowThreshold))
	assert.True(t, b.IsLow(booking.QuotaPersonal, quota.DefaultLowThreshold))
	assert.True(t, quota.Balance{}.IsLow(booking.QuotaCompany, 0))
}
