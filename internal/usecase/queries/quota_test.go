//go:build unit

package queries_test

import (
	"context"
	"testing"

	"care-booking/internal/domain/quota"
	"care-booking/internal/pkg/config"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase/commands"
	"care-booking/internal/usecase/queries"
	"care-booking/tests/common/builder"
	commandsmock "care-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQuotaQueries_Get(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewTestConfig()

	t.Run("success: low flags use the configured threshold", func(t *testing.T) {
		ledger := commandsmock.NewMockQuotaLedger(gomock.NewController(t))
		member := builder.Member(uuid.New())
		ledger.EXPECT().Remaining(ctx, member.ID()).Return(quota.Balance{Company: 7, Personal: 2}, nil)

		actual, err := queries.NewQuotaQueries(ledger, cfg).Get(ctx, member)
		require.NoError(t, err)
		assert.Equal(t, &queries.QuotaView{
			RequesterID:       member.ID(),
			CompanyRemaining:  7,
			PersonalRemaining: 2,
			CompanyLow:        false,
			PersonalLow:       true,
			LowThreshold:      2,
		}, actual)
	})

	t.Run("error: no account", func(t *testing.T) {
		ledger := commandsmock.NewMockQuotaLedger(gomock.NewController(t))
		member := builder.Member(uuid.New())
		ledger.EXPECT().Remaining(ctx, member.ID()).Return(quota.Balance{}, errs.Mark(nil, commands.ErrNoQuotaAccount))

		_, err := queries.NewQuotaQueries(ledger, cfg).Get(ctx, member)
		assert.True(t, errs.Is(err, commands.ErrNoQuotaAccount))
	})
}
