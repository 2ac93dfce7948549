package readstore

import (
	"context"

	"care-booking/internal/domain/quota"
	"care-booking/internal/infra"
	"care-booking/internal/infra/converter"
	"care-booking/internal/infra/db"
	"care-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type QuotaReadQueries interface {
	GetQuotaAccount(ctx context.Context, dbtx db.DBTX, requesterID uuid.UUID) (db.QuotaAccountRow, error)
}

type QuotaReadStore struct {
	queries QuotaReadQueries
	db      db.DBTX
}

func NewQuotaReadStore(queries QuotaReadQueries, dbtx db.DBTX) *QuotaReadStore {
	return &QuotaReadStore{
		queries: queries,
		db:      dbtx,
	}
}

func (r *QuotaReadStore) FindByRequester(ctx context.Context, requesterID uuid.UUID) (*quota.Account, error) {
	row, err := r.queries.GetQuotaAccount(ctx, r.db, requesterID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quota account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quota account", err)
	}
	account, err := converter.QuotaAccountFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid quota account row", err, infra.KindDBFailure)
	}
	return account, nil
}
