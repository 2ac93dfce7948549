package readstore

import (
	"context"
	"log/slog"

	"care-booking/internal/domain/specialist"
	"care-booking/internal/infra"
	"care-booking/internal/infra/converter"
	"care-booking/internal/infra/db"
	"care-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SpecialistReadQueries interface {
	ListActiveSpecialists(ctx context.Context, dbtx db.DBTX) ([]db.SpecialistRow, error)
	GetSpecialistByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (db.SpecialistRow, error)
}

type SpecialistReadStore struct {
	queries SpecialistReadQueries
	db      db.DBTX
}

func NewSpecialistReadStore(queries SpecialistReadQueries, dbtx db.DBTX) *SpecialistReadStore {
	return &SpecialistReadStore{
		queries: queries,
		db:      dbtx,
	}
}

func (r *SpecialistReadStore) ListActive(ctx context.Context) ([]*specialist.Profile, error) {
	rows, err := r.queries.ListActiveSpecialists(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active specialists", err)
	}
	profiles := make([]*specialist.Profile, 0, len(rows))
	for _, row := range rows {
		p, err := converter.SpecialistFromRow(row)
		if err != nil {
			// a malformed profile must not hide the rest of the pool
			slog.Warn("skipping invalid specialist profile", "specialist_id", row.ID, "error", err.Error())
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (r *SpecialistReadStore) FindByID(ctx context.Context, id uuid.UUID) (*specialist.Profile, error) {
	row, err := r.queries.GetSpecialistByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("specialist not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find specialist by ID", err)
	}
	p, err := converter.SpecialistFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid specialist profile", err, infra.KindDBFailure)
	}
	return p, nil
}
