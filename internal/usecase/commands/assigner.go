package commands

//go:generate mockgen -source=assigner.go -destination=../../../tests/mock/commands/assigner_mock.go -package=commands

import (
	"context"
	"log/slog"
	"slices"

	"care-booking/internal/domain/booking"
	"care-booking/internal/domain/specialist"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/pkg/metrics"
	"care-booking/internal/usecase/shared"
)

type SpecialistAssigner interface {
	Assign(ctx context.Context, pillar booking.Pillar) (*specialist.Profile, error)
}

type specialistAssigner struct {
	uow shared.UnitOfWork
}

func NewSpecialistAssigner(uow shared.UnitOfWork) SpecialistAssigner {
	return &specialistAssigner{uow: uow}
}

// Assign picks the first active specialist serving the pillar, ordered by
// display name then id, so the same pool always yields the same choice.
func (a *specialistAssigner) Assign(ctx context.Context, pillar booking.Pillar) (*specialist.Profile, error) {
	profiles, err := a.uow.CommandReads().ActiveSpecialists(ctx)
	if err != nil {
		metrics.AssignmentsTotal.WithLabelValues(pillar.String(), "error").Inc()
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}

	pool := make([]*specialist.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.IsActive() && p.Serves(pillar) {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		metrics.AssignmentsTotal.WithLabelValues(pillar.String(), "none").Inc()
		slog.WarnContext(ctx, "no specialist available", "pillar", pillar)
		return nil, &NoProviderAvailableError{Pillar: pillar}
	}

	slices.SortFunc(pool, specialist.Less)
	metrics.AssignmentsTotal.WithLabelValues(pillar.String(), "assigned").Inc()
	return pool[0], nil
}
