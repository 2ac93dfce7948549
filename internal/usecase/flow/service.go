package flow

//go:generate mockgen -source=service.go -destination=../../../tests/mock/flow/service_mock.go -package=flow

import (
	"context"
	"log/slog"

	"care-booking/internal/domain/booking"
	"care-booking/internal/domain/user"
	"care-booking/internal/infra"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase/commands"
	"care-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Service exposes the booking flow over stored drafts, one call per step.
type Service interface {
	Start(ctx context.Context, principal user.Principal) (*booking.Draft, error)
	Get(ctx context.Context, principal user.Principal, draftID uuid.UUID) (*booking.Draft, error)
	Abandon(ctx context.Context, principal user.Principal, draftID uuid.UUID) error
	SelectPillar(ctx context.Context, principal user.Principal, draftID uuid.UUID, pillar booking.Pillar) (*booking.Draft, error)
	UpdateDetails(ctx context.Context, principal user.Principal, draftID uuid.UUID, details Details) (*booking.Draft, error)
	ChooseAssisted(ctx context.Context, principal user.Principal, draftID uuid.UUID) (*booking.Draft, error)
	CompleteAssessment(ctx context.Context, principal user.Principal, draftID uuid.UUID, result AssessmentResult) (*booking.Draft, error)
	ChooseHuman(ctx context.Context, principal user.Principal, draftID uuid.UUID) (*booking.Draft, error)
	ConfirmProvider(ctx context.Context, principal user.Principal, draftID uuid.UUID) (*booking.Draft, error)
	SelectDateTime(ctx context.Context, principal user.Principal, draftID uuid.UUID, date booking.Date, start booking.ClockTime) (*booking.Draft, error)
	Back(ctx context.Context, principal user.Principal, draftID uuid.UUID) (*booking.Draft, error)
	Commit(ctx context.Context, principal user.Principal, draftID uuid.UUID) (*booking.Booking, error)
	StartReschedule(ctx context.Context, principal user.Principal, bookingID uuid.UUID) (*booking.Draft, error)
}

type service struct {
	factory *Factory
	drafts  DraftStore
	uow     shared.UnitOfWork
}

func NewService(factory *Factory, drafts DraftStore, uow shared.UnitOfWork) Service {
	return &service{factory: factory, drafts: drafts, uow: uow}
}

func (s *service) Start(ctx context.Context, principal user.Principal) (*booking.Draft, error) {
	m := s.factory.New(booking.Requester{UserID: principal.ID(), CompanyID: principal.CompanyID()})
	if err := s.save(ctx, m); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "booking draft started", "draft_id", m.draft.ID, "requester_id", principal.ID())
	return m.Draft(), nil
}

func (s *service) Get(ctx context.Context, principal user.Principal, draftID uuid.UUID) (*booking.Draft, error) {
	m, err := s.load(ctx, principal, draftID)
	if err != nil {
		return nil, err
	}
	return m.Draft(), nil
}

func (s *service) Abandon(ctx context.Context, principal user.Principal, draftID uuid.UUID) error {
	m, err := s.load(ctx, principal, draftID)
	if err != nil {
		return err
	}
	if err := m.Abandon(); err != nil {
		return err
	}
	return s.discard(ctx, draftID)
}

func (s *service) SelectPillar(ctx context.Context, principal user.Principal, draftID uuid.UUID, pillar booking.Pillar) (*booking.Draft, error) {
	return s.apply(ctx, principal, draftID, func(m *Machine) error {
		return m.SelectPillar(pillar)
	})
}

func (s *service) UpdateDetails(ctx context.Context, principal user.Principal, draftID uuid.UUID, details Details) (*booking.Draft, error) {
	return s.apply(ctx, principal, draftID, func(m *Machine) error {
		return m.UpdateDetails(details)
	})
}

func (s *service) ChooseAssisted(ctx context.Context, principal user.Principal, draftID uuid.UUID) (*booking.Draft, error) {
	return s.apply(ctx, principal, draftID, func(m *Machine) error {
		return m.ChooseAssisted()
	})
}

func (s *service) CompleteAssessment(ctx context.Context, principal user.Principal, draftID uuid.UUID, result AssessmentResult) (*booking.Draft, error) {
	return s.apply(ctx, principal, draftID, func(m *Machine) error {
		return m.CompleteAssessment(ctx, result)
	})
}

func (s *service) ChooseHuman(ctx context.Context, principal user.Principal, draftID uuid.UUID) (*booking.Draft, error) {
	return s.apply(ctx, principal, draftID, func(m *Machine) error {
		return m.ChooseHuman(ctx)
	})
}

func (s *service) ConfirmProvider(ctx context.Context, principal user.Principal, draftID uuid.UUID) (*booking.Draft, error) {
	return s.apply(ctx, principal, draftID, func(m *Machine) error {
		return m.ConfirmProvider()
	})
}

func (s *service) SelectDateTime(ctx context.Context, principal user.Principal, draftID uuid.UUID, date booking.Date, start booking.ClockTime) (*booking.Draft, error) {
	return s.apply(ctx, principal, draftID, func(m *Machine) error {
		return m.SelectDateTime(ctx, date, start)
	})
}

func (s *service) Back(ctx context.Context, principal user.Principal, draftID uuid.UUID) (*booking.Draft, error) {
	return s.apply(ctx, principal, draftID, func(m *Machine) error {
		return m.Back()
	})
}

func (s *service) Commit(ctx context.Context, principal user.Principal, draftID uuid.UUID) (*booking.Booking, error) {
	m, err := s.load(ctx, principal, draftID)
	if err != nil {
		return nil, err
	}
	if err := m.Commit(ctx); err != nil {
		return nil, err
	}
	// the booking exists from here on; a stale draft only expires
	if err := s.discard(ctx, draftID); err != nil {
		slog.WarnContext(ctx, "failed to delete committed draft", "draft_id", draftID, "error", err)
	}
	slog.InfoContext(ctx, "booking committed",
		"booking_id", m.Booking().ID(),
		"draft_id", draftID,
		"status", m.Booking().Status())
	return m.Booking(), nil
}

func (s *service) StartReschedule(ctx context.Context, principal user.Principal, bookingID uuid.UUID) (*booking.Draft, error) {
	var (
		existing *booking.Booking
		reassign bool
	)
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		b, err := reads.BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, commands.ErrBookingNotFound)
			}
			return errs.Mark(err, commands.ErrPersistenceFailure)
		}
		if !principal.CanActFor(b.RequesterID()) {
			return errs.Wrapf(ErrForbidden, "booking %s", bookingID)
		}

		profile, err := reads.SpecialistByID(ctx, b.SpecialistID())
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			reassign = true
		case err != nil:
			return errs.Mark(err, commands.ErrPersistenceFailure)
		case !profile.IsActive():
			reassign = true
		}
		existing = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	m, err := s.factory.Reschedule(existing)
	if err != nil {
		return nil, err
	}
	// a specialist who stopped taking sessions hands the booking to the pool
	if reassign {
		profile, err := s.factory.env.assigner.Assign(ctx, existing.Pillar())
		if err != nil {
			return nil, err
		}
		m.reassign(profile)
		slog.InfoContext(ctx, "reschedule reassigned",
			"booking_id", bookingID,
			"from_specialist_id", existing.SpecialistID(),
			"to_specialist_id", profile.ID())
	}
	if err := s.save(ctx, m); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "reschedule draft started", "draft_id", m.draft.ID, "booking_id", bookingID)
	return m.Draft(), nil
}

// apply runs one step and persists the draft only when the step succeeded.
func (s *service) apply(ctx context.Context, principal user.Principal, draftID uuid.UUID, step func(m *Machine) error) (*booking.Draft, error) {
	m, err := s.load(ctx, principal, draftID)
	if err != nil {
		return nil, err
	}
	if err := step(m); err != nil {
		return nil, err
	}
	if err := s.save(ctx, m); err != nil {
		return nil, err
	}
	return m.Draft(), nil
}

func (s *service) load(ctx context.Context, principal user.Principal, draftID uuid.UUID) (*Machine, error) {
	draft, err := s.drafts.Load(ctx, draftID)
	if err != nil {
		if errs.Is(err, ErrDraftNotFound) {
			return nil, err
		}
		return nil, errs.Mark(err, commands.ErrPersistenceFailure)
	}
	if !principal.CanActFor(draft.Requester.UserID) {
		return nil, errs.Wrapf(ErrForbidden, "draft %s", draftID)
	}
	return s.factory.Resume(draft), nil
}

func (s *service) save(ctx context.Context, m *Machine) error {
	if err := s.drafts.Save(ctx, m.draft); err != nil {
		if errs.Is(err, ErrDraftConflict) || errs.Is(err, ErrDraftNotFound) {
			return err
		}
		return errs.Mark(errs.Wrap(err, "save draft"), commands.ErrPersistenceFailure)
	}
	return nil
}

func (s *service) discard(ctx context.Context, draftID uuid.UUID) error {
	if err := s.drafts.Delete(ctx, draftID); err != nil {
		return errs.Mark(errs.Wrap(err, "delete draft"), commands.ErrPersistenceFailure)
	}
	return nil
}
