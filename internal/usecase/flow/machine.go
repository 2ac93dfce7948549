package flow

import (
	"context"
	"log/slog"
	"time"

	"care-booking/internal/domain/booking"
	"care-booking/internal/domain/specialist"
	"care-booking/internal/pkg/clock"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/pkg/metrics"
	"care-booking/internal/pkg/patch"
	"care-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// Details are the free-form parts of a draft. Nil fields are left as they are.
type Details struct {
	Topics      *[]string
	Notes       *string
	Modality    *booking.Modality
	QuotaSource *booking.QuotaSource
}

// AssessmentResult is what the guided assessment hands back on the assisted path.
type AssessmentResult struct {
	SessionID uuid.UUID
	Topics    []string
	Notes     string
}

// Machine drives one draft through the booking steps. A failed operation
// leaves the draft exactly as it was.
type Machine struct {
	draft     *booking.Draft
	env       *environment
	committed *booking.Booking
}

func (m *Machine) Draft() *booking.Draft {
	return m.draft.Clone()
}

func (m *Machine) Step() booking.Step {
	return m.draft.Step
}

// Booking is the committed booking, nil until Commit succeeds.
func (m *Machine) Booking() *booking.Booking {
	return m.committed
}

func (m *Machine) SelectPillar(pillar booking.Pillar) error {
	if err := m.expect(booking.StepPillarSelection); err != nil {
		return err
	}
	if !pillar.IsValid() {
		return errs.Wrapf(ErrInvalidSelection, "pillar %q", pillar)
	}
	if m.draft.Pillar != "" && m.draft.Pillar != pillar {
		return errs.Wrapf(ErrPillarLocked, "draft is locked to %s", m.draft.Pillar)
	}

	m.draft.Pillar = pillar
	m.transition(booking.StepAssessmentOrChoice)
	return nil
}

func (m *Machine) ChooseAssisted() error {
	if err := m.expect(booking.StepAssessmentOrChoice); err != nil {
		return err
	}
	m.draft.Path = booking.PathAssisted
	m.transition(booking.StepAssessment)
	return nil
}

func (m *Machine) CompleteAssessment(ctx context.Context, result AssessmentResult) error {
	if err := m.expect(booking.StepAssessment); err != nil {
		return err
	}
	if result.SessionID == uuid.Nil {
		return errs.Wrap(ErrInvalidSelection, "assessment session id is required")
	}
	profile, err := m.env.assigner.Assign(ctx, m.draft.Pillar)
	if err != nil {
		return err
	}

	sessionID := result.SessionID
	m.draft.AssessmentSessionID = &sessionID
	m.draft.Topics = booking.NormalizeTopics(append(m.draft.Topics, result.Topics...))
	if result.Notes != "" && m.draft.Notes == "" {
		m.draft.Notes = result.Notes
	}
	m.assign(profile)
	return nil
}

func (m *Machine) ChooseHuman(ctx context.Context) error {
	if err := m.expect(booking.StepAssessmentOrChoice); err != nil {
		return err
	}
	profile, err := m.env.assigner.Assign(ctx, m.draft.Pillar)
	if err != nil {
		return err
	}

	m.draft.Path = booking.PathHuman
	m.assign(profile)
	return nil
}

func (m *Machine) ConfirmProvider() error {
	if err := m.expect(booking.StepProviderAssignment); err != nil {
		return err
	}
	if m.draft.SpecialistID == nil {
		return errs.Wrap(ErrPrecondition, "no specialist assigned")
	}
	m.transition(booking.StepDateTimeSelection)
	return nil
}

func (m *Machine) SelectDateTime(ctx context.Context, date booking.Date, start booking.ClockTime) error {
	if err := m.expect(booking.StepDateTimeSelection); err != nil {
		return err
	}
	if m.draft.SpecialistID == nil {
		return errs.Wrap(ErrPrecondition, "no specialist assigned")
	}

	now := m.env.clock.Now().In(m.env.location)
	today := booking.DateOf(now)
	if date.Before(today) {
		return errs.Wrapf(ErrInvalidSelection, "date %s is in the past", date)
	}
	if date == today && !date.At(start, m.env.location).After(now) {
		return errs.Wrapf(ErrInvalidSelection, "%s %s has already started", date, start)
	}

	specialistID := *m.draft.SpecialistID
	published, err := m.env.catalog.Publishes(ctx, specialistID, start)
	if err != nil {
		return err
	}
	if !published {
		return errs.Wrapf(ErrInvalidSelection, "%s is not a published start time", start)
	}

	available, err := m.env.checker.IsAvailable(ctx, specialistID, date, start)
	if err != nil {
		return err
	}
	if !available {
		return &commands.SlotUnavailableError{Slot: booking.Slot{SpecialistID: specialistID, Date: date, Start: start}}
	}

	m.draft.Date = &date
	m.draft.StartTime = &start
	m.transition(booking.StepConfirmation)
	return nil
}

func (m *Machine) UpdateDetails(details Details) error {
	if m.draft.Step.IsTerminal() {
		return errs.Wrapf(ErrPrecondition, "draft is %s", m.draft.Step)
	}
	if m.draft.IsReschedule() {
		return errs.Wrap(ErrPrecondition, "details of a rescheduled booking cannot change")
	}
	modality := patch.Coalesce(details.Modality, m.draft.Modality)
	if !modality.IsValid() {
		return errs.Wrapf(ErrInvalidSelection, "modality %q", modality)
	}
	source := patch.Coalesce(details.QuotaSource, m.draft.QuotaSource)
	if !source.IsValid() {
		return errs.Wrapf(ErrInvalidSelection, "quota source %q", source)
	}

	m.draft.Topics = patch.Map(details.Topics, m.draft.Topics, booking.NormalizeTopics)
	m.draft.Notes = patch.Coalesce(details.Notes, m.draft.Notes)
	m.draft.Modality = modality
	m.draft.QuotaSource = source
	m.draft.UpdatedAt = m.env.clock.Now()
	return nil
}

func (m *Machine) Commit(ctx context.Context) error {
	if err := m.expect(booking.StepConfirmation); err != nil {
		return err
	}
	b, err := m.env.committer.Commit(ctx, m.draft.Clone())
	if err != nil {
		return err
	}

	m.committed = b
	m.transition(booking.StepCommitted)
	m.clear()
	return nil
}

// Back returns to the preceding step and drops what was chosen from that
// step onward. The pillar survives since it cannot change once chosen.
func (m *Machine) Back() error {
	d := m.draft
	switch d.Step {
	case booking.StepAssessmentOrChoice:
		m.transition(booking.StepPillarSelection)
	case booking.StepAssessment:
		d.Path = ""
		m.transition(booking.StepAssessmentOrChoice)
	case booking.StepProviderAssignment:
		d.SpecialistID = nil
		if d.Path == booking.PathAssisted {
			d.AssessmentSessionID = nil
			m.transition(booking.StepAssessment)
			return nil
		}
		d.Path = ""
		m.transition(booking.StepAssessmentOrChoice)
	case booking.StepDateTimeSelection:
		if d.IsReschedule() {
			return errs.Wrap(ErrPrecondition, "reschedule starts at date selection")
		}
		d.ClearDateTime()
		m.transition(booking.StepProviderAssignment)
	case booking.StepConfirmation:
		d.ClearDateTime()
		m.transition(booking.StepDateTimeSelection)
	default:
		return errs.Wrapf(ErrPrecondition, "cannot go back from %s", d.Step)
	}
	return nil
}

func (m *Machine) Abandon() error {
	if m.draft.Step.IsTerminal() {
		return errs.Wrapf(ErrPrecondition, "draft is %s", m.draft.Step)
	}
	m.transition(booking.StepAbandoned)
	m.clear()
	return nil
}

func (m *Machine) expect(step booking.Step) error {
	if m.draft.Step != step {
		return errs.Wrapf(ErrPrecondition, "expected %s, draft is %s", step, m.draft.Step)
	}
	return nil
}

func (m *Machine) assign(profile *specialist.Profile) {
	id := profile.ID()
	m.draft.SpecialistID = &id
	m.transition(booking.StepProviderAssignment)
}

// reassign swaps the specialist of a reschedule without leaving date selection.
func (m *Machine) reassign(profile *specialist.Profile) {
	id := profile.ID()
	m.draft.SpecialistID = &id
	m.draft.UpdatedAt = m.env.clock.Now()
}

func (m *Machine) transition(to booking.Step) {
	from := m.draft.Step
	m.draft.Step = to
	m.draft.UpdatedAt = m.env.clock.Now()
	metrics.FlowTransitionsTotal.WithLabelValues(from.String(), to.String()).Inc()
	slog.Debug("booking draft transition", "draft_id", m.draft.ID, "from", from, "to", to)
}

// clear keeps only identity and the terminal step.
func (m *Machine) clear() {
	m.draft = &booking.Draft{
		ID:        m.draft.ID,
		Step:      m.draft.Step,
		Requester: m.draft.Requester,
		CreatedAt: m.draft.CreatedAt,
		UpdatedAt: m.draft.UpdatedAt,
	}
}

type environment struct {
	assigner      commands.SpecialistAssigner
	checker       commands.SlotAvailabilityChecker
	committer     commands.BookingCommitter
	catalog       SlotCatalog
	clock         clock.Clock
	location      *time.Location
	sessionLength time.Duration
}
