package flow

import (
	"care-booking/internal/domain/booking"
	"care-booking/internal/pkg/clock"
	"care-booking/internal/pkg/config"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase/commands"
)

// Factory builds machines that share the same collaborators.
type Factory struct {
	env *environment
}

func NewFactory(
	assigner commands.SpecialistAssigner,
	checker commands.SlotAvailabilityChecker,
	committer commands.BookingCommitter,
	catalog SlotCatalog,
	clk clock.Clock,
	cfg config.Config,
) *Factory {
	return &Factory{env: &environment{
		assigner:      assigner,
		checker:       checker,
		committer:     committer,
		catalog:       catalog,
		clock:         clk,
		location:      cfg.Booking.Location(),
		sessionLength: cfg.Booking.SessionDuration,
	}}
}

func (f *Factory) New(requester booking.Requester) *Machine {
	draft := booking.NewDraft(requester, f.env.sessionLength, f.env.clock.Now())
	return &Machine{draft: draft, env: f.env}
}

// Resume continues a stored draft. The machine works on its own copy.
func (f *Factory) Resume(draft *booking.Draft) *Machine {
	return &Machine{draft: draft.Clone(), env: f.env}
}

// Reschedule starts at date selection with the booking's specialist, pillar
// and details already in place.
func (f *Factory) Reschedule(existing *booking.Booking) (*Machine, error) {
	if existing.Status() == booking.StatusCancelled || existing.Status() == booking.StatusCompleted {
		return nil, errs.Wrapf(commands.ErrNotReschedulable, "booking is %s", existing.Status())
	}
	draft := booking.NewRescheduleDraft(existing, f.env.sessionLength, f.env.clock.Now())
	return &Machine{draft: draft, env: f.env}, nil
}
