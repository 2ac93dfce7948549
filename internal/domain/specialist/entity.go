package specialist

import (
	"errors"
	"slices"
	"strings"

	"care-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrEmptyDisplayName = errors.New("display name cannot be empty")
	ErrNoSpecialties    = errors.New("at least one specialty is required")
)

// Profile is the read-only view of a care specialist that booking needs.
type Profile struct {
	id          uuid.UUID
	displayName string
	specialties []string
	slotTimes   []booking.ClockTime
	active      bool
}

// NewProfile takes specialty tags; a tag equal to a pillar name means the
// specialist serves that pillar. An empty slotTimes means the default catalog applies.
func NewProfile(id uuid.UUID, displayName string, specialties []string, slotTimes []booking.ClockTime, active bool) (*Profile, error) {
	name := strings.TrimSpace(displayName)
	if name == "" {
		return nil, ErrEmptyDisplayName
	}
	tags := booking.NormalizeTopics(specialties)
	if len(tags) == 0 {
		return nil, ErrNoSpecialties
	}
	times := slices.Clone(slotTimes)
	slices.Sort(times)
	return &Profile{
		id:          id,
		displayName: name,
		specialties: tags,
		slotTimes:   slices.Compact(times),
		active:      active,
	}, nil
}

func (p *Profile) ID() uuid.UUID                  { return p.id }
func (p *Profile) DisplayName() string            { return p.displayName }
func (p *Profile) Specialties() []string          { return slices.Clone(p.specialties) }
func (p *Profile) SlotTimes() []booking.ClockTime { return slices.Clone(p.slotTimes) }
func (p *Profile) IsActive() bool                 { return p.active }

func (p *Profile) Serves(pillar booking.Pillar) bool {
	_, found := slices.BinarySearch(p.specialties, string(pillar))
	return found
}

// Publishes reports whether t is one of the specialist's bookable start times.
func (p *Profile) Publishes(t booking.ClockTime, defaults []booking.ClockTime) bool {
	if len(p.slotTimes) == 0 {
		return slices.Contains(defaults, t)
	}
	_, found := slices.BinarySearch(p.slotTimes, t)
	return found
}

// Less orders profiles for deterministic assignment: display name, then id.
func Less(a, b *Profile) int {
	if c := strings.Compare(a.displayName, b.displayName); c != 0 {
		return c
	}
	return strings.Compare(a.id.String(), b.id.String())
}
