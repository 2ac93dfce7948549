//go:build unit || e2e

package builder

import (
	"care-booking/internal/domain/booking"
	"care-booking/internal/domain/specialist"
	"care-booking/internal/infra/db"

	"github.com/google/uuid"
)

type SpecialistBuilder struct {
	ID          uuid.UUID
	DisplayName string
	Specialties []string
	SlotTimes   []string
	Active      bool
}

func NewSpecialistBuilder() *SpecialistBuilder {
	return &SpecialistBuilder{
		ID:          uuid.New(),
		DisplayName: "Ana Duarte",
		Specialties: []string{string(booking.PillarMentalHealth)},
		Active:      true,
	}
}

func (s *SpecialistBuilder) With(mutate func(*SpecialistBuilder)) *SpecialistBuilder {
	mutate(s)
	return s
}

func (s *SpecialistBuilder) BuildDomain() *specialist.Profile {
	times := make([]booking.ClockTime, 0, len(s.SlotTimes))
	for _, raw := range s.SlotTimes {
		times = append(times, booking.MustClockTime(raw))
	}
	p, err := specialist.NewProfile(s.ID, s.DisplayName, s.Specialties, times, s.Active)
	if err != nil {
		panic(err)
	}
	return p
}

func (s *SpecialistBuilder) BuildRow() db.SpecialistRow {
	slotTimes := s.SlotTimes
	if slotTimes == nil {
		slotTimes = []string{}
	}
	return db.SpecialistRow{
		ID:          s.ID,
		DisplayName: s.DisplayName,
		Specialties: s.Specialties,
		SlotTimes:   slotTimes,
		Active:      s.Active,
	}
}

func (s *SpecialistBuilder) WithID(id uuid.UUID) *SpecialistBuilder {
	s.ID = id
	return s
}

func (s *SpecialistBuilder) WithName(name string) *SpecialistBuilder {
	s.DisplayName = name
	return s
}

func (s *SpecialistBuilder) Serving(pillars ...booking.Pillar) *SpecialistBuilder {
	s.Specialties = s.Specialties[:0]
	for _, p := range pillars {
		s.Specialties = append(s.Specialties, string(p))
	}
	return s
}

func (s *SpecialistBuilder) WithSlotTimes(times ...string) *SpecialistBuilder {
	s.SlotTimes = times
	return s
}

func (s *SpecialistBuilder) AsInactive() *SpecialistBuilder {
	s.Active = false
	return s
}
