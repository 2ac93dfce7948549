package memstore

import (
	"care-booking/internal/domain/booking"
	"care-booking/internal/domain/specialist"
	"care-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type demoSpecialist struct {
	id          string
	name        string
	specialties []string
}

// one specialist per pillar so a memory-backed instance can book end to end
var demoSpecialists = []demoSpecialist{
	{"6f1c2a8e-0d51-4c53-9a57-3b1f0b6f6c01", "Ana Duarte", []string{string(booking.PillarMentalHealth)}},
	{"6f1c2a8e-0d51-4c53-9a57-3b1f0b6f6c02", "Bruno Costa", []string{string(booking.PillarPhysicalWellness)}},
	{"6f1c2a8e-0d51-4c53-9a57-3b1f0b6f6c03", "Carla Mendes", []string{string(booking.PillarFinancialAssistance)}},
	{"6f1c2a8e-0d51-4c53-9a57-3b1f0b6f6c04", "Diogo Lopes", []string{string(booking.PillarLegalAssistance)}},
}

func (s *Store) SeedDemo() error {
	for _, d := range demoSpecialists {
		p, err := specialist.NewProfile(uuid.MustParse(d.id), d.name, d.specialties, nil, true)
		if err != nil {
			return errs.Wrapf(err, "demo specialist %s", d.name)
		}
		s.PutSpecialist(p)
	}
	return nil
}
