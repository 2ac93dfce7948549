package booking

type Pillar string

const (
	PillarMentalHealth        Pillar = "mental-health"
	PillarPhysicalWellness    Pillar = "physical-wellness"
	PillarFinancialAssistance Pillar = "financial-assistance"
	PillarLegalAssistance     Pillar = "legal-assistance"
)

func Pillars() []Pillar {
	return []Pillar{PillarMentalHealth, PillarPhysicalWellness, PillarFinancialAssistance, PillarLegalAssistance}
}

func (p Pillar) String() string {
	return string(p)
}

func (p Pillar) IsValid() bool {
	switch p {
	case PillarMentalHealth, PillarPhysicalWellness, PillarFinancialAssistance, PillarLegalAssistance:
		return true
	default:
		return false
	}
}

func NewPillar(s string) (Pillar, error) {
	p := Pillar(s)
	if !p.IsValid() {
		return "", ErrInvalidPillar
	}
	return p, nil
}

type Status string

const (
	StatusScheduled           Status = "scheduled"
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusConfirmed           Status = "confirmed"
	StatusCompleted           Status = "completed"
	StatusCancelled           Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusPendingConfirmation, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// HoldsSlot reports whether the booking still occupies its slot.
func (s Status) HoldsSlot() bool {
	return s != StatusCancelled
}

type QuotaSource string

const (
	QuotaCompany  QuotaSource = "company"
	QuotaPersonal QuotaSource = "personal"
)

func (q QuotaSource) String() string {
	return string(q)
}

func (q QuotaSource) IsValid() bool {
	return q == QuotaCompany || q == QuotaPersonal
}

type Modality string

const (
	ModalityVirtual Modality = "virtual"
	ModalityPhone   Modality = "phone"
)

func (m Modality) IsValid() bool {
	return m == ModalityVirtual || m == ModalityPhone
}

type ResolutionPath string

const (
	PathHuman    ResolutionPath = "human"
	PathAssisted ResolutionPath = "assisted"
)

func (r ResolutionPath) IsValid() bool {
	return r == PathHuman || r == PathAssisted
}
