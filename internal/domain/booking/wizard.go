package booking

import "github.com/goldblade/barbershop-api/internal/httperr"

// Passos do assistente de agendamento.
const (
	StepClientInfo = 1
	StepBarber     = 2
	StepServices   = 3
	StepSchedule   = 4
)

// WizardState é o estado imutável do assistente. Transições devolvem um
// novo valor; nada aqui é compartilhado ou mutável.
type WizardState struct {
	Step int

	Name  string
	Phone string

	BarberID   string // id, AnyBarber ou vazio
	ServiceIDs []string

	Date string
	Time string
}

func NewWizard() WizardState {
	return WizardState{Step: StepClientInfo}
}

// CanProceed valida o passo atual.
func (s WizardState) CanProceed() bool {
	switch s.Step {
	case StepClientInfo:
		return len([]rune(s.Name)) >= 2 && len(NormalizePhone(s.Phone)) >= 10
	case StepBarber:
		return s.BarberID != ""
	case StepServices:
		return len(s.ServiceIDs) > 0
	case StepSchedule:
		return s.Date != "" && s.Time != ""
	}
	return false
}

// Next avança um passo, se o atual estiver válido.
func (s WizardState) Next() (WizardState, error) {
	if !s.CanProceed() {
		return s, httperr.ErrBusiness("incomplete_step")
	}
	if s.Step >= StepSchedule {
		return s, httperr.ErrBusiness("already_at_last_step")
	}
	s.Step++
	return s, nil
}

func (s WizardState) Back() WizardState {
	if s.Step > StepClientInfo {
		s.Step--
	}
	return s
}

// ToggleService inclui ou remove um serviço da seleção.
func (s WizardState) ToggleService(serviceID string) WizardState {
	ids := make([]string, 0, len(s.ServiceIDs)+1)
	found := false
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			found = true
			continue
		}
		ids = append(ids, id)
	}
	if !found {
		ids = append(ids, serviceID)
	}
	s.ServiceIDs = ids
	return s
}

// Complete diz se o estado tem tudo que a submissão exige.
func (s WizardState) Complete() bool {
	return len([]rune(s.Name)) >= 2 &&
		len(NormalizePhone(s.Phone)) >= 10 &&
		s.BarberID != "" &&
		len(s.ServiceIDs) > 0 &&
		s.Date != "" && s.Time != ""
}

// Reset volta ao estado inicial para um novo agendamento.
func (s WizardState) Reset() WizardState {
	return NewWizard()
}
