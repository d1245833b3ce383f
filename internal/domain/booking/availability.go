package booking

import "time"

// Sentinela usada quando o cliente não escolhe um barbeiro específico.
const AnyBarber = "any"

// BlockedSlot é um bloqueio de agenda já carregado do banco. Time vazio (ou
// FullDay) bloqueia o dia inteiro; BarberID vazio bloqueia todos os barbeiros.
type BlockedSlot struct {
	Date     string
	Time     string
	BarberID string
	FullDay  bool
}

// BookedSlot representa um agendamento não cancelado, reduzido aos campos
// necessários para o cálculo (sem dados pessoais).
type BookedSlot struct {
	Date     string
	Time     string
	BarberID string
}

// Availability decide se um horário pode ser oferecido, a partir de listas
// já carregadas em memória. Não consulta nada externamente.
type Availability struct {
	Now           time.Time
	Blocked       []BlockedSlot
	Booked        []BookedSlot
	ActiveBarbers int
}

// IsSlotAvailable aplica as regras na ordem: passado, bloqueios, ocupação.
//
// Para um barbeiro específico basta um agendamento dele no mesmo horário.
// Para "qualquer barbeiro" o horário só fecha quando TODOS os barbeiros
// ativos estão ocupados: conta-se quantos agendamentos existem no slot e
// compara-se com o total de barbeiros. Checar só a presença do slot
// esvaziaria a agenda com um único barbeiro ocupado.
//
// Data ou hora malformada conta como indisponível.
func (a Availability) IsSlotAvailable(date, slot, barberID string) bool {
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+slot, a.Now.Location())
	if err != nil {
		return false
	}
	if start.Before(a.Now) {
		return false
	}

	for _, b := range a.Blocked {
		if b.Date != date {
			continue
		}
		timeMatches := b.FullDay || b.Time == "" || b.Time == slot
		barberMatches := b.BarberID == "" || b.BarberID == barberID || barberID == AnyBarber
		if timeMatches && barberMatches {
			return false
		}
	}

	if barberID == AnyBarber {
		taken := 0
		for _, b := range a.Booked {
			if b.Date == date && b.Time == slot {
				taken++
			}
		}
		return taken < a.ActiveBarbers
	}

	for _, b := range a.Booked {
		if b.Date == date && b.Time == slot && b.BarberID == barberID {
			return false
		}
	}

	return true
}
