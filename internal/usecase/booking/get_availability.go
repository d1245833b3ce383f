package booking

import (
	"context"
	"time"

	domain "github.com/goldblade/barbershop-api/internal/domain/booking"
	"github.com/goldblade/barbershop-api/internal/httperr"
	"github.com/goldblade/barbershop-api/internal/timezone"
)

type GetAvailabilityInput struct {
	Date     string `json:"date"`      // 2006-01-02
	BarberID string `json:"barber_id"` // uuid ou "any"
}

type GetAvailabilityOutput struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// GetAvailabilityUseCase monta a grade de horários livres de um dia para o
// barbeiro pedido. A resposta é uma dica para a tela: a verdade final é
// reavaliada na criação do agendamento.
type GetAvailabilityUseCase struct {
	repo domain.Repository
}

func NewGetAvailabilityUseCase(repo domain.Repository) *GetAvailabilityUseCase {
	return &GetAvailabilityUseCase{repo: repo}
}

func (uc *GetAvailabilityUseCase) Execute(
	ctx context.Context,
	input GetAvailabilityInput,
) (*GetAvailabilityOutput, error) {

	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	barberID := input.BarberID
	if barberID == "" {
		barberID = domain.AnyBarber
	}

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	blocked, err := uc.repo.ListBlockedSlots(ctx, input.Date)
	if err != nil {
		return nil, err
	}
	booked, err := uc.repo.ListBookedSlots(ctx, input.Date)
	if err != nil {
		return nil, err
	}
	activeBarbers, err := uc.repo.CountActiveBarbers(ctx)
	if err != nil {
		return nil, err
	}

	availability := domain.Availability{
		Now:           timezone.Now(),
		Blocked:       blocked,
		Booked:        booked,
		ActiveBarbers: activeBarbers,
	}

	free := []string{}
	for _, slot := range domain.TimeSlots(settings.OpeningHour, settings.ClosingHour) {
		if availability.IsSlotAvailable(input.Date, slot, barberID) {
			free = append(free, slot)
		}
	}

	return &GetAvailabilityOutput{Date: input.Date, Slots: free}, nil
}
