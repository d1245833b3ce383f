package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/goldblade/barbershop-api/internal/domain/booking"
	"github.com/goldblade/barbershop-api/internal/httperr"
)

func TestGetAvailability_FullGridOnFreeDay(t *testing.T) {
	repo, _, _ := newFakeRepo()
	uc := NewGetAvailabilityUseCase(repo)

	out, err := uc.Execute(context.Background(), GetAvailabilityInput{
		Date:     "2030-06-15",
		BarberID: domain.AnyBarber,
	})
	require.NoError(t, err)

	// 09:00 até 20:00, dois slots por hora
	assert.Len(t, out.Slots, 22)
	assert.Equal(t, "09:00", out.Slots[0])
	assert.Equal(t, "19:30", out.Slots[len(out.Slots)-1])
}

func TestGetAvailability_RemovesBookedSlot(t *testing.T) {
	repo, barber, _ := newFakeRepo()
	repo.booked = []domain.BookedSlot{
		{Date: "2030-06-15", Time: "14:00", BarberID: barber.ID.String()},
	}
	uc := NewGetAvailabilityUseCase(repo)

	out, err := uc.Execute(context.Background(), GetAvailabilityInput{
		Date:     "2030-06-15",
		BarberID: barber.ID.String(),
	})
	require.NoError(t, err)
	assert.NotContains(t, out.Slots, "14:00")
	assert.Contains(t, out.Slots, "14:30")
}

func TestGetAvailability_EmptyOnFullDayBlock(t *testing.T) {
	repo, _, _ := newFakeRepo()
	repo.blocked = []domain.BlockedSlot{
		{Date: "2030-06-15", FullDay: true},
	}
	uc := NewGetAvailabilityUseCase(repo)

	out, err := uc.Execute(context.Background(), GetAvailabilityInput{
		Date:     "2030-06-15",
		BarberID: domain.AnyBarber,
	})
	require.NoError(t, err)
	assert.Empty(t, out.Slots)
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	repo, _, _ := newFakeRepo()
	uc := NewGetAvailabilityUseCase(repo)

	_, err := uc.Execute(context.Background(), GetAvailabilityInput{Date: "15/06/2030"})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestGetAvailability_DefaultsToAnyBarber(t *testing.T) {
	repo, _, _ := newFakeRepo()
	repo.booked = []domain.BookedSlot{
		{Date: "2030-06-15", Time: "14:00", BarberID: ""},
	}
	uc := NewGetAvailabilityUseCase(repo)

	// Um barbeiro ativo e um agendamento sem barbeiro: slot fecha.
	out, err := uc.Execute(context.Background(), GetAvailabilityInput{Date: "2030-06-15"})
	require.NoError(t, err)
	assert.NotContains(t, out.Slots, "14:00")
}
