package booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/goldblade/barbershop-api/internal/domain/booking"
	"github.com/goldblade/barbershop-api/internal/events"
	"github.com/goldblade/barbershop-api/internal/httperr"
	"github.com/goldblade/barbershop-api/internal/models"
)

func pendingAppointment(repo *fakeRepo) *models.Appointment {
	repo.createdAppointment = &models.Appointment{
		ID:              uuid.New(),
		ClientName:      "João Silva",
		ClientPhone:     "61992030064",
		AppointmentDate: "2030-06-15",
		AppointmentTime: "14:00",
		Status:          string(domain.StatusPending),
		TotalPrice:      decimal.RequireFromString("50.00"),
	}
	return repo.createdAppointment
}

func TestChangeStatus_ConfirmPending(t *testing.T) {
	repo, _, _ := newFakeRepo()
	ap := pendingAppointment(repo)
	uc := NewChangeStatusUseCase(repo, nil, events.NopNotifier{})

	out, err := uc.Confirm(context.Background(), ap.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), out.Status)
}

func TestChangeStatus_ConfirmTwiceFails(t *testing.T) {
	repo, _, _ := newFakeRepo()
	ap := pendingAppointment(repo)
	uc := NewChangeStatusUseCase(repo, nil, events.NopNotifier{})

	_, err := uc.Confirm(context.Background(), ap.ID, nil)
	require.NoError(t, err)

	_, err = uc.Confirm(context.Background(), ap.ID, nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestChangeStatus_CompleteUpsertsClient(t *testing.T) {
	repo, _, _ := newFakeRepo()
	ap := pendingAppointment(repo)
	uc := NewChangeStatusUseCase(repo, nil, events.NopNotifier{})

	out, err := uc.Complete(context.Background(), ap.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), out.Status)

	client, ok := repo.clients["61992030064"]
	require.True(t, ok, "conclusão cria o cliente pelo telefone")
	assert.Equal(t, 1, client.TotalVisits)
	assert.True(t, client.TotalSpent.Equal(decimal.RequireFromString("50.00")))
	assert.NotNil(t, client.LastVisitAt)
}

func TestChangeStatus_CompleteFromConfirmed(t *testing.T) {
	repo, _, _ := newFakeRepo()
	ap := pendingAppointment(repo)
	ap.Status = string(domain.StatusConfirmed)
	uc := NewChangeStatusUseCase(repo, nil, events.NopNotifier{})

	_, err := uc.Complete(context.Background(), ap.ID, nil)
	assert.NoError(t, err)
}

func TestChangeStatus_CancelCompletedFails(t *testing.T) {
	repo, _, _ := newFakeRepo()
	ap := pendingAppointment(repo)
	ap.Status = string(domain.StatusCompleted)
	uc := NewChangeStatusUseCase(repo, nil, events.NopNotifier{})

	_, err := uc.Cancel(context.Background(), ap.ID, nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestChangeStatus_Cancel(t *testing.T) {
	repo, _, _ := newFakeRepo()
	ap := pendingAppointment(repo)
	uc := NewChangeStatusUseCase(repo, nil, events.NopNotifier{})

	out, err := uc.Cancel(context.Background(), ap.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), out.Status)
	assert.Empty(t, repo.clients, "cancelamento não mexe em cliente")
}
