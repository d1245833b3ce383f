package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/goldblade/barbershop-api/internal/domain/booking"
	"github.com/goldblade/barbershop-api/internal/events"
	"github.com/goldblade/barbershop-api/internal/httperr"
	"github.com/goldblade/barbershop-api/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	settings models.Settings
	barbers  map[uuid.UUID]models.Barber
	services []models.Service
	clients  map[string]models.Client
	booked   []domain.BookedSlot
	blocked  []domain.BlockedSlot

	failCreate bool

	createdAppointment *models.Appointment
	createdItems       []models.AppointmentService
}

func (f *fakeRepo) GetSettings(ctx context.Context) (*models.Settings, error) {
	s := f.settings
	return &s, nil
}

func (f *fakeRepo) GetBarber(ctx context.Context, id uuid.UUID) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &b, nil
}

func (f *fakeRepo) CountActiveBarbers(ctx context.Context) (int, error) {
	return len(f.barbers), nil
}

func (f *fakeRepo) ListActiveServices(ctx context.Context) ([]models.Service, error) {
	return f.services, nil
}

func (f *fakeRepo) FindClientByPhone(ctx context.Context, phone string) (*models.Client, error) {
	c, ok := f.clients[phone]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeRepo) ListClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepo) ListBookedSlots(ctx context.Context, date string) ([]domain.BookedSlot, error) {
	return f.booked, nil
}

func (f *fakeRepo) ListBlockedSlots(ctx context.Context, date string) ([]domain.BlockedSlot, error) {
	return f.blocked, nil
}

func (f *fakeRepo) CreateAppointmentWithServices(
	ctx context.Context,
	ap *models.Appointment,
	items []models.AppointmentService,
) error {
	if f.failCreate {
		// Falha atômica: nada é gravado, nem agendamento nem itens.
		return errors.New("database down")
	}
	ap.ID = uuid.New()
	f.createdAppointment = ap
	f.createdItems = items
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	if f.createdAppointment != nil && f.createdAppointment.ID == id {
		return f.createdAppointment, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.createdAppointment = ap
	return nil
}

func (f *fakeRepo) CompleteAppointmentAndUpsertClient(
	ctx context.Context,
	ap *models.Appointment,
	now time.Time,
) (*models.Client, error) {
	ap.Status = string(domain.StatusCompleted)
	c := f.clients[ap.ClientPhone]
	c.Name = ap.ClientName
	c.Phone = ap.ClientPhone
	c.TotalVisits++
	c.TotalSpent = c.TotalSpent.Add(ap.TotalPrice)
	c.LastVisitAt = &now
	f.clients[ap.ClientPhone] = c
	return &c, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ======================================================
// SETUP
// ======================================================

func newFakeRepo() (*fakeRepo, models.Barber, []models.Service) {
	barber := models.Barber{ID: uuid.New(), Name: "Carlos", IsActive: true}
	services := []models.Service{
		{ID: uuid.New(), Name: "Corte", Price: decimal.RequireFromString("35.00"), IsActive: true},
		{ID: uuid.New(), Name: "Barba", Price: decimal.RequireFromString("15.00"), IsActive: true},
	}

	repo := &fakeRepo{
		settings: models.Settings{
			BusinessName: "Gold Blade",
			WhatsApp:     "61999990000",
			OpeningHour:  "09:00",
			ClosingHour:  "20:00",
		},
		barbers:  map[uuid.UUID]models.Barber{barber.ID: barber},
		services: services,
		clients:  map[string]models.Client{},
	}
	return repo, barber, services
}

func validInput(barberID string, serviceIDs []string) CreateBookingInput {
	return CreateBookingInput{
		ClientName: "João Silva",
		Phone:      "(61) 99203-0064",
		BarberID:   barberID,
		ServiceIDs: serviceIDs,
		Date:       "2030-06-15",
		Time:       "14:00",
	}
}

// ======================================================
// TESTES
// ======================================================

func TestCreateBooking_Success(t *testing.T) {
	repo, barber, services := newFakeRepo()
	uc := NewCreateBookingUseCase(repo, events.NopNotifier{})

	input := validInput(barber.ID.String(), []string{
		services[0].ID.String(),
		services[1].ID.String(),
	})

	out, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "pending", out.Status)
	assert.True(t, out.TotalPrice.Equal(decimal.RequireFromString("50.00")))
	assert.False(t, out.ReturningClient)

	assert.Contains(t, out.WhatsAppLink, "https://wa.me/61999990000?text=")
	assert.Contains(t, out.Message, "Carlos")
	assert.Contains(t, out.Message, "R$ 50,00")

	require.NotNil(t, repo.createdAppointment)
	assert.Equal(t, "61992030064", repo.createdAppointment.ClientPhone, "telefone normalizado")
	require.Len(t, repo.createdItems, 2)
	assert.Equal(t, "Corte", repo.createdItems[0].ServiceName)
	assert.True(t, repo.createdItems[0].Price.Equal(decimal.RequireFromString("35.00")),
		"item guarda a cópia do preço")
}

func TestCreateBooking_AnyBarber(t *testing.T) {
	repo, _, services := newFakeRepo()
	uc := NewCreateBookingUseCase(repo, events.NopNotifier{})

	out, err := uc.Execute(context.Background(),
		validInput(domain.AnyBarber, []string{services[0].ID.String()}))
	require.NoError(t, err)

	assert.Nil(t, repo.createdAppointment.BarberID, "barber_id nulo para qualquer barbeiro")
	assert.Contains(t, out.Message, "Qualquer barbeiro disponível")
}

func TestCreateBooking_PersistenceFailureProducesNoLink(t *testing.T) {
	repo, barber, services := newFakeRepo()
	repo.failCreate = true
	uc := NewCreateBookingUseCase(repo, events.NopNotifier{})

	out, err := uc.Execute(context.Background(),
		validInput(barber.ID.String(), []string{services[0].ID.String()}))

	assert.Error(t, err)
	assert.Nil(t, out, "falha de persistência nunca devolve link")
	assert.Nil(t, repo.createdAppointment)
	assert.Empty(t, repo.createdItems, "sem item órfão")
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	repo, barber, services := newFakeRepo()
	repo.booked = []domain.BookedSlot{
		{Date: "2030-06-15", Time: "14:00", BarberID: barber.ID.String()},
	}
	uc := NewCreateBookingUseCase(repo, events.NopNotifier{})

	_, err := uc.Execute(context.Background(),
		validInput(barber.ID.String(), []string{services[0].ID.String()}))

	assert.True(t, httperr.IsBusiness(err, "time_unavailable"))
	assert.Nil(t, repo.createdAppointment)
}

func TestCreateBooking_BlockedDate(t *testing.T) {
	repo, barber, services := newFakeRepo()
	repo.blocked = []domain.BlockedSlot{
		{Date: "2030-06-15", FullDay: true},
	}
	uc := NewCreateBookingUseCase(repo, events.NopNotifier{})

	_, err := uc.Execute(context.Background(),
		validInput(barber.ID.String(), []string{services[0].ID.String()}))

	assert.True(t, httperr.IsBusiness(err, "time_unavailable"))
}

func TestCreateBooking_UnknownService(t *testing.T) {
	repo, barber, _ := newFakeRepo()
	uc := NewCreateBookingUseCase(repo, events.NopNotifier{})

	_, err := uc.Execute(context.Background(),
		validInput(barber.ID.String(), []string{uuid.NewString()}))

	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateBooking_UnknownBarber(t *testing.T) {
	repo, _, services := newFakeRepo()
	uc := NewCreateBookingUseCase(repo, events.NopNotifier{})

	_, err := uc.Execute(context.Background(),
		validInput(uuid.NewString(), []string{services[0].ID.String()}))

	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}

func TestCreateBooking_InvalidClientData(t *testing.T) {
	repo, barber, services := newFakeRepo()
	uc := NewCreateBookingUseCase(repo, events.NopNotifier{})

	input := validInput(barber.ID.String(), []string{services[0].ID.String()})
	input.Phone = "123"

	_, err := uc.Execute(context.Background(), input)
	assert.True(t, httperr.IsBusiness(err, "invalid_client_data"))
}

func TestCreateBooking_ReturningClientFlagged(t *testing.T) {
	repo, barber, services := newFakeRepo()
	repo.clients["61992030064"] = models.Client{
		ID:    uuid.New(),
		Name:  "João Silva",
		Phone: "61992030064",
	}
	uc := NewCreateBookingUseCase(repo, events.NopNotifier{})

	out, err := uc.Execute(context.Background(),
		validInput(barber.ID.String(), []string{services[0].ID.String()}))
	require.NoError(t, err)

	assert.True(t, out.ReturningClient)
	assert.Equal(t, 0, repo.clients["61992030064"].TotalVisits,
		"criação não mexe nos agregados do cliente")
}
