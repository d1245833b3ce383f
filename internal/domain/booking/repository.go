package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goldblade/barbershop-api/internal/models"
)

type Repository interface {
	// -------- Configuração --------
	GetSettings(ctx context.Context) (*models.Settings, error)

	// -------- Barbeiros --------
	GetBarber(ctx context.Context, id uuid.UUID) (*models.Barber, error)
	CountActiveBarbers(ctx context.Context) (int, error)

	// -------- Serviços --------
	ListActiveServices(ctx context.Context) ([]models.Service, error)

	// -------- Clientes --------
	FindClientByPhone(ctx context.Context, phone string) (*models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)

	// -------- Agenda (leitura sem dados pessoais) --------
	ListBookedSlots(ctx context.Context, date string) ([]BookedSlot, error)
	ListBlockedSlots(ctx context.Context, date string) ([]BlockedSlot, error)

	// -------- Agendamentos --------
	CreateAppointmentWithServices(
		ctx context.Context,
		ap *models.Appointment,
		items []models.AppointmentService,
	) error

	GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// Conclusão atômica: muda o status e faz o upsert do cliente pelo
	// telefone na mesma transação.
	CompleteAppointmentAndUpsertClient(
		ctx context.Context,
		ap *models.Appointment,
		now time.Time,
	) (*models.Client, error)
}
