package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/goldblade/barbershop-api/internal/domain/booking"
	"github.com/goldblade/barbershop-api/internal/events"
	"github.com/goldblade/barbershop-api/internal/httperr"
	"github.com/goldblade/barbershop-api/internal/models"
	"github.com/goldblade/barbershop-api/internal/timezone"
)

type CreateBookingInput struct {
	ClientName string   `json:"client_name"`
	Phone      string   `json:"phone"`
	BarberID   string   `json:"barber_id"` // uuid ou "any"
	ServiceIDs []string `json:"service_ids"`
	Date       string   `json:"date"` // 2006-01-02
	Time       string   `json:"time"` // 15:04
	Notes      string   `json:"notes"`
}

type CreateBookingOutput struct {
	AppointmentID   uuid.UUID       `json:"appointment_id"`
	Status          string          `json:"status"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	WhatsAppLink    string          `json:"whatsapp_link"`
	Message         string          `json:"message"`
	ReturningClient bool            `json:"returning_client"`
}

// CreateBookingUseCase é o fluxo público de agendamento: valida, reavalia a
// disponibilidade, grava o agendamento pendente com os itens e devolve o
// link de confirmação do WhatsApp. Nada é alterado na tabela de clientes
// aqui; agregados só mudam na conclusão.
type CreateBookingUseCase struct {
	repo     domain.Repository
	notifier events.Notifier
}

func NewCreateBookingUseCase(repo domain.Repository, notifier events.Notifier) *CreateBookingUseCase {
	return &CreateBookingUseCase{repo: repo, notifier: notifier}
}

func (uc *CreateBookingUseCase) Execute(
	ctx context.Context,
	input CreateBookingInput,
) (*CreateBookingOutput, error) {

	phone := domain.NormalizePhone(input.Phone)
	if len([]rune(input.ClientName)) < 2 || len(phone) < 10 {
		return nil, httperr.ErrBusiness("invalid_client_data")
	}
	if len(input.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("no_services_selected")
	}
	if input.BarberID == "" {
		return nil, httperr.ErrBusiness("barber_required")
	}

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	// Barbeiro específico precisa existir e estar ativo.
	var barberID *uuid.UUID
	barberName := ""
	if input.BarberID != domain.AnyBarber {
		id, err := uuid.Parse(input.BarberID)
		if err != nil {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		barber, err := uc.repo.GetBarber(ctx, id)
		if err != nil {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		barberID = &barber.ID
		barberName = barber.Name
	}

	catalog, err := uc.repo.ListActiveServices(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Service, len(catalog))
	for _, s := range catalog {
		byID[s.ID.String()] = s
	}

	items := make([]models.AppointmentService, 0, len(input.ServiceIDs))
	serviceNames := make([]string, 0, len(input.ServiceIDs))
	for _, id := range input.ServiceIDs {
		s, ok := byID[id]
		if !ok {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		serviceID := s.ID
		items = append(items, models.AppointmentService{
			ServiceID:   &serviceID,
			ServiceName: s.Name,
			Price:       s.Price,
		})
		serviceNames = append(serviceNames, s.Name)
	}

	total := domain.TotalPrice(catalog, input.ServiceIDs)

	// Reavaliação no servidor: o slot pode ter sido tomado depois que o
	// cliente viu a grade.
	availability, err := uc.loadAvailability(ctx, input.Date)
	if err != nil {
		return nil, err
	}
	if !availability.IsSlotAvailable(input.Date, input.Time, input.BarberID) {
		return nil, httperr.ErrBusiness("time_unavailable")
	}

	// Leitura apenas informativa; nenhum agregado muda na criação.
	existing, err := uc.repo.FindClientByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClientName:      input.ClientName,
		ClientPhone:     phone,
		BarberID:        barberID,
		AppointmentDate: input.Date,
		AppointmentTime: input.Time,
		Status:          string(domain.InitialStatus()),
		TotalPrice:      total,
		Notes:           input.Notes,
	}

	if err := uc.repo.CreateAppointmentWithServices(ctx, ap, items); err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation("2006-01-02", input.Date, timezone.Location())
	if err != nil {
		date = timezone.Now()
	}

	message := domain.ConfirmationMessage{
		ClientName:   input.ClientName,
		ClientPhone:  phone,
		BarberName:   barberName,
		Date:         date,
		Time:         input.Time,
		ServiceNames: serviceNames,
		Total:        total,
	}.Render()

	_ = uc.notifier.Publish(ctx, events.Event{
		Table:   "appointments",
		Kind:    events.KindInsert,
		Payload: ap,
	})

	return &CreateBookingOutput{
		AppointmentID:   ap.ID,
		Status:          ap.Status,
		TotalPrice:      total,
		WhatsAppLink:    domain.WhatsAppLink(settings.WhatsApp, message),
		Message:         message,
		ReturningClient: existing != nil,
	}, nil
}

func (uc *CreateBookingUseCase) loadAvailability(
	ctx context.Context,
	date string,
) (*domain.Availability, error) {

	blocked, err := uc.repo.ListBlockedSlots(ctx, date)
	if err != nil {
		return nil, err
	}
	booked, err := uc.repo.ListBookedSlots(ctx, date)
	if err != nil {
		return nil, err
	}
	activeBarbers, err := uc.repo.CountActiveBarbers(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Availability{
		Now:           timezone.Now(),
		Blocked:       blocked,
		Booked:        booked,
		ActiveBarbers: activeBarbers,
	}, nil
}
